// Package nats serves the product operations as NATS request-reply endpoints.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/internal/transport/errmap"
	"github.com/abgdnv/catalog/internal/validation"
	"github.com/abgdnv/catalog/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Subjects answered by the responder.
const (
	SubjectCreate     = "catalog.products.create"
	SubjectList       = "catalog.products.list"
	SubjectGet        = "catalog.products.get"
	SubjectUpdate     = "catalog.products.update"
	SubjectRemove     = "catalog.products.remove"
	SubjectSoftDelete = "catalog.products.soft_delete"
	SubjectValidate   = "catalog.products.validate"
)

// Reply is the envelope of every response: exactly one of Data and Error is set.
type Reply struct {
	Data  any             `json:"data,omitempty"`
	Error *errmap.Problem `json:"error,omitempty"`
}

type idRequest struct {
	ID int64 `json:"id" validate:"gt=0"`
}

type updateRequest struct {
	service.ProductUpdateDto
	ID int64 `json:"id" validate:"gt=0"`
}

type handlerFunc func(ctx context.Context, data []byte) (any, error)

// requestError is a malformed or invalid request; it never reaches the service.
type requestError struct {
	message string
}

func (e *requestError) Error() string {
	return e.message
}

type Responder struct {
	nc       *nats.Conn
	service  service.ProductService
	validate *validator.Validate
	queue    string
	timeout  time.Duration
	logger   *slog.Logger
	routes   map[string]handlerFunc
}

// NewResponder builds a responder whose subscriptions share the given queue group,
// so several catalog instances split the request load.
func NewResponder(nc *nats.Conn, svc service.ProductService, queue string, timeout time.Duration, logger *slog.Logger) *Responder {
	r := &Responder{
		nc:       nc,
		service:  svc,
		validate: validation.New(),
		queue:    queue,
		timeout:  timeout,
		logger:   logger.With("component", "nats"),
	}
	r.routes = map[string]handlerFunc{
		SubjectCreate:     r.create,
		SubjectList:       r.list,
		SubjectGet:        r.get,
		SubjectUpdate:     r.update,
		SubjectRemove:     r.remove,
		SubjectSoftDelete: r.softDelete,
		SubjectValidate:   r.validateBatch,
	}
	return r
}

// Run subscribes to every subject and blocks until ctx is cancelled, then drains the subscriptions.
func (r *Responder) Run(ctx context.Context) error {
	// in-flight requests finish during drain
	base := context.WithoutCancel(ctx)
	subs := make([]*nats.Subscription, 0, len(r.routes))
	for subject := range r.routes {
		sub, err := r.nc.QueueSubscribe(subject, r.queue, func(msg *nats.Msg) {
			r.serve(base, msg)
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		subs = append(subs, sub)
	}
	if err := r.nc.Flush(); err != nil {
		return fmt.Errorf("failed to flush subscriptions: %w", err)
	}
	r.logger.InfoContext(ctx, "NATS responder listening", "queue", r.queue, "subjects", len(subs))

	<-ctx.Done()
	for _, sub := range subs {
		if err := sub.Drain(); err != nil {
			r.logger.Warn("failed to drain subscription", "subject", sub.Subject, "error", err)
		}
	}
	return nil
}

// serve handles one request message and publishes the reply.
func (r *Responder) serve(parent context.Context, msg *nats.Msg) {
	ctx := parent
	if msg.Header != nil {
		ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(msg.Header))
	}
	ctx, reqID := web.ResolveRequestID(ctx, msg.Header.Get(web.RequestIDHeader))
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	reply := r.Handle(ctx, msg.Subject, msg.Data)
	data, err := json.Marshal(reply)
	if err != nil {
		r.logger.ErrorContext(ctx, "Error encoding reply", "subject", msg.Subject, "error", err)
		return
	}
	if msg.Reply == "" {
		r.logger.WarnContext(ctx, "Dropping reply for message without reply subject", "subject", msg.Subject)
		return
	}
	resp := nats.NewMsg(msg.Reply)
	resp.Data = data
	resp.Header.Set(web.RequestIDHeader, reqID)
	if err := msg.RespondMsg(resp); err != nil {
		r.logger.ErrorContext(ctx, "Error sending reply", "subject", msg.Subject, "error", err)
	}
}

// Handle dispatches a request payload by subject and wraps the outcome in a Reply.
func (r *Responder) Handle(ctx context.Context, subject string, data []byte) Reply {
	handler, ok := r.routes[subject]
	if !ok {
		return Reply{Error: &errmap.Problem{Status: http.StatusNotFound, Message: "unknown subject " + subject}}
	}

	result, err := handler(ctx, data)
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			r.logger.WarnContext(ctx, "Invalid request", "subject", subject, "error", err)
			return Reply{Error: &errmap.Problem{Status: http.StatusBadRequest, Message: reqErr.message}}
		}
		p := errmap.FromError(err)
		if p.Status >= http.StatusInternalServerError {
			r.logger.ErrorContext(ctx, "Request failed", "subject", subject, "error", err)
		} else {
			r.logger.WarnContext(ctx, "Request rejected", "subject", subject, "error", err)
		}
		return Reply{Error: &p}
	}
	return Reply{Data: result}
}

// decode unmarshals data into dst and validates it. An empty payload decodes as {}.
func (r *Responder) decode(data []byte, dst any) error {
	if len(data) > 0 {
		if err := json.Unmarshal(data, dst); err != nil {
			return &requestError{message: "Invalid request body"}
		}
	}
	if err := r.validate.Struct(dst); err != nil {
		if fields, ok := validation.FieldErrors(err); ok {
			return &requestError{message: validation.Summary(fields)}
		}
		return &requestError{message: err.Error()}
	}
	return nil
}

func (r *Responder) create(ctx context.Context, data []byte) (any, error) {
	var req service.ProductCreateDto
	if err := r.decode(data, &req); err != nil {
		return nil, err
	}
	return r.service.Create(ctx, req)
}

func (r *Responder) list(ctx context.Context, data []byte) (any, error) {
	var req pagination.Request
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, &requestError{message: "Invalid request body"}
		}
	}
	req = req.WithDefaults()
	if err := r.decode(nil, &req); err != nil {
		return nil, err
	}
	return r.service.FindAll(ctx, req)
}

func (r *Responder) get(ctx context.Context, data []byte) (any, error) {
	var req idRequest
	if err := r.decode(data, &req); err != nil {
		return nil, err
	}
	return r.service.FindByID(ctx, req.ID)
}

func (r *Responder) update(ctx context.Context, data []byte) (any, error) {
	var req updateRequest
	if err := r.decode(data, &req); err != nil {
		return nil, err
	}
	return r.service.Update(ctx, req.ID, req.ProductUpdateDto)
}

func (r *Responder) remove(ctx context.Context, data []byte) (any, error) {
	var req idRequest
	if err := r.decode(data, &req); err != nil {
		return nil, err
	}
	return r.service.Remove(ctx, req.ID)
}

func (r *Responder) softDelete(ctx context.Context, data []byte) (any, error) {
	var req idRequest
	if err := r.decode(data, &req); err != nil {
		return nil, err
	}
	return r.service.SoftDelete(ctx, req.ID)
}

func (r *Responder) validateBatch(ctx context.Context, data []byte) (any, error) {
	var req service.ValidateProductsDto
	if err := r.decode(data, &req); err != nil {
		return nil, err
	}
	return r.service.ValidateProducts(ctx, req.IDs)
}
