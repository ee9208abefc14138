// Package catalog is a gRPC client for the catalog service with timeout, retry and
// circuit breaking applied to every call.
package catalog

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/abgdnv/catalog/pkg/api/gen/go/catalog/v1"
	"github.com/abgdnv/catalog/pkg/client/grpc/interceptors"
	"github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/web"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("catalog service unavailable")
)

// Error is a failed call. It matches one of the package sentinels via errors.Is
// depending on the status code returned by the server.
type Error struct {
	Code       codes.Code
	Message    string
	MissingIDs []int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("catalog: %s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == codes.NotFound
	case ErrInvalidArgument:
		return e.Code == codes.InvalidArgument
	case ErrUnavailable:
		return e.Code == codes.Unavailable || e.Code == codes.DeadlineExceeded
	}
	return false
}

type Client struct {
	conn *grpc.ClientConn
	api  pb.CatalogServiceClient
}

// New dials cfg.Addr, which may be host:port or any gRPC target such as dns:///catalog:9090.
// Extra options are appended after the defaults, so tests can supply a custom dialer.
// Start from config.DefaultCatalogClientConfig when only the address is known.
func New(cfg config.CatalogClientConfig, opts ...grpc.DialOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog client config: %w", err)
	}
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(
			interceptors.UnaryClientTimeoutInterceptor(cfg.Timeout),
			requestIDInterceptor,
			interceptors.NewRetryInterceptor(cfg.Retry),
			interceptors.NewCircuitBreaker("catalog-client-cb", cfg.CircuitBreaker),
		),
	}, opts...)

	conn, err := grpc.NewClient(cfg.Addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}
	return &Client{conn: conn, api: pb.NewCatalogServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*pb.Product, error) {
	resp, err := c.api.GetProduct(ctx, &pb.GetProductRequest{Id: id})
	if err != nil {
		return nil, toError(err)
	}
	return resp.Product, nil
}

func (c *Client) ListProducts(ctx context.Context, page, limit int32) (*pb.ListProductsResponse, error) {
	resp, err := c.api.ListProducts(ctx, &pb.ListProductsRequest{Page: page, Limit: limit})
	if err != nil {
		return nil, toError(err)
	}
	return resp, nil
}

func (c *Client) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.Product, error) {
	resp, err := c.api.CreateProduct(ctx, req)
	if err != nil {
		return nil, toError(err)
	}
	return resp.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.Product, error) {
	resp, err := c.api.UpdateProduct(ctx, req)
	if err != nil {
		return nil, toError(err)
	}
	return resp.Product, nil
}

func (c *Client) SoftDeleteProduct(ctx context.Context, id int64) (*pb.Product, error) {
	resp, err := c.api.SoftDeleteProduct(ctx, &pb.SoftDeleteProductRequest{Id: id})
	if err != nil {
		return nil, toError(err)
	}
	return resp.Product, nil
}

func (c *Client) RemoveProduct(ctx context.Context, id int64) (*pb.RemoveProductResponse, error) {
	resp, err := c.api.RemoveProduct(ctx, &pb.RemoveProductRequest{Id: id})
	if err != nil {
		return nil, toError(err)
	}
	return resp, nil
}

// ValidateProducts returns the products for ids, in the server's order. When some IDs
// are unknown the returned *Error lists them in MissingIDs.
func (c *Client) ValidateProducts(ctx context.Context, ids []int64) ([]*pb.Product, error) {
	resp, err := c.api.ValidateProducts(ctx, &pb.ValidateProductsRequest{Ids: ids})
	if err != nil {
		return nil, toError(err)
	}
	return resp.Products, nil
}

// toError converts a gRPC status into *Error. Errors without a status are returned as is.
func toError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	return &Error{Code: st.Code(), Message: st.Message(), MissingIDs: pb.MissingIDs(st)}
}

// requestIDInterceptor forwards the request ID found in ctx as x-request-id metadata.
func requestIDInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if reqID := web.GetRequestID(ctx); reqID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, web.RequestIDMetadataKey, reqID)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}
