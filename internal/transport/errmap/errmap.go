// Package errmap translates the product error taxonomy into transport status codes.
package errmap

import (
	"errors"
	"net/http"

	perrors "github.com/abgdnv/catalog/internal/errors"
	pb "github.com/abgdnv/catalog/pkg/api/gen/go/catalog/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Problem is the client-facing view of a failed operation.
type Problem struct {
	Status     int     `json:"status"`
	Message    string  `json:"message"`
	MissingIDs []int64 `json:"missing_ids,omitempty"`
}

// FromError classifies err. Storage and unexpected failures never leak their cause.
func FromError(err error) Problem {
	var ve *perrors.ValidationError
	switch {
	case errors.Is(err, perrors.ErrProductNotFound):
		var nf *perrors.NotFoundError
		if errors.As(err, &nf) {
			return Problem{Status: http.StatusNotFound, Message: nf.Error()}
		}
		return Problem{Status: http.StatusNotFound, Message: perrors.ErrProductNotFound.Error()}
	case errors.As(err, &ve):
		return Problem{Status: http.StatusBadRequest, Message: ve.Message, MissingIDs: ve.MissingIDs}
	case errors.Is(err, perrors.ErrStorage):
		return Problem{Status: http.StatusServiceUnavailable, Message: "Service is temporarily unavailable"}
	default:
		return Problem{Status: http.StatusInternalServerError, Message: "Internal server error"}
	}
}

// GRPCStatus converts err into a gRPC status error with the matching code.
// Missing product IDs travel as an ErrorInfo detail.
func GRPCStatus(err error) error {
	p := FromError(err)
	st := status.New(grpcCode(p.Status), p.Message)
	if len(p.MissingIDs) > 0 {
		if detailed, derr := st.WithDetails(pb.MissingProductsInfo(p.MissingIDs)); derr == nil {
			st = detailed
		}
	}
	return st.Err()
}

func grpcCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}
