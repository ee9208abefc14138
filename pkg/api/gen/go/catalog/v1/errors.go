package catalogv1

import (
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Error details attached to InvalidArgument statuses when a batch names unknown products.
const (
	ErrorDomain            = "catalog.v1"
	ReasonProductsNotFound = "PRODUCTS_NOT_FOUND"
	MetadataKeyMissingIDs  = "missing_ids"
	missingIDsSeparator    = ","
)

// MissingProductsInfo builds the ErrorInfo detail listing ids.
func MissingProductsInfo(ids []int64) *errdetails.ErrorInfo {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return &errdetails.ErrorInfo{
		Reason:   ReasonProductsNotFound,
		Domain:   ErrorDomain,
		Metadata: map[string]string{MetadataKeyMissingIDs: strings.Join(parts, missingIDsSeparator)},
	}
}

// MissingIDs extracts the product IDs carried by a PRODUCTS_NOT_FOUND detail, or nil.
func MissingIDs(st *status.Status) []int64 {
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain || info.GetReason() != ReasonProductsNotFound {
			continue
		}
		raw := info.GetMetadata()[MetadataKeyMissingIDs]
		if raw == "" {
			return nil
		}
		var ids []int64
		for _, part := range strings.Split(raw, missingIDsSeparator) {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}
