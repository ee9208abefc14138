package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductService is a mock implementation of the ProductService interface.
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	page     *pagination.Result[service.ProductDto]
	removed  *service.RemovedDto
	error    error

	gotID    int64
	gotPage  pagination.Request
	gotPatch service.ProductUpdateDto
	gotIDs   []int64
	calls    int
}

func (m *mockProductService) Create(_ context.Context, _ service.ProductCreateDto) (*service.ProductDto, error) {
	m.calls++
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context, page pagination.Request) (*pagination.Result[service.ProductDto], error) {
	m.calls++
	m.gotPage = page
	if m.error != nil {
		return nil, m.error
	}
	return m.page, nil
}

func (m *mockProductService) FindByID(_ context.Context, id int64) (*service.ProductDto, error) {
	m.calls++
	m.gotID = id
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ context.Context, id int64, patch service.ProductUpdateDto) (*service.ProductDto, error) {
	m.calls++
	m.gotID, m.gotPatch = id, patch
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Remove(_ context.Context, id int64) (*service.RemovedDto, error) {
	m.calls++
	m.gotID = id
	if m.error != nil {
		return nil, m.error
	}
	return m.removed, nil
}

func (m *mockProductService) SoftDelete(_ context.Context, id int64) (*service.ProductDto, error) {
	m.calls++
	m.gotID = id
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) ValidateProducts(_ context.Context, ids []int64) ([]service.ProductDto, error) {
	m.calls++
	m.gotIDs = ids
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

type ErrorResponse struct {
	Error      string  `json:"error"`
	MissingIDs []int64 `json:"missing_ids"`
}

type ValidationErrorResponse struct {
	ValidationErrors map[string]string `json:"validation_errors"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v any) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newTestRouter(svc service.ProductService) http.Handler {
	mux := chi.NewRouter()
	NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

var sample = service.ProductDto{
	ID:        7,
	Name:      "Espresso machine",
	Price:     decimal.RequireFromString("899.99"),
	Available: true,
}

func Test_ProductAPI_FindByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		path         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  &mockProductService{product: &sample},
			path:         "/api/v1/products/7",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, sample),
		},
		{
			name:         "Error - not found",
			mockService:  &mockProductService{error: perrors.NewNotFound(7)},
			path:         "/api/v1/products/7",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, map[string]string{"error": "product with id #7 not found"}),
		},
		{
			name:         "Error - storage unavailable",
			mockService:  &mockProductService{error: perrors.NewStorage("find product by ID", errors.New("refused"))},
			path:         "/api/v1/products/7",
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: toJSON(t, map[string]string{"error": "Service is temporarily unavailable"}),
		},
		{
			name:         "Error - invalid id",
			mockService:  &mockProductService{},
			path:         "/api/v1/products/abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, map[string]string{"error": "Invalid ID: abc"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(tc.mockService)
			// when
			rr := doRequest(t, router, http.MethodGet, tc.path, "")
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductAPI_FindAll(t *testing.T) {
	result := &pagination.Result[service.ProductDto]{
		Data: []service.ProductDto{sample},
		Meta: pagination.NewMeta(pagination.Request{Page: 2, Limit: 10}, 15),
	}
	testCases := []struct {
		name         string
		query        string
		expectedCode int
		expectedPage pagination.Request
		expectCall   bool
	}{
		{name: "Success - defaults", query: "", expectedCode: http.StatusOK, expectedPage: pagination.Request{Page: 1, Limit: 10}, expectCall: true},
		{name: "Success - explicit page", query: "?page=2&limit=10", expectedCode: http.StatusOK, expectedPage: pagination.Request{Page: 2, Limit: 10}, expectCall: true},
		{name: "Error - page zero", query: "?page=0", expectedCode: http.StatusBadRequest},
		{name: "Error - limit above max", query: "?limit=101", expectedCode: http.StatusBadRequest},
		{name: "Error - limit not a number", query: "?limit=x", expectedCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := &mockProductService{page: result}
			router := newTestRouter(mockSvc)
			// when
			rr := doRequest(t, router, http.MethodGet, "/api/v1/products"+tc.query, "")
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if !tc.expectCall {
				assert.Zero(t, mockSvc.calls)
				return
			}
			assert.Equal(t, tc.expectedPage, mockSvc.gotPage)
			assert.JSONEq(t, toJSON(t, result), rr.Body.String())
		})
	}
}

func Test_ProductAPI_FindAll_MetaFieldNames(t *testing.T) {
	mockSvc := &mockProductService{page: &pagination.Result[service.ProductDto]{
		Data: []service.ProductDto{},
		Meta: pagination.NewMeta(pagination.Request{Page: 1, Limit: 10}, 0),
	}}

	rr := doRequest(t, newTestRouter(mockSvc), http.MethodGet, "/api/v1/products", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"data":[],"meta":{"page":1,"limit":10,"total":0,"lastPage":0,"isFirst":true,"isLast":true}}`,
		rr.Body.String())
}

func Test_ProductAPI_Create(t *testing.T) {
	testCases := []struct {
		name           string
		mockService    *mockProductService
		body           string
		expectedCode   int
		expectedFields map[string]string
	}{
		{
			name:         "Success - product created",
			mockService:  &mockProductService{product: &sample},
			body:         `{"name":"Espresso machine","price":"899.99"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Success - numeric price accepted",
			mockService:  &mockProductService{product: &sample},
			body:         `{"name":"Espresso machine","price":899.99}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:           "Error - name too short and price missing",
			mockService:    &mockProductService{},
			body:           `{"name":"ab"}`,
			expectedCode:   http.StatusBadRequest,
			expectedFields: map[string]string{"name": "failed on rule: min", "price": "failed on rule: price"},
		},
		{
			name:           "Error - price with five decimals",
			mockService:    &mockProductService{},
			body:           `{"name":"Espresso machine","price":"1.00001"}`,
			expectedCode:   http.StatusBadRequest,
			expectedFields: map[string]string{"price": "failed on rule: price"},
		},
		{
			name:           "Error - price beyond column precision",
			mockService:    &mockProductService{},
			body:           `{"name":"Espresso machine","price":"10000000000"}`,
			expectedCode:   http.StatusBadRequest,
			expectedFields: map[string]string{"price": "failed on rule: price"},
		},
		{
			name:           "Error - description too short",
			mockService:    &mockProductService{},
			body:           `{"name":"Espresso machine","price":"10","description":"short"}`,
			expectedCode:   http.StatusBadRequest,
			expectedFields: map[string]string{"description": "failed on rule: min"},
		},
		{
			name:         "Error - malformed body",
			mockService:  &mockProductService{},
			body:         `{"name":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Error - storage failure",
			mockService:  &mockProductService{error: perrors.NewStorage("create product", errors.New("refused"))},
			body:         `{"name":"Espresso machine","price":"899.99"}`,
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(tc.mockService)
			// when
			rr := doRequest(t, router, http.MethodPost, "/api/v1/products", tc.body)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode == http.StatusCreated {
				assert.JSONEq(t, toJSON(t, sample), rr.Body.String())
			}
			if tc.expectedFields != nil {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedFields, resp.ValidationErrors)
				assert.Zero(t, tc.mockService.calls)
			}
		})
	}
}

func Test_ProductAPI_Update(t *testing.T) {
	// given
	mockSvc := &mockProductService{product: &sample}
	router := newTestRouter(mockSvc)
	// when
	rr := doRequest(t, router, http.MethodPatch, "/api/v1/products/7", `{"id":99,"name":"Renamed"}`)
	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(7), mockSvc.gotID)
	require.NotNil(t, mockSvc.gotPatch.Name)
	assert.Equal(t, "Renamed", *mockSvc.gotPatch.Name)
}

func Test_ProductAPI_Update_PriceBeyondColumnPrecision(t *testing.T) {
	// given
	mockSvc := &mockProductService{product: &sample}
	router := newTestRouter(mockSvc)
	// when
	rr := doRequest(t, router, http.MethodPatch, "/api/v1/products/7", `{"price":"12345678901.5"}`)
	// then
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"price": "failed on rule: price"}, resp.ValidationErrors)
	assert.Zero(t, mockSvc.calls)
}

func Test_ProductAPI_Update_NotFound(t *testing.T) {
	mockSvc := &mockProductService{error: perrors.NewNotFound(7)}

	rr := doRequest(t, newTestRouter(mockSvc), http.MethodPatch, "/api/v1/products/7", `{"name":"Renamed"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func Test_ProductAPI_Remove(t *testing.T) {
	removed := &service.RemovedDto{Message: service.RemovedMessage, ProductID: 7}
	mockSvc := &mockProductService{removed: removed}

	rr := doRequest(t, newTestRouter(mockSvc), http.MethodDelete, "/api/v1/products/7", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully","product_id":7}`, rr.Body.String())
}

func Test_ProductAPI_SoftDelete(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		expectedCode int
	}{
		{name: "Success", mockService: &mockProductService{product: &service.ProductDto{ID: 7, Name: "Espresso machine"}}, expectedCode: http.StatusOK},
		{name: "Error - already soft deleted", mockService: &mockProductService{error: perrors.NewNotFound(7)}, expectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, newTestRouter(tc.mockService), http.MethodPost, "/api/v1/products/7/soft-delete", "")

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, int64(7), tc.mockService.gotID)
		})
	}
}

func Test_ProductAPI_Validate(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  *mockProductService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success",
			mockService:  &mockProductService{products: []service.ProductDto{sample}},
			body:         `{"ids":[7,7]}`,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.ProductDto{sample}),
		},
		{
			name:         "Error - unknown id",
			mockService:  &mockProductService{error: perrors.NewValidation(service.MissingProductsMessage, []int64{9})},
			body:         `{"ids":[7,9]}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "some products were not found", MissingIDs: []int64{9}}),
		},
		{
			name:         "Error - non positive id",
			mockService:  &mockProductService{},
			body:         `{"ids":[0]}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"ids[0]": "failed on rule: gt"}}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, newTestRouter(tc.mockService), http.MethodPost, "/api/v1/products/validate", tc.body)

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_ProductAPI_HealthCheck(t *testing.T) {
	rr := doRequest(t, newTestRouter(&mockProductService{}), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}
