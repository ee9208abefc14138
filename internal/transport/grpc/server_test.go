package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	pb "github.com/abgdnv/catalog/pkg/api/gen/go/catalog/v1"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

type MockProductService struct {
	mock.Mock
}

func productOrNil(v any) *service.ProductDto {
	if v == nil {
		return nil
	}
	return v.(*service.ProductDto)
}

func (m *MockProductService) Create(ctx context.Context, product service.ProductCreateDto) (*service.ProductDto, error) {
	args := m.Called(ctx, product)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductService) FindAll(ctx context.Context, page pagination.Request) (*pagination.Result[service.ProductDto], error) {
	args := m.Called(ctx, page)
	var result *pagination.Result[service.ProductDto]
	if args.Get(0) != nil {
		result = args.Get(0).(*pagination.Result[service.ProductDto])
	}
	return result, args.Error(1)
}

func (m *MockProductService) FindByID(ctx context.Context, id int64) (*service.ProductDto, error) {
	args := m.Called(ctx, id)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id int64, patch service.ProductUpdateDto) (*service.ProductDto, error) {
	args := m.Called(ctx, id, patch)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductService) Remove(ctx context.Context, id int64) (*service.RemovedDto, error) {
	args := m.Called(ctx, id)
	var removed *service.RemovedDto
	if args.Get(0) != nil {
		removed = args.Get(0).(*service.RemovedDto)
	}
	return removed, args.Error(1)
}

func (m *MockProductService) SoftDelete(ctx context.Context, id int64) (*service.ProductDto, error) {
	args := m.Called(ctx, id)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductService) ValidateProducts(ctx context.Context, ids []int64) ([]service.ProductDto, error) {
	args := m.Called(ctx, ids)
	var products []service.ProductDto
	if args.Get(0) != nil {
		products = args.Get(0).([]service.ProductDto)
	}
	return products, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogServer_GetProduct(t *testing.T) {
	ctx := context.Background()
	product := &service.ProductDto{ID: 5, Name: "Test Product", Price: decimal.RequireFromString("10.5"), Available: true}

	testCases := []struct {
		name         string
		mockProduct  *service.ProductDto
		mockError    error
		expectedCode codes.Code
	}{
		{
			name:         "success",
			mockProduct:  product,
			expectedCode: codes.OK,
		},
		{
			name:         "not found",
			mockError:    perrors.NewNotFound(5),
			expectedCode: codes.NotFound,
		},
		{
			name:         "storage unavailable",
			mockError:    perrors.NewStorage("find product by ID", errors.New("refused")),
			expectedCode: codes.Unavailable,
		},
		{
			name:         "internal error",
			mockError:    errors.New("internal error"),
			expectedCode: codes.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockSvc := new(MockProductService)
			server := NewServer(mockSvc, discardLogger())

			mockSvc.On("FindByID", mock.Anything, int64(5)).Return(tc.mockProduct, tc.mockError)

			// when
			res, err := server.GetProduct(ctx, &pb.GetProductRequest{Id: 5})

			// then
			if tc.expectedCode == codes.OK {
				require.NoError(t, err)
				require.NotNil(t, res)
				require.Equal(t, tc.mockProduct.ID, res.Product.Id)
				require.Equal(t, tc.mockProduct.Name, res.Product.Name)
				require.Equal(t, "10.5", res.Product.Price)
			} else {
				require.Nil(t, res)
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				require.Equal(t, tc.expectedCode, st.Code())
			}
			mockSvc.AssertExpectations(t)
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		// given
		mockSvc := new(MockProductService)
		server := NewServer(mockSvc, discardLogger())

		// when
		_, err := server.GetProduct(ctx, &pb.GetProductRequest{Id: 0})

		// then
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		mockSvc.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestCatalogServer_CreateProduct_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		req     *pb.CreateProductRequest
		message string
	}{
		{
			name:    "unparsable price",
			req:     &pb.CreateProductRequest{Name: "Lamp", Price: "ten"},
			message: `invalid price: "ten"`,
		},
		{
			name:    "negative price and short name",
			req:     &pb.CreateProductRequest{Name: "La", Price: "-1"},
			message: "name: failed on rule: min; price: failed on rule: price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := new(MockProductService)
			server := NewServer(mockSvc, discardLogger())

			_, err := server.CreateProduct(context.Background(), tc.req)

			st, ok := status.FromError(err)
			require.True(t, ok)
			require.Equal(t, codes.InvalidArgument, st.Code())
			require.Equal(t, tc.message, st.Message())
			mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogServer_ListProducts_Defaults(t *testing.T) {
	mockSvc := new(MockProductService)
	server := NewServer(mockSvc, discardLogger())
	page := pagination.Request{Page: 1, Limit: 10}
	mockSvc.On("FindAll", mock.Anything, page).Return(&pagination.Result[service.ProductDto]{
		Data: []service.ProductDto{},
		Meta: pagination.NewMeta(page, 0),
	}, nil)

	res, err := server.ListProducts(context.Background(), &pb.ListProductsRequest{})

	require.NoError(t, err)
	require.Empty(t, res.Products)
	require.True(t, proto.Equal(&pb.PageMeta{Page: 1, Limit: 10, IsFirst: true, IsLast: true}, res.Meta))
	mockSvc.AssertExpectations(t)
}

func TestCatalogServer_ListProducts_LimitTooLarge(t *testing.T) {
	mockSvc := new(MockProductService)
	server := NewServer(mockSvc, discardLogger())

	_, err := server.ListProducts(context.Background(), &pb.ListProductsRequest{Page: 1, Limit: 500})

	require.Equal(t, codes.InvalidArgument, status.Code(err))
	mockSvc.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

// TestCatalogServer_OverTheWire exercises the protobuf encoding and service descriptor through a real gRPC connection.
func TestCatalogServer_OverTheWire(t *testing.T) {
	// given
	mockSvc := new(MockProductService)
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	pb.RegisterCatalogServiceServer(srv, NewServer(mockSvc, discardLogger()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := pb.NewCatalogServiceClient(conn)

	mockSvc.On("ValidateProducts", mock.Anything, []int64{7, 9}).
		Return(nil, perrors.NewValidation(service.MissingProductsMessage, []int64{9})).Once()
	mockSvc.On("ValidateProducts", mock.Anything, []int64{7}).
		Return([]service.ProductDto{{ID: 7, Name: "Lamp", Price: decimal.NewFromInt(12)}}, nil).Once()
	mockSvc.On("Remove", mock.Anything, int64(7)).
		Return(&service.RemovedDto{Message: service.RemovedMessage, ProductID: 7}, nil).Once()

	// when
	_, validateErr := client.ValidateProducts(context.Background(), &pb.ValidateProductsRequest{Ids: []int64{7, 9}})
	ok, okErr := client.ValidateProducts(context.Background(), &pb.ValidateProductsRequest{Ids: []int64{7}})
	removed, removeErr := client.RemoveProduct(context.Background(), &pb.RemoveProductRequest{Id: 7})

	// then
	st, _ := status.FromError(validateErr)
	require.Equal(t, codes.InvalidArgument, st.Code())
	require.Equal(t, service.MissingProductsMessage, st.Message())

	require.NoError(t, okErr)
	require.Len(t, ok.Products, 1)
	require.Equal(t, "12", ok.Products[0].Price)

	require.NoError(t, removeErr)
	require.True(t, proto.Equal(&pb.RemoveProductResponse{Message: "Product deleted successfully", ProductId: 7}, removed))
	mockSvc.AssertExpectations(t)
}
