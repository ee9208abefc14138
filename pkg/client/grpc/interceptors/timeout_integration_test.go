package interceptors

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	pb "github.com/abgdnv/catalog/pkg/api/gen/go/catalog/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// slowCatalogService is a mock gRPC service that simulates a slow response
type slowCatalogService struct {
	pb.UnimplementedCatalogServiceServer
	delay time.Duration
}

func (s *slowCatalogService) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.ProductResponse, error) {
	time.Sleep(s.delay)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &pb.ProductResponse{Product: &pb.Product{Id: req.Id}}, nil
}

// skipIntegrationTests is an environment variable that can be set to skip integration tests
const skipIntegrationTests = "CATALOG_SVC_SKIP_INTEGRATION_TESTS"

// Test_GRPCClient_TimeoutInterceptor runs real calls against a server that answers after a fixed delay.
func Test_GRPCClient_TimeoutInterceptor(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	const serviceDelay = 200 * time.Millisecond

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	grpcServer := grpc.NewServer()
	pb.RegisterCatalogServiceServer(grpcServer, &slowCatalogService{delay: serviceDelay})
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	testCases := []struct {
		name     string
		timeout  time.Duration
		wantCode codes.Code
	}{
		{name: "timeout shorter than the server", timeout: serviceDelay / 2, wantCode: codes.DeadlineExceeded},
		{name: "timeout longer than the server", timeout: serviceDelay * 10, wantCode: codes.OK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			conn, err := grpc.NewClient(
				lis.Addr().String(),
				grpc.WithTransportCredentials(insecure.NewCredentials()),
				grpc.WithUnaryInterceptor(UnaryClientTimeoutInterceptor(tc.timeout)),
			)
			require.NoError(t, err)
			t.Cleanup(func() { _ = conn.Close() })

			// when
			resp, err := pb.NewCatalogServiceClient(conn).GetProduct(context.Background(), &pb.GetProductRequest{Id: 7})

			// then
			require.Equal(t, tc.wantCode, status.Code(err))
			if tc.wantCode == codes.OK {
				require.Equal(t, int64(7), resp.Product.Id)
			}
		})
	}
}
