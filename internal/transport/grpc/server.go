// Package grpc provides a gRPC server for the catalog service.
package grpc

import (
	"context"
	"log/slog"

	"github.com/abgdnv/catalog/internal/pagination"
	"github.com/abgdnv/catalog/internal/service"
	"github.com/abgdnv/catalog/internal/transport/errmap"
	"github.com/abgdnv/catalog/internal/validation"
	pb "github.com/abgdnv/catalog/pkg/api/gen/go/catalog/v1"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	// Embed the unimplemented server for forward compatibility
	pb.UnimplementedCatalogServiceServer
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewServer(service service.ProductService, logger *slog.Logger) *Server {
	return &Server{
		service:  service,
		validate: validation.New(),
		logger:   logger.With("component", "grpc"),
	}
}

func (s *Server) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.ProductResponse, error) {
	if req.Id <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product ID: %d", req.Id)
	}
	found, err := s.service.FindByID(ctx, req.Id)
	if err != nil {
		return nil, s.fail(ctx, "GetProduct", err)
	}
	return &pb.ProductResponse{Product: toPb(found)}, nil
}

func (s *Server) ListProducts(ctx context.Context, req *pb.ListProductsRequest) (*pb.ListProductsResponse, error) {
	page := pagination.Request{Page: req.Page, Limit: req.Limit}.WithDefaults()
	if err := s.validate.Struct(page); err != nil {
		return nil, invalidArgument(err)
	}
	list, err := s.service.FindAll(ctx, page)
	if err != nil {
		return nil, s.fail(ctx, "ListProducts", err)
	}
	return &pb.ListProductsResponse{
		Products: toPbs(list.Data),
		Meta: &pb.PageMeta{
			Page:     list.Meta.Page,
			Limit:    list.Meta.Limit,
			Total:    list.Meta.Total,
			LastPage: list.Meta.LastPage,
			IsFirst:  list.Meta.IsFirst,
			IsLast:   list.Meta.IsLast,
		},
	}, nil
}

func (s *Server) CreateProduct(ctx context.Context, req *pb.CreateProductRequest) (*pb.ProductResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid price: %q", req.Price)
	}
	dto := service.ProductCreateDto{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		Price:       price,
	}
	if err := s.validate.Struct(dto); err != nil {
		return nil, invalidArgument(err)
	}

	created, err := s.service.Create(ctx, dto)
	if err != nil {
		return nil, s.fail(ctx, "CreateProduct", err)
	}
	s.logger.InfoContext(ctx, "Product created successfully", "ID", created.ID)
	return &pb.ProductResponse{Product: toPb(created)}, nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *pb.UpdateProductRequest) (*pb.ProductResponse, error) {
	if req.Id <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product ID: %d", req.Id)
	}
	patch := service.ProductUpdateDto{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid price: %q", *req.Price)
		}
		patch.Price = &price
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, invalidArgument(err)
	}

	updated, err := s.service.Update(ctx, req.Id, patch)
	if err != nil {
		return nil, s.fail(ctx, "UpdateProduct", err)
	}
	return &pb.ProductResponse{Product: toPb(updated)}, nil
}

func (s *Server) RemoveProduct(ctx context.Context, req *pb.RemoveProductRequest) (*pb.RemoveProductResponse, error) {
	if req.Id <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product ID: %d", req.Id)
	}
	removed, err := s.service.Remove(ctx, req.Id)
	if err != nil {
		return nil, s.fail(ctx, "RemoveProduct", err)
	}
	return &pb.RemoveProductResponse{Message: removed.Message, ProductId: removed.ProductID}, nil
}

func (s *Server) SoftDeleteProduct(ctx context.Context, req *pb.SoftDeleteProductRequest) (*pb.ProductResponse, error) {
	if req.Id <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product ID: %d", req.Id)
	}
	updated, err := s.service.SoftDelete(ctx, req.Id)
	if err != nil {
		return nil, s.fail(ctx, "SoftDeleteProduct", err)
	}
	return &pb.ProductResponse{Product: toPb(updated)}, nil
}

func (s *Server) ValidateProducts(ctx context.Context, req *pb.ValidateProductsRequest) (*pb.ValidateProductsResponse, error) {
	if err := s.validate.Struct(service.ValidateProductsDto{IDs: req.Ids}); err != nil {
		return nil, invalidArgument(err)
	}
	found, err := s.service.ValidateProducts(ctx, req.Ids)
	if err != nil {
		return nil, s.fail(ctx, "ValidateProducts", err)
	}
	return &pb.ValidateProductsResponse{Products: toPbs(found)}, nil
}

// fail logs err and converts it to a status error.
func (s *Server) fail(ctx context.Context, method string, err error) error {
	st := errmap.GRPCStatus(err)
	if code := status.Code(st); code == codes.Internal || code == codes.Unavailable {
		s.logger.ErrorContext(ctx, "grpc request failed", "method", method, "error", err)
	} else {
		s.logger.WarnContext(ctx, "grpc request rejected", "method", method, "error", err)
	}
	return st
}

// invalidArgument renders validator field errors as "field: failed on rule: tag" pairs.
func invalidArgument(err error) error {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.InvalidArgument, validation.Summary(fields))
}

func toPb(p *service.ProductDto) *pb.Product {
	return &pb.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Available:   p.Available,
	}
}

func toPbs(products []service.ProductDto) []*pb.Product {
	out := make([]*pb.Product, 0, len(products))
	for i := range products {
		out = append(out, toPb(&products[i]))
	}
	return out
}
