// Package api holds the catalog protobuf contract and its generated Go code.
package api

//go:generate protoc -I proto --go_out=gen/go --go_opt=paths=source_relative --go-grpc_out=gen/go --go-grpc_opt=paths=source_relative proto/catalog/v1/catalog.proto
