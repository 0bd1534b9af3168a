// Package rpc describes the catalog.CatalogService gRPC surface. Messages are
// protobuf well-known types so the default proto codec carries them.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "catalog.CatalogService"

	GetCardMethod   = "/" + ServiceName + "/GetCard"
	ListCardsMethod = "/" + ServiceName + "/ListCards"
	ClassifyMethod  = "/" + ServiceName + "/Classify"
)

// CatalogServiceServer is implemented by the catalog gRPC handler.
type CatalogServiceServer interface {
	GetCard(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListCards(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Classify(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
}

// UnimplementedCatalogServiceServer can be embedded for forward compatibility.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) GetCard(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCard not implemented")
}
func (UnimplementedCatalogServiceServer) ListCards(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCards not implemented")
}
func (UnimplementedCatalogServiceServer) Classify(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Classify not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func getCardHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetCard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetCardMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).GetCard(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listCardsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListCards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListCardsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).ListCards(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func classifyHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ClassifyMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogServiceServer).Classify(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCard", Handler: getCardHandler},
		{MethodName: "ListCards", Handler: listCardsHandler},
		{MethodName: "Classify", Handler: classifyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog.proto",
}
