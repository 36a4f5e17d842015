package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	StockTradingService_GetStockPrice_FullMethodName       = "/stock.v1.StockTradingService/GetStockPrice"
	StockTradingService_SubscribeStockPrice_FullMethodName = "/stock.v1.StockTradingService/SubscribeStockPrice"
	StockTradingService_PlaceBulkOrder_FullMethodName      = "/stock.v1.StockTradingService/PlaceBulkOrder"
)

// StockTradingServiceClient is the client API for StockTradingService service.
type StockTradingServiceClient interface {
	GetStockPrice(ctx context.Context, in *StockRequest, opts ...grpc.CallOption) (*StockResponse, error)
	SubscribeStockPrice(ctx context.Context, in *StockRequest, opts ...grpc.CallOption) (StockTradingService_SubscribeStockPriceClient, error)
	PlaceBulkOrder(ctx context.Context, opts ...grpc.CallOption) (StockTradingService_PlaceBulkOrderClient, error)
}

type stockTradingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStockTradingServiceClient returns a client which always encodes with Codec.
func NewStockTradingServiceClient(cc grpc.ClientConnInterface) StockTradingServiceClient {
	return &stockTradingServiceClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
}

func (c *stockTradingServiceClient) GetStockPrice(ctx context.Context, in *StockRequest, opts ...grpc.CallOption) (*StockResponse, error) {
	out := new(StockResponse)
	err := c.cc.Invoke(ctx, StockTradingService_GetStockPrice_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stockTradingServiceClient) SubscribeStockPrice(ctx context.Context, in *StockRequest, opts ...grpc.CallOption) (StockTradingService_SubscribeStockPriceClient, error) {
	stream, err := c.cc.NewStream(ctx, &StockTradingService_ServiceDesc.Streams[0], StockTradingService_SubscribeStockPrice_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &stockTradingServiceSubscribeStockPriceClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type StockTradingService_SubscribeStockPriceClient interface {
	Recv() (*StockResponse, error)
	grpc.ClientStream
}

type stockTradingServiceSubscribeStockPriceClient struct {
	grpc.ClientStream
}

func (x *stockTradingServiceSubscribeStockPriceClient) Recv() (*StockResponse, error) {
	m := new(StockResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *stockTradingServiceClient) PlaceBulkOrder(ctx context.Context, opts ...grpc.CallOption) (StockTradingService_PlaceBulkOrderClient, error) {
	stream, err := c.cc.NewStream(ctx, &StockTradingService_ServiceDesc.Streams[1], StockTradingService_PlaceBulkOrder_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return &stockTradingServicePlaceBulkOrderClient{stream}, nil
}

type StockTradingService_PlaceBulkOrderClient interface {
	Send(*StockOrder) error
	CloseAndRecv() (*OrderSummary, error)
	grpc.ClientStream
}

type stockTradingServicePlaceBulkOrderClient struct {
	grpc.ClientStream
}

func (x *stockTradingServicePlaceBulkOrderClient) Send(m *StockOrder) error {
	return x.ClientStream.SendMsg(m)
}

func (x *stockTradingServicePlaceBulkOrderClient) CloseAndRecv() (*OrderSummary, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(OrderSummary)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// StockTradingServiceServer is the server API for StockTradingService service.
// All implementations must embed UnimplementedStockTradingServiceServer
// for forward compatibility.
type StockTradingServiceServer interface {
	GetStockPrice(context.Context, *StockRequest) (*StockResponse, error)
	SubscribeStockPrice(*StockRequest, StockTradingService_SubscribeStockPriceServer) error
	PlaceBulkOrder(StockTradingService_PlaceBulkOrderServer) error
	mustEmbedUnimplementedStockTradingServiceServer()
}

// UnimplementedStockTradingServiceServer must be embedded to have forward compatible implementations.
type UnimplementedStockTradingServiceServer struct{}

func (UnimplementedStockTradingServiceServer) GetStockPrice(context.Context, *StockRequest) (*StockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStockPrice not implemented")
}

func (UnimplementedStockTradingServiceServer) SubscribeStockPrice(*StockRequest, StockTradingService_SubscribeStockPriceServer) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeStockPrice not implemented")
}

func (UnimplementedStockTradingServiceServer) PlaceBulkOrder(StockTradingService_PlaceBulkOrderServer) error {
	return status.Errorf(codes.Unimplemented, "method PlaceBulkOrder not implemented")
}

func (UnimplementedStockTradingServiceServer) mustEmbedUnimplementedStockTradingServiceServer() {}

func RegisterStockTradingServiceServer(s grpc.ServiceRegistrar, srv StockTradingServiceServer) {
	s.RegisterService(&StockTradingService_ServiceDesc, srv)
}

func _StockTradingService_GetStockPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StockTradingServiceServer).GetStockPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StockTradingService_GetStockPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StockTradingServiceServer).GetStockPrice(ctx, req.(*StockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StockTradingService_SubscribeStockPrice_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StockRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(StockTradingServiceServer).SubscribeStockPrice(m, &stockTradingServiceSubscribeStockPriceServer{stream})
}

type StockTradingService_SubscribeStockPriceServer interface {
	Send(*StockResponse) error
	grpc.ServerStream
}

type stockTradingServiceSubscribeStockPriceServer struct {
	grpc.ServerStream
}

func (x *stockTradingServiceSubscribeStockPriceServer) Send(m *StockResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _StockTradingService_PlaceBulkOrder_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(StockTradingServiceServer).PlaceBulkOrder(&stockTradingServicePlaceBulkOrderServer{stream})
}

type StockTradingService_PlaceBulkOrderServer interface {
	SendAndClose(*OrderSummary) error
	Recv() (*StockOrder, error)
	grpc.ServerStream
}

type stockTradingServicePlaceBulkOrderServer struct {
	grpc.ServerStream
}

func (x *stockTradingServicePlaceBulkOrderServer) SendAndClose(m *OrderSummary) error {
	return x.ServerStream.SendMsg(m)
}

func (x *stockTradingServicePlaceBulkOrderServer) Recv() (*StockOrder, error) {
	m := new(StockOrder)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// StockTradingService_ServiceDesc is the grpc.ServiceDesc for StockTradingService service.
var StockTradingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "stock.v1.StockTradingService",
	HandlerType: (*StockTradingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStockPrice",
			Handler:    _StockTradingService_GetStockPrice_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeStockPrice",
			Handler:       _StockTradingService_SubscribeStockPrice_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "PlaceBulkOrder",
			Handler:       _StockTradingService_PlaceBulkOrder_Handler,
			ClientStreams: true,
		},
	},
}
