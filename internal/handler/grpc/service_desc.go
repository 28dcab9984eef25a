package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/dcms-sync/internal/app"
	"github.com/MKhiriev/dcms-sync/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "dcms.sync.v1.SyncService"

// SyncServer is implemented by Handler.
type SyncServer interface {
	Health(ctx context.Context, req *HealthRequest) (*models.HealthResponse, error)
	GetCollection(ctx context.Context, req *CollectionRequest) (*CollectionResponse, error)
	ReplaceCollection(ctx context.Context, req *ReplaceCollectionRequest) (*models.PushResponse, error)
	GetRecordsSince(ctx context.Context, req *RecordsSinceRequest) (*RecordsSinceResponse, error)
	UpsertRecords(ctx context.Context, req *UpsertRecordsRequest) (*UpsertRecordsResponse, error)
}

// SyncServiceDesc describes SyncServer to grpc.Server.RegisterService.
var SyncServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Health", Handler: unaryHandler("Health", SyncServer.Health)},
		{MethodName: "GetCollection", Handler: unaryHandler("GetCollection", SyncServer.GetCollection)},
		{MethodName: "ReplaceCollection", Handler: unaryHandler("ReplaceCollection", SyncServer.ReplaceCollection)},
		{MethodName: "GetRecordsSince", Handler: unaryHandler("GetRecordsSince", SyncServer.GetRecordsSince)},
		{MethodName: "UpsertRecords", Handler: unaryHandler("UpsertRecords", SyncServer.UpsertRecords)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dcms/sync/v1/sync.json",
}

// FullMethod returns "/dcms.sync.v1.SyncService/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler adapts a typed SyncServer method to grpc.MethodDesc.Handler,
// decoding the request and routing it through the interceptor chain.
func unaryHandler[Req, Resp any](method string, call func(SyncServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, status.Error(codes.InvalidArgument, app.MsgInvalidDataProvided)
		}
		if interceptor == nil {
			return call(srv.(SyncServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SyncServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
