// Package v1 handles the monsterbattle.v1 gRPC service interface.
//
// Messages are google.protobuf.Struct documents, so the service needs no
// generated code: the service descriptor and client below play the role of
// the usual _grpc.pb.go file.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "monsterbattle.v1.BattleService"

// Method names
const (
	MethodStartBattle   = "StartBattle"
	MethodUseMove       = "UseMove"
	MethodGetBattle     = "GetBattle"
	MethodDrainEvents   = "DrainEvents"
	MethodSetWeather    = "SetWeather"
	MethodSaveCombatant = "SaveCombatant"
	MethodEndBattle     = "EndBattle"
)

// BattleServiceServer is the server API for the battle service
type BattleServiceServer interface {
	StartBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	UseMove(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DrainEvents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SetWeather(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SaveCombatant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	EndBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BattleServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BattleServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// BattleServiceDesc is the grpc.ServiceDesc for the battle service
var BattleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodStartBattle, BattleServiceServer.StartBattle),
		methodDesc(MethodUseMove, BattleServiceServer.UseMove),
		methodDesc(MethodGetBattle, BattleServiceServer.GetBattle),
		methodDesc(MethodDrainEvents, BattleServiceServer.DrainEvents),
		methodDesc(MethodSetWeather, BattleServiceServer.SetWeather),
		methodDesc(MethodSaveCombatant, BattleServiceServer.SaveCombatant),
		methodDesc(MethodEndBattle, BattleServiceServer.EndBattle),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "monsterbattle/v1/battle.proto",
}

// RegisterBattleServiceServer registers srv on s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleServiceDesc, srv)
}

// BattleServiceClient calls the battle service by method name
type BattleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client over cc
func NewBattleServiceClient(cc grpc.ClientConnInterface) *BattleServiceClient {
	return &BattleServiceClient{cc: cc}
}

// Call invokes method with req
func (c *BattleServiceClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
