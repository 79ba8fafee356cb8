package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "pokedex.v1alpha1.PokedexService"

// Full method names
const (
	ListPokemonMethod       = "/" + ServiceName + "/ListPokemon"
	GetPokemonMethod        = "/" + ServiceName + "/GetPokemon"
	ParseQueryMethod        = "/" + ServiceName + "/ParseQuery"
	GetTypeWeaknessesMethod = "/" + ServiceName + "/GetTypeWeaknesses"
)

// PokedexServiceServer is the server API. Requests and responses are
// google.protobuf.Struct documents shaped like the JSON API's.
type PokedexServiceServer interface {
	ListPokemon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPokemon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ParseQuery(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTypeWeaknesses(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPokedexServiceServer registers srv on s
func RegisterPokedexServiceServer(s grpc.ServiceRegistrar, srv PokedexServiceServer) {
	s.RegisterService(&PokedexServiceDesc, srv)
}

// unaryHandler adapts one PokedexServiceServer method to grpc.MethodDesc
func unaryHandler(
	fullMethod string,
	call func(PokedexServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PokedexServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PokedexServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PokedexServiceDesc describes the service for grpc.Server.RegisterService
var PokedexServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PokedexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPokemon",
			Handler:    unaryHandler(ListPokemonMethod, PokedexServiceServer.ListPokemon),
		},
		{
			MethodName: "GetPokemon",
			Handler:    unaryHandler(GetPokemonMethod, PokedexServiceServer.GetPokemon),
		},
		{
			MethodName: "ParseQuery",
			Handler:    unaryHandler(ParseQueryMethod, PokedexServiceServer.ParseQuery),
		},
		{
			MethodName: "GetTypeWeaknesses",
			Handler:    unaryHandler(GetTypeWeaknessesMethod, PokedexServiceServer.GetTypeWeaknesses),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokedex/v1alpha1/pokedex.proto",
}

// PokedexServiceClient is the client API for PokedexService
type PokedexServiceClient interface {
	ListPokemon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetPokemon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ParseQuery(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTypeWeaknesses(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type pokedexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPokedexServiceClient wraps a connection
func NewPokedexServiceClient(cc grpc.ClientConnInterface) PokedexServiceClient {
	return &pokedexServiceClient{cc: cc}
}

func (c *pokedexServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pokedexServiceClient) ListPokemon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListPokemonMethod, in, opts)
}

func (c *pokedexServiceClient) GetPokemon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetPokemonMethod, in, opts)
}

func (c *pokedexServiceClient) ParseQuery(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ParseQueryMethod, in, opts)
}

func (c *pokedexServiceClient) GetTypeWeaknesses(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetTypeWeaknessesMethod, in, opts)
}
