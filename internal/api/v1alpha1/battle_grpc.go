package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BattleServiceName is the fully qualified service name
const BattleServiceName = ServicePackage + ".BattleService"

// Full method names
const (
	BattleService_CreateBattle_FullMethodName    = "/" + BattleServiceName + "/CreateBattle"
	BattleService_ExecuteTurn_FullMethodName     = "/" + BattleServiceName + "/ExecuteTurn"
	BattleService_DecideWildcard_FullMethodName  = "/" + BattleServiceName + "/DecideWildcard"
	BattleService_TimeoutWildcard_FullMethodName = "/" + BattleServiceName + "/TimeoutWildcard"
	BattleService_FinalizeBattle_FullMethodName  = "/" + BattleServiceName + "/FinalizeBattle"
	BattleService_GetBattle_FullMethodName       = "/" + BattleServiceName + "/GetBattle"
	BattleService_ListBattles_FullMethodName     = "/" + BattleServiceName + "/ListBattles"
	BattleService_ListEvents_FullMethodName      = "/" + BattleServiceName + "/ListEvents"
	BattleService_GetLeaderboard_FullMethodName  = "/" + BattleServiceName + "/GetLeaderboard"
)

// BattleServiceClient is the client API for BattleService
type BattleServiceClient interface {
	// CreateBattle starts a battle between two characters
	CreateBattle(ctx context.Context, in *CreateBattleRequest, opts ...grpc.CallOption) (*BattleResponse, error)
	// ExecuteTurn resolves the current player's action
	ExecuteTurn(ctx context.Context, in *ExecuteTurnRequest, opts ...grpc.CallOption) (*ExecuteTurnResponse, error)
	// DecideWildcard records a player's answer to the pending wildcard
	DecideWildcard(ctx context.Context, in *DecideWildcardRequest, opts ...grpc.CallOption) (*WildcardResponse, error)
	// TimeoutWildcard closes a wildcard whose window has passed
	TimeoutWildcard(ctx context.Context, in *TimeoutWildcardRequest, opts ...grpc.CallOption) (*WildcardResponse, error)
	// FinalizeBattle settles ratings for a completed battle
	FinalizeBattle(ctx context.Context, in *FinalizeBattleRequest, opts ...grpc.CallOption) (*FinalizeBattleResponse, error)
	// GetBattle reads a battle
	GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*BattleResponse, error)
	// ListBattles lists a character's battles
	ListBattles(ctx context.Context, in *ListBattlesRequest, opts ...grpc.CallOption) (*ListBattlesResponse, error)
	// ListEvents reads a battle's event log
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	// GetLeaderboard lists the top rated characters
	GetLeaderboard(ctx context.Context, in *GetLeaderboardRequest, opts ...grpc.CallOption) (*GetLeaderboardResponse, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client over cc
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func (c *battleServiceClient) CreateBattle(ctx context.Context, in *CreateBattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	return invoke[BattleResponse](ctx, c.cc, BattleService_CreateBattle_FullMethodName, in, opts)
}

func (c *battleServiceClient) ExecuteTurn(ctx context.Context, in *ExecuteTurnRequest, opts ...grpc.CallOption) (*ExecuteTurnResponse, error) {
	return invoke[ExecuteTurnResponse](ctx, c.cc, BattleService_ExecuteTurn_FullMethodName, in, opts)
}

func (c *battleServiceClient) DecideWildcard(ctx context.Context, in *DecideWildcardRequest, opts ...grpc.CallOption) (*WildcardResponse, error) {
	return invoke[WildcardResponse](ctx, c.cc, BattleService_DecideWildcard_FullMethodName, in, opts)
}

func (c *battleServiceClient) TimeoutWildcard(ctx context.Context, in *TimeoutWildcardRequest, opts ...grpc.CallOption) (*WildcardResponse, error) {
	return invoke[WildcardResponse](ctx, c.cc, BattleService_TimeoutWildcard_FullMethodName, in, opts)
}

func (c *battleServiceClient) FinalizeBattle(ctx context.Context, in *FinalizeBattleRequest, opts ...grpc.CallOption) (*FinalizeBattleResponse, error) {
	return invoke[FinalizeBattleResponse](ctx, c.cc, BattleService_FinalizeBattle_FullMethodName, in, opts)
}

func (c *battleServiceClient) GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*BattleResponse, error) {
	return invoke[BattleResponse](ctx, c.cc, BattleService_GetBattle_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListBattles(ctx context.Context, in *ListBattlesRequest, opts ...grpc.CallOption) (*ListBattlesResponse, error) {
	return invoke[ListBattlesResponse](ctx, c.cc, BattleService_ListBattles_FullMethodName, in, opts)
}

func (c *battleServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	return invoke[ListEventsResponse](ctx, c.cc, BattleService_ListEvents_FullMethodName, in, opts)
}

func (c *battleServiceClient) GetLeaderboard(ctx context.Context, in *GetLeaderboardRequest, opts ...grpc.CallOption) (*GetLeaderboardResponse, error) {
	return invoke[GetLeaderboardResponse](ctx, c.cc, BattleService_GetLeaderboard_FullMethodName, in, opts)
}

// BattleServiceServer is the server API for BattleService.
// Implementations must embed UnimplementedBattleServiceServer.
type BattleServiceServer interface {
	CreateBattle(context.Context, *CreateBattleRequest) (*BattleResponse, error)
	ExecuteTurn(context.Context, *ExecuteTurnRequest) (*ExecuteTurnResponse, error)
	DecideWildcard(context.Context, *DecideWildcardRequest) (*WildcardResponse, error)
	TimeoutWildcard(context.Context, *TimeoutWildcardRequest) (*WildcardResponse, error)
	FinalizeBattle(context.Context, *FinalizeBattleRequest) (*FinalizeBattleResponse, error)
	GetBattle(context.Context, *GetBattleRequest) (*BattleResponse, error)
	ListBattles(context.Context, *ListBattlesRequest) (*ListBattlesResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	GetLeaderboard(context.Context, *GetLeaderboardRequest) (*GetLeaderboardResponse, error)
	mustEmbedUnimplementedBattleServiceServer()
}

// UnimplementedBattleServiceServer answers every method with codes.Unimplemented
type UnimplementedBattleServiceServer struct{}

func (UnimplementedBattleServiceServer) CreateBattle(context.Context, *CreateBattleRequest) (*BattleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBattle not implemented")
}

func (UnimplementedBattleServiceServer) ExecuteTurn(context.Context, *ExecuteTurnRequest) (*ExecuteTurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExecuteTurn not implemented")
}

func (UnimplementedBattleServiceServer) DecideWildcard(context.Context, *DecideWildcardRequest) (*WildcardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DecideWildcard not implemented")
}

func (UnimplementedBattleServiceServer) TimeoutWildcard(context.Context, *TimeoutWildcardRequest) (*WildcardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TimeoutWildcard not implemented")
}

func (UnimplementedBattleServiceServer) FinalizeBattle(context.Context, *FinalizeBattleRequest) (*FinalizeBattleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinalizeBattle not implemented")
}

func (UnimplementedBattleServiceServer) GetBattle(context.Context, *GetBattleRequest) (*BattleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBattle not implemented")
}

func (UnimplementedBattleServiceServer) ListBattles(context.Context, *ListBattlesRequest) (*ListBattlesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBattles not implemented")
}

func (UnimplementedBattleServiceServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEvents not implemented")
}

func (UnimplementedBattleServiceServer) GetLeaderboard(context.Context, *GetLeaderboardRequest) (*GetLeaderboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLeaderboard not implemented")
}

func (UnimplementedBattleServiceServer) mustEmbedUnimplementedBattleServiceServer() {}

// RegisterBattleServiceServer registers srv on s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleService_ServiceDesc, srv)
}

// BattleService_ServiceDesc is the grpc.ServiceDesc for BattleService
var BattleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BattleServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateBattle",
			Handler:    unaryHandler(BattleService_CreateBattle_FullMethodName, BattleServiceServer.CreateBattle),
		},
		{
			MethodName: "ExecuteTurn",
			Handler:    unaryHandler(BattleService_ExecuteTurn_FullMethodName, BattleServiceServer.ExecuteTurn),
		},
		{
			MethodName: "DecideWildcard",
			Handler:    unaryHandler(BattleService_DecideWildcard_FullMethodName, BattleServiceServer.DecideWildcard),
		},
		{
			MethodName: "TimeoutWildcard",
			Handler:    unaryHandler(BattleService_TimeoutWildcard_FullMethodName, BattleServiceServer.TimeoutWildcard),
		},
		{
			MethodName: "FinalizeBattle",
			Handler:    unaryHandler(BattleService_FinalizeBattle_FullMethodName, BattleServiceServer.FinalizeBattle),
		},
		{
			MethodName: "GetBattle",
			Handler:    unaryHandler(BattleService_GetBattle_FullMethodName, BattleServiceServer.GetBattle),
		},
		{
			MethodName: "ListBattles",
			Handler:    unaryHandler(BattleService_ListBattles_FullMethodName, BattleServiceServer.ListBattles),
		},
		{
			MethodName: "ListEvents",
			Handler:    unaryHandler(BattleService_ListEvents_FullMethodName, BattleServiceServer.ListEvents),
		},
		{
			MethodName: "GetLeaderboard",
			Handler:    unaryHandler(BattleService_GetLeaderboard_FullMethodName, BattleServiceServer.GetLeaderboard),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battle/api/v1alpha1/battle.wire",
}
