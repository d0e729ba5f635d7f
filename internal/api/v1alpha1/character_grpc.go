package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CharacterServiceName is the fully qualified service name
const CharacterServiceName = ServicePackage + ".CharacterService"

// Full method names
const (
	CharacterService_MintCharacter_FullMethodName  = "/" + CharacterServiceName + "/MintCharacter"
	CharacterService_GetCharacter_FullMethodName   = "/" + CharacterServiceName + "/GetCharacter"
	CharacterService_ListCharacters_FullMethodName = "/" + CharacterServiceName + "/ListCharacters"
	CharacterService_LearnSkill_FullMethodName     = "/" + CharacterServiceName + "/LearnSkill"
	CharacterService_EquipSkill_FullMethodName     = "/" + CharacterServiceName + "/EquipSkill"
	CharacterService_EquipItem_FullMethodName      = "/" + CharacterServiceName + "/EquipItem"
	CharacterService_HealCharacter_FullMethodName  = "/" + CharacterServiceName + "/HealCharacter"
	CharacterService_ListEquipment_FullMethodName  = "/" + CharacterServiceName + "/ListEquipment"
)

// CharacterServiceClient is the client API for CharacterService
type CharacterServiceClient interface {
	// MintCharacter creates a character from its class template
	MintCharacter(ctx context.Context, in *MintCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	// GetCharacter reads a character
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	// ListCharacters lists an owner's characters
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	// LearnSkill adds a skill to the learned set
	LearnSkill(ctx context.Context, in *LearnSkillRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	// EquipSkill places a learned skill in a slot
	EquipSkill(ctx context.Context, in *EquipSkillRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	// EquipItem wears an item
	EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	// HealCharacter restores full hit points
	HealCharacter(ctx context.Context, in *HealCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	// ListEquipment lists the item catalog
	ListEquipment(ctx context.Context, in *ListEquipmentRequest, opts ...grpc.CallOption) (*ListEquipmentResponse, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient creates a client over cc
func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc: cc}
}

func (c *characterServiceClient) MintCharacter(ctx context.Context, in *MintCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, CharacterService_MintCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, CharacterService_GetCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, CharacterService_ListCharacters_FullMethodName, in, opts)
}

func (c *characterServiceClient) LearnSkill(ctx context.Context, in *LearnSkillRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, CharacterService_LearnSkill_FullMethodName, in, opts)
}

func (c *characterServiceClient) EquipSkill(ctx context.Context, in *EquipSkillRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, CharacterService_EquipSkill_FullMethodName, in, opts)
}

func (c *characterServiceClient) EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, CharacterService_EquipItem_FullMethodName, in, opts)
}

func (c *characterServiceClient) HealCharacter(ctx context.Context, in *HealCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, CharacterService_HealCharacter_FullMethodName, in, opts)
}

func (c *characterServiceClient) ListEquipment(ctx context.Context, in *ListEquipmentRequest, opts ...grpc.CallOption) (*ListEquipmentResponse, error) {
	return invoke[ListEquipmentResponse](ctx, c.cc, CharacterService_ListEquipment_FullMethodName, in, opts)
}

// CharacterServiceServer is the server API for CharacterService.
// Implementations must embed UnimplementedCharacterServiceServer.
type CharacterServiceServer interface {
	MintCharacter(context.Context, *MintCharacterRequest) (*CharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	LearnSkill(context.Context, *LearnSkillRequest) (*CharacterResponse, error)
	EquipSkill(context.Context, *EquipSkillRequest) (*CharacterResponse, error)
	EquipItem(context.Context, *EquipItemRequest) (*CharacterResponse, error)
	HealCharacter(context.Context, *HealCharacterRequest) (*CharacterResponse, error)
	ListEquipment(context.Context, *ListEquipmentRequest) (*ListEquipmentResponse, error)
	mustEmbedUnimplementedCharacterServiceServer()
}

// UnimplementedCharacterServiceServer answers every method with codes.Unimplemented
type UnimplementedCharacterServiceServer struct{}

func (UnimplementedCharacterServiceServer) MintCharacter(context.Context, *MintCharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MintCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}

func (UnimplementedCharacterServiceServer) LearnSkill(context.Context, *LearnSkillRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LearnSkill not implemented")
}

func (UnimplementedCharacterServiceServer) EquipSkill(context.Context, *EquipSkillRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EquipSkill not implemented")
}

func (UnimplementedCharacterServiceServer) EquipItem(context.Context, *EquipItemRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EquipItem not implemented")
}

func (UnimplementedCharacterServiceServer) HealCharacter(context.Context, *HealCharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) ListEquipment(context.Context, *ListEquipmentRequest) (*ListEquipmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEquipment not implemented")
}

func (UnimplementedCharacterServiceServer) mustEmbedUnimplementedCharacterServiceServer() {}

// RegisterCharacterServiceServer registers srv on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterService_ServiceDesc, srv)
}

// CharacterService_ServiceDesc is the grpc.ServiceDesc for CharacterService
var CharacterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CharacterServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MintCharacter",
			Handler:    unaryHandler(CharacterService_MintCharacter_FullMethodName, CharacterServiceServer.MintCharacter),
		},
		{
			MethodName: "GetCharacter",
			Handler:    unaryHandler(CharacterService_GetCharacter_FullMethodName, CharacterServiceServer.GetCharacter),
		},
		{
			MethodName: "ListCharacters",
			Handler:    unaryHandler(CharacterService_ListCharacters_FullMethodName, CharacterServiceServer.ListCharacters),
		},
		{
			MethodName: "LearnSkill",
			Handler:    unaryHandler(CharacterService_LearnSkill_FullMethodName, CharacterServiceServer.LearnSkill),
		},
		{
			MethodName: "EquipSkill",
			Handler:    unaryHandler(CharacterService_EquipSkill_FullMethodName, CharacterServiceServer.EquipSkill),
		},
		{
			MethodName: "EquipItem",
			Handler:    unaryHandler(CharacterService_EquipItem_FullMethodName, CharacterServiceServer.EquipItem),
		},
		{
			MethodName: "HealCharacter",
			Handler:    unaryHandler(CharacterService_HealCharacter_FullMethodName, CharacterServiceServer.HealCharacter),
		},
		{
			MethodName: "ListEquipment",
			Handler:    unaryHandler(CharacterService_ListEquipment_FullMethodName, CharacterServiceServer.ListEquipment),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battle/api/v1alpha1/character.wire",
}
