package v1alpha1

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/orchestrators/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler implements the character gRPC service
type CharacterHandler struct {
	apiv1alpha1.UnimplementedCharacterServiceServer
	characterService character.Service
}

// NewCharacterHandler creates a new character handler with the given configuration
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{
		characterService: cfg.CharacterService,
	}, nil
}

// MintCharacter creates a character from its class template
func (h *CharacterHandler) MintCharacter(
	ctx context.Context,
	req *apiv1alpha1.MintCharacterRequest,
) (*apiv1alpha1.CharacterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}
	if !req.Class.Valid() {
		return nil, errors.ToGRPCError(errors.InvalidArgumentReason(errors.ReasonUnknownClass, "unknown class"))
	}

	out, err := h.characterService.Mint(ctx, &character.MintInput{
		CharacterID: req.CharacterID,
		Owner:       req.Owner,
		Name:        req.Name,
		Class:       req.Class,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CharacterResponse{Character: out.Character}, nil
}

// GetCharacter reads a character
func (h *CharacterHandler) GetCharacter(
	ctx context.Context,
	req *apiv1alpha1.GetCharacterRequest,
) (*apiv1alpha1.CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.Get(ctx, &character.GetInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CharacterResponse{Character: out.Character}, nil
}

// ListCharacters lists an owner's characters
func (h *CharacterHandler) ListCharacters(
	ctx context.Context,
	req *apiv1alpha1.ListCharactersRequest,
) (*apiv1alpha1.ListCharactersResponse, error) {
	if req.Owner == (common.Address{}) {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner is required"))
	}

	out, err := h.characterService.ListByOwner(ctx, &character.ListByOwnerInput{Owner: req.Owner})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListCharactersResponse{Characters: out.Characters}, nil
}

// LearnSkill adds a skill to the learned set
func (h *CharacterHandler) LearnSkill(
	ctx context.Context,
	req *apiv1alpha1.LearnSkillRequest,
) (*apiv1alpha1.CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.LearnSkill(ctx, &character.LearnSkillInput{
		CharacterID: req.CharacterID,
		Skill:       req.Skill,
		Caller:      req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CharacterResponse{Character: out.Character}, nil
}

// EquipSkill places a learned skill in a slot
func (h *CharacterHandler) EquipSkill(
	ctx context.Context,
	req *apiv1alpha1.EquipSkillRequest,
) (*apiv1alpha1.CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.EquipSkill(ctx, &character.EquipSkillInput{
		CharacterID: req.CharacterID,
		Slot:        req.Slot,
		Skill:       req.Skill,
		Caller:      req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CharacterResponse{Character: out.Character}, nil
}

// EquipItem wears an item
func (h *CharacterHandler) EquipItem(
	ctx context.Context,
	req *apiv1alpha1.EquipItemRequest,
) (*apiv1alpha1.CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.EquipItem(ctx, &character.EquipItemInput{
		CharacterID: req.CharacterID,
		Slot:        req.Slot,
		EquipmentID: req.EquipmentID,
		Caller:      req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CharacterResponse{Character: out.Character}, nil
}

// HealCharacter restores full hit points
func (h *CharacterHandler) HealCharacter(
	ctx context.Context,
	req *apiv1alpha1.HealCharacterRequest,
) (*apiv1alpha1.CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.characterService.Heal(ctx, &character.HealInput{
		CharacterID: req.CharacterID,
		Caller:      req.Caller,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CharacterResponse{Character: out.Character}, nil
}

// ListEquipment lists the item catalog
func (h *CharacterHandler) ListEquipment(
	ctx context.Context,
	req *apiv1alpha1.ListEquipmentRequest,
) (*apiv1alpha1.ListEquipmentResponse, error) {
	input := &character.ListEquipmentInput{}
	if req.FilterSlot {
		slot := entities.EquipmentSlot(req.Slot)
		input.Slot = &slot
	}

	out, err := h.characterService.ListEquipment(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListEquipmentResponse{Equipment: out.Equipment}, nil
}
