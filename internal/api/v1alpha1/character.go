package v1alpha1

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/wire"
)

// MintCharacterRequest creates a character from its class template
type MintCharacterRequest struct {
	CharacterID string
	Owner       common.Address
	Name        string
	Class       entities.Class
}

// MarshalBinary implements wire.Message
func (m *MintCharacterRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.CharacterID)
	w.Address(m.Owner)
	w.String(m.Name)
	w.U8(uint8(m.Class))
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *MintCharacterRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	m.Owner = r.Address()
	m.Name = r.String()
	m.Class = entities.Class(r.U8())
	return r.Done()
}

// CharacterResponse carries a character
type CharacterResponse struct {
	Character *entities.Character
}

// MarshalBinary implements wire.Message
func (m *CharacterResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(160)
	c := m.Character
	if c == nil {
		c = &entities.Character{}
	}
	wire.WriteCharacter(w, c)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *CharacterResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Character = wire.ReadCharacter(r)
	return r.Done()
}

// GetCharacterRequest identifies a character
type GetCharacterRequest struct {
	CharacterID string
}

// MarshalBinary implements wire.Message
func (m *GetCharacterRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(32)
	w.String(m.CharacterID)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *GetCharacterRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	return r.Done()
}

// ListCharactersRequest selects an owner's characters
type ListCharactersRequest struct {
	Owner common.Address
}

// MarshalBinary implements wire.Message
func (m *ListCharactersRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(common.AddressLength)
	w.Address(m.Owner)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListCharactersRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Owner = r.Address()
	return r.Done()
}

// ListCharactersResponse holds characters sorted by ID
type ListCharactersResponse struct {
	Characters []*entities.Character
}

// MarshalBinary implements wire.Message
func (m *ListCharactersResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(160 * (len(m.Characters) + 1))
	w.Count(len(m.Characters))
	for _, c := range m.Characters {
		wire.WriteCharacter(w, c)
	}
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListCharactersResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	n := r.Count(common.AddressLength)
	m.Characters = make([]*entities.Character, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		m.Characters = append(m.Characters, wire.ReadCharacter(r))
	}
	return r.Done()
}

// LearnSkillRequest adds a skill to a character's learned set
type LearnSkillRequest struct {
	CharacterID string
	Skill       entities.SkillID
	Caller      common.Address
}

// MarshalBinary implements wire.Message
func (m *LearnSkillRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.CharacterID)
	w.U8(uint8(m.Skill))
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *LearnSkillRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	m.Skill = entities.SkillID(r.U8())
	m.Caller = r.Address()
	return r.Done()
}

// EquipSkillRequest puts a learned skill into a slot; skill zero empties it
type EquipSkillRequest struct {
	CharacterID string
	Slot        uint8
	Skill       entities.SkillID
	Caller      common.Address
}

// MarshalBinary implements wire.Message
func (m *EquipSkillRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.CharacterID)
	w.U8(m.Slot)
	w.U8(uint8(m.Skill))
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *EquipSkillRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	m.Slot = r.U8()
	m.Skill = entities.SkillID(r.U8())
	m.Caller = r.Address()
	return r.Done()
}

// EquipItemRequest wears an item; an empty EquipmentID empties the slot
type EquipItemRequest struct {
	CharacterID string
	Slot        entities.EquipmentSlot
	EquipmentID string
	Caller      common.Address
}

// MarshalBinary implements wire.Message
func (m *EquipItemRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.CharacterID)
	w.U8(uint8(m.Slot))
	w.String(m.EquipmentID)
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *EquipItemRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	m.Slot = entities.EquipmentSlot(r.U8())
	m.EquipmentID = r.String()
	m.Caller = r.Address()
	return r.Done()
}

// HealCharacterRequest restores a character to full hit points
type HealCharacterRequest struct {
	CharacterID string
	Caller      common.Address
}

// MarshalBinary implements wire.Message
func (m *HealCharacterRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(48)
	w.String(m.CharacterID)
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *HealCharacterRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	m.Caller = r.Address()
	return r.Done()
}

// ListEquipmentRequest optionally filters the item catalog by slot
type ListEquipmentRequest struct {
	FilterSlot bool
	Slot       entities.EquipmentSlot
}

// MarshalBinary implements wire.Message
func (m *ListEquipmentRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(2)
	w.Bool(m.FilterSlot)
	w.U8(uint8(m.Slot))
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListEquipmentRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.FilterSlot = r.Bool()
	m.Slot = entities.EquipmentSlot(r.U8())
	return r.Done()
}

// ListEquipmentResponse holds items sorted by ID
type ListEquipmentResponse struct {
	Equipment []*entities.Equipment
}

// MarshalBinary implements wire.Message
func (m *ListEquipmentResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(48 * (len(m.Equipment) + 1))
	w.Count(len(m.Equipment))
	for _, e := range m.Equipment {
		wire.WriteEquipment(w, e)
	}
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListEquipmentResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	n := r.Count(8)
	m.Equipment = make([]*entities.Equipment, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		m.Equipment = append(m.Equipment, wire.ReadEquipment(r))
	}
	return r.Done()
}
