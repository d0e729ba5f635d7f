package entities

// EquipmentSlot is where an item is worn
type EquipmentSlot uint8

// Equipment slots
const (
	SlotWeapon EquipmentSlot = iota
	SlotArmor
	SlotAccessory
)

// String returns the slot name
func (s EquipmentSlot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	case SlotAccessory:
		return "accessory"
	default:
		return "unknown"
	}
}

// Equipment is an item whose bonuses add onto a character's base stats
type Equipment struct {
	ID             string
	Name           string
	Slot           EquipmentSlot
	HPBonus        uint32
	DamageMinBonus uint32
	DamageMaxBonus uint32
	CritBonus      uint8
	DodgeBonus     uint8
}

// Stats are the numbers the engine consumes for one combatant
type Stats struct {
	HP          uint32
	DamageMin   uint32
	DamageMax   uint32
	CritChance  uint8
	DodgeChance uint8
	Defense     uint32
}
