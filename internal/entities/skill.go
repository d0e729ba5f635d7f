package entities

// SkillID identifies one of the ten skills
type SkillID uint8

// Skill identifiers
const (
	SkillPowerStrike SkillID = iota + 1
	SkillHeal
	SkillPoisonStrike
	SkillStunStrike
	SkillShieldWall
	SkillRageMode
	SkillCriticalEye
	SkillDodgeMaster
	SkillBurnAura
	SkillComboBreaker
)

// MaxSkillID is the highest valid skill id
const MaxSkillID = SkillComboBreaker

// Valid reports whether the id is in 1..10
func (id SkillID) Valid() bool {
	return id >= SkillPowerStrike && id <= MaxSkillID
}

// Index is the position of the skill in per-skill arrays such as cooldowns
func (id SkillID) Index() int {
	return int(id) - 1
}

// SkillSet is the set of skills a character has learned
type SkillSet struct {
	learned [MaxSkillID]bool
}

// NewSkillSet builds a set from the given ids, ignoring invalid ones
func NewSkillSet(ids ...SkillID) SkillSet {
	var s SkillSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether id is learned
func (s SkillSet) Has(id SkillID) bool {
	return id.Valid() && s.learned[id.Index()]
}

// Add marks id as learned
func (s *SkillSet) Add(id SkillID) {
	if id.Valid() {
		s.learned[id.Index()] = true
	}
}

// IDs lists the learned skills in id order
func (s SkillSet) IDs() []SkillID {
	ids := make([]SkillID, 0, len(s.learned))
	for i, ok := range s.learned {
		if ok {
			ids = append(ids, SkillID(i+1))
		}
	}
	return ids
}

// Mask encodes the set as the 10-bit storage bitmask (bit 0 = skill 1)
func (s SkillSet) Mask() uint16 {
	var mask uint16
	for i, ok := range s.learned {
		if ok {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// SkillSetFromMask decodes a storage bitmask. Bits above the tenth are ignored.
func SkillSetFromMask(mask uint16) SkillSet {
	var s SkillSet
	for i := range s.learned {
		if mask&(1<<uint(i)) != 0 {
			s.learned[i] = true
		}
	}
	return s
}

var skillNames = [MaxSkillID]string{
	"power_strike",
	"heal",
	"poison_strike",
	"stun_strike",
	"shield_wall",
	"rage_mode",
	"critical_eye",
	"dodge_master",
	"burn_aura",
	"combo_breaker",
}

// String returns the snake_case skill name used in config and logs
func (id SkillID) String() string {
	if !id.Valid() {
		return "unknown"
	}
	return skillNames[id.Index()]
}

// ParseSkill converts a snake_case skill name to a SkillID
func ParseSkill(name string) (SkillID, bool) {
	for i, n := range skillNames {
		if n == name {
			return SkillID(i + 1), true
		}
	}
	return 0, false
}
