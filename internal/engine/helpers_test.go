package engine

import (
	"github.com/uzochukwuV/massacombat/internal/entities"
)

// scriptedSource replays queued results so tests can force exact rolls.
// An empty queue yields the minimum roll and failed chances.
type scriptedSource struct {
	rolls         []uint64
	chances       []bool
	wildcardRolls []int
	draws         int
}

func (s *scriptedSource) Between(min, max uint64) uint64 {
	if min >= max {
		return min
	}
	s.draws++
	if len(s.rolls) == 0 {
		return min
	}
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v
}

func (s *scriptedSource) Chance(percent uint64) bool {
	if percent >= 100 {
		return true
	}
	if percent == 0 {
		return false
	}
	s.draws++
	if len(s.chances) == 0 {
		return false
	}
	v := s.chances[0]
	s.chances = s.chances[1:]
	return v
}

func (s *scriptedSource) Roll(size int) (int, error) {
	s.draws++
	if len(s.wildcardRolls) == 0 {
		return 1, nil
	}
	v := s.wildcardRolls[0]
	s.wildcardRolls = s.wildcardRolls[1:]
	return v, nil
}

func (s *scriptedSource) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = s.Roll(size)
	}
	return out, nil
}

func (s *scriptedSource) State() uint64 {
	return uint64(s.draws) + 1
}

func newWarrior(id string) *entities.Character {
	return &entities.Character{
		ID:          id,
		Name:        id,
		Class:       entities.ClassWarrior,
		Level:       1,
		HP:          120,
		MaxHP:       120,
		DamageMin:   10,
		DamageMax:   20,
		CritChance:  10,
		DodgeChance: 5,
		Defense:     10,
		MMR:         StartingMMR,
		SkillSlots: [entities.SkillSlotCount]entities.SkillID{
			entities.SkillHeal,
			entities.SkillPowerStrike,
			entities.SkillStunStrike,
		},
		LearnedSkills: entities.NewSkillSet(
			entities.SkillHeal,
			entities.SkillPowerStrike,
			entities.SkillStunStrike,
		),
	}
}

func fighter(c *entities.Character) *Fighter {
	return &Fighter{Character: c, Stats: EffectiveStats(c)}
}
