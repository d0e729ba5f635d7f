package engine

import (
	"context"
	"fmt"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// Wildcard effect strengths
const (
	EnergySurgeAmount      = 30
	EnergySurgeHealPercent = 10
	CataclysmPercent       = 15
)

func (e *engine) DecideWildcard(_ context.Context, input *DecideWildcardInput) (*DecideWildcardOutput, error) {
	if input == nil || input.Battle == nil {
		return nil, errors.InvalidArgument("battle is required")
	}
	b := input.Battle
	if err := requireWildcard(b); err != nil {
		return nil, err
	}
	if input.Now > b.Wildcard.Deadline {
		return nil, errors.InvalidState(errors.ReasonWildcardExpired,
			fmt.Sprintf("wildcard in battle %s expired at %d", b.ID, b.Wildcard.Deadline))
	}

	decision, participant := decisionSlot(b, input.CharacterID)
	if !participant {
		return nil, errors.PermissionDenied(fmt.Sprintf("%s has no decision in battle %s", input.CharacterID, b.ID)).
			WithReason(errors.ReasonNotYourDecision)
	}
	if decision == nil {
		return nil, errors.InvalidState(errors.ReasonAlreadyDecided,
			fmt.Sprintf("%s already answered the wildcard in battle %s", input.CharacterID, b.ID))
	}

	answer := entities.DecisionReject
	if input.Accept {
		answer = entities.DecisionAccept
	}
	*decision = answer
	b.LastActionTimestamp = input.Now

	res := &WildcardResolution{
		Type:   b.Wildcard.Type,
		Events: []string{fmt.Sprintf("%s %s the %s wildcard", input.CharacterID, verb(answer), b.Wildcard.Type)},
	}
	if b.Wildcard.Decided() {
		resolveWildcard(b, res)
	}

	return &DecideWildcardOutput{Resolution: res}, nil
}

func (e *engine) TimeoutWildcard(_ context.Context, input *TimeoutWildcardInput) (*TimeoutWildcardOutput, error) {
	if input == nil || input.Battle == nil {
		return nil, errors.InvalidArgument("battle is required")
	}
	b := input.Battle
	if err := requireWildcard(b); err != nil {
		return nil, err
	}
	if input.Now <= b.Wildcard.Deadline {
		return nil, errors.InvalidState(errors.ReasonWildcardNotExpired,
			fmt.Sprintf("wildcard in battle %s is open until %d", b.ID, b.Wildcard.Deadline))
	}

	// a missing answer counts as a rejection
	if b.Wildcard.Player1Decision == entities.DecisionNone {
		b.Wildcard.Player1Decision = entities.DecisionReject
	}
	if b.Wildcard.Player2Decision == entities.DecisionNone {
		b.Wildcard.Player2Decision = entities.DecisionReject
	}
	b.LastActionTimestamp = input.Now

	res := &WildcardResolution{
		Type:   b.Wildcard.Type,
		Events: []string{fmt.Sprintf("the %s wildcard timed out", b.Wildcard.Type)},
	}
	resolveWildcard(b, res)

	return &TimeoutWildcardOutput{Resolution: res}, nil
}

func requireWildcard(b *entities.Battle) error {
	if b.State != entities.BattleStateWildcard || !b.Wildcard.Active {
		return errors.InvalidState(errors.ReasonWrongState,
			fmt.Sprintf("battle %s has no pending wildcard", b.ID))
	}
	return nil
}

// decisionSlot returns the first unanswered decision belonging to the character and
// whether the character fights in the battle at all. A character fighting itself
// answers for both sides in turn.
func decisionSlot(b *entities.Battle, characterID string) (*entities.Decision, bool) {
	var owned bool
	for _, side := range []uint8{1, 2} {
		if b.Player(side).CharacterID != characterID {
			continue
		}
		owned = true
		d := &b.Wildcard.Player1Decision
		if side == 2 {
			d = &b.Wildcard.Player2Decision
		}
		if *d == entities.DecisionNone {
			return d, true
		}
	}
	return nil, owned
}

func verb(d entities.Decision) string {
	if d == entities.DecisionAccept {
		return "accepts"
	}
	return "rejects"
}

// resolveWildcard applies the effect when both accepted, then returns the battle to play
func resolveWildcard(b *entities.Battle, res *WildcardResolution) {
	res.Resolved = true
	w := b.Wildcard
	if w.Player1Decision == entities.DecisionAccept && w.Player2Decision == entities.DecisionAccept {
		res.Applied = true
		res.Events = append(res.Events, ApplyWildcard(b, w.Type))
	} else {
		res.Events = append(res.Events, fmt.Sprintf("the %s wildcard is discarded", w.Type))
	}
	b.Wildcard = entities.Wildcard{}
	b.State = entities.BattleStateActive
}

// ApplyWildcard applies a wildcard effect to both players and describes it.
// No wildcard can reduce a living player below one hit point.
func ApplyWildcard(b *entities.Battle, t entities.WildcardType) string {
	p1, p2 := &b.Player1, &b.Player2
	switch t {
	case entities.WildcardHealthSwap:
		p1.CurrentHP, p2.CurrentHP = clampHP(p2.CurrentHP, p1.MaxHP), clampHP(p1.CurrentHP, p2.MaxHP)
		return "hit points are swapped"
	case entities.WildcardEnergySurge:
		for _, p := range []*entities.BattlePlayer{p1, p2} {
			e := uint32(p.Energy) + EnergySurgeAmount
			if e > entities.MaxEnergy {
				e = entities.MaxEnergy
			}
			p.Energy = uint8(e)
			heal(p, percentOf(p.MaxHP, EnergySurgeHealPercent))
		}
		return "both players surge with energy"
	case entities.WildcardCleanse:
		ClearAllStatus(p1)
		ClearAllStatus(p2)
		return "all effects are cleansed"
	case entities.WildcardCataclysm:
		for _, p := range []*entities.BattlePlayer{p1, p2} {
			if p.CurrentHP <= 1 {
				continue
			}
			loss := percentOf(p.MaxHP, CataclysmPercent)
			if loss >= p.CurrentHP {
				loss = p.CurrentHP - 1
			}
			dealDamage(p, loss)
		}
		return "a cataclysm strikes both players"
	default:
		return ""
	}
}

func clampHP(hp, max uint32) uint32 {
	if hp > max {
		return max
	}
	if hp == 0 {
		return 1
	}
	return hp
}
