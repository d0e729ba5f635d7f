package engine

import (
	"context"
	"fmt"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// CritDamagePercent is the damage percentage of a critical hit
const CritDamagePercent = 200

// ComboMultiplier is the damage percentage granted by the current combo
func ComboMultiplier(combo uint8) uint32 {
	stacks := uint32(combo)
	if stacks > MaxComboStacks {
		stacks = MaxComboStacks
	}
	return basePercent + stacks*ComboBonusPercent
}

func (e *engine) ResolveTurn(_ context.Context, input *ResolveTurnInput) (*ResolveTurnOutput, error) {
	if err := validateTurnInput(input); err != nil {
		return nil, err
	}

	// work on a copy so a failed turn leaves the caller's battle untouched
	b := *input.Battle
	side := b.CurrentTurn
	attacker := b.Player(side)
	defender := b.Opponent(side)

	skill, err := checkAction(&b, attacker, defender, input)
	if err != nil {
		return nil, err
	}

	src := e.newSource(b.RandomSeed)
	result := &TurnResult{
		Side:   side,
		Stance: input.Action.Stance,
	}

	switch {
	case IsStunned(attacker):
		result.Outcome = OutcomeStunned
		result.Events = append(result.Events, fmt.Sprintf("%s is stunned and loses the turn", attacker.CharacterID))
		endTurn(attacker, nil)
	default:
		// damage over time lands on both players before the action resolves
		tickDOT(attacker, result)
		tickDOT(defender, result)
		if !attacker.Alive() || !defender.Alive() {
			result.Outcome = OutcomeDOTKnockout
			complete(&b, survivor(attacker, defender), result)
			break
		}

		act(attacker, defender, input, skill, src, result)
		attacker.Stance = input.Action.Stance
		endTurn(attacker, skill)
		if !defender.Alive() {
			result.Events = append(result.Events, fmt.Sprintf("%s is defeated", defender.CharacterID))
			complete(&b, attacker.CharacterID, result)
		}
	}

	b.TurnNumber++
	result.TurnNumber = b.TurnNumber

	if !result.Completed && b.TurnNumber >= e.maxTurns {
		result.Events = append(result.Events, fmt.Sprintf("turn limit %d reached", e.maxTurns))
		complete(&b, leaderByHealth(&b), result)
	}

	if !result.Completed {
		if src.Chance(uint64(e.wildcardChance)) {
			roll, err := src.Roll(entities.WildcardTypeCount)
			if err != nil {
				return nil, errors.Wrap(err, "failed to draw wildcard")
			}
			wt := entities.WildcardType(roll)
			b.State = entities.BattleStateWildcard
			b.Wildcard = entities.Wildcard{
				Active:   true,
				Type:     wt,
				Deadline: input.Now + e.wildcardWindow,
			}
			result.Wildcard = wt
			result.Events = append(result.Events, fmt.Sprintf("wildcard %s offered", wt))
		}
		b.CurrentTurn = entities.OtherSide(side)
	}

	b.RandomSeed = src.State()
	b.LastActionTimestamp = input.Now
	*input.Battle = b

	return &ResolveTurnOutput{Result: result}, nil
}

func validateTurnInput(input *ResolveTurnInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Battle == nil {
		vb.RequiredField("Battle")
	}
	if input.Attacker == nil || input.Attacker.Character == nil {
		vb.RequiredField("Attacker")
	}
	if input.Defender == nil || input.Defender.Character == nil {
		vb.RequiredField("Defender")
	}
	return vb.Build()
}

// checkAction validates everything about the turn before any state changes.
// It returns the skill to use, or nil for a basic attack or a stunned turn.
func checkAction(b *entities.Battle, attacker, defender *entities.BattlePlayer, input *ResolveTurnInput) (*Skill, error) {
	if b.State != entities.BattleStateActive {
		return nil, errors.InvalidState(errors.ReasonBattleNotActive,
			fmt.Sprintf("battle %s is %s", b.ID, b.State))
	}

	actorID := input.Attacker.Character.ID
	if attacker.CharacterID != actorID {
		if _, ok := b.SideOf(actorID); ok {
			return nil, errors.WrongTurn(fmt.Sprintf("it is not %s's turn", actorID))
		}
		return nil, errors.PermissionDenied(fmt.Sprintf("%s is not in battle %s", actorID, b.ID)).
			WithReason(errors.ReasonNotParticipant)
	}
	if defender.CharacterID != input.Defender.Character.ID {
		return nil, errors.InvalidArgumentf("defender %s is not the opponent in battle %s",
			input.Defender.Character.ID, b.ID)
	}

	action := input.Action
	if !action.Stance.Valid() {
		return nil, errors.InvalidArgumentReason(errors.ReasonInvalidStance,
			fmt.Sprintf("unknown stance %d", action.Stance))
	}
	if !action.UseSkill {
		return nil, nil
	}

	id, ok := input.Attacker.Character.SkillInSlot(action.SkillSlot)
	if !ok {
		return nil, errors.InvalidArgumentReason(errors.ReasonInvalidSkillSlot,
			fmt.Sprintf("no skill equipped in slot %d", action.SkillSlot))
	}
	if IsStunned(attacker) {
		return nil, nil
	}
	if err := CheckSkill(attacker, input.Attacker.Character, id); err != nil {
		return nil, err
	}
	skill, _ := LookupSkill(id)
	return &skill, nil
}

// act resolves a basic attack or a skill for a player who is able to act
func act(attacker, defender *entities.BattlePlayer, input *ResolveTurnInput, skill *Skill, src Source, result *TurnResult) {
	if skill != nil {
		SpendEnergy(attacker, skill.EnergyCost)
		result.SkillUsed = skill.ID
		if skill.Kind != SkillKindOffensive {
			result.Outcome = OutcomeSkillEffect
			result.Events = append(result.Events,
				fmt.Sprintf("%s uses %s", attacker.CharacterID, skill.Name),
				ApplySkillEffect(skill.ID, attacker, defender))
			return
		}
	}

	stats := input.Attacker.Stats
	dmg := uint32(src.Between(uint64(stats.DamageMin), uint64(stats.DamageMax)))

	multiplier := StanceMultiplier(input.Action.Stance, defender.Stance)
	if skill != nil {
		multiplier = skill.DamagePercent
	}
	dmg = percentOf(dmg, multiplier)
	dmg = percentOf(dmg, RageMultiplier(attacker))
	dmg = percentOf(dmg, ComboMultiplier(attacker.ComboCount))

	crit := attacker.GuaranteedCrit || src.Chance(uint64(stats.CritChance))
	attacker.GuaranteedCrit = false
	if crit {
		dmg = percentOf(dmg, CritDamagePercent)
	}
	dmg = percentOf(dmg, ShieldMultiplier(defender))

	name := "attacks"
	if skill != nil {
		name = "uses " + skill.Name
	}

	dodge := TotalDodgeChance(input.Defender.Stats.DodgeChance, defender)
	if src.Chance(uint64(dodge)) {
		attacker.ComboCount = 0
		result.Outcome = OutcomeDodged
		result.Events = append(result.Events,
			fmt.Sprintf("%s %s but %s dodges", attacker.CharacterID, name, defender.CharacterID))
		return
	}

	if dmg == 0 {
		dmg = 1
	}
	result.Outcome = OutcomeHit
	result.Critical = crit
	result.Damage = dealDamage(defender, dmg)
	if attacker.ComboCount < MaxComboStacks {
		attacker.ComboCount++
	}

	msg := fmt.Sprintf("%s %s for %d damage", attacker.CharacterID, name, result.Damage)
	if crit {
		msg += " (critical)"
	}
	result.Events = append(result.Events, msg)

	if skill != nil {
		if effect := ApplySkillEffect(skill.ID, attacker, defender); effect != "" {
			result.Events = append(result.Events, effect)
		}
	}
}

// endTurn ticks the acting player's durations, cooldowns and energy. A buff the
// player cast on themselves this turn keeps its full duration, so a two turn
// shield covers the next two incoming attacks.
func endTurn(p *entities.BattlePlayer, used *Skill) {
	cast := p.Status
	castDodgeTurns := p.DodgeBoostTurns
	TickDurations(p)
	if used != nil {
		switch used.ID {
		case entities.SkillShieldWall:
			p.Status.Set(entities.StatusShield, cast.Turns(entities.StatusShield))
		case entities.SkillRageMode:
			p.Status.Set(entities.StatusRage, cast.Turns(entities.StatusRage))
		case entities.SkillDodgeMaster:
			p.DodgeBoost = DodgeMasterBonus
			p.DodgeBoostTurns = castDodgeTurns
		}
	}
	ReduceCooldowns(p)
	if used != nil {
		SetCooldown(p, used.ID)
	}
	RegenerateEnergy(p)
}

// tickDOT applies the player's poison and burn and records it on the turn
func tickDOT(p *entities.BattlePlayer, result *TurnResult) {
	dot := ApplyDOT(p)
	if dot == 0 {
		return
	}
	result.DOTDamage += dot
	result.Events = append(result.Events,
		fmt.Sprintf("%s takes %d damage over time", p.CharacterID, dot))
	if !p.Alive() {
		result.Events = append(result.Events, fmt.Sprintf("%s succumbs", p.CharacterID))
	}
}

// survivor returns the character left standing after damage over time, or
// empty when both fell
func survivor(attacker, defender *entities.BattlePlayer) string {
	switch {
	case attacker.Alive():
		return attacker.CharacterID
	case defender.Alive():
		return defender.CharacterID
	default:
		return ""
	}
}

func complete(b *entities.Battle, winnerID string, result *TurnResult) {
	b.State = entities.BattleStateCompleted
	b.WinnerID = winnerID
	result.Completed = true
	result.WinnerID = winnerID
	if winnerID == "" {
		result.Events = append(result.Events, "the battle ends in a tie")
		return
	}
	result.Events = append(result.Events, fmt.Sprintf("%s wins", winnerID))
}

// leaderByHealth returns the character with the higher remaining hit point
// percentage, or empty for a tie
func leaderByHealth(b *entities.Battle) string {
	p1 := uint64(b.Player1.CurrentHP) * uint64(b.Player2.MaxHP)
	p2 := uint64(b.Player2.CurrentHP) * uint64(b.Player1.MaxHP)
	switch {
	case p1 > p2:
		return b.Player1.CharacterID
	case p2 > p1:
		return b.Player2.CharacterID
	default:
		return ""
	}
}
