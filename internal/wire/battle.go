package wire

import (
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

// BattleFormatVersion prefixes every stored battle
const BattleFormatVersion uint8 = 1

// EncodeBattle serializes a battle for storage
func EncodeBattle(b *entities.Battle) []byte {
	w := NewWriter(256)
	w.U8(BattleFormatVersion)
	WriteBattle(w, b)
	return w.Bytes()
}

// DecodeBattle parses a stored battle. Any structural or consistency failure is
// reported as DataLoss with reason CORRUPT_STATE.
func DecodeBattle(data []byte) (*entities.Battle, error) {
	r := NewReader(data)
	if v := r.U8(); r.Err() == nil && v != BattleFormatVersion {
		r.Fail(errors.InvalidArgumentf("unknown battle format version %d", v))
	}
	b := ReadBattle(r)
	if err := r.Done(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode battle").
			WithReason(errors.ReasonCorruptState)
	}
	return b, nil
}

// WriteBattle appends a battle in field order
func WriteBattle(w *Writer, b *entities.Battle) {
	w.String(b.ID)
	writePlayer(w, &b.Player1)
	writePlayer(w, &b.Player2)
	w.U8(b.CurrentTurn)
	w.U32(b.TurnNumber)
	w.U8(uint8(b.State))
	w.String(b.WinnerID)
	w.I64(b.StartTimestamp)
	w.I64(b.LastActionTimestamp)
	w.Bool(b.Wildcard.Active)
	w.U8(uint8(b.Wildcard.Type))
	w.I64(b.Wildcard.Deadline)
	w.U8(uint8(b.Wildcard.Player1Decision))
	w.U8(uint8(b.Wildcard.Player2Decision))
	w.U64(b.RandomSeed)
	w.Bool(b.Finalized)
}

// ReadBattle reads a battle written by WriteBattle and checks its invariants
func ReadBattle(r *Reader) *entities.Battle {
	b := &entities.Battle{}
	b.ID = r.String()
	b.Player1 = readPlayer(r)
	b.Player2 = readPlayer(r)
	b.CurrentTurn = r.U8()
	b.TurnNumber = r.U32()
	b.State = entities.BattleState(r.U8())
	b.WinnerID = r.String()
	b.StartTimestamp = r.I64()
	b.LastActionTimestamp = r.I64()
	b.Wildcard.Active = r.Bool()
	b.Wildcard.Type = entities.WildcardType(r.U8())
	b.Wildcard.Deadline = r.I64()
	b.Wildcard.Player1Decision = entities.Decision(r.U8())
	b.Wildcard.Player2Decision = entities.Decision(r.U8())
	b.RandomSeed = r.U64()
	b.Finalized = r.Bool()

	if r.Err() == nil {
		if err := checkBattle(b); err != nil {
			r.Fail(err)
		}
	}
	return b
}

func checkBattle(b *entities.Battle) error {
	switch {
	case b.CurrentTurn != 1 && b.CurrentTurn != 2:
		return errors.InvalidArgumentf("current turn %d is not 1 or 2", b.CurrentTurn)
	case b.State > entities.BattleStateCompleted:
		return errors.InvalidArgumentf("unknown battle state %d", b.State)
	case b.Wildcard.Type > entities.WildcardCataclysm:
		return errors.InvalidArgumentf("unknown wildcard type %d", b.Wildcard.Type)
	case b.Wildcard.Player1Decision > entities.DecisionAccept || b.Wildcard.Player2Decision > entities.DecisionAccept:
		return errors.InvalidArgument("unknown wildcard decision")
	case b.Wildcard.Active != (b.State == entities.BattleStateWildcard):
		return errors.InvalidArgument("wildcard flag disagrees with battle state")
	case b.WinnerID != "" && b.State != entities.BattleStateCompleted:
		return errors.InvalidArgument("winner set on a battle that is not completed")
	}
	return nil
}

func writePlayer(w *Writer, p *entities.BattlePlayer) {
	w.String(p.CharacterID)
	w.U32(p.CurrentHP)
	w.U32(p.MaxHP)
	w.U8(p.Energy)
	w.U8(p.Status.Mask())
	for _, turns := range p.Status.Counters() {
		w.U8(turns)
	}
	w.U8(p.ComboCount)
	w.Bool(p.GuaranteedCrit)
	w.U8(p.DodgeBoost)
	w.U8(p.DodgeBoostTurns)
	for _, cd := range p.Cooldowns {
		w.U8(cd)
	}
	w.U8(uint8(p.Stance))
}

func readPlayer(r *Reader) entities.BattlePlayer {
	var p entities.BattlePlayer
	p.CharacterID = r.String()
	p.CurrentHP = r.U32()
	p.MaxHP = r.U32()
	p.Energy = r.U8()

	mask := r.U8()
	var counters [5]uint8
	for i := range counters {
		counters[i] = r.U8()
	}
	status, ok := entities.StatusEffectsFromStorage(mask, counters)
	if !ok && r.Err() == nil {
		r.Fail(errors.InvalidArgumentf("status mask %#x disagrees with counters %v", mask, counters))
	}
	p.Status = status

	p.ComboCount = r.U8()
	p.GuaranteedCrit = r.Bool()
	p.DodgeBoost = r.U8()
	p.DodgeBoostTurns = r.U8()
	for i := range p.Cooldowns {
		p.Cooldowns[i] = r.U8()
	}
	p.Stance = entities.Stance(r.U8())

	if r.Err() != nil {
		return p
	}
	switch {
	case p.CurrentHP > p.MaxHP:
		r.Fail(errors.InvalidArgumentf("%s hp %d exceeds max %d", p.CharacterID, p.CurrentHP, p.MaxHP))
	case p.Energy > entities.MaxEnergy:
		r.Fail(errors.InvalidArgumentf("%s energy %d exceeds %d", p.CharacterID, p.Energy, entities.MaxEnergy))
	case !p.Stance.Valid():
		r.Fail(errors.InvalidArgumentf("%s has unknown stance %d", p.CharacterID, p.Stance))
	}
	return p
}
