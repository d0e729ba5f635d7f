package v1alpha1

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/wire"
)

// TurnResult describes one resolved turn
type TurnResult struct {
	Side       uint8
	TurnNumber uint32
	Outcome    uint8
	Stance     entities.Stance
	SkillUsed  entities.SkillID
	Damage     uint32
	DOTDamage  uint32
	Critical   bool
	Completed  bool
	WinnerID   string
	Wildcard   entities.WildcardType
	Events     []string
}

func (t *TurnResult) write(w *wire.Writer) {
	w.U8(t.Side)
	w.U32(t.TurnNumber)
	w.U8(t.Outcome)
	w.U8(uint8(t.Stance))
	w.U8(uint8(t.SkillUsed))
	w.U32(t.Damage)
	w.U32(t.DOTDamage)
	w.Bool(t.Critical)
	w.Bool(t.Completed)
	w.String(t.WinnerID)
	w.U8(uint8(t.Wildcard))
	w.Strings(t.Events)
}

func (t *TurnResult) read(r *wire.Reader) {
	t.Side = r.U8()
	t.TurnNumber = r.U32()
	t.Outcome = r.U8()
	t.Stance = entities.Stance(r.U8())
	t.SkillUsed = entities.SkillID(r.U8())
	t.Damage = r.U32()
	t.DOTDamage = r.U32()
	t.Critical = r.Bool()
	t.Completed = r.Bool()
	t.WinnerID = r.String()
	t.Wildcard = entities.WildcardType(r.U8())
	t.Events = r.Strings()
}

// WildcardResolution describes a wildcard decision or timeout
type WildcardResolution struct {
	Type     entities.WildcardType
	Resolved bool
	Applied  bool
	Events   []string
}

func (res *WildcardResolution) write(w *wire.Writer) {
	w.U8(uint8(res.Type))
	w.Bool(res.Resolved)
	w.Bool(res.Applied)
	w.Strings(res.Events)
}

func (res *WildcardResolution) read(r *wire.Reader) {
	res.Type = entities.WildcardType(r.U8())
	res.Resolved = r.Bool()
	res.Applied = r.Bool()
	res.Events = r.Strings()
}

// SettlementEntry is one side's rating and record change
type SettlementEntry struct {
	CharacterID string
	Result      uint8
	OldMMR      uint32
	NewMMR      uint32
	Delta       int32
	XP          uint64
}

func (e *SettlementEntry) write(w *wire.Writer) {
	w.String(e.CharacterID)
	w.U8(e.Result)
	w.U32(e.OldMMR)
	w.U32(e.NewMMR)
	w.I32(e.Delta)
	w.U64(e.XP)
}

func (e *SettlementEntry) read(r *wire.Reader) {
	e.CharacterID = r.String()
	e.Result = r.U8()
	e.OldMMR = r.U32()
	e.NewMMR = r.U32()
	e.Delta = r.I32()
	e.XP = r.U64()
}

// Settlement is the outcome of finalizing a battle
type Settlement struct {
	BattleID string
	WinnerID string
	Player1  SettlementEntry
	Player2  SettlementEntry
}

// LogEntry is one line of a battle's event log
type LogEntry struct {
	Timestamp int64
	Turn      uint32
	Message   string
}

// Standing is a leaderboard row
type Standing struct {
	CharacterID string
	Owner       string
	MMR         uint32
	Wins        uint32
	Losses      uint32
	Ties        uint32
	WinStreak   uint32
}

// CreateBattleRequest starts a battle; an empty BattleID is generated
type CreateBattleRequest struct {
	BattleID     string
	Character1ID string
	Character2ID string
	Caller       common.Address
}

// MarshalBinary implements wire.Message
func (m *CreateBattleRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.BattleID)
	w.String(m.Character1ID)
	w.String(m.Character2ID)
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *CreateBattleRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	m.Character1ID = r.String()
	m.Character2ID = r.String()
	m.Caller = r.Address()
	return r.Done()
}

// BattleResponse carries a battle
type BattleResponse struct {
	Battle *entities.Battle
}

// MarshalBinary implements wire.Message
func (m *BattleResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(256)
	writeBattle(w, m.Battle)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *BattleResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Battle = wire.ReadBattle(r)
	return r.Done()
}

// ExecuteTurnRequest is one player's action
type ExecuteTurnRequest struct {
	BattleID    string
	CharacterID string
	Stance      entities.Stance
	UseSkill    bool
	SkillSlot   uint8
	Caller      common.Address
}

// MarshalBinary implements wire.Message
func (m *ExecuteTurnRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.BattleID)
	w.String(m.CharacterID)
	w.U8(uint8(m.Stance))
	w.Bool(m.UseSkill)
	w.U8(m.SkillSlot)
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ExecuteTurnRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	m.CharacterID = r.String()
	m.Stance = entities.Stance(r.U8())
	m.UseSkill = r.Bool()
	m.SkillSlot = r.U8()
	m.Caller = r.Address()
	return r.Done()
}

// ExecuteTurnResponse holds the battle after the turn and what happened
type ExecuteTurnResponse struct {
	Battle *entities.Battle
	Turn   TurnResult
}

// MarshalBinary implements wire.Message
func (m *ExecuteTurnResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(320)
	writeBattle(w, m.Battle)
	m.Turn.write(w)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ExecuteTurnResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Battle = wire.ReadBattle(r)
	m.Turn.read(r)
	return r.Done()
}

// DecideWildcardRequest answers a pending wildcard
type DecideWildcardRequest struct {
	BattleID    string
	CharacterID string
	Accept      bool
	Caller      common.Address
}

// MarshalBinary implements wire.Message
func (m *DecideWildcardRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(64)
	w.String(m.BattleID)
	w.String(m.CharacterID)
	w.Bool(m.Accept)
	w.Address(m.Caller)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *DecideWildcardRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	m.CharacterID = r.String()
	m.Accept = r.Bool()
	m.Caller = r.Address()
	return r.Done()
}

// TimeoutWildcardRequest closes an expired wildcard
type TimeoutWildcardRequest struct {
	BattleID string
}

// MarshalBinary implements wire.Message
func (m *TimeoutWildcardRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(32)
	w.String(m.BattleID)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *TimeoutWildcardRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	return r.Done()
}

// WildcardResponse holds the battle and the wildcard outcome
type WildcardResponse struct {
	Battle     *entities.Battle
	Resolution WildcardResolution
}

// MarshalBinary implements wire.Message
func (m *WildcardResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(300)
	writeBattle(w, m.Battle)
	m.Resolution.write(w)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *WildcardResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Battle = wire.ReadBattle(r)
	m.Resolution.read(r)
	return r.Done()
}

// FinalizeBattleRequest settles a completed battle
type FinalizeBattleRequest struct {
	BattleID string
}

// MarshalBinary implements wire.Message
func (m *FinalizeBattleRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(32)
	w.String(m.BattleID)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *FinalizeBattleRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	return r.Done()
}

// FinalizeBattleResponse holds the finalized battle and its settlement
type FinalizeBattleResponse struct {
	Battle     *entities.Battle
	Settlement Settlement
}

// MarshalBinary implements wire.Message
func (m *FinalizeBattleResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(360)
	writeBattle(w, m.Battle)
	w.String(m.Settlement.BattleID)
	w.String(m.Settlement.WinnerID)
	m.Settlement.Player1.write(w)
	m.Settlement.Player2.write(w)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *FinalizeBattleResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Battle = wire.ReadBattle(r)
	m.Settlement.BattleID = r.String()
	m.Settlement.WinnerID = r.String()
	m.Settlement.Player1.read(r)
	m.Settlement.Player2.read(r)
	return r.Done()
}

// GetBattleRequest identifies a battle
type GetBattleRequest struct {
	BattleID string
}

// MarshalBinary implements wire.Message
func (m *GetBattleRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(32)
	w.String(m.BattleID)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *GetBattleRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	return r.Done()
}

// ListBattlesRequest selects a character's battles, newest first
type ListBattlesRequest struct {
	CharacterID string
	Limit       uint32
}

// MarshalBinary implements wire.Message
func (m *ListBattlesRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(32)
	w.String(m.CharacterID)
	w.U32(m.Limit)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListBattlesRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.CharacterID = r.String()
	m.Limit = r.U32()
	return r.Done()
}

// ListBattlesResponse holds battle IDs
type ListBattlesResponse struct {
	BattleIDs []string
}

// MarshalBinary implements wire.Message
func (m *ListBattlesResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(128)
	w.Strings(m.BattleIDs)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListBattlesResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleIDs = r.Strings()
	return r.Done()
}

// ListEventsRequest reads a battle's event log from an offset
type ListEventsRequest struct {
	BattleID string
	Offset   uint32
}

// MarshalBinary implements wire.Message
func (m *ListEventsRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(32)
	w.String(m.BattleID)
	w.U32(m.Offset)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListEventsRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.BattleID = r.String()
	m.Offset = r.U32()
	return r.Done()
}

// ListEventsResponse holds log entries in write order
type ListEventsResponse struct {
	Entries []LogEntry
}

// MarshalBinary implements wire.Message
func (m *ListEventsResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(256)
	w.Count(len(m.Entries))
	for _, e := range m.Entries {
		w.I64(e.Timestamp)
		w.U32(e.Turn)
		w.String(e.Message)
	}
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *ListEventsResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	n := r.Count(16)
	m.Entries = make([]LogEntry, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		m.Entries = append(m.Entries, LogEntry{
			Timestamp: r.I64(),
			Turn:      r.U32(),
			Message:   r.String(),
		})
	}
	return r.Done()
}

// GetLeaderboardRequest limits the standings returned
type GetLeaderboardRequest struct {
	Limit uint32
}

// MarshalBinary implements wire.Message
func (m *GetLeaderboardRequest) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(4)
	w.U32(m.Limit)
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *GetLeaderboardRequest) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	m.Limit = r.U32()
	return r.Done()
}

// GetLeaderboardResponse holds standings ordered by rating
type GetLeaderboardResponse struct {
	Standings []Standing
}

// MarshalBinary implements wire.Message
func (m *GetLeaderboardResponse) MarshalBinary() ([]byte, error) {
	w := wire.NewWriter(256)
	w.Count(len(m.Standings))
	for _, s := range m.Standings {
		w.String(s.CharacterID)
		w.String(s.Owner)
		w.U32(s.MMR)
		w.U32(s.Wins)
		w.U32(s.Losses)
		w.U32(s.Ties)
		w.U32(s.WinStreak)
	}
	return w.Bytes(), nil
}

// UnmarshalBinary implements wire.Message
func (m *GetLeaderboardResponse) UnmarshalBinary(data []byte) error {
	r := wire.NewReader(data)
	n := r.Count(28)
	m.Standings = make([]Standing, 0, n)
	for i := 0; i < n && r.Err() == nil; i++ {
		m.Standings = append(m.Standings, Standing{
			CharacterID: r.String(),
			Owner:       r.String(),
			MMR:         r.U32(),
			Wins:        r.U32(),
			Losses:      r.U32(),
			Ties:        r.U32(),
			WinStreak:   r.U32(),
		})
	}
	return r.Done()
}

// writeBattle encodes a missing battle as an empty one so the response still decodes
func writeBattle(w *wire.Writer, b *entities.Battle) {
	if b == nil {
		b = &entities.Battle{CurrentTurn: 1}
	}
	wire.WriteBattle(w, b)
}
