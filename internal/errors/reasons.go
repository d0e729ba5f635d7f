package errors

// Reason names the domain rule an operation violated
type Reason string

// Battle failure reasons
const (
	ReasonBattleNotFound    Reason = "BATTLE_NOT_FOUND"
	ReasonCharacterNotFound Reason = "CHARACTER_NOT_FOUND"
	ReasonEquipmentNotFound Reason = "EQUIPMENT_NOT_FOUND"
	ReasonBattleExists      Reason = "BATTLE_ALREADY_EXISTS"
	ReasonSelfBattle        Reason = "SELF_BATTLE"
	ReasonInvalidStance     Reason = "INVALID_STANCE"

	ReasonBattleNotActive Reason = "BATTLE_NOT_ACTIVE"
	ReasonWrongState      Reason = "WRONG_STATE"
	ReasonWrongTurn       Reason = "WRONG_TURN"
	ReasonNotParticipant  Reason = "NOT_PARTICIPANT"
	ReasonUnauthorized    Reason = "UNAUTHORIZED"

	ReasonInsufficientEnergy Reason = "INSUFFICIENT_ENERGY"
	ReasonSkillOnCooldown    Reason = "SKILL_ON_COOLDOWN"
	ReasonSkillNotLearned    Reason = "SKILL_NOT_LEARNED"
	ReasonInvalidSkillSlot   Reason = "INVALID_SKILL_SLOT"
	ReasonInvalidSkill       Reason = "INVALID_SKILL"

	ReasonNotYourDecision    Reason = "NOT_YOUR_DECISION"
	ReasonAlreadyDecided     Reason = "ALREADY_DECIDED"
	ReasonWildcardExpired    Reason = "WILDCARD_EXPIRED"
	ReasonWildcardNotExpired Reason = "WILDCARD_NOT_EXPIRED"

	ReasonNotCompleted     Reason = "BATTLE_NOT_COMPLETED"
	ReasonAlreadyFinalized Reason = "ALREADY_FINALIZED"
	ReasonAlreadySettled   Reason = "ALREADY_SETTLED"
	ReasonNotSettled       Reason = "NOT_SETTLED"
	ReasonReentrant        Reason = "REENTRANT_CALL"
	ReasonCorruptState     Reason = "CORRUPT_STATE"
)

// Character management reasons
const (
	ReasonUnknownClass          Reason = "UNKNOWN_CLASS"
	ReasonCharacterExists       Reason = "CHARACTER_ALREADY_EXISTS"
	ReasonSkillAlreadyLearned   Reason = "SKILL_ALREADY_LEARNED"
	ReasonEquipmentSlotMismatch Reason = "EQUIPMENT_SLOT_MISMATCH"
)

// String returns the reason as a string
func (r Reason) String() string {
	return string(r)
}

// InvalidState reports an operation attempted outside its legal battle state
func InvalidState(reason Reason, message string) *Error {
	return FailedPrecondition(message).WithReason(reason)
}

// WrongTurn reports a caller acting out of turn
func WrongTurn(message string) *Error {
	return FailedPrecondition(message).WithReason(ReasonWrongTurn)
}

// Unauthorized reports a caller that does not own the character it acts with
func Unauthorized(message string) *Error {
	return PermissionDenied(message).WithReason(ReasonUnauthorized)
}

// InsufficientResource reports missing energy or a skill still cooling down
func InsufficientResource(reason Reason, message string) *Error {
	return ResourceExhausted(message).WithReason(reason)
}

// InvalidArgumentReason reports a malformed argument with a specific reason
func InvalidArgumentReason(reason Reason, message string) *Error {
	return InvalidArgument(message).WithReason(reason)
}

// AlreadyFinalized reports a second finalize on the same battle
func AlreadyFinalized(battleID string) *Error {
	return AlreadyExistsf("battle %s is already finalized", battleID).
		WithReason(ReasonAlreadyFinalized).
		WithMeta("battle_id", battleID)
}

// Reentrant reports a mutating call on a battle that is already being mutated
func Reentrant(battleID string) *Error {
	return Aborted("battle is locked by an in-flight call").
		WithReason(ReasonReentrant).
		WithMeta("battle_id", battleID)
}
