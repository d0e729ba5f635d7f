// Package errors provides structured errors for the battle engine and its service layer.
//
// Every error carries a Code that maps onto a gRPC status code and, for domain failures, a
// Reason that tells a client exactly why an operation was refused:
//
//	err := errors.WrongTurn("it is not this character's turn").
//	    WithMeta("battle_id", battleID)
//
//	if errors.HasReason(err, errors.ReasonInsufficientEnergy) {
//	    // render "not enough energy"
//	}
//
// Layer guidelines:
//   - Repositories return NotFound/AlreadyExists and wrap storage failures with Wrap.
//   - The engine and orchestrators return reason-bearing errors before mutating state.
//   - Handlers convert with ToGRPCError; the reason travels as an errdetails.ErrorInfo.
package errors
