package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *errors.Error
		expected string
	}{
		{
			name:     "plain code",
			err:      errors.NotFound("battle not found"),
			expected: "NOT_FOUND: battle not found",
		},
		{
			name:     "code with reason",
			err:      errors.WrongTurn("not your turn"),
			expected: "FAILED_PRECONDITION(WRONG_TURN): not your turn",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	base := errors.InsufficientResource(errors.ReasonInsufficientEnergy, "needs 40 energy")
	wrapped := errors.Wrap(base, "execute turn")

	s.Equal(errors.CodeResourceExhausted, wrapped.Code)
	s.Equal(errors.ReasonInsufficientEnergy, wrapped.Reason)
	s.True(errors.HasReason(wrapped, errors.ReasonInsufficientEnergy))
	s.True(errors.IsResourceExhausted(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load battle")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load battle", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestGetReasonWalksChain() {
	inner := errors.InvalidState(errors.ReasonBattleNotActive, "battle is completed")
	outer := errors.WrapWithCode(inner, errors.CodeInternal, "outer")

	s.Equal(errors.ReasonBattleNotActive, errors.GetReason(outer))
	s.Equal(errors.Reason(""), errors.GetReason(fmt.Errorf("plain")))
	s.Equal(errors.Reason(""), errors.GetReason(nil))
}

func (s *ErrorsTestSuite) TestIsMatchesReasonWhenTargetHasOne() {
	err := errors.WrongTurn("not your turn")

	s.True(errors.Is(err, errors.FailedPrecondition("")))
	s.True(errors.Is(err, errors.WrongTurn("")))
	s.False(errors.Is(err, errors.InvalidState(errors.ReasonBattleNotActive, "")))
}

func (s *ErrorsTestSuite) TestSpecificConstructors() {
	s.True(errors.IsPermissionDenied(errors.Unauthorized("not the owner")))
	s.True(errors.IsAlreadyExists(errors.AlreadyFinalized("b1")))
	s.Equal("b1", errors.GetMeta(errors.AlreadyFinalized("b1"))["battle_id"])
	s.True(errors.IsAborted(errors.Reentrant("b1")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentReason(errors.ReasonInvalidStance, "bad stance")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsReason() {
	original := errors.InsufficientResource(errors.ReasonSkillOnCooldown, "skill is cooling down").
		WithMeta("skill_id", 3)

	grpcErr := errors.ToGRPCError(original)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.ResourceExhausted, st.Code())
	s.Equal("skill is cooling down", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeResourceExhausted, errors.GetCode(back))
	s.Equal(errors.ReasonSkillOnCooldown, errors.GetReason(back))
	s.Equal("3", errors.GetMeta(back)["skill_id"])
}

func (s *ErrorsTestSuite) TestGRPCPlainErrors() {
	s.Nil(errors.ToGRPCError(nil))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	already := status.Error(codes.NotFound, "gone")
	s.Equal(already, errors.ToGRPCError(already))
	s.True(errors.IsNotFound(errors.FromGRPCError(already)))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("battle_id", " ", vb)
	errors.ValidateRange("stance", 9, 0, 3, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "battle_id: is required")
	s.Contains(err.Error(), "stance: must be between 0 and 3")

	s.NoError(errors.NewValidationBuilder().Build())
}
