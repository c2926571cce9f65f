package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/studybananas/internal/errors"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := errors.NewInvalidIndexError("person", 4, 3)

	assert.True(t, stderrors.Is(err, errors.ErrInvalidIndex))
	assert.False(t, stderrors.Is(err, errors.ErrParse))

	wrapped := fmt.Errorf("executing delete: %w", err)
	assert.True(t, stderrors.Is(wrapped, errors.ErrInvalidIndex))
	assert.True(t, errors.HasCode(wrapped, errors.ErrCodeInvalidIndex))
}

func TestParseError_KeepsCauseOutOfUserMessage(t *testing.T) {
	cause := stderrors.New("phone: must be numeric")
	err := errors.NewParseError("edit: Edits a person.", cause)

	assert.Equal(t, "Invalid command format! \nedit: Edits a person.", errors.UserMessage(err))
	assert.Contains(t, err.Error(), "phone: must be numeric")
	assert.True(t, stderrors.Is(err, cause))
}

func TestParseError_JoinsCauses(t *testing.T) {
	a := stderrors.New("bad phone")
	b := stderrors.New("bad email")
	err := errors.NewParseError("usage", a, b)

	assert.True(t, stderrors.Is(err, a))
	assert.True(t, stderrors.Is(err, b))
}

func TestParseError_NoCause(t *testing.T) {
	err := errors.NewParseError("usage")
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "PARSE_FAILURE: Invalid command format! \nusage", err.Error())
}

func TestUserMessage_PlainError(t *testing.T) {
	assert.Equal(t, "boom", errors.UserMessage(stderrors.New("boom")))
}

func TestQuizLockError_FixedMessage(t *testing.T) {
	err := errors.NewQuizLockError("delete")
	assert.Equal(t, "A quiz is ongoing, no non-quiz commands are allowed.\n"+
		"Key `refresh' to continue with quiz or 'cancel' to stop quiz.", errors.UserMessage(err))
}
