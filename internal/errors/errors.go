package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeParse             = "PARSE_FAILURE"
	ErrCodeUnknownCommand    = "UNKNOWN_COMMAND"
	ErrCodeQuizLock          = "QUIZ_LOCK_VIOLATION"
	ErrCodeInvalidIndex      = "INVALID_INDEX"
	ErrCodeDuplicate         = "DUPLICATE_RECORD"
	ErrCodeNoActiveQuiz      = "NO_ACTIVE_QUIZ"
	ErrCodeQuizAlreadyActive = "QUIZ_ALREADY_ACTIVE"
	ErrCodeEmptyQuizScore    = "EMPTY_QUIZ_SCORE"
	ErrCodeEmptyFlashcardSet = "EMPTY_FLASHCARD_SET"
	ErrCodeQuizFinished      = "QUIZ_FINISHED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// User visible messages shared by more than one constructor.
const (
	MessageInvalidFormat = "Invalid command format! \n%s"
	MessageUnknown       = "Unknown command"
	MessageQuizOngoing   = "A quiz is ongoing, no non-quiz commands are allowed.\n" +
		"Key `refresh' to continue with quiz or 'cancel' to stop quiz."
)

// AppError represents an application error with an error code and a message
// that is shown to the user verbatim.
type AppError struct {
	Code    string // Error code (e.g., "PARSE_FAILURE", "INVALID_INDEX")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code, so the
// sentinels below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is matching. Only the Code is compared.
var (
	ErrParse             = &AppError{Code: ErrCodeParse}
	ErrUnknownCommand    = &AppError{Code: ErrCodeUnknownCommand}
	ErrQuizLock          = &AppError{Code: ErrCodeQuizLock}
	ErrInvalidIndex      = &AppError{Code: ErrCodeInvalidIndex}
	ErrDuplicate         = &AppError{Code: ErrCodeDuplicate}
	ErrNoActiveQuiz      = &AppError{Code: ErrCodeNoActiveQuiz}
	ErrQuizAlreadyActive = &AppError{Code: ErrCodeQuizAlreadyActive}
	ErrEmptyQuizScore    = &AppError{Code: ErrCodeEmptyQuizScore}
	ErrEmptyFlashcardSet = &AppError{Code: ErrCodeEmptyFlashcardSet}
	ErrQuizFinished      = &AppError{Code: ErrCodeQuizFinished}
	ErrNotFound          = &AppError{Code: ErrCodeNotFound}
	ErrValidation        = &AppError{Code: ErrCodeValidation}
	ErrInternal          = &AppError{Code: ErrCodeInternal}
)

// HasCode reports whether any error in err's chain is an AppError with code.
func HasCode(err error, code string) bool {
	return stderrors.Is(err, &AppError{Code: code})
}

// UserMessage returns the message intended for the user. Causes are left out;
// they stay reachable through Error() for logs.
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// NewParseError creates a PARSE_FAILURE carrying the usage of the offending command.
// Multiple causes are joined so every failing field stays visible in traces.
func NewParseError(usage string, causes ...error) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf(MessageInvalidFormat, usage),
		Err:     stderrors.Join(causes...),
	}
}

// NewUnknownCommandError creates a new UNKNOWN_COMMAND error
func NewUnknownCommandError(keyword string) *AppError {
	return &AppError{
		Code:    ErrCodeUnknownCommand,
		Message: MessageUnknown,
		Err:     fmt.Errorf("keyword %q", keyword),
	}
}

// NewQuizLockError creates a new QUIZ_LOCK_VIOLATION error
func NewQuizLockError(keyword string) *AppError {
	return &AppError{
		Code:    ErrCodeQuizLock,
		Message: MessageQuizOngoing,
		Err:     fmt.Errorf("keyword %q blocked", keyword),
	}
}

// NewInvalidIndexError creates a new INVALID_INDEX error
func NewInvalidIndexError(resource string, oneBased, size int) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidIndex,
		Message: fmt.Sprintf("The %s index provided is invalid", resource),
		Err:     fmt.Errorf("index %d outside [1, %d]", oneBased, size),
	}
}

// NewDuplicateError creates a new DUPLICATE_RECORD error
func NewDuplicateError(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicate,
		Message: fmt.Sprintf("This %s already exists", resource),
	}
}

// NewNoActiveQuizError creates a new NO_ACTIVE_QUIZ error
func NewNoActiveQuizError() *AppError {
	return &AppError{
		Code:    ErrCodeNoActiveQuiz,
		Message: "There is no ongoing quiz",
	}
}

// NewQuizAlreadyActiveError creates a new QUIZ_ALREADY_ACTIVE error
func NewQuizAlreadyActiveError() *AppError {
	return &AppError{
		Code:    ErrCodeQuizAlreadyActive,
		Message: "A quiz is already ongoing",
	}
}

// NewEmptyQuizScoreError creates a new EMPTY_QUIZ_SCORE error
func NewEmptyQuizScoreError() *AppError {
	return &AppError{
		Code: ErrCodeEmptyQuizScore,
		Message: "No question has been answered yet, so there is no score.\n" +
			"Key `ans c' or `ans w' to answer, or 'cancel' to stop quiz.",
	}
}

// NewEmptyFlashcardSetError creates a new EMPTY_FLASHCARD_SET error
func NewEmptyFlashcardSetError(name string) *AppError {
	return &AppError{
		Code:    ErrCodeEmptyFlashcardSet,
		Message: fmt.Sprintf("Flashcard set %s has no flashcards to quiz", name),
	}
}

// NewQuizFinishedError creates a new QUIZ_FINISHED error
func NewQuizFinishedError() *AppError {
	return &AppError{
		Code:    ErrCodeQuizFinished,
		Message: "All questions have been answered. Key `stop' to see your score.",
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "Could not save data to file",
		Err:     err,
	}
}
