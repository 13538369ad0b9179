package quiz

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCourse     = errors.New("unknown course")
	ErrNotFound          = errors.New("question not found")
	ErrDuplicateQuestion = errors.New("question text already exists")
	ErrStoreUnavailable  = errors.New("store unavailable")

	ErrInvalidState  = errors.New("operation not valid in current session state")
	ErrNotCurrent    = errors.New("answer does not target the current question")
	ErrNoQuestions   = errors.New("course has no questions")
	ErrUnanswered    = errors.New("current question has no recorded answer")
	ErrWrongPassword = errors.New("wrong admin password")
)

// ValidationError reports which required fields were missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid question: " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
