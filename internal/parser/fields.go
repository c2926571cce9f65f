package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/studybananas/internal/models"
)

var validate = validator.New()

var namePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// MessageInvalidIndex is the cause attached when an index preamble is malformed.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a 1-based positive integer. Bounds are checked later
// against the displayed list.
func ParseIndex(s string) (models.Index, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil || n == 0 {
		return models.Index{}, fmt.Errorf("%s: %q", MessageInvalidIndex, s)
	}
	return models.IndexFromOneBased(int(n)), nil
}

func fieldError(field, value, rule string) error {
	return fmt.Errorf("%s %q %s", field, value, rule)
}

// ParseName accepts alphanumeric characters and spaces, starting with a
// non-space.
func ParseName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !namePattern.MatchString(s) {
		return "", fieldError("name", s, "should only contain alphanumeric characters and spaces, and it should not be blank")
	}
	return s, nil
}

func ParsePhone(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,numeric,min=3"); err != nil || strings.ContainsAny(s, "+-.") {
		return "", fieldError("phone", s, "should only contain numbers, and it should be at least 3 digits long")
	}
	return s, nil
}

func ParseEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,email"); err != nil {
		return "", fieldError("email", s, "should be of the format local-part@domain")
	}
	return s, nil
}

func ParseAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fieldError("address", s, "can take any values, and it should not be blank")
	}
	return s, nil
}

func ParseTag(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,alphanum"); err != nil {
		return "", fieldError("tag", s, "should be alphanumeric")
	}
	return s, nil
}

// ParseTags parses every tag, reporting all failures together.
func ParseTags(values []string) ([]string, error) {
	tags := make([]string, 0, len(values))
	var errs []error
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tags = append(tags, t)
	}
	if len(errs) > 0 {
		return nil, joinErrors(errs)
	}
	return models.TagSet(tags), nil
}

// parseRequiredText trims s and rejects blank values.
func parseRequiredText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required"); err != nil {
		return "", fieldError(field, s, "should not be blank")
	}
	return s, nil
}

func ParseTitle(s string) (string, error)    { return parseRequiredText("title", s) }
func ParseQuestion(s string) (string, error) { return parseRequiredText("question", s) }
func ParseAnswer(s string) (string, error)   { return parseRequiredText("answer", s) }

// ParseDescription returns nil for an empty description.
func ParseDescription(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseDateTime parses a local date-time in models.DateTimeLayout.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(models.DateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fieldError("date-time", s, "should be of the format YYYY-MM-DD HH:MM")
	}
	return t, nil
}

// ParseDuration parses a positive number of minutes.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil || n == 0 {
		return 0, fieldError("duration", s, "should be a positive number of minutes")
	}
	return time.Duration(n) * time.Minute, nil
}
