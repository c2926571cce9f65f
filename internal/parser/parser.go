// Package parser turns command lines into commands.Command values.
//
// Parsing is purely syntactic: indices are checked to be positive integers,
// but whether they address a displayed record is decided when the command
// executes.
package parser

import (
	stderrors "errors"
	"strings"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
)

// parseFunc parses the body of a command line, the text after its keyword.
type parseFunc func(body string) (commands.Command, error)

func joinErrors(errs []error) error {
	return stderrors.Join(errs...)
}

// fieldErrors accumulates failures of independently parsed fields.
type fieldErrors []error

func (fe *fieldErrors) add(err error) {
	if err != nil {
		*fe = append(*fe, err)
	}
}

// required parses the last value of p, recording any failure in fe.
func required[T any](fe *fieldErrors, args ArgumentMultimap, p Prefix, parse func(string) (T, error)) T {
	v, _ := args.Value(p)
	out, err := parse(v)
	fe.add(err)
	return out
}

// optional parses the last value of p, or returns nil when p is absent.
func optional[T any](fe *fieldErrors, args ArgumentMultimap, p Prefix, parse func(string) (T, error)) *T {
	v, ok := args.Value(p)
	if !ok {
		return nil
	}
	out, err := parse(v)
	if err != nil {
		fe.add(err)
		return nil
	}
	return &out
}

// err reports every recorded failure as one PARSE_FAILURE.
func (fe fieldErrors) err(usage string) error {
	if len(fe) == 0 {
		return nil
	}
	return errors.NewParseError(usage, fe...)
}

// splitKeyword separates the first word of s from the trimmed rest.
func splitKeyword(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

// parseKeywords splits a find body into keywords.
func parseKeywords(body, usage string) ([]string, error) {
	keywords := strings.Fields(body)
	if len(keywords) == 0 {
		return nil, errors.NewParseError(usage, stderrors.New("no keywords given"))
	}
	return keywords, nil
}
