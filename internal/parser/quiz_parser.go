package parser

import (
	"fmt"
	"strings"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
)

func parseStartQuiz(body string) (commands.Command, error) {
	index, err := ParseIndex(body)
	if err != nil {
		return nil, errors.NewParseError(commands.UsageStartQuiz, err)
	}
	return commands.StartQuiz{SetIndex: index}, nil
}

// parseAnswerQuiz accepts "c" for a correct answer and "w" for a wrong one.
func parseAnswerQuiz(body string) (commands.Command, error) {
	switch strings.ToLower(strings.TrimSpace(body)) {
	case "c":
		return commands.AnswerQuiz{Correct: true}, nil
	case "w":
		return commands.AnswerQuiz{Correct: false}, nil
	default:
		return nil, errors.NewParseError(commands.UsageAnswerQuiz, fmt.Errorf("answer %q is not c or w", body))
	}
}

func parseContinueQuiz(string) (commands.Command, error) { return commands.ContinueQuiz{}, nil }
func parseRefreshQuiz(string) (commands.Command, error)  { return commands.RefreshQuiz{}, nil }
func parseCancelQuiz(string) (commands.Command, error)   { return commands.CancelQuiz{}, nil }
func parseStopQuiz(string) (commands.Command, error)     { return commands.StopQuiz{}, nil }

func parseShowScore(body string) (commands.Command, error) {
	index, err := ParseIndex(body)
	if err != nil {
		return nil, errors.NewParseError(commands.UsageShowScore, err)
	}
	return commands.ShowScore{SetIndex: index}, nil
}
