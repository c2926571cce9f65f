package parser

import (
	stderrors "errors"
	"strings"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
)

// QuizState reports whether a quiz currently holds the command lock.
type QuizState interface {
	IsQuizActive() bool
}

type route struct {
	domain commands.Domain
	parse  parseFunc
}

// quizAllowed are the only keywords accepted while a quiz is active.
var quizAllowed = map[string]bool{
	"ans":      true,
	"continue": true,
	"refresh":  true,
	"cancel":   true,
	"stop":     true,
}

// verbFirst lists, per nested domain keyword, the sub-commands that may also
// be typed before it, so "list task" reads as "task list".
var verbFirst = map[string]map[string]bool{
	"task":  {"add": true, "edit": true, "delete": true, "find": true, "list": true},
	"flset": {"add": true, "delete": true, "find": true, "list": true, "view": true},
	"fl":    {"add": true, "edit": true, "delete": true},
}

// Router picks the domain parser for a command line by its first word.
type Router struct {
	state  QuizState
	routes map[string]route
}

// NewRouter creates a router guarded by state. state is consulted on every
// Parse call.
func NewRouter(state QuizState) *Router {
	r := &Router{state: state, routes: make(map[string]route)}

	r.register(commands.DomainGeneral, map[string]parseFunc{
		"help": parseHelp,
		"exit": parseExit,
	})
	r.register(commands.DomainContacts, map[string]parseFunc{
		"add":    parseAddContact,
		"edit":   parseEditContact,
		"delete": parseDeleteContact,
		"find":   parseFindContacts,
		"list":   parseListContacts,
		"clear":  parseClearContacts,
	})
	r.register(commands.DomainSchedule, map[string]parseFunc{
		"task": parseSchedule,
	})
	r.register(commands.DomainFlashcards, map[string]parseFunc{
		"flset": parseFlashcardSets,
		"fl":    parseFlashcards,
	})
	r.register(commands.DomainQuiz, map[string]parseFunc{
		"start":    parseStartQuiz,
		"ans":      parseAnswerQuiz,
		"continue": parseContinueQuiz,
		"refresh":  parseRefreshQuiz,
		"cancel":   parseCancelQuiz,
		"stop":     parseStopQuiz,
		"score":    parseShowScore,
	})
	return r
}

func (r *Router) register(d commands.Domain, parsers map[string]parseFunc) {
	for kw, p := range parsers {
		r.routes[kw] = route{domain: d, parse: p}
	}
}

// Domain classifies keyword.
func (r *Router) Domain(keyword string) (commands.Domain, bool) {
	rt, ok := r.routes[keyword]
	return rt.domain, ok
}

// Parse turns line into a command. Unknown keywords fail with UNKNOWN_COMMAND;
// while a quiz is active any keyword outside the quiz subset fails with
// QUIZ_LOCK_VIOLATION before its arguments are looked at. Nested domains take
// their sub-command on either side: "task list" and "list task" are the same.
func (r *Router) Parse(line string) (commands.Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errors.NewParseError(commands.UsageHelp, stderrors.New("empty command"))
	}

	keyword, body := splitKeyword(line)
	keyword, body = nestVerbFirst(keyword, body)
	rt, ok := r.routes[keyword]
	if !ok {
		return nil, errors.NewUnknownCommandError(keyword)
	}
	if r.state.IsQuizActive() && !quizAllowed[keyword] {
		return nil, errors.NewQuizLockError(keyword)
	}
	return rt.parse(body)
}

// nestVerbFirst rewrites "VERB NOUN REST" into keyword NOUN with body
// "VERB REST" when NOUN is a nested domain accepting VERB.
func nestVerbFirst(keyword, body string) (string, string) {
	noun, rest := splitKeyword(body)
	if !verbFirst[noun][keyword] {
		return keyword, body
	}
	if rest == "" {
		return noun, keyword
	}
	return noun, keyword + " " + rest
}

func parseHelp(string) (commands.Command, error) { return commands.Help{}, nil }
func parseExit(string) (commands.Command, error) { return commands.Exit{}, nil }
