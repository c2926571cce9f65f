package parser

import (
	stderrors "errors"
	"strings"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/models"
)

const (
	PrefixTitle       Prefix = "t/"
	PrefixDescription Prefix = "d/"
	PrefixDateTime    Prefix = "dt/"
	PrefixDuration    Prefix = "dur/"
)

var taskPrefixes = []Prefix{PrefixTitle, PrefixDescription, PrefixDateTime, PrefixDuration}

// parseSchedule dispatches "task <sub-command> ...".
func parseSchedule(body string) (commands.Command, error) {
	if body == "" {
		return nil, errors.NewParseError(commands.UsageSchedule, stderrors.New("missing sub-command"))
	}
	sub, rest := splitKeyword(body)
	switch sub {
	case "add":
		return parseAddTask(rest)
	case "edit":
		return parseEditTask(body)
	case "delete":
		return parseDeleteTask(rest)
	case "find":
		return parseFindTasks(rest)
	case "list":
		return commands.ListTasks{}, nil
	default:
		return nil, errors.NewUnknownCommandError("task " + sub)
	}
}

func parseAddTask(body string) (commands.Command, error) {
	args := Tokenize(body, taskPrefixes...)
	if args.Preamble() != "" || !args.Has(PrefixTitle) {
		return nil, errors.NewParseError(commands.UsageAddTask)
	}

	var fe fieldErrors
	task := models.Task{
		Title:    required(&fe, args, PrefixTitle, ParseTitle),
		DateTime: optional(&fe, args, PrefixDateTime, ParseDateTime),
		Duration: optional(&fe, args, PrefixDuration, ParseDuration),
	}
	if d, ok := args.Value(PrefixDescription); ok {
		task.Description = ParseDescription(d)
	}
	if err := fe.err(commands.UsageAddTask); err != nil {
		return nil, err
	}
	return commands.AddTask{Task: task}, nil
}

// parseEditTask parses "edit INDEX REST". Only the first two single spaces
// split the input; REST is tokenized as given.
func parseEditTask(body string) (commands.Command, error) {
	parts := strings.SplitN(body, " ", 3)
	if len(parts) < 3 {
		return nil, errors.NewParseError(commands.UsageEditTask, stderrors.New("expected edit INDEX FIELDS"))
	}
	index, err := ParseIndex(parts[1])
	if err != nil {
		return nil, errors.NewParseError(commands.UsageEditTask, err)
	}

	args := Tokenize(parts[2], taskPrefixes...)
	if !args.AnyPresent(taskPrefixes...) {
		return nil, errors.NewParseError(commands.UsageEditTask, errNoFieldEdited)
	}

	var fe fieldErrors
	edit := models.TaskEdit{
		Title:       optional(&fe, args, PrefixTitle, ParseTitle),
		Description: optional(&fe, args, PrefixDescription, parseEditedDescription),
		DateTime:    optional(&fe, args, PrefixDateTime, ParseDateTime),
		Duration:    optional(&fe, args, PrefixDuration, ParseDuration),
	}
	if err := fe.err(commands.UsageEditTask); err != nil {
		return nil, err
	}
	return commands.EditTask{Index: index, Edit: edit}, nil
}

// parseEditedDescription rejects an empty description, which cannot express
// a change.
func parseEditedDescription(s string) (string, error) {
	return parseRequiredText("description", s)
}

func parseDeleteTask(body string) (commands.Command, error) {
	index, err := ParseIndex(body)
	if err != nil {
		return nil, errors.NewParseError(commands.UsageDeleteTask, err)
	}
	return commands.DeleteTask{Index: index}, nil
}

func parseFindTasks(body string) (commands.Command, error) {
	keywords, err := parseKeywords(body, commands.UsageFindTasks)
	if err != nil {
		return nil, err
	}
	return commands.FindTasks{Keywords: keywords}, nil
}
