package parser

import (
	stderrors "errors"
	"strings"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/models"
)

const (
	PrefixSetName  Prefix = "n/"
	PrefixQuestion Prefix = "q/"
	PrefixAnswer   Prefix = "a/"
)

// parseFlashcardSets dispatches "flset <sub-command> ...".
func parseFlashcardSets(body string) (commands.Command, error) {
	if body == "" {
		return nil, errors.NewParseError(commands.UsageFlashcardSets, stderrors.New("missing sub-command"))
	}
	sub, rest := splitKeyword(body)
	switch sub {
	case "add":
		return parseAddFlashcardSet(rest)
	case "delete":
		index, err := ParseIndex(rest)
		if err != nil {
			return nil, errors.NewParseError(commands.UsageDeleteFlashcardSet, err)
		}
		return commands.DeleteFlashcardSet{Index: index}, nil
	case "find":
		keywords, err := parseKeywords(rest, commands.UsageFindFlashcardSets)
		if err != nil {
			return nil, err
		}
		return commands.FindFlashcardSets{Keywords: keywords}, nil
	case "list":
		return commands.ListFlashcardSets{}, nil
	case "view":
		index, err := ParseIndex(rest)
		if err != nil {
			return nil, errors.NewParseError(commands.UsageViewFlashcardSet, err)
		}
		return commands.ViewFlashcardSet{Index: index}, nil
	default:
		return nil, errors.NewUnknownCommandError("flset " + sub)
	}
}

func parseAddFlashcardSet(body string) (commands.Command, error) {
	args := Tokenize(body, PrefixSetName)
	if args.Preamble() != "" || !args.Has(PrefixSetName) {
		return nil, errors.NewParseError(commands.UsageAddFlashcardSet)
	}
	var fe fieldErrors
	name := required(&fe, args, PrefixSetName, ParseName)
	if err := fe.err(commands.UsageAddFlashcardSet); err != nil {
		return nil, err
	}
	return commands.AddFlashcardSet{Name: name}, nil
}

// parseFlashcards dispatches "fl <sub-command> ...".
func parseFlashcards(body string) (commands.Command, error) {
	if body == "" {
		return nil, errors.NewParseError(commands.UsageFlashcards, stderrors.New("missing sub-command"))
	}
	sub, rest := splitKeyword(body)
	switch sub {
	case "add":
		return parseAddFlashcard(rest)
	case "edit":
		return parseEditFlashcard(rest)
	case "delete":
		return parseDeleteFlashcard(rest)
	default:
		return nil, errors.NewUnknownCommandError("fl " + sub)
	}
}

func parseAddFlashcard(body string) (commands.Command, error) {
	args := Tokenize(body, PrefixQuestion, PrefixAnswer)
	if !args.AllPresent(PrefixQuestion, PrefixAnswer) {
		return nil, errors.NewParseError(commands.UsageAddFlashcard)
	}

	var fe fieldErrors
	setIndex, err := ParseIndex(args.Preamble())
	fe.add(err)
	card := models.Flashcard{
		Question: required(&fe, args, PrefixQuestion, ParseQuestion),
		Answer:   required(&fe, args, PrefixAnswer, ParseAnswer),
	}
	if err := fe.err(commands.UsageAddFlashcard); err != nil {
		return nil, err
	}
	return commands.AddFlashcard{SetIndex: setIndex, Flashcard: card}, nil
}

func parseEditFlashcard(body string) (commands.Command, error) {
	args := Tokenize(body, PrefixQuestion, PrefixAnswer)
	setIndex, cardIndex, err := parseIndexPair(args.Preamble())
	if err != nil {
		return nil, errors.NewParseError(commands.UsageEditFlashcard, err)
	}
	if !args.AnyPresent(PrefixQuestion, PrefixAnswer) {
		return nil, errors.NewParseError(commands.UsageEditFlashcard, errNoFieldEdited)
	}

	var fe fieldErrors
	edit := models.FlashcardEdit{
		Question: optional(&fe, args, PrefixQuestion, ParseQuestion),
		Answer:   optional(&fe, args, PrefixAnswer, ParseAnswer),
	}
	if err := fe.err(commands.UsageEditFlashcard); err != nil {
		return nil, err
	}
	return commands.EditFlashcard{SetIndex: setIndex, CardIndex: cardIndex, Edit: edit}, nil
}

func parseDeleteFlashcard(body string) (commands.Command, error) {
	setIndex, cardIndex, err := parseIndexPair(body)
	if err != nil {
		return nil, errors.NewParseError(commands.UsageDeleteFlashcard, err)
	}
	return commands.DeleteFlashcard{SetIndex: setIndex, CardIndex: cardIndex}, nil
}

// parseIndexPair parses "SET_INDEX CARD_INDEX".
func parseIndexPair(s string) (models.Index, models.Index, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return models.Index{}, models.Index{}, stderrors.New("expected SET_INDEX CARD_INDEX")
	}
	setIndex, err := ParseIndex(fields[0])
	if err != nil {
		return models.Index{}, models.Index{}, err
	}
	cardIndex, err := ParseIndex(fields[1])
	if err != nil {
		return models.Index{}, models.Index{}, err
	}
	return setIndex, cardIndex, nil
}
