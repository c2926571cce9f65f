package parser

import (
	stderrors "errors"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/models"
)

const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixTag     Prefix = "t/"
)

var contactPrefixes = []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag}

var errNoFieldEdited = stderrors.New(commands.MessageNoFieldEdited)

func parseAddContact(body string) (commands.Command, error) {
	args := Tokenize(body, contactPrefixes...)
	if args.Preamble() != "" || !args.AllPresent(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) {
		return nil, errors.NewParseError(commands.UsageAddContact)
	}

	var fe fieldErrors
	name := required(&fe, args, PrefixName, ParseName)
	phone := required(&fe, args, PrefixPhone, ParsePhone)
	email := required(&fe, args, PrefixEmail, ParseEmail)
	address := required(&fe, args, PrefixAddress, ParseAddress)
	tags, err := ParseTags(args.AllValues(PrefixTag))
	fe.add(err)
	if err := fe.err(commands.UsageAddContact); err != nil {
		return nil, err
	}
	return commands.AddContact{Contact: models.NewContact(name, phone, email, address, tags)}, nil
}

func parseEditContact(body string) (commands.Command, error) {
	args := Tokenize(body, contactPrefixes...)
	index, err := ParseIndex(args.Preamble())
	if err != nil {
		return nil, errors.NewParseError(commands.UsageEditContact, err)
	}
	if !args.AnyPresent(contactPrefixes...) {
		return nil, errors.NewParseError(commands.UsageEditContact, errNoFieldEdited)
	}

	var fe fieldErrors
	edit := models.ContactEdit{
		Name:    optional(&fe, args, PrefixName, ParseName),
		Phone:   optional(&fe, args, PrefixPhone, ParsePhone),
		Email:   optional(&fe, args, PrefixEmail, ParseEmail),
		Address: optional(&fe, args, PrefixAddress, ParseAddress),
	}
	edit.Tags, err = parseTagsForEdit(args.AllValues(PrefixTag))
	fe.add(err)
	if err := fe.err(commands.UsageEditContact); err != nil {
		return nil, err
	}
	return commands.EditContact{Index: index, Edit: edit}, nil
}

// parseTagsForEdit returns nil when no t/ was given, and an empty set when the
// only t/ is empty, which clears every tag.
func parseTagsForEdit(values []string) (*[]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		empty := []string{}
		return &empty, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

func parseDeleteContact(body string) (commands.Command, error) {
	index, err := ParseIndex(body)
	if err != nil {
		return nil, errors.NewParseError(commands.UsageDeleteContact, err)
	}
	return commands.DeleteContact{Index: index}, nil
}

func parseFindContacts(body string) (commands.Command, error) {
	keywords, err := parseKeywords(body, commands.UsageFindContacts)
	if err != nil {
		return nil, err
	}
	return commands.FindContacts{Keywords: keywords}, nil
}

func parseListContacts(string) (commands.Command, error)  { return commands.ListContacts{}, nil }
func parseClearContacts(string) (commands.Command, error) { return commands.ClearContacts{}, nil }
