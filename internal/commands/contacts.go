package commands

import (
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/models"
)

func addContact(m model.Model, c AddContact) (Result, error) {
	if err := m.AddContact(c.Contact); err != nil {
		return Result{}, err
	}
	return mutated(DomainContacts, MessageAddContact, c.Contact)
}

func editContact(m model.Model, c EditContact) (Result, error) {
	target, err := resolve(m.FilteredContacts(), c.Index, "person")
	if err != nil {
		return Result{}, err
	}
	edited := c.Edit.Apply(target)
	if err := m.SetContact(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateContactFilter(nil)
	return mutated(DomainContacts, MessageEditContact, edited)
}

func deleteContact(m model.Model, c DeleteContact) (Result, error) {
	target, err := resolve(m.FilteredContacts(), c.Index, "person")
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteContact(target); err != nil {
		return Result{}, err
	}
	return mutated(DomainContacts, MessageDeleteContact, target)
}

func findContacts(m model.Model, c FindContacts) (Result, error) {
	m.UpdateContactFilter(models.NameContainsKeywords(c.Keywords))
	return feedback(DomainContacts, MessagePersonsListed, len(m.FilteredContacts()))
}

func listContacts(m model.Model) (Result, error) {
	m.UpdateContactFilter(nil)
	return feedback(DomainContacts, MessageListContacts)
}

func clearContacts(m model.Model) (Result, error) {
	m.ResetContacts(nil)
	return mutated(DomainContacts, MessageClearContacts)
}
