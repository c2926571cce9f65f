package models

import (
	"fmt"
	"slices"
	"strings"
)

// Contact is a person in the address book. Two contacts are the same record
// when every field matches.
type Contact struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
}

// NewContact normalizes tags into a sorted set.
func NewContact(name, phone, email, address string, tags []string) Contact {
	return Contact{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    TagSet(tags),
	}
}

// TagSet sorts and de-duplicates tags. The result is never nil.
func TagSet(tags []string) []string {
	out := make([]string, 0, len(tags))
	out = append(out, tags...)
	slices.Sort(out)
	return slices.Compact(out)
}

func (c Contact) Equal(other Contact) bool {
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		c.Address == other.Address &&
		slices.Equal(TagSet(c.Tags), TagSet(other.Tags))
}

func (c Contact) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Phone: %s Email: %s Address: %s", c.Name, c.Phone, c.Email, c.Address)
	if len(c.Tags) > 0 {
		sb.WriteString(" Tags: ")
		for _, t := range c.Tags {
			fmt.Fprintf(&sb, "[%s]", t)
		}
	}
	return sb.String()
}

// ContactEdit holds the fields an edit command changes. Nil means unchanged.
type ContactEdit struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Tags    *[]string
}

// IsAnyFieldEdited reports whether the edit changes anything.
func (e ContactEdit) IsAnyFieldEdited() bool {
	return e.Name != nil || e.Phone != nil || e.Email != nil || e.Address != nil || e.Tags != nil
}

// Apply returns a copy of c with the edited fields replaced.
func (e ContactEdit) Apply(c Contact) Contact {
	out := NewContact(c.Name, c.Phone, c.Email, c.Address, c.Tags)
	if e.Name != nil {
		out.Name = *e.Name
	}
	if e.Phone != nil {
		out.Phone = *e.Phone
	}
	if e.Email != nil {
		out.Email = *e.Email
	}
	if e.Address != nil {
		out.Address = *e.Address
	}
	if e.Tags != nil {
		out.Tags = TagSet(*e.Tags)
	}
	return out
}
