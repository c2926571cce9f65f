package models

import "strings"

// containsWordIgnoreCase reports whether sentence has word as a whole word.
func containsWordIgnoreCase(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	for _, w := range strings.Fields(sentence) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

func anyKeyword(keywords []string, fields ...string) bool {
	for _, k := range keywords {
		for _, f := range fields {
			if containsWordIgnoreCase(f, k) {
				return true
			}
		}
	}
	return false
}

// NameContainsKeywords matches contacts whose name holds any keyword.
func NameContainsKeywords(keywords []string) func(Contact) bool {
	return func(c Contact) bool {
		return anyKeyword(keywords, c.Name)
	}
}

// TaskContainsKeywords matches tasks whose title or description holds any keyword.
func TaskContainsKeywords(keywords []string) func(Task) bool {
	return func(t Task) bool {
		if t.Description != nil {
			return anyKeyword(keywords, t.Title, *t.Description)
		}
		return anyKeyword(keywords, t.Title)
	}
}

// SetNameContainsKeywords matches flashcard sets whose name holds any keyword.
func SetNameContainsKeywords(keywords []string) func(*FlashcardSet) bool {
	return func(s *FlashcardSet) bool {
		return anyKeyword(keywords, s.Name)
	}
}
