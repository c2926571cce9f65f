package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/studybananas/internal/parser"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{" 12 ", 12, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1 2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			idx, err := parser.ParseIndex(tt.in)
			if !tt.ok {
				require.Error(t, err)
				assert.Contains(t, err.Error(), parser.MessageInvalidIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx.OneBased())
		})
	}
}

func TestFieldParsers(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (string, error)
		in    string
		ok    bool
	}{
		{"name", parser.ParseName, "Alice Pauline", true},
		{"name digits", parser.ParseName, "CS2103", true},
		{"name symbol", parser.ParseName, "R@chel", false},
		{"name blank", parser.ParseName, "   ", false},
		{"phone", parser.ParsePhone, "94351253", true},
		{"phone short", parser.ParsePhone, "12", false},
		{"phone letters", parser.ParsePhone, "12a45", false},
		{"phone signed", parser.ParsePhone, "+6512345", false},
		{"email", parser.ParseEmail, "alice@example.com", true},
		{"email no domain", parser.ParseEmail, "alice", false},
		{"address", parser.ParseAddress, "123, Jurong West Ave 6, #08-111", true},
		{"address blank", parser.ParseAddress, "", false},
		{"tag", parser.ParseTag, "friends", true},
		{"tag with space", parser.ParseTag, "best friend", false},
		{"question", parser.ParseQuestion, "What is a cell?", true},
		{"answer blank", parser.ParseAnswer, " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse(tt.in)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseTags_CollapsesAndReportsAll(t *testing.T) {
	tags, err := parser.ParseTags([]string{"friend", "classmate", "friend"})
	require.NoError(t, err)
	assert.Equal(t, []string{"classmate", "friend"}, tags)

	_, err = parser.ParseTags([]string{"ok", "not ok", "also bad!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"not ok"`)
	assert.Contains(t, err.Error(), `"also bad!"`)
}

func TestParseDateTime(t *testing.T) {
	got, err := parser.ParseDateTime("2024-03-01 14:05")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 14, 5, 0, 0, time.Local)))

	_, err = parser.ParseDateTime("2024-13-01 14:05")
	assert.Error(t, err)
	_, err = parser.ParseDateTime("tomorrow")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	got, err := parser.ParseDuration("90")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)

	for _, bad := range []string{"0", "-5", "1.5", "ten"} {
		_, err := parser.ParseDuration(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDescription(t *testing.T) {
	assert.Nil(t, parser.ParseDescription("  "))
	d := parser.ParseDescription(" chapter 3 ")
	require.NotNil(t, d)
	assert.Equal(t, "chapter 3", *d)
}
