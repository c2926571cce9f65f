package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument value, e.g. "n/".
type Prefix string

// ArgumentMultimap maps prefixes to the values that followed them, in order.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
	order    []Prefix
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values. A prefix only
// counts when it opens the string or follows whitespace; anything else that
// looks like a prefix is literal text of the surrounding value.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		if _, seen := m.values[pos.prefix]; !seen {
			m.order = append(m.order, pos.prefix)
		}
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || isSpace(args[at-1]) {
				positions = append(positions, prefixPosition{prefix: p, start: at})
			}
			from = at + 1
		}
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].start < positions[j].start
	})
	return dropOverlaps(positions)
}

// dropOverlaps keeps the first prefix found at a position and discards prefixes
// that begin inside an earlier prefix marker (e.g. "t/" inside "dt/").
func dropOverlaps(positions []prefixPosition) []prefixPosition {
	out := positions[:0]
	lastEnd := -1
	for _, p := range positions {
		if p.start < lastEnd {
			continue
		}
		out = append(out, p)
		lastEnd = p.start + len(p.prefix)
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Preamble is the text before the first recognized prefix.
func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	vs := m.values[p]
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

func (m ArgumentMultimap) AllPresent(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

func (m ArgumentMultimap) AnyPresent(ps ...Prefix) bool {
	for _, p := range ps {
		if m.Has(p) {
			return true
		}
	}
	return false
}

// String reassembles the arguments so that tokenizing the result with the
// same prefixes yields an equal map.
func (m ArgumentMultimap) String() string {
	var parts []string
	if m.preamble != "" {
		parts = append(parts, m.preamble)
	}
	for _, p := range m.order {
		for _, v := range m.values[p] {
			parts = append(parts, string(p)+v)
		}
	}
	return strings.Join(parts, " ")
}
