package bingo

import "sort"

// bingoThreshold is how many distinct patterns it takes to win.
const bingoThreshold = 5

// Card accumulates the error shape patterns found across a session. A Card
// is not safe for concurrent use; callers checking responses from multiple
// goroutines must synchronize externally.
type Card struct {
	patterns []Pattern
	found    map[string]struct{}
}

// NewCard creates a card over the fixed reference catalogue with nothing
// collected yet.
func NewCard() *Card {
	return &Card{
		patterns: Catalogue(),
		found:    make(map[string]struct{}),
	}
}

// Check reports which catalogue patterns the response satisfies, in
// catalogue order, and records them on the card. Absent keys, wrong kinds
// and malformed nesting simply fail to match: Check is total over any
// response map, including nil.
func (c *Card) Check(response map[string]any) []string {
	var matched []string

	for _, p := range c.patterns {
		actual, ok := response[p.Name]
		if !ok {
			continue
		}
		if p.Shape.matches(actual) {
			matched = append(matched, p.Name)
			c.found[p.Name] = struct{}{}
		}
	}

	return matched
}

// Score returns how many distinct patterns have been collected so far.
func (c *Card) Score() int {
	return len(c.found)
}

// IsBingo reports whether the card has reached the winning threshold.
func (c *Card) IsBingo() bool {
	return c.Score() >= bingoThreshold
}

// Found returns the collected pattern names sorted alphabetically. The
// slice is always non-nil.
func (c *Card) Found() []string {
	names := make([]string, 0, len(c.found))
	for name := range c.found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
