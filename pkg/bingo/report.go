package bingo

import (
	"fmt"
	"io"
)

// WriteReport writes the human-readable bingo card: collected patterns,
// score out of the catalogue size, and a closing message. The exact text
// is presentation only, not a machine contract.
func (c *Card) WriteReport(w io.Writer) {
	fmt.Fprintf(w, "\n=== API BINGO CARD ===\n")
	fmt.Fprintln(w, "Collected patterns:")
	for _, name := range c.Found() {
		fmt.Fprintf(w, "  ✓ %s\n", name)
	}
	fmt.Fprintf(w, "\nScore: %d/%d\n", c.Score(), len(c.patterns))
	if c.IsBingo() {
		fmt.Fprintln(w, "🎉 BINGO! You've mastered API inconsistency!")
	} else {
		fmt.Fprintln(w, "Keep trying! More inconsistent APIs await!")
	}
}
