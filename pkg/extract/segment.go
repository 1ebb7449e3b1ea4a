// Package extract locates the body text of a single named
// declaration inside a compiled source blob. It is a heuristic,
// raw-text matcher with a tiered strategy: fast regex paths for
// the common declaration shapes, then a brace-counting fallback
// that is structurally correct with respect to nesting. It is
// deliberately not a parser.
package extract

// Segment is a substring of a source blob together with its
// [Start, End) offsets. Segments are created for the duration
// of one rule batch and never cached across blobs.
type Segment struct {
	// Text is the extracted body, excluding the enclosing
	// braces.
	Text string

	// Start is the offset of the first body character in the
	// blob.
	Start int

	// End is the offset one past the last body character.
	End int
}

// Len returns the length of the segment text.
func (s Segment) Len() int {
	return len(s.Text)
}

// Empty returns true if the segment carries no text.
func (s Segment) Empty() bool {
	return len(s.Text) == 0
}
