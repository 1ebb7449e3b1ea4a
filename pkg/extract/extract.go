package extract

import (
	"regexp"
	"strings"
)

// siblingTail matches the start of the next sibling declaration
// (or end of input) after a closing brace. Go's regexp has no
// lookahead, so the tail is consumed by the match but excluded
// from the body capture group.
const siblingTail = `\s*(?:function\s|const\s|let\s|var\s|` +
	`class\s|export\s|\z)`

// Body returns the body text of the named declaration inside
// blob, excluding the enclosing braces. It tries a function-form
// regex, then a bound-constant-form regex, then falls back to
// brace counting. If no declaration with that name exists, it
// returns the empty string. It never fails and is safe to call
// concurrently on the same blob.
func Body(blob, name string) string {
	seg, _ := Locate(blob, name)
	return seg.Text
}

// Locate returns the body segment of the named declaration and
// whether a declaration was found. The first match of the first
// succeeding tier wins; ties between declarations sharing a name
// resolve to the earliest textual occurrence within that tier.
func Locate(blob, name string) (Segment, bool) {
	if name == "" {
		return Segment{}, false
	}

	if seg, ok := matchFunctionForm(blob, name); ok {
		return seg, true
	}
	if seg, ok := matchBoundConstantForm(blob, name); ok {
		return seg, true
	}
	return braceCount(blob, name)
}

// Declared returns true if a declaration header for the given
// name appears anywhere in the blob, regardless of whether its
// body can be extracted.
func Declared(blob, name string) bool {
	if name == "" {
		return false
	}
	return headerPattern(name).MatchString(blob)
}

// matchFunctionForm attempts the fast single-pass regex for a
// keyword-prefixed function declaration. The non-greedy body
// capture can end early when nested braces close at the same
// depth before the true end; braceCount covers those cases.
func matchFunctionForm(blob, name string) (Segment, bool) {
	re := regexp.MustCompile(
		`(?s)function\s+` + regexp.QuoteMeta(name) +
			`\s*\([^)]*\)\s*\{(.*?)\}` + siblingTail,
	)
	return submatchSegment(re, blob)
}

// matchBoundConstantForm attempts the fast regex for a constant
// bound to a closure, covering arrow bodies and classic function
// expressions.
func matchBoundConstantForm(blob, name string) (Segment, bool) {
	quoted := regexp.QuoteMeta(name)
	re := regexp.MustCompile(
		`(?s)(?:const|let|var)\s+` + quoted +
			`\s*=\s*(?:async\s+)?` +
			`(?:function\s*\([^)]*\)|\([^)]*\)\s*=>|` +
			`[A-Za-z_$][\w$]*\s*=>)` +
			`\s*\{(.*?)\}` + siblingTail,
	)
	return submatchSegment(re, blob)
}

// submatchSegment converts the first capture group of the
// leftmost match into a Segment. Zero-length captures count as
// a miss so the brace-counting fallback gets its turn.
func submatchSegment(
	re *regexp.Regexp,
	blob string,
) (Segment, bool) {
	idx := re.FindStringSubmatchIndex(blob)
	if idx == nil || idx[2] < 0 {
		return Segment{}, false
	}

	start, end := idx[2], idx[3]
	if start == end {
		return Segment{}, false
	}

	return Segment{
		Text:  blob[start:end],
		Start: start,
		End:   end,
	}, true
}

// headerPattern matches any recognized declaration header for
// the given name: function form, constant binding, or class.
func headerPattern(name string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(name)
	return regexp.MustCompile(
		`(?:function\s+` + quoted + `\b|` +
			`(?:const|let|var)\s+` + quoted + `\s*=|` +
			`class\s+` + quoted + `\b)`,
	)
}

// braceCount is the structurally correct fallback: locate the
// declaration header, find the first opening brace after it,
// then scan forward with a signed depth counter. The body ends
// at the character where depth returns to zero.
func braceCount(blob, name string) (Segment, bool) {
	loc := headerPattern(name).FindStringIndex(blob)
	if loc == nil {
		return Segment{}, false
	}

	open := strings.IndexByte(blob[loc[1]:], '{')
	if open < 0 {
		return Segment{}, false
	}
	open += loc[1]

	depth := 0
	for i := open; i < len(blob); i++ {
		switch blob[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return Segment{
					Text:  blob[open+1 : i],
					Start: open + 1,
					End:   i,
				}, true
			}
		}
	}

	// Unbalanced blob: the declaration exists but never
	// closes. Return everything after the opening brace.
	return Segment{
		Text:  blob[open+1:],
		Start: open + 1,
		End:   len(blob),
	}, true
}
