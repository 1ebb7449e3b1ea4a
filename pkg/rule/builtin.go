package rule

import (
	"fmt"
	"regexp"
	"strings"

	"digital.vasic.exercises/pkg/extract"
)

// checkContains checks that the subject contains the expected
// substring. Matching is case-sensitive because the subjects
// are code tokens.
func checkContains(cond Condition, text string) (bool, string) {
	expected, ok := cond.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	if strings.Contains(text, expected) {
		return true, fmt.Sprintf("contains '%s'", expected)
	}

	return false, fmt.Sprintf(
		"does not contain '%s'", expected,
	)
}

// checkNotContains checks that the subject does not contain the
// forbidden substring.
func checkNotContains(
	cond Condition,
	text string,
) (bool, string) {
	forbidden, ok := cond.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	if strings.Contains(text, forbidden) {
		return false, fmt.Sprintf(
			"still contains '%s'", forbidden,
		)
	}

	return true, fmt.Sprintf(
		"does not contain '%s'", forbidden,
	)
}

// checkContainsAny checks that the subject contains at least
// one of the expected substrings.
func checkContainsAny(
	cond Condition,
	text string,
) (bool, string) {
	var values []string
	switch v := cond.Value.(type) {
	case string:
		values = strings.Split(v, ",")
	case []string:
		values = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	default:
		for _, item := range cond.Values {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	}

	for _, expected := range values {
		trimmed := strings.TrimSpace(expected)
		if strings.Contains(text, trimmed) {
			return true, fmt.Sprintf(
				"contains '%s'", trimmed,
			)
		}
	}

	return false, fmt.Sprintf(
		"does not contain any of: %v", values,
	)
}

// checkMatches checks that the subject matches the expected
// regular expression. An invalid pattern is an unmet condition
// rather than a fault, so a broken bank entry degrades to a
// failed rule.
func checkMatches(cond Condition, text string) (bool, string) {
	pattern, ok := cond.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Sprintf(
			"invalid pattern '%s': %v", pattern, err,
		)
	}

	if re.MatchString(text) {
		return true, fmt.Sprintf("matches '%s'", pattern)
	}

	return false, fmt.Sprintf(
		"does not match '%s'", pattern,
	)
}

// checkMinLength checks that the subject meets a minimum
// character length.
func checkMinLength(
	cond Condition,
	text string,
) (bool, string) {
	minLength, ok := toInt(cond.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	actual := len(text)
	if actual >= minLength {
		return true, fmt.Sprintf(
			"length %d >= %d", actual, minLength,
		)
	}

	return false, fmt.Sprintf(
		"length %d < %d", actual, minLength,
	)
}

// checkMinCount checks that the expected substring occurs at
// least Count times in the subject.
func checkMinCount(cond Condition, text string) (bool, string) {
	expected, ok := cond.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}
	if expected == "" {
		return false, "expected value is empty"
	}

	actual := strings.Count(text, expected)
	if actual >= cond.Count {
		return true, fmt.Sprintf(
			"'%s' occurs %d time(s), need %d",
			expected, actual, cond.Count,
		)
	}

	return false, fmt.Sprintf(
		"'%s' occurs %d time(s), need at least %d",
		expected, actual, cond.Count,
	)
}

// checkNotEmpty checks that the subject carries non-whitespace
// text. An extraction miss yields an empty subject, so this is
// how "declaration body exists" reads as a condition.
func checkNotEmpty(_ Condition, text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return false, "no matching code found"
	}
	return true, "code is present"
}

// checkDeclared checks that a declaration header for the named
// identifier appears in the subject. Unlike the other checks it
// is meant to run against the whole blob.
func checkDeclared(cond Condition, text string) (bool, string) {
	name, ok := cond.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	if extract.Declared(text, name) {
		return true, fmt.Sprintf("'%s' is declared", name)
	}

	return false, fmt.Sprintf(
		"'%s' is not declared", name,
	)
}

// --- helpers ---

// toInt converts an any value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}
