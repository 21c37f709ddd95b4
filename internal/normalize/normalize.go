// Package normalize sanitizes a loose record tree before decoding.
//
// Two passes folded into one walk: blank strings become explicit nil at
// every depth, and fields whose key carries the numeric marker (an
// underscore) are parsed from localized text into float64. Marker
// conversion recurses through lists into their elements but never into
// plain nested mappings; numeric fields in the record format are always
// at most one list level deep.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Normalize sanitizes the tree rooted at m, in place. Running it on an
// already-normalized tree is a no-op: absent fields stay absent and
// already-numeric fields are not textual, so the marker pass skips them.
func Normalize(m map[string]any) {
	walkMap(m, true)
}

func walkMap(m map[string]any, markers bool) {
	for key, value := range m {
		switch v := value.(type) {
		case string:
			// Blank wins over the marker rule: a blank marker field is
			// absent, not zero.
			if isBlank(v) {
				m[key] = nil
			} else if markers && isMarkerKey(key) {
				m[key] = ParseNumber(v)
			}
		case map[string]any:
			// Nested mappings only get the blank rule.
			walkMap(v, false)
		case []any:
			walkList(v, markers)
		}
	}
}

func walkList(list []any, markers bool) {
	for i, elem := range list {
		switch v := elem.(type) {
		case string:
			if isBlank(v) {
				list[i] = nil
			}
		case map[string]any:
			walkMap(v, markers)
		case []any:
			walkList(v, markers)
		}
	}
}

func isMarkerKey(key string) bool {
	return strings.Contains(key, "_")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseNumber converts localized numeric text to a float64: whitespace is
// stripped, the comma decimal separator becomes a period and any percent
// signs are removed. Text left empty by the cleanup parses to zero.
// Anything else that still fails to parse yields NaN, which propagates to
// the caller as a data-quality fault rather than being defaulted.
func ParseNumber(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
