package generate

import "errors"

// ErrNoJSON is returned when a completion response contains no JSON
// object at all.
var ErrNoJSON = errors.New("no JSON object found in response")

// extractJSON returns the first balanced top-level JSON object in s.
//
// Models often wrap their JSON in prose or markdown fences, so the
// response cannot be parsed as-is. Scanning with a bracket-depth
// counter (string- and escape-aware) picks out the object without
// being confused by stray braces in surrounding prose. Braces inside
// JSON string values are counted correctly; prose before the object
// that itself contains a '{' will still mislead the scanner if it
// opens before the real payload.
func extractJSON(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", ErrNoJSON
}
