package normalize

// Token sets for boolean-ish fields. Anything outside both sets is unknown.
var (
	truthyTokens = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "1": true}
	falsyTokens  = map[string]bool{"false": true, "f": true, "no": true, "n": true, "0": true}
)

// ParseBoolish interprets loose yes/no encodings as a tri-state boolean.
// Returns nil for missing or unrecognized input; never errors.
func ParseBoolish(raw string) *bool {
	s := Text(raw)
	if s == "" {
		return nil
	}
	if truthyTokens[s] {
		v := true
		return &v
	}
	if falsyTokens[s] {
		v := false
		return &v
	}
	return nil
}
