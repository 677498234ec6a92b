package validate

import "strings"

var affirmatives = map[string]struct{}{
	"y": {}, "yes": {}, "true": {}, "t": {}, "1": {}, "on": {},
	"ok": {}, "sure": {}, "agree": {}, "confirm": {}, "accept": {},
	"consent": {}, "ack": {}, "acknowledge": {}, "continue": {},
	"proceed": {}, "go": {},
}

var negatives = map[string]struct{}{
	"n": {}, "no": {}, "false": {}, "f": {}, "0": {}, "off": {},
	"cancel": {}, "decline": {}, "deny": {}, "abort": {},
}

// ParseBool maps a confirmation spelling to its boolean value. The second
// return reports whether the spelling was recognized at all.
func ParseBool(value string) (bool, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if _, ok := affirmatives[v]; ok {
		return true, true
	}
	if _, ok := negatives[v]; ok {
		return false, true
	}
	return false, false
}

func isAffirmative(value string) bool {
	b, ok := ParseBool(value)
	return ok && b
}

func isNegative(value string) bool {
	b, ok := ParseBool(value)
	return ok && !b
}
