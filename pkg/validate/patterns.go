package validate

import "regexp"

// Wire-format patterns shared by the validators. Usernames are shell-safe
// identifiers, slugs are URL path segments, emails use the usual RFC 5322
// working subset, phone numbers follow E.164 with per-country overrides.
var (
	usernameStrictPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)
	usernameRelaxedPattern = regexp.MustCompile(`^[\p{L}\p{N}_-]{3,32}$`)

	fullNamePattern = regexp.MustCompile(`^[\p{L}\s.'-]{3,64}$`)

	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

	urlPattern = regexp.MustCompile(`(?i)^(https?|ftp|file)://[\w-]+(\.[\w-]+)+([:/?#\[\]@!$&'()*+,;=\w.%~-]*)$`)

	// Windows drive paths or Unix absolute paths.
	filePathPattern = regexp.MustCompile(`^(?:[a-zA-Z]:\\(?:[\w. -]+\\)*[\w. -]+(?:\.\w+)?|(?:/[^/ ]*)+/?)$`)

	// Command lines without shell control characters or line breaks.
	commandPattern = regexp.MustCompile(`^[\w ./\\'"|&:=%$#*@!-]+$`)

	slugPattern = regexp.MustCompile(`^[a-z0-9-]{3,64}$`)

	integerPattern         = regexp.MustCompile(`^[+-]?\d+$`)
	positiveIntegerPattern = regexp.MustCompile(`^\+?\d+$`)
	negativeIntegerPattern = regexp.MustCompile(`^-\d+$`)

	floatPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

	percentagePattern = regexp.MustCompile(`^(100(\.0+)?|\d{1,2}(\.\d+)?)%?$`)

	booleanPattern   = regexp.MustCompile(`(?i)^(y(es)?|no?|true|false|t|f|1|0|on|off|ok|sure|agree|confirm|cancel)$`)
	yesNoPattern     = regexp.MustCompile(`(?i)^(y(es)?|no?)$`)
	trueFalsePattern = regexp.MustCompile(`(?i)^(true|false|t|f|1|0)$`)

	digitsPattern = regexp.MustCompile(`^\d+$`)
	apiKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{32,128}$`)
	tokenPattern  = regexp.MustCompile(`^[A-Za-z0-9_.=-]+$`)

	e164Pattern = regexp.MustCompile(`^\+\d{10,15}$`)

	// Country-specific mobile formats, keyed by ISO 3166-1 alpha-2 code.
	// Numbers not covered by a country entry fall back to strict E.164.
	countryPhonePatterns = map[string]*regexp.Regexp{
		"IR": regexp.MustCompile(`^(\+98|0)?9\d{9}$`),
		"US": regexp.MustCompile(`^(\+1)?[2-9]\d{2}[2-9]\d{6}$`),
		"UK": regexp.MustCompile(`^(\+44|0)7\d{9}$`),
	}
)

// Match rejects values that do not match re, reporting reason.
func Match(re *regexp.Regexp, reason string) Validator {
	return func(value string) error {
		if !re.MatchString(value) {
			return Reject(reason)
		}
		return nil
	}
}
