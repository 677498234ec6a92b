package validate

import "unicode"

// PasswordPolicy controls the composition rules enforced by Password.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy requires 8+ characters with at least one
// uppercase letter, lowercase letter, digit and special character.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}
}

// Password enforces the given composition policy.
func Password(policy PasswordPolicy) Validator {
	return func(value string) error {
		if policy.MinLength > 0 && len(value) < policy.MinLength {
			return Rejectf("password must be at least %d characters long", policy.MinLength)
		}
		var upper, lower, digit, special bool
		for _, r := range value {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			default:
				special = true
			}
		}
		switch {
		case policy.RequireUppercase && !upper:
			return Reject("password must contain an uppercase letter")
		case policy.RequireLowercase && !lower:
			return Reject("password must contain a lowercase letter")
		case policy.RequireDigit && !digit:
			return Reject("password must contain a digit")
		case policy.RequireSpecial && !special:
			return Reject("password must contain a special character")
		}
		return nil
	}
}

// PIN accepts numeric codes of minDigits to maxDigits digits.
func PIN(minDigits, maxDigits int) Validator {
	return func(value string) error {
		if !digitsPattern.MatchString(value) {
			return Reject("PIN must contain digits only")
		}
		if len(value) < minDigits || len(value) > maxDigits {
			return Rejectf("PIN must be %d to %d digits", minDigits, maxDigits)
		}
		return nil
	}
}

// APIKey accepts 32-128 characters of letters, digits, '-' and '_'.
func APIKey() Validator {
	return Match(apiKeyPattern, "invalid API key format")
}

// Token accepts base64url/JWT-style tokens.
func Token() Validator {
	return Match(tokenPattern, "invalid token format")
}
