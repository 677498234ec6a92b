package validate

import (
	"strconv"
	"strings"
)

// Integer accepts whole numbers with an optional sign.
func Integer() Validator {
	return Match(integerPattern, "must be a whole number")
}

// PositiveInteger accepts whole numbers greater than zero.
func PositiveInteger() Validator {
	return func(value string) error {
		if !positiveIntegerPattern.MatchString(value) {
			return Reject("must be a positive whole number")
		}
		n, err := strconv.Atoi(strings.TrimPrefix(value, "+"))
		if err != nil {
			return Reject("must be a positive whole number")
		}
		if n <= 0 {
			return Reject("must be greater than zero")
		}
		return nil
	}
}

// NegativeInteger accepts whole numbers less than zero.
func NegativeInteger() Validator {
	return func(value string) error {
		if !negativeIntegerPattern.MatchString(value) {
			return Reject("must be a negative whole number")
		}
		n, err := strconv.Atoi(value)
		if err != nil || n >= 0 {
			return Reject("must be less than zero")
		}
		return nil
	}
}

// Float accepts decimal numbers with an optional sign and fraction.
func Float() Validator {
	return Match(floatPattern, "must be a number")
}

// Range accepts numbers within [min, max]; the inclusive flags turn either
// bound into a strict one. Non-numeric input is rejected before the bounds
// are checked.
func Range(min, max float64, minInclusive, maxInclusive bool) Validator {
	return func(value string) error {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return Reject("must be a number")
		}
		if minInclusive && n < min || !minInclusive && n <= min {
			return Rejectf("must be greater than %s%v", orEqual(minInclusive), min)
		}
		if maxInclusive && n > max || !maxInclusive && n >= max {
			return Rejectf("must be less than %s%v", orEqual(maxInclusive), max)
		}
		return nil
	}
}

func orEqual(inclusive bool) string {
	if inclusive {
		return "or equal to "
	}
	return ""
}

// Percentage accepts values from 0 to 100 with an optional '%' suffix.
func Percentage() Validator {
	return Match(percentagePattern, "must be a percentage between 0 and 100")
}

// Year accepts four-digit years within [min, max].
func Year(min, max int) Validator {
	return func(value string) error {
		if !digitsPattern.MatchString(value) || len(value) != 4 {
			return Reject("must be a four-digit year")
		}
		y, _ := strconv.Atoi(value)
		if y < min || y > max {
			return Rejectf("year must be between %d and %d", min, max)
		}
		return nil
	}
}

// Age accepts whole numbers within [min, max].
func Age(min, max int) Validator {
	return func(value string) error {
		if !digitsPattern.MatchString(value) {
			return Reject("must be a whole number")
		}
		a, _ := strconv.Atoi(value)
		if a < min || a > max {
			return Rejectf("age must be between %d and %d", min, max)
		}
		return nil
	}
}
