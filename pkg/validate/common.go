package validate

// Boolean accepts the usual confirmation spellings: yes/no, y/n,
// true/false, t/f, 1/0, on/off, ok, sure, agree, confirm, cancel.
func Boolean() Validator {
	return Match(booleanPattern, "answer yes or no")
}

// YesNo accepts only yes/no (and their y/n shorthands).
func YesNo() Validator {
	return Match(yesNoPattern, "answer yes or no")
}

// TrueFalse accepts true/false, t/f and 1/0.
func TrueFalse() Validator {
	return Match(trueFalsePattern, "answer true or false")
}

// Agreement accepts explicit consent or refusal spellings.
func Agreement() Validator {
	return func(value string) error {
		if isAffirmative(value) || isNegative(value) {
			return nil
		}
		return Reject("answer agree or decline")
	}
}
