package validate

import (
	"strings"
	"time"

	"github.com/aretw0/tendril/pkg/domain"
)

// PhoneNumber accepts mobile numbers. With a known country code (ISO
// 3166-1 alpha-2) the national format is used; otherwise strict E.164.
func PhoneNumber(country string) Validator {
	re := e164Pattern
	reason := "invalid phone number: use E.164 format, e.g. +14155550123"
	if p, ok := countryPhonePatterns[strings.ToUpper(country)]; ok {
		re = p
		reason = "invalid phone number for country " + strings.ToUpper(country)
	}
	return Match(re, reason)
}

// Date accepts dates in the given time layout ("2006-01-02" style).
func Date(layout string) Validator {
	return func(value string) error {
		if _, err := time.Parse(layout, strings.TrimSpace(value)); err != nil {
			return Rejectf("invalid date: expected format %s", layout)
		}
		return nil
	}
}

// DateRangeOrdered checks that start does not come after end, both in the
// given layout. Parse failures are rejections, not validator errors.
func DateRangeOrdered(layout, start, end string) error {
	s, err := time.Parse(layout, strings.TrimSpace(start))
	if err != nil {
		return Rejectf("invalid start date: expected format %s", layout)
	}
	e, err := time.Parse(layout, strings.TrimSpace(end))
	if err != nil {
		return Rejectf("invalid end date: expected format %s", layout)
	}
	if s.After(e) {
		return Reject("start date must not be after end date")
	}
	return nil
}

// CredentialsValid checks both fields of a collected credentials pair.
// Nil validators fall back to Username(strict) and the default password
// policy.
func CredentialsValid(c domain.Credentials, username, password Validator) error {
	if username == nil {
		username = Username(true)
	}
	if password == nil {
		password = Password(DefaultPasswordPolicy())
	}
	if err := username(c.Username); err != nil {
		return fieldErr("username", err)
	}
	if err := password(c.Password); err != nil {
		return fieldErr("password", err)
	}
	return nil
}

// AddressValid checks the required fields of a collected address.
func AddressValid(a domain.Address, requireCountry, requireCity, requirePostalCode bool) error {
	if requireCountry && strings.TrimSpace(a.Country) == "" {
		return fieldErr("country", Reject("value cannot be empty"))
	}
	if requireCity && strings.TrimSpace(a.City) == "" {
		return fieldErr("city", Reject("value cannot be empty"))
	}
	if requirePostalCode && strings.TrimSpace(a.PostalCode) == "" {
		return fieldErr("postal_code", Reject("value cannot be empty"))
	}
	return nil
}

func fieldErr(field string, err error) error {
	if v, ok := err.(*domain.ValidationError); ok && v.Field == "" {
		return &domain.ValidationError{Field: field, Reason: v.Reason}
	}
	return err
}
