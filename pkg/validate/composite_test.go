package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/pkg/domain"
)

func TestPhoneNumber(t *testing.T) {
	e164 := PhoneNumber("")
	assert.NoError(t, e164("+14155550123"))
	assert.Error(t, e164("4155550123"), "plus sign required")
	assert.Error(t, e164("+1-415-555-0123"), "no separators")

	ir := PhoneNumber("ir")
	assert.NoError(t, ir("09123456789"))
	assert.NoError(t, ir("+989123456789"))
	assert.Error(t, ir("0212345678"), "not a mobile prefix")

	us := PhoneNumber("US")
	assert.NoError(t, us("4155550123"))
	assert.NoError(t, us("+14155550123"))
	assert.Error(t, us("123"))
}

func TestDate(t *testing.T) {
	v := Date("2006-01-02")
	assert.NoError(t, v("2024-02-29"))
	assert.NoError(t, v("  2024-01-01  "), "surrounding spaces are tolerated")
	assert.Error(t, v("2023-02-29"), "not a leap year")
	assert.Error(t, v("01/02/2024"))
}

func TestDateRangeOrdered(t *testing.T) {
	layout := "2006-01-02"
	assert.NoError(t, DateRangeOrdered(layout, "2024-01-01", "2024-12-31"))
	assert.NoError(t, DateRangeOrdered(layout, "2024-06-15", "2024-06-15"), "equal dates are in order")

	err := DateRangeOrdered(layout, "2024-12-31", "2024-01-01")
	require.Error(t, err)
	var rejection *domain.ValidationError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "start date must not be after end date", rejection.Reason)

	assert.Error(t, DateRangeOrdered(layout, "bogus", "2024-01-01"))
	assert.Error(t, DateRangeOrdered(layout, "2024-01-01", "bogus"))
}

func TestCredentialsValid(t *testing.T) {
	good := domain.Credentials{Username: "alice_42", Password: "Str0ng!pass"}
	assert.NoError(t, CredentialsValid(good, nil, nil))

	badUser := domain.Credentials{Username: "a b", Password: "Str0ng!pass"}
	err := CredentialsValid(badUser, nil, nil)
	require.Error(t, err)
	var rejection *domain.ValidationError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "username", rejection.Field)

	badPass := domain.Credentials{Username: "alice_42", Password: "weak"}
	err = CredentialsValid(badPass, nil, nil)
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "password", rejection.Field)

	// Caller-supplied validators replace the defaults.
	lax := func(string) error { return nil }
	assert.NoError(t, CredentialsValid(domain.Credentials{Username: "!", Password: "!"}, lax, lax))
}

func TestAddressValid(t *testing.T) {
	full := domain.Address{Country: "PT", City: "Porto", PostalCode: "4000-123"}
	assert.NoError(t, AddressValid(full, true, true, true))

	noPostal := domain.Address{Country: "PT", City: "Porto"}
	assert.NoError(t, AddressValid(noPostal, true, true, false))

	err := AddressValid(noPostal, true, true, true)
	require.Error(t, err)
	var rejection *domain.ValidationError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "postal_code", rejection.Field)

	err = AddressValid(domain.Address{City: "Porto"}, true, true, false)
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "country", rejection.Field)
}
