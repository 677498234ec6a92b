package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteger(t *testing.T) {
	v := Integer()
	assert.NoError(t, v("123"))
	assert.NoError(t, v("-123"))
	assert.NoError(t, v("+7"))
	assert.Error(t, v("12.5"))
	assert.Error(t, v("abc"))
}

func TestPositiveInteger(t *testing.T) {
	v := PositiveInteger()
	assert.NoError(t, v("123"))
	assert.Error(t, v("-123"))
	assert.Error(t, v("0"))
}

func TestNegativeInteger(t *testing.T) {
	v := NegativeInteger()
	assert.NoError(t, v("-123"))
	assert.Error(t, v("123"))
	assert.Error(t, v("0"))
}

func TestFloat(t *testing.T) {
	v := Float()
	assert.NoError(t, v("3.14"))
	assert.NoError(t, v("-0.5"))
	assert.NoError(t, v("42"), "whole numbers are numbers too")
	assert.Error(t, v("abc"))
	assert.Error(t, v("1e5"), "exponent notation is rejected")
}

func TestRange(t *testing.T) {
	v := Range(1, 100, true, true)
	assert.NoError(t, v("50"))
	assert.NoError(t, v("1"))
	assert.NoError(t, v("100"))
	assert.Error(t, v("0"))
	assert.Error(t, v("101"))
	assert.Error(t, v("abc"))

	exclusive := Range(1, 100, false, false)
	assert.NoError(t, exclusive("50"))
	assert.Error(t, exclusive("1"))
	assert.Error(t, exclusive("100"))
}

func TestPercentage(t *testing.T) {
	v := Percentage()
	assert.NoError(t, v("50"))
	assert.NoError(t, v("50%"))
	assert.NoError(t, v("100"))
	assert.NoError(t, v("99.5"))
	assert.Error(t, v("150"))
	assert.Error(t, v("abc"))
}

func TestYear(t *testing.T) {
	v := Year(2000, 2020)
	assert.NoError(t, v("2000"))
	assert.NoError(t, v("2020"))
	assert.Error(t, v("1999"))
	assert.Error(t, v("2021"))
	assert.Error(t, v("99"))
}

func TestAge(t *testing.T) {
	v := Age(18, 65)
	assert.NoError(t, v("18"))
	assert.NoError(t, v("65"))
	assert.Error(t, v("17"))
	assert.Error(t, v("66"))
	assert.Error(t, v("-1"))
}
