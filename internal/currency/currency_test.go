package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGroupsThousands(t *testing.T) {
	f := NewFormatter("AED")

	assert.Equal(t, "AED 1,234.5", f.Format(1234.5))
	assert.Equal(t, "AED 1,234,567", f.Format(1234567))
	assert.Equal(t, "AED 999", f.Format(999))
	assert.Equal(t, "AED 0", f.Format(0))
}

func TestFormatNegative(t *testing.T) {
	f := NewFormatter("AED")

	assert.Equal(t, "AED -1,500", f.Format(-1500))
	assert.Equal(t, "AED -12.75", f.Format(-12.75))
}

func TestFormatCustomSymbol(t *testing.T) {
	f := NewFormatter("$")

	assert.Equal(t, "$ 10,000", f.Format(10000))
}

func TestNewFormatterDefaultsSymbol(t *testing.T) {
	f := NewFormatter("  ")

	assert.Equal(t, "AED", f.Symbol())
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "100", GroupDigits(100))
	assert.Equal(t, "1,000", GroupDigits(1000))
	assert.Equal(t, "10,000.25", GroupDigits(10000.25))
	assert.Equal(t, "100,000", GroupDigits(100000))
	assert.Equal(t, "1,000,000.5", GroupDigits(1000000.5))
}
