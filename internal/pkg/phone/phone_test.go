package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bayms/backend/internal/pkg/phone"
)

func TestFormatNorthAmerican(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ten digits", "4155551234", "(415) 555-1234"},
		{"ten digits with punctuation", "415-555-1234", "(415) 555-1234"},
		{"ten digits with parentheses", "(415) 555 1234", "(415) 555-1234"},
		{"eleven digits with leading one", "14155551234", "(415) 555-1234"},
		{"leading one with country code marker", "+1 415 555 1234", "(415) 555-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Format(tt.raw))
		})
	}
}

func TestFormatLeadingOneMatchesTrailingTen(t *testing.T) {
	assert.Equal(t, phone.Format("4155551234"), phone.Format("14155551234"))
}

func TestFormatInternational(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"uk number groups from the right", "442071234567", "44-207-123-4567"},
		{"seven digits", "1234567", "123-4567"},
		{"eight digits", "12345678", "1-234-5678"},
		{"eleven digits not starting with one", "20712345678", "2-071-234-5678"},
		{"twelve digits with punctuation", "+44 20 7123 4567", "44-207-123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Format(tt.raw))
		})
	}
}

func TestFormatShortInputs(t *testing.T) {
	assert.Equal(t, "", phone.Format(""))
	assert.Equal(t, "12345", phone.Format("12345"))
	assert.Equal(t, "123456", phone.Format("12-34-56"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "", phone.Digits(""))
	assert.Equal(t, "14155551234", phone.Digits("+1 (415) 555-1234"))
	assert.Equal(t, "12345", phone.Digits("12345"))
	assert.Equal(t, "", phone.Digits("no digits here"))
}
