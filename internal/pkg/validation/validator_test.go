package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayms/backend/internal/pkg/apperrors"
)

type addressForm struct {
	State *string `json:"state" validate:"omitempty,usstate"`
	Zip   *string `json:"zip" validate:"omitempty,uszip"`
}

type tagForm struct {
	Instruments []string `json:"instruments" validate:"omitempty,dive,instrument"`
	Birthday    *string  `json:"birthday" validate:"omitempty,dateonly"`
}

func strptr(s string) *string { return &s }

func TestParseSection(t *testing.T) {
	for _, name := range []string{"personal", "location", "about", "parent1", "parent2"} {
		section, err := ParseSection(name)
		require.NoError(t, err)
		assert.Equal(t, Section(name), section)
	}

	_, err := ParseSection("payments")
	require.ErrorIs(t, err, apperrors.ErrUnknownSection)
}

func TestStructReportsEveryFailingField(t *testing.T) {
	verr := Struct(addressForm{
		State: strptr("Narnia"),
		Zip:   strptr("abcde"),
	})

	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 2)

	byField := map[string]string{}
	for _, f := range verr.Fields {
		byField[f.Field] = f.Constraint
	}
	assert.Equal(t, "usstate", byField["state"])
	assert.Equal(t, "uszip", byField["zip"])
}

func TestStructFieldNamesComeFromJSONTags(t *testing.T) {
	verr := Struct(addressForm{State: strptr("Narnia")})

	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "state", verr.Fields[0].Field, "reports use the wire name, not the Go name")
}

func TestStructAcceptsValidInput(t *testing.T) {
	assert.Nil(t, Struct(addressForm{
		State: strptr("California"),
		Zip:   strptr("94720-1234"),
	}))

	assert.Nil(t, Struct(tagForm{
		Instruments: []string{"Violin", "Cello"},
		Birthday:    strptr("2010-06-15"),
	}))
}

func TestStructRejectsUnknownInstrument(t *testing.T) {
	verr := Struct(tagForm{Instruments: []string{"Violin", "Theremin"}})

	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "instrument", verr.Fields[0].Constraint)
}

func TestStructRejectsMalformedDate(t *testing.T) {
	for _, raw := range []string{"06/15/2010", "2010-13-40", "yesterday"} {
		verr := Struct(tagForm{Birthday: strptr(raw)})
		require.NotNil(t, verr, "birthday %q must fail", raw)
		assert.Equal(t, "dateonly", verr.Fields[0].Constraint)
	}
}

func TestZipPattern(t *testing.T) {
	assert.True(t, CompiledPatterns.Zip.MatchString("94720"))
	assert.True(t, CompiledPatterns.Zip.MatchString("94720-1234"))
	assert.False(t, CompiledPatterns.Zip.MatchString("9472"))
	assert.False(t, CompiledPatterns.Zip.MatchString("94720-12"))
}
