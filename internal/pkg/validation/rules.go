package validation

import "regexp"

// Domain constraint constants
var (
	// ZipPattern matches 5-digit or 5+4 US ZIP codes
	ZipPattern = `^\d{5}(-\d{4})?$`

	// DateOnlyLayout is the calendar date format used across forms
	DateOnlyLayout = "2006-01-02"

	// BioMaxLength is the maximum biography length in characters
	BioMaxLength = 650

	// PictureMaxBytes is the maximum profile picture size
	PictureMaxBytes int64 = 5_000_000
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Zip *regexp.Regexp
}{
	Zip: regexp.MustCompile(ZipPattern),
}

// States holds the US state names accepted in the location section
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// Instruments holds the instrument names accepted in the about section
var Instruments = []string{
	"Bassoon", "Cello", "Clarinet", "Flute", "Oboe", "Percussion", "Piano",
	"Saxophone", "Trumpet", "Viola", "Violin", "Voice",
}

// IsState reports whether name is a recognized US state
func IsState(name string) bool {
	for _, s := range States {
		if s == name {
			return true
		}
	}
	return false
}

// IsInstrument reports whether name is a recognized instrument
func IsInstrument(name string) bool {
	for _, i := range Instruments {
		if i == name {
			return true
		}
	}
	return false
}
