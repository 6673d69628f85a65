package phone

import "strings"

// Format normalizes a raw phone number into its canonical display form.
//
// The input is first reduced to its digits. A 10-digit number, or an
// 11-digit number with a leading 1, is treated as North American and
// rendered as (AAA) BBB-CCCC. Anything with at least 7 digits is treated
// as international and grouped from the right: a final group of 4, then
// a group of 3, then groups of 3 with a shorter leftmost remainder, all
// hyphen-separated. Fewer than 7 digits are returned as the bare digit
// string; empty input stays empty.
//
// Format is not idempotent for grouped output. Callers must apply it to
// the raw user value, never to a previously formatted one.
func Format(raw string) string {
	cleaned := Digits(raw)
	if cleaned == "" {
		return ""
	}

	// North American numbers: drop the country code if present
	if len(cleaned) == 10 || (len(cleaned) == 11 && strings.HasPrefix(cleaned, "1")) {
		digits := cleaned
		if len(cleaned) == 11 {
			digits = cleaned[1:]
		}
		return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:]
	}

	if len(cleaned) >= 7 {
		return formatInternational(cleaned)
	}

	return cleaned
}

// formatInternational groups digits from the right in a 4, 3, 3... pattern,
// preserving left-to-right digit order.
func formatInternational(digits string) string {
	groups := make([]string, 0, len(digits)/3+1)
	remaining := digits

	// last four digits
	groups = append(groups, remaining[len(remaining)-4:])
	remaining = remaining[:len(remaining)-4]

	// next three digits
	if len(remaining) > 0 {
		cut := len(remaining) - 3
		if cut < 0 {
			cut = 0
		}
		groups = append(groups, remaining[cut:])
		remaining = remaining[:cut]
	}

	// remaining digits in groups of three, shorter leftmost remainder
	for len(remaining) > 0 {
		if len(remaining) > 3 {
			groups = append(groups, remaining[len(remaining)-3:])
			remaining = remaining[:len(remaining)-3]
		} else {
			groups = append(groups, remaining)
			remaining = ""
		}
	}

	// groups were collected right to left
	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Digits strips every non-digit character from raw. This is the strict
// storage variant used where an unformatted canonical digit string is
// required, such as applicant creation.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
