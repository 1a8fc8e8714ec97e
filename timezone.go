package datetime

import "strings"

// CanonicalizeTimeZoneID normalizes a caller-spelled timezone identifier to
// its canonical form: "UTC" for the UTC aliases, "Etc/GMT±N" for the fixed
// offset zones, and a titlecased Area/Location name otherwise. It returns
// the empty string when the input is not a recognizable identifier.
func CanonicalizeTimeZoneID(input string) string {
	upper := asciiToUpper(input)
	if upper == "UTC" || upper == "GMT" || upper == "ETC/UTC" || upper == "ETC/GMT" {
		return "UTC"
	}
	// Only _, - and / are expected beside ASCII letters. Inputs conform to
	// Area/Location(/Location)* or Etc/GMT*.
	if strings.HasPrefix(upper, "ETC/GMT") {
		return gmtOffsetZoneID(input)
	}
	return titleCaseLocation(input)
}

// gmtOffsetZoneID parses the tail of an Etc/GMT identifier. Offsets run from
// -14 to +14; anything else is invalid.
func gmtOffsetZoneID(input string) string {
	const prefix = "Etc/GMT"
	switch len(input) {
	case 8:
		if input[7] == '0' {
			return prefix + "0"
		}
	case 9:
		if (input[7] == '+' || input[7] == '-') && isASCIIDigit(input[8]) {
			return prefix + input[7:9]
		}
	case 10:
		if (input[7] == '+' || input[7] == '-') && input[8] == '1' &&
			input[9] >= '0' && input[9] <= '4' {
			return prefix + input[7:10]
		}
	}
	return ""
}

// titleCaseLocation titlecases an Area/Location identifier word by word,
// e.g. bueNos_airES -> Buenos_Aires. Two-letter words "of", "es" and "au"
// are fully lowercased. Any character outside ASCII letters and the three
// separators invalidates the whole input.
func titleCaseLocation(input string) string {
	var out []byte
	wordLength := 0
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case isASCIIAlpha(ch):
			if wordLength == 0 {
				out = append(out, asciiByteToUpper(ch))
			} else {
				out = append(out, asciiByteToLower(ch))
			}
			wordLength++
		case ch == '_' || ch == '-' || ch == '/':
			if wordLength == 2 {
				pos := len(out) - 2
				word := string(out[pos:])
				if word == "Of" || word == "Es" || word == "Au" {
					out[pos] = asciiByteToLower(out[pos])
				}
			}
			out = append(out, ch)
			wordLength = 0
		default:
			return ""
		}
	}
	return string(out)
}

func isASCIIAlpha(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isASCIIDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// asciiByteToUpper is intentionally locale independent: a Turkish dotless-I
// rule must never apply to timezone identifiers.
func asciiByteToUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func asciiByteToLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

func asciiToUpper(input string) string {
	out := make([]byte, len(input))
	for i := 0; i < len(input); i++ {
		out[i] = asciiByteToUpper(input[i])
	}
	return string(out)
}
