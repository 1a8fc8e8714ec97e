package datetime

import (
	"fmt"
	"strings"
)

// skeletonFields is the parsed form of a skeleton: the width requested for
// each field, zero when absent. The hour keeps its token letter because the
// four cycles plus the locale-default "j" render differently.
type skeletonFields struct {
	weekday   int
	era       int
	year      int
	month     int
	day       int
	hour      int
	hourToken byte
	minute    int
	second    int
	timeZone  int
}

func parseSkeleton(skeleton string) (skeletonFields, error) {
	var fields skeletonFields
	for i := 0; i < len(skeleton); {
		letter := skeleton[i]
		width := 1
		for i+width < len(skeleton) && skeleton[i+width] == letter {
			width++
		}
		switch letter {
		case 'E', 'c':
			fields.weekday = width
		case 'G':
			fields.era = width
		case 'y':
			fields.year = width
		case 'M', 'L':
			fields.month = width
		case 'd':
			fields.day = width
		case 'j', 'h', 'H', 'k', 'K':
			fields.hour = width
			fields.hourToken = letter
		case 'm':
			fields.minute = width
		case 's':
			fields.second = width
		case 'z':
			fields.timeZone = width
		default:
			return skeletonFields{}, fmt.Errorf("datetime: unknown skeleton token %q", string(letter))
		}
		i += width
	}
	return fields, nil
}

// synthesizePattern arranges the requested tokens into a concrete pattern
// following the bundle's layout rules. The output always contains the exact
// tokens of the skeleton, with "j" replaced by the locale's preferred hour
// token; layout decides only the literals around them.
func synthesizePattern(bundle *LocaleBundle, fields skeletonFields) string {
	datePattern := synthesizeDate(bundle, fields)
	timePattern := synthesizeTime(bundle, fields)

	switch {
	case datePattern == "":
		return timePattern
	case timePattern == "":
		return datePattern
	default:
		return datePattern + bundle.DateTimeSep + timePattern
	}
}

func synthesizeDate(bundle *LocaleBundle, fields skeletonFields) string {
	yearToken := repeatToken('y', fields.year)
	monthToken := repeatToken('M', fields.month)
	dayToken := repeatToken('d', fields.day)

	var date string
	switch {
	case fields.month >= 3 && fields.year > 0 && fields.day > 0 && bundle.LongDate != "":
		date = strings.NewReplacer(
			"{year}", yearToken,
			"{month}", monthToken,
			"{day}", dayToken,
		).Replace(bundle.LongDate)
	case fields.month >= 3:
		// A text month without the full long-date shape joins with spaces.
		date = joinDateFields(bundle.DateOrder, " ", yearToken, monthToken, dayToken)
	default:
		date = joinDateFields(bundle.DateOrder, bundle.DateSep, yearToken, monthToken, dayToken)
	}

	if fields.era > 0 {
		eraToken := repeatToken('G', fields.era)
		if date == "" {
			date = eraToken
		} else {
			date += " " + eraToken
		}
	}

	if fields.weekday > 0 {
		weekdayToken := repeatToken('E', fields.weekday)
		switch {
		case date == "":
			date = weekdayToken
		case bundle.WeekdayAfter:
			date += bundle.WeekdaySep + weekdayToken
		default:
			date = weekdayToken + bundle.WeekdaySep + date
		}
	}

	return date
}

func synthesizeTime(bundle *LocaleBundle, fields skeletonFields) string {
	hourToken := ""
	if fields.hour > 0 {
		letter := fields.hourToken
		if letter == 'j' {
			letter = bundle.PreferredHour[0]
		}
		hourToken = repeatToken(letter, fields.hour)
	}

	var clock []string
	for _, token := range []string{hourToken, repeatToken('m', fields.minute), repeatToken('s', fields.second)} {
		if token != "" {
			clock = append(clock, token)
		}
	}

	pattern := strings.Join(clock, ":")
	if hourToken != "" && (hourToken[0] == 'h' || hourToken[0] == 'K') {
		pattern += " a"
	}
	if fields.timeZone > 0 {
		zoneToken := repeatToken('z', fields.timeZone)
		if pattern == "" {
			pattern = zoneToken
		} else {
			pattern += " " + zoneToken
		}
	}
	return pattern
}

// joinDateFields joins the present numeric date tokens in the bundle's
// field order.
func joinDateFields(order, sep, yearToken, monthToken, dayToken string) string {
	var ordered []string
	appendToken := func(token string) {
		if token != "" {
			ordered = append(ordered, token)
		}
	}
	switch order {
	case "DMY":
		appendToken(dayToken)
		appendToken(monthToken)
		appendToken(yearToken)
	case "YMD":
		appendToken(yearToken)
		appendToken(monthToken)
		appendToken(dayToken)
	default: // MDY
		appendToken(monthToken)
		appendToken(dayToken)
		appendToken(yearToken)
	}
	return strings.Join(ordered, sep)
}

func repeatToken(letter byte, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(letter), width)
}
