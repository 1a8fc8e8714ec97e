package datetime

import "fmt"

// partTypeForField maps an engine field id to the public part type. The set
// is closed; an id outside it cannot be produced by any option combination
// and panics as an internal error.
func partTypeForField(field FieldID) PartType {
	switch field {
	case FieldIDYear, FieldIDExtendedYear, FieldIDYearName:
		return PartYear
	case FieldIDMonth, FieldIDStandaloneMonth:
		return PartMonth
	case FieldIDDayOfMonth:
		return PartDay
	case FieldIDHourOfDay1, FieldIDHourOfDay0, FieldIDHour1, FieldIDHour0:
		return PartHour
	case FieldIDMinute:
		return PartMinute
	case FieldIDSecond:
		return PartSecond
	case FieldIDDayOfWeek, FieldIDDayOfWeekLocal, FieldIDStandaloneDay:
		return PartWeekday
	case FieldIDAmPM:
		return PartDayPeriod
	case FieldIDTimeZone, FieldIDTimeZoneRFC, FieldIDTimeZoneGeneric,
		FieldIDTimeZoneSpecial, FieldIDTimeZoneLocalizedGMT,
		FieldIDTimeZoneISO, FieldIDTimeZoneISOLocal:
		return PartTimeZoneName
	case FieldIDEra:
		return PartEra
	}
	panic(fmt.Sprintf("datetime: field id %d cannot be produced by any format option", field))
}

// partsFromSpans converts a formatted string and its ordered field spans
// into tagged parts, filling the uncovered stretches with literal parts.
// The resulting parts tile [0, len(formatted)) exactly.
func partsFromSpans(formatted string, spans []FieldSpan) []FormattedPart {
	if len(formatted) == 0 {
		return nil
	}

	parts := make([]FormattedPart, 0, 2*len(spans)+1)
	previousEnd := 0
	for _, span := range spans {
		if previousEnd < span.Begin {
			parts = append(parts, FormattedPart{
				Type: PartLiteral,
				Text: formatted[previousEnd:span.Begin],
			})
		}
		parts = append(parts, FormattedPart{
			Type: partTypeForField(span.Field),
			Text: formatted[span.Begin:span.End],
		})
		previousEnd = span.End
	}
	if previousEnd < len(formatted) {
		parts = append(parts, FormattedPart{
			Type: PartLiteral,
			Text: formatted[previousEnd:],
		})
	}
	return parts
}
