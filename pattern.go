package datetime

import (
	"fmt"
	"strings"
)

type patternPair struct {
	token string
	value string
}

// patternItem ties a field to its token table. Pair order matters: longer
// tokens come before the shorter tokens they contain, and scans must walk
// the slice in declaration order. The pair values double as the allowed
// option values for the field; tokenForValue rejects anything else.
type patternItem struct {
	field Field
	pairs []patternPair
}

// patternItems returns the field token tables in the fixed declaration
// order that skeleton concatenation and resolved-option reporting follow.
// The hour entry carries the locale-default tokens; callers that know the
// hour cycle swap it via hourPatternItem.
func patternItems() []patternItem {
	return []patternItem{
		{FieldWeekday, []patternPair{
			{"EEEEE", "narrow"},
			{"EEEE", "long"},
			{"EEE", "short"},
			{"ccccc", "narrow"},
			{"cccc", "long"},
			{"ccc", "short"},
		}},
		{FieldEra, []patternPair{
			{"GGGGG", "narrow"},
			{"GGGG", "long"},
			{"GGG", "short"},
		}},
		{FieldYear, []patternPair{
			{"yy", "2-digit"},
			{"y", "numeric"},
		}},
		// The L forms are the standalone month names; they only matter when
		// reverse mapping a generated pattern.
		{FieldMonth, []patternPair{
			{"MMMMM", "narrow"},
			{"MMMM", "long"},
			{"MMM", "short"},
			{"MM", "2-digit"},
			{"M", "numeric"},
			{"LLLLL", "narrow"},
			{"LLLL", "long"},
			{"LLL", "short"},
			{"LL", "2-digit"},
			{"L", "numeric"},
		}},
		{FieldDay, []patternPair{
			{"dd", "2-digit"},
			{"d", "numeric"},
		}},
		{FieldHour, []patternPair{
			{"HH", "2-digit"},
			{"H", "numeric"},
			{"hh", "2-digit"},
			{"h", "numeric"},
			{"kk", "2-digit"},
			{"k", "numeric"},
			{"KK", "2-digit"},
			{"K", "numeric"},
		}},
		{FieldMinute, []patternPair{
			{"mm", "2-digit"},
			{"m", "numeric"},
		}},
		{FieldSecond, []patternPair{
			{"ss", "2-digit"},
			{"s", "numeric"},
		}},
		{FieldTimeZoneName, []patternPair{
			{"zzzz", "long"},
			{"z", "short"},
		}},
	}
}

// hourPatternItem returns the hour token table for one hour cycle. The
// undefined cycle uses the j skeleton tokens, which the pattern generator
// replaces with the locale's preferred hour token.
func hourPatternItem(hourCycle HourCycle) patternItem {
	var digit2, numeric string
	switch hourCycle {
	case HourCycleH11:
		digit2, numeric = "KK", "K"
	case HourCycleH12:
		digit2, numeric = "hh", "h"
	case HourCycleH23:
		digit2, numeric = "HH", "H"
	case HourCycleH24:
		digit2, numeric = "kk", "k"
	case HourCycleUndefined:
		digit2, numeric = "jj", "j"
	}
	return patternItem{FieldHour, []patternPair{
		{digit2, "2-digit"},
		{numeric, "numeric"},
	}}
}

// buildSkeleton validates the per-field option values and concatenates the
// matching tokens in declaration order. hasHour reports whether an hour
// option participated, which drives the hour-cycle default later on.
func buildSkeleton(options *Options, hourCycle HourCycle) (skeleton string, hasHour bool, err error) {
	var sb strings.Builder
	for _, item := range patternItems() {
		if item.field == FieldHour {
			item = hourPatternItem(hourCycle)
		}
		value := options.fieldValue(item.field)
		if value == "" {
			continue
		}
		token, ok := tokenForValue(item, value)
		if !ok {
			return "", false, fmt.Errorf("%w: %q is not a valid %s", ErrInvalidOptionValue, value, item.field)
		}
		if item.field == FieldHour {
			hasHour = true
		}
		sb.WriteString(token)
	}
	return sb.String(), hasHour, nil
}

// tokenForValue picks the first pair carrying value, so duplicate values
// (the month L forms) resolve to the earliest token.
func tokenForValue(item patternItem, value string) (string, bool) {
	for _, pair := range item.pairs {
		if pair.value == value {
			return pair.token, true
		}
	}
	return "", false
}

// hourCycleFromPattern derives the hour cycle a concrete pattern renders
// with. The K/h/H/k probes run in priority order over the raw pattern text,
// quoted literals included.
func hourCycleFromPattern(pattern string) HourCycle {
	switch {
	case strings.ContainsRune(pattern, 'K'):
		return HourCycleH11
	case strings.ContainsRune(pattern, 'h'):
		return HourCycleH12
	case strings.ContainsRune(pattern, 'H'):
		return HourCycleH23
	case strings.ContainsRune(pattern, 'k'):
		return HourCycleH24
	}
	return HourCycleUndefined
}

// reverseMapPattern reconstructs per-field option values from a concrete
// pattern. For each field the longest-token-first scan takes the first token
// found as a substring. This is a best-effort reading: a token can match
// text produced by the concatenation of neighboring fields, and callers
// depend on that exact behavior.
func reverseMapPattern(pattern string) []ResolvedEntry {
	var entries []ResolvedEntry
	for _, item := range patternItems() {
		for _, pair := range item.pairs {
			if strings.Contains(pattern, pair.token) {
				entries = append(entries, ResolvedEntry{Key: string(item.field), Value: pair.value})
				break
			}
		}
	}
	return entries
}
