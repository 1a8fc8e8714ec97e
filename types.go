package datetime

// HourCycle names one of the four hour numbering conventions, or is empty
// when no hour field participates in the format.
type HourCycle string

const (
	HourCycleUndefined HourCycle = ""
	HourCycleH11       HourCycle = "h11" // 0-11, am/pm
	HourCycleH12       HourCycle = "h12" // 1-12, am/pm
	HourCycleH23       HourCycle = "h23" // 0-23
	HourCycleH24       HourCycle = "h24" // 1-24
)

// ToHourCycle parses an hour cycle name. ok is false for anything outside
// the four defined cycles.
func ToHourCycle(value string) (HourCycle, bool) {
	switch HourCycle(value) {
	case HourCycleH11, HourCycleH12, HourCycleH23, HourCycleH24:
		return HourCycle(value), true
	}
	return HourCycleUndefined, false
}

// Field names a formattable date/time component.
type Field string

const (
	FieldWeekday      Field = "weekday"
	FieldEra          Field = "era"
	FieldYear         Field = "year"
	FieldMonth        Field = "month"
	FieldDay          Field = "day"
	FieldHour         Field = "hour"
	FieldMinute       Field = "minute"
	FieldSecond       Field = "second"
	FieldTimeZoneName Field = "timeZoneName"
)

// PartType tags a single run of formatted output.
type PartType string

const (
	PartLiteral      PartType = "literal"
	PartYear         PartType = "year"
	PartMonth        PartType = "month"
	PartDay          PartType = "day"
	PartHour         PartType = "hour"
	PartMinute       PartType = "minute"
	PartSecond       PartType = "second"
	PartWeekday      PartType = "weekday"
	PartDayPeriod    PartType = "dayPeriod"
	PartTimeZoneName PartType = "timeZoneName"
	PartEra          PartType = "era"
)

// FormattedPart is one tagged run of a formatted string. Concatenating the
// Text of all parts reproduces the full formatted string exactly.
type FormattedPart struct {
	Type PartType
	Text string
}

// FieldID identifies which semantic field produced a span of formatted
// output. The set mirrors the field constants a date format engine reports
// alongside its output.
type FieldID int

const (
	FieldIDEra FieldID = iota
	FieldIDYear
	FieldIDMonth
	FieldIDDayOfMonth
	FieldIDHourOfDay1 // 1-24
	FieldIDHourOfDay0 // 0-23
	FieldIDMinute
	FieldIDSecond
	FieldIDDayOfWeek
	FieldIDAmPM
	FieldIDHour1 // 1-12
	FieldIDHour0 // 0-11
	FieldIDTimeZone
	FieldIDTimeZoneRFC
	FieldIDTimeZoneGeneric
	FieldIDDayOfWeekLocal
	FieldIDExtendedYear
	FieldIDStandaloneDay
	FieldIDStandaloneMonth
	FieldIDTimeZoneSpecial
	FieldIDTimeZoneLocalizedGMT
	FieldIDTimeZoneISO
	FieldIDTimeZoneISOLocal
	FieldIDYearName
)

// FieldSpan locates one field's output inside a formatted string. Begin and
// End are byte offsets, End exclusive. Spans are ordered by Begin and never
// overlap, but are not required to cover the whole string.
type FieldSpan struct {
	Begin int
	End   int
	Field FieldID
}

// RequiredOption selects which field groups must be present before
// defaulting kicks in.
type RequiredOption string

const (
	RequiredDate RequiredOption = "date"
	RequiredTime RequiredOption = "time"
	RequiredAny  RequiredOption = "any"
)

// DefaultsOption selects which field groups receive "numeric" defaults.
type DefaultsOption string

const (
	DefaultsDate DefaultsOption = "date"
	DefaultsTime DefaultsOption = "time"
	DefaultsAll  DefaultsOption = "all"
)

// ResolvedEntry is one key/value pair of the publicly observable resolved
// configuration. Entries are emitted in a fixed order, so the resolved view
// is a slice rather than a map.
type ResolvedEntry struct {
	Key   string
	Value any
}
