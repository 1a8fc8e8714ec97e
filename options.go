package datetime

import "fmt"

// Options is the caller-supplied description of the desired format. The zero
// value of every field means "unset"; Hour12 is a pointer because false is a
// meaningful setting.
type Options struct {
	Weekday      string
	Era          string
	Year         string
	Month        string
	Day          string
	Hour         string
	Minute       string
	Second       string
	TimeZoneName string

	Hour12    *bool
	HourCycle string

	TimeZone      string
	LocaleMatcher string
	FormatMatcher string
}

// Clone returns a copy that can be augmented without touching the caller's
// options bag.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	out := *o
	if o.Hour12 != nil {
		v := *o.Hour12
		out.Hour12 = &v
	}
	return &out
}

func (o *Options) fieldValue(field Field) string {
	switch field {
	case FieldWeekday:
		return o.Weekday
	case FieldEra:
		return o.Era
	case FieldYear:
		return o.Year
	case FieldMonth:
		return o.Month
	case FieldDay:
		return o.Day
	case FieldHour:
		return o.Hour
	case FieldMinute:
		return o.Minute
	case FieldSecond:
		return o.Second
	case FieldTimeZoneName:
		return o.TimeZoneName
	}
	return ""
}

func (o *Options) setFieldValue(field Field, value string) {
	switch field {
	case FieldWeekday:
		o.Weekday = value
	case FieldEra:
		o.Era = value
	case FieldYear:
		o.Year = value
	case FieldMonth:
		o.Month = value
	case FieldDay:
		o.Day = value
	case FieldHour:
		o.Hour = value
	case FieldMinute:
		o.Minute = value
	case FieldSecond:
		o.Second = value
	case FieldTimeZoneName:
		o.TimeZoneName = value
	}
}

var dateDefaultFields = []Field{FieldYear, FieldMonth, FieldDay}
var timeDefaultFields = []Field{FieldHour, FieldMinute, FieldSecond}
var dateRequiredFields = []Field{FieldWeekday, FieldYear, FieldMonth, FieldDay}

// ToDateTimeOptions applies the defaulting rules: when none of the fields the
// caller is required to care about are set, the date and/or time fields are
// filled in with "numeric". The input bag is never mutated; the returned bag
// is a fresh clone.
func ToDateTimeOptions(input *Options, required RequiredOption, defaults DefaultsOption) *Options {
	options := input.Clone()

	needsDefault := true
	if required == RequiredAny || required == RequiredDate {
		needsDefault = allFieldsUnset(options, dateRequiredFields)
	}
	if required == RequiredAny || required == RequiredTime {
		needsDefault = needsDefault && allFieldsUnset(options, timeDefaultFields)
	}

	if needsDefault {
		if defaults == DefaultsAll || defaults == DefaultsDate {
			setNumericDefaults(options, dateDefaultFields)
		}
		if defaults == DefaultsAll || defaults == DefaultsTime {
			setNumericDefaults(options, timeDefaultFields)
		}
	}

	return options
}

func allFieldsUnset(options *Options, fields []Field) bool {
	for _, field := range fields {
		if options.fieldValue(field) != "" {
			return false
		}
	}
	return true
}

func setNumericDefaults(options *Options, fields []Field) {
	for _, field := range fields {
		options.setFieldValue(field, "numeric")
	}
}

// getStringOption validates value against allowed, returning fallback when
// the value is unset. An empty allowed set accepts anything.
func getStringOption(value, name string, allowed []string, fallback string) (string, error) {
	if value == "" {
		return fallback, nil
	}
	if len(allowed) == 0 {
		return value, nil
	}
	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not a valid %s", ErrInvalidOptionValue, value, name)
}
