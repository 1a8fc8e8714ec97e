package datetime

import (
	"fmt"
	"math"
)

// maxTimeValue is the largest representable epoch-millisecond timestamp,
// 8.64e15 ms on either side of the epoch.
const maxTimeValue = 8.64e15

// DateTimeFormat is the fully resolved formatting configuration. It is
// immutable after New returns and safe for unsynchronized concurrent reads.
type DateTimeFormat struct {
	engine          Engine
	formatter       Formatter
	locale          string
	calendarType    string
	numberingSystem string
	timeZoneID      string
	hourCycle       HourCycle
	skeleton        string
}

// New resolves locales and options into a DateTimeFormat. Construction is
// all-or-nothing: any resolution failure returns an error and no
// configuration.
func New(engine Engine, locales []string, input *Options) (*DateTimeFormat, error) {
	requested, err := canonicalizeLocaleList(locales)
	if err != nil {
		return nil, err
	}

	options := ToDateTimeOptions(input, RequiredAny, DefaultsDate)

	matcher, err := getStringOption(options.LocaleMatcher, "localeMatcher",
		[]string{"lookup", "best fit"}, "best fit")
	if err != nil {
		return nil, err
	}

	hour12 := options.Hour12

	var hourCycle HourCycle
	if options.HourCycle != "" {
		cycle, ok := ToHourCycle(options.HourCycle)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a valid hourCycle", ErrInvalidOptionValue, options.HourCycle)
		}
		hourCycle = cycle
	}
	// An explicit hour12 wins outright and clears the hourCycle option, so
	// the cleared value also suppresses the hc extension pick-up below.
	explicitHourOption := hour12 != nil || hourCycle != HourCycleUndefined
	if hour12 != nil {
		hourCycle = HourCycleUndefined
	}

	resolved := engine.ResolveLocale(requested, matcher, relevantExtensionKeys)

	if hour12 == nil && hourCycle == HourCycleUndefined {
		if ext, ok := resolved.Extensions["hc"]; ok {
			hourCycle, _ = ToHourCycle(ext)
		}
	}

	var timeZone string
	if options.TimeZone != "" {
		timeZone = CanonicalizeTimeZoneID(options.TimeZone)
		if timeZone == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, options.TimeZone)
		}
	}

	calendar, err := engine.CreateCalendar(resolved.Tag, timeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, options.TimeZone)
	}

	if hourCycle == HourCycleUndefined && hour12 != nil {
		if *hour12 {
			hourCycle = HourCycleH12
		} else {
			hourCycle = HourCycleH23
		}
	}

	skeleton, hasHour, err := buildSkeleton(options, hourCycle)
	if err != nil {
		return nil, err
	}

	// Only best fit is implemented, but the option value still has to be in
	// range.
	if _, err := getStringOption(options.FormatMatcher, "formatMatcher",
		[]string{"best fit", "basic"}, "best fit"); err != nil {
		return nil, err
	}

	localeTag := resolved.Tag
	formatter, err := createFormatter(engine, localeTag, calendar, skeleton)
	if err != nil {
		// Remove extensions and try again; a second failure means the
		// engine has no data even for the base locale.
		localeTag = baseLocale(localeTag)
		formatter, err = createFormatter(engine, localeTag, calendar, skeleton)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingLocaleData, err)
		}
	}

	if hasHour {
		if hourCycle == HourCycleUndefined {
			hourCycle = hourCycleFromPattern(formatter.Pattern())
		}
	} else {
		hourCycle = HourCycleUndefined
	}

	// An explicit hour12 or hourCycle option must not let a disagreeing hc
	// extension leak into the reported locale tag.
	if explicitHourOption {
		if ext, ok := resolved.Extensions["hc"]; ok && HourCycle(ext) != hourCycle {
			localeTag = stripExtensionKey(localeTag, "hc")
		}
	}

	numberingSystem := resolved.Extensions["nu"]
	if numberingSystem == "" {
		numberingSystem = "latn"
	}

	return &DateTimeFormat{
		engine:          engine,
		formatter:       formatter,
		locale:          localeTag,
		calendarType:    calendar.Type(),
		numberingSystem: numberingSystem,
		timeZoneID:      calendar.TimeZoneID(),
		hourCycle:       hourCycle,
		skeleton:        skeleton,
	}, nil
}

// createFormatter generates the pattern against the base locale, per the
// engine contract, then compiles it against the full locale.
func createFormatter(engine Engine, locale string, calendar Calendar, skeleton string) (Formatter, error) {
	pattern, err := engine.GeneratePattern(baseLocale(locale), skeleton)
	if err != nil {
		return nil, err
	}
	return engine.BuildFormatter(locale, calendar, pattern)
}

// timeClip folds out-of-range and non-finite timestamps to NaN and
// truncates the rest toward zero.
func timeClip(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxTimeValue {
		return math.NaN()
	}
	return math.Trunc(ms)
}

// Format renders the epoch-millisecond timestamp as localized text.
func (f *DateTimeFormat) Format(ms float64) (string, error) {
	if f == nil || f.formatter == nil {
		return "", ErrWrongReceiver
	}
	clipped := timeClip(ms)
	if math.IsNaN(clipped) {
		return "", fmt.Errorf("%w: %v", ErrInvalidTimeValue, ms)
	}
	return f.formatter.Format(clipped)
}

// FormatToParts renders the timestamp as an ordered part list whose texts
// concatenate to exactly the Format output.
func (f *DateTimeFormat) FormatToParts(ms float64) ([]FormattedPart, error) {
	if f == nil || f.formatter == nil {
		return nil, ErrWrongReceiver
	}
	clipped := timeClip(ms)
	if math.IsNaN(clipped) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeValue, ms)
	}
	formatted, spans, err := f.formatter.FormatWithFieldPositions(clipped)
	if err != nil {
		return nil, err
	}
	return partsFromSpans(formatted, spans), nil
}

// Locale returns the resolved locale tag, extensions included unless they
// were stripped during hour-cycle reconciliation.
func (f *DateTimeFormat) Locale() string {
	if f == nil {
		return ""
	}
	return f.locale
}

// HourCycle returns the negotiated hour cycle, or HourCycleUndefined when
// no hour field was requested.
func (f *DateTimeFormat) HourCycle() HourCycle {
	if f == nil {
		return HourCycleUndefined
	}
	return f.hourCycle
}

// Skeleton returns the skeleton the configuration was compiled from.
func (f *DateTimeFormat) Skeleton() string {
	if f == nil {
		return ""
	}
	return f.skeleton
}

// Pattern returns the concrete pattern the engine settled on.
func (f *DateTimeFormat) Pattern() string {
	if f == nil || f.formatter == nil {
		return ""
	}
	return f.formatter.Pattern()
}
