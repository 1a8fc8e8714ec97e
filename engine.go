package datetime

// ResolvedLocale is the outcome of matching the requested locale list
// against an engine's available locales: the winning tag plus the BCP-47
// -u- extension key/value pairs it carried. This package only consumes and
// reconciles the "hc" key; "ca" and "nu" pass through to the engine.
type ResolvedLocale struct {
	Tag        string
	Extensions map[string]string
}

// relevantExtensionKeys are the extension keys a date/time format cares
// about: calendar, numbering system, hour cycle.
var relevantExtensionKeys = []string{"ca", "nu", "hc"}

// Engine is the boundary to the locale database and the pattern/glyph
// machinery. Implementations must be safe for concurrent use; every method
// is a pure function of its inputs plus the engine's immutable locale data.
type Engine interface {
	// ResolveLocale matches the requested, already-canonicalized locale
	// list against the available locales using the given matcher
	// ("lookup" or "best fit") and extracts the extension values for keys.
	// An empty request resolves to the engine's default locale.
	ResolveLocale(requested []string, matcher string, keys []string) ResolvedLocale

	// CreateCalendar builds a calendar for the locale in the given
	// canonical timezone, or the engine's default timezone when timeZone
	// is empty. It fails when the id does not name a real zone. For
	// Gregorian-family calendars the Gregorian/Julian cutover must be
	// pinned to the earliest representable timestamp (-2^53 ms) so every
	// representable date uses pure Gregorian rules.
	CreateCalendar(locale string, timeZone string) (Calendar, error)

	// GeneratePattern produces the best-fitting concrete pattern for a
	// skeleton. By contract it is called with the base locale, extension
	// subtags already stripped.
	GeneratePattern(baseLocale string, skeleton string) (string, error)

	// BuildFormatter compiles a concrete pattern into a formatter bound to
	// the locale and calendar.
	BuildFormatter(locale string, calendar Calendar, pattern string) (Formatter, error)

	// AvailableLocales lists the locale tags the engine has data for.
	AvailableLocales() []string
}

// Calendar carries the calendar type and the canonical timezone a formatter
// renders in.
type Calendar interface {
	// Type returns the engine's legacy calendar type name, e.g. "gregorian".
	Type() string
	// TimeZoneID returns the canonical timezone identifier.
	TimeZoneID() string
}

// Formatter renders epoch-millisecond timestamps. Implementations are
// immutable after construction and safe for unsynchronized concurrent use.
type Formatter interface {
	// Pattern returns the concrete pattern this formatter renders.
	Pattern() string
	// Format renders the timestamp as localized text.
	Format(ms float64) (string, error)
	// FormatWithFieldPositions renders the timestamp and reports which
	// field produced each span of the output, ordered by begin offset.
	FormatWithFieldPositions(ms float64) (string, []FieldSpan, error)
}
