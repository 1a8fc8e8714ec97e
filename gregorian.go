package datetime

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// GregorianEngine is the built-in format engine: a proleptic Gregorian
// calendar over the Go time package, with locale data supplied by
// LocaleBundles and locale matching by golang.org/x/text/language. The
// engine is immutable after construction and safe for concurrent use.
type GregorianEngine struct {
	bundles         map[string]*LocaleBundle
	locales         []string
	tags            []language.Tag
	matcher         language.Matcher
	defaultTimeZone string
}

// EngineOption mutates a GregorianEngine during construction.
type EngineOption func(*GregorianEngine) error

// WithBundle registers or replaces the data bundle for a locale.
func WithBundle(bundle *LocaleBundle) EngineOption {
	return func(e *GregorianEngine) error {
		if bundle == nil || bundle.Locale == "" {
			return fmt.Errorf("datetime: bundle requires a locale")
		}
		if _, err := language.Parse(bundle.Locale); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLanguageTag, bundle.Locale)
		}
		e.addBundle(bundle)
		return nil
	}
}

// WithBundleFile registers every bundle found in a JSON bundle file.
func WithBundleFile(path string) EngineOption {
	return func(e *GregorianEngine) error {
		bundles, err := LoadBundleFile(path)
		if err != nil {
			return err
		}
		for _, bundle := range bundles {
			e.addBundle(bundle)
		}
		return nil
	}
}

// WithDefaultTimeZone sets the zone used when the caller supplies none.
func WithDefaultTimeZone(id string) EngineOption {
	return func(e *GregorianEngine) error {
		canonical := CanonicalizeTimeZoneID(id)
		if canonical == "" {
			return fmt.Errorf("%w: %q", ErrInvalidTimeZone, id)
		}
		if _, err := loadZone(canonical); err != nil {
			return err
		}
		e.defaultTimeZone = canonical
		return nil
	}
}

// NewGregorianEngine builds an engine with the default bundle set plus any
// options.
func NewGregorianEngine(opts ...EngineOption) (*GregorianEngine, error) {
	e := &GregorianEngine{
		bundles:         make(map[string]*LocaleBundle, len(defaultBundles)),
		defaultTimeZone: "UTC",
	}
	for _, bundle := range defaultBundles {
		e.addBundle(bundle)
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	tags := make([]language.Tag, 0, len(e.locales))
	for _, locale := range e.locales {
		tags = append(tags, language.MustParse(locale))
	}
	e.tags = tags
	e.matcher = language.NewMatcher(tags)
	return e, nil
}

func (e *GregorianEngine) addBundle(bundle *LocaleBundle) {
	if _, exists := e.bundles[bundle.Locale]; !exists {
		e.locales = append(e.locales, bundle.Locale)
	}
	e.bundles[bundle.Locale] = bundle
}

// ResolveLocale matches the requested list against the bundle locales. The
// winning tag keeps the -u- extensions of the best matching request; the
// values for keys are extracted into the extension map. Only best-fit
// matching is implemented, the "lookup" matcher value selects the same
// algorithm.
func (e *GregorianEngine) ResolveLocale(requested []string, matcher string, keys []string) ResolvedLocale {
	tags := make([]language.Tag, 0, len(requested))
	for _, locale := range requested {
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}

	match, _, _ := e.matcher.Match(tags...)

	extensions := make(map[string]string, len(keys))
	for _, key := range keys {
		if value := match.TypeForKey(key); value != "" {
			extensions[key] = value
		}
	}
	if hc, ok := extensions["hc"]; ok {
		if _, valid := ToHourCycle(hc); !valid {
			delete(extensions, "hc")
		}
	}

	return ResolvedLocale{Tag: match.String(), Extensions: extensions}
}

// CreateCalendar builds a Gregorian calendar in the given canonical zone,
// or the engine default when timeZone is empty. Rendering works in
// proleptic Gregorian time throughout, so the -2^53 cutover requirement is
// satisfied by construction.
func (e *GregorianEngine) CreateCalendar(locale string, timeZone string) (Calendar, error) {
	id := timeZone
	if id == "" {
		id = e.defaultTimeZone
	}
	canonical, loc, err := loadZoneCanonical(id)
	if err != nil {
		return nil, err
	}
	return &gregorianCalendar{id: canonical, loc: loc}, nil
}

// GeneratePattern synthesizes the best-fitting pattern for a skeleton from
// the base locale's bundle rules.
func (e *GregorianEngine) GeneratePattern(baseLocale string, skeleton string) (string, error) {
	bundle := e.bundleFor(baseLocale)
	if bundle == nil {
		return "", fmt.Errorf("%w: no bundle for locale %q", ErrMissingLocaleData, baseLocale)
	}
	fields, err := parseSkeleton(skeleton)
	if err != nil {
		return "", err
	}
	return synthesizePattern(bundle, fields), nil
}

// BuildFormatter compiles a concrete pattern against the locale's bundle
// and the calendar's zone.
func (e *GregorianEngine) BuildFormatter(locale string, calendar Calendar, pattern string) (Formatter, error) {
	bundle := e.bundleFor(locale)
	if bundle == nil {
		return nil, fmt.Errorf("%w: no bundle for locale %q", ErrMissingLocaleData, locale)
	}
	cal, ok := calendar.(*gregorianCalendar)
	if !ok || cal == nil {
		return nil, fmt.Errorf("datetime: calendar %T was not created by this engine", calendar)
	}
	return &patternFormatter{
		pattern:  pattern,
		segments: compilePattern(pattern),
		bundle:   bundle,
		loc:      cal.loc,
	}, nil
}

// AvailableLocales lists the bundle locales in registration order.
func (e *GregorianEngine) AvailableLocales() []string {
	out := make([]string, len(e.locales))
	copy(out, e.locales)
	return out
}

// bundleFor resolves a locale tag to a bundle, trying the exact base tag
// first and then its parent chain.
func (e *GregorianEngine) bundleFor(locale string) *LocaleBundle {
	base := baseLocale(locale)
	if bundle, ok := e.bundles[base]; ok {
		return bundle
	}
	for _, parent := range localeParentChain(base) {
		if bundle, ok := e.bundles[parent]; ok {
			return bundle
		}
	}
	return nil
}

type gregorianCalendar struct {
	id  string
	loc *time.Location
}

func (c *gregorianCalendar) Type() string { return "gregorian" }

func (c *gregorianCalendar) TimeZoneID() string { return c.id }

// loadZoneCanonical resolves a canonical timezone id to a location,
// folding the zero-offset Etc/GMT spellings to their canonical "Etc/GMT"
// id the way the CLDR zone table does.
func loadZoneCanonical(id string) (string, *time.Location, error) {
	switch id {
	case "Etc/GMT0", "Etc/GMT+0", "Etc/GMT-0":
		id = "Etc/GMT"
	}
	loc, err := loadZone(id)
	if err != nil {
		return "", nil, err
	}
	return id, loc, nil
}

func loadZone(id string) (*time.Location, error) {
	switch id {
	case "UTC", "Etc/UTC", "Etc/GMT":
		return time.UTC, nil
	}
	if offset, ok := parseGMTOffset(id); ok {
		// POSIX sign convention: Etc/GMT+5 is five hours west of Greenwich.
		return time.FixedZone("GMT"+formatSignedHour(-offset), -offset*3600), nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, id)
	}
	return loc, nil
}

// parseGMTOffset reads the signed hour out of a canonical Etc/GMT±N id.
func parseGMTOffset(id string) (int, bool) {
	const prefix = "Etc/GMT"
	if len(id) < len(prefix)+2 || id[:len(prefix)] != prefix {
		return 0, false
	}
	rest := id[len(prefix):]
	sign := 1
	switch rest[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	hours, err := strconv.Atoi(rest[1:])
	if err != nil || hours < 0 || hours > 14 {
		return 0, false
	}
	return sign * hours, true
}

func formatSignedHour(hours int) string {
	if hours < 0 {
		return "-" + strconv.Itoa(-hours)
	}
	return "+" + strconv.Itoa(hours)
}
