package datetime

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/language"
)

// bundleFile is the on-disk shape of a bundle set.
type bundleFile struct {
	Bundles []*LocaleBundle `json:"bundles"`
}

// LoadBundleFile reads locale bundles from a JSON file. Each bundle must
// carry a locale, full month and weekday name tables, and the layout rules
// pattern synthesis needs.
func LoadBundleFile(path string) ([]*LocaleBundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datetime: read bundle file %q: %w", path, err)
	}

	var file bundleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("datetime: parse bundle file %q: %w", path, err)
	}

	for _, bundle := range file.Bundles {
		if err := validateBundle(bundle); err != nil {
			return nil, fmt.Errorf("datetime: bundle file %q: %w", path, err)
		}
	}
	return file.Bundles, nil
}

func validateBundle(bundle *LocaleBundle) error {
	if bundle == nil || bundle.Locale == "" {
		return fmt.Errorf("bundle requires a locale")
	}
	if _, err := language.Parse(bundle.Locale); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLanguageTag, bundle.Locale)
	}
	if len(bundle.Months) != 12 || len(bundle.MonthsShort) != 12 {
		return fmt.Errorf("locale %q: month tables must have 12 entries", bundle.Locale)
	}
	if len(bundle.MonthsNarrow) != 0 && len(bundle.MonthsNarrow) != 12 {
		return fmt.Errorf("locale %q: narrow month table must have 12 entries", bundle.Locale)
	}
	if len(bundle.Weekdays) != 7 || len(bundle.WeekdaysShort) != 7 {
		return fmt.Errorf("locale %q: weekday tables must have 7 entries", bundle.Locale)
	}
	if len(bundle.DayPeriods) != 2 {
		return fmt.Errorf("locale %q: day periods must have 2 entries", bundle.Locale)
	}
	if len(bundle.ErasShort) != 2 || len(bundle.ErasLong) != 2 || len(bundle.ErasNarrow) != 2 {
		return fmt.Errorf("locale %q: era tables must have 2 entries", bundle.Locale)
	}
	switch bundle.DateOrder {
	case "MDY", "DMY", "YMD":
	default:
		return fmt.Errorf("locale %q: date order must be MDY, DMY or YMD", bundle.Locale)
	}
	switch bundle.PreferredHour {
	case "h", "H":
	default:
		return fmt.Errorf("locale %q: preferred hour must be h or H", bundle.Locale)
	}
	return nil
}
