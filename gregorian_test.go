package datetime

import (
	"errors"
	"testing"
	"time"
)

func TestResolveLocale(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name      string
		requested []string
		wantHc    string
	}{
		{"plain", []string{"en"}, ""},
		{"hc_extension", []string{"en-u-hc-h23"}, "h23"},
		{"invalid_hc_discarded", []string{"en-u-hc-h36"}, ""},
		{"first_match_wins", []string{"xx-invalid", "es", "en"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := engine.ResolveLocale(tt.requested, "best fit", relevantExtensionKeys)
			got := resolved.Extensions["hc"]
			if got != tt.wantHc {
				t.Errorf("hc = %q; want %q", got, tt.wantHc)
			}
		})
	}
}

func TestGeneratePattern(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		locale   string
		skeleton string
		want     string
	}{
		{"en", "yMd", "M/d/y"},
		{"en", "yMMMMd", "MMMM d, y"},
		{"en", "EEEEyMMMMd", "EEEE, MMMM d, y"},
		{"en", "j", "h a"},
		{"en", "jmm", "h:mm a"},
		{"en", "Hmm", "H:mm"},
		{"en", "yMdjmmss", "M/d/y, h:mm:ss a"},
		{"en-GB", "yMd", "d/M/y"},
		{"en-GB", "j", "H"},
		{"es", "yMMMMd", "d 'de' MMMM 'de' y"},
		{"de", "yMd", "d.M.y"},
		{"de", "yMMMMd", "d. MMMM y"},
		{"ja", "yMMMMd", "y年MMMMd日"},
		{"ja", "EEEEyMMMMd", "y年MMMMd日EEEE"},
		{"en", "mmss", "mm:ss"},
		{"en", "z", "z"},
		{"en", "jz", "h a z"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"_"+tt.skeleton, func(t *testing.T) {
			got, err := engine.GeneratePattern(tt.locale, tt.skeleton)
			if err != nil {
				t.Fatalf("GeneratePattern: %v", err)
			}
			if got != tt.want {
				t.Errorf("GeneratePattern(%q, %q) = %q; want %q", tt.locale, tt.skeleton, got, tt.want)
			}
		})
	}
}

func TestGeneratePatternErrors(t *testing.T) {
	engine := newTestEngine(t)

	if _, err := engine.GeneratePattern("en", "yQd"); err == nil {
		t.Error("unknown skeleton token accepted")
	}
}

func TestCreateCalendar(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		timeZone string
		wantID   string
	}{
		{"", "UTC"},
		{"UTC", "UTC"},
		{"Etc/GMT+5", "Etc/GMT+5"},
		{"Etc/GMT+0", "Etc/GMT"},
		{"Etc/GMT-0", "Etc/GMT"},
		{"Etc/GMT0", "Etc/GMT"},
	}

	for _, tt := range tests {
		t.Run(tt.timeZone, func(t *testing.T) {
			calendar, err := engine.CreateCalendar("en", tt.timeZone)
			if err != nil {
				t.Fatalf("CreateCalendar: %v", err)
			}
			if calendar.Type() != "gregorian" {
				t.Errorf("Type() = %q; want gregorian", calendar.Type())
			}
			if calendar.TimeZoneID() != tt.wantID {
				t.Errorf("TimeZoneID() = %q; want %q", calendar.TimeZoneID(), tt.wantID)
			}
		})
	}

	if _, err := engine.CreateCalendar("en", "Atlantis/Lost_City"); !errors.Is(err, ErrInvalidTimeZone) {
		t.Errorf("unknown zone err = %v; want ErrInvalidTimeZone", err)
	}
}

func TestLoadZoneGMTOffsets(t *testing.T) {
	tests := []struct {
		id         string
		wantOffset int
	}{
		{"Etc/GMT+5", -5 * 3600},
		{"Etc/GMT-3", 3 * 3600},
		{"Etc/GMT+12", -12 * 3600},
		{"Etc/GMT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			loc, err := loadZone(tt.id)
			if err != nil {
				t.Fatalf("loadZone: %v", err)
			}
			_, offset := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC).In(loc).Zone()
			if offset != tt.wantOffset {
				t.Errorf("offset = %d; want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestParseGMTOffset(t *testing.T) {
	tests := []struct {
		id     string
		want   int
		wantOK bool
	}{
		{"Etc/GMT+5", 5, true},
		{"Etc/GMT-9", -9, true},
		{"Etc/GMT+14", 14, true},
		{"Etc/GMT-14", -14, true},
		{"Etc/GMT+15", 0, false},
		{"Etc/GMT", 0, false},
		{"Etc/GMT5", 0, false},
		{"Etc/UTC", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := parseGMTOffset(tt.id)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseGMTOffset(%q) = %d, %v; want %d, %v", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWithBundle(t *testing.T) {
	pl := &LocaleBundle{
		Locale: "pl",
		Months: []string{
			"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
			"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
		},
		MonthsShort: []string{
			"sty", "lut", "mar", "kwi", "maj", "cze",
			"lip", "sie", "wrz", "paź", "lis", "gru",
		},
		Weekdays: []string{
			"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota",
		},
		WeekdaysShort: []string{"niedz", "pon", "wt", "śr", "czw", "pt", "sob"},
		DayPeriods:    []string{"AM", "PM"},
		ErasShort:     []string{"p.n.e.", "n.e."},
		ErasLong:      []string{"przed naszą erą", "naszej ery"},
		ErasNarrow:    []string{"p.n.e.", "n.e."},
		DateOrder:     "DMY",
		DateSep:       ".",
		LongDate:      "{day} {month} {year}",
		PreferredHour: "H",
		WeekdaySep:    ", ",
		DateTimeSep:   " ",
	}

	engine, err := NewGregorianEngine(WithBundle(pl))
	if err != nil {
		t.Fatalf("NewGregorianEngine: %v", err)
	}

	format, err := New(engine, []string{"pl"}, &Options{Year: "numeric", Month: "long", Day: "numeric"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := format.Format(msAt(testInstant))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "15 stycznia 2020" {
		t.Errorf("Format = %q; want 15 stycznia 2020", got)
	}
}

func TestWithBundleRejectsBadLocale(t *testing.T) {
	_, err := NewGregorianEngine(WithBundle(&LocaleBundle{Locale: "not a tag!!"}))
	if !errors.Is(err, ErrInvalidLanguageTag) {
		t.Errorf("err = %v; want ErrInvalidLanguageTag", err)
	}
}

func TestAvailableLocales(t *testing.T) {
	engine := newTestEngine(t)

	locales := engine.AvailableLocales()
	if len(locales) == 0 {
		t.Fatal("AvailableLocales is empty")
	}
	seen := make(map[string]bool, len(locales))
	for _, locale := range locales {
		seen[locale] = true
	}
	for _, want := range []string{"en", "en-GB", "es", "de", "fr", "ja"} {
		if !seen[want] {
			t.Errorf("AvailableLocales missing %q", want)
		}
	}
}
