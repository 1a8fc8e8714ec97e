package datetime

import (
	"math"
	"testing"
)

func TestLocaleStringDefaults(t *testing.T) {
	engine := newTestEngine(t)
	cache := NewFormatterCache()

	ms := msAt(testInstant)

	got, err := LocaleString(engine, cache, ms, nil, nil)
	if err != nil {
		t.Fatalf("LocaleString: %v", err)
	}
	if got != "1/15/2020, 1:45:30 PM" {
		t.Errorf("LocaleString = %q; want 1/15/2020, 1:45:30 PM", got)
	}

	got, err = LocaleDateString(engine, cache, ms, nil, nil)
	if err != nil {
		t.Fatalf("LocaleDateString: %v", err)
	}
	if got != "1/15/2020" {
		t.Errorf("LocaleDateString = %q; want 1/15/2020", got)
	}

	got, err = LocaleTimeString(engine, cache, ms, nil, nil)
	if err != nil {
		t.Fatalf("LocaleTimeString: %v", err)
	}
	if got != "1:45:30 PM" {
		t.Errorf("LocaleTimeString = %q; want 1:45:30 PM", got)
	}
}

func TestLocaleStringNaN(t *testing.T) {
	engine := newTestEngine(t)
	cache := NewFormatterCache()

	for name, fn := range map[string]func(Engine, *FormatterCache, float64, []string, *Options) (string, error){
		"LocaleString":     LocaleString,
		"LocaleDateString": LocaleDateString,
		"LocaleTimeString": LocaleTimeString,
	} {
		got, err := fn(engine, cache, math.NaN(), nil, nil)
		if err != nil {
			t.Errorf("%s(NaN) err = %v", name, err)
		}
		if got != InvalidDate {
			t.Errorf("%s(NaN) = %q; want %q", name, got, InvalidDate)
		}
	}
}

func TestFormatterCacheReuse(t *testing.T) {
	engine := newTestEngine(t)
	cache := NewFormatterCache()

	if _, err := LocaleDateString(engine, cache, 0, nil, nil); err != nil {
		t.Fatalf("LocaleDateString: %v", err)
	}
	first := cache.get(DefaultsDate)
	if first == nil {
		t.Fatal("fully defaulted call did not populate the cache")
	}

	if _, err := LocaleDateString(engine, cache, msAt(testInstant), nil, nil); err != nil {
		t.Fatalf("LocaleDateString: %v", err)
	}
	if cache.get(DefaultsDate) != first {
		t.Error("second fully defaulted call rebuilt the configuration")
	}

	// Each defaults kind has its own slot.
	if _, err := LocaleTimeString(engine, cache, 0, nil, nil); err != nil {
		t.Fatalf("LocaleTimeString: %v", err)
	}
	if cache.get(DefaultsTime) == nil {
		t.Error("time defaults slot not populated")
	}
	if cache.get(DefaultsTime) == first {
		t.Error("time defaults slot shares the date slot configuration")
	}
}

func TestFormatterCacheBypass(t *testing.T) {
	engine := newTestEngine(t)
	cache := NewFormatterCache()

	if _, err := LocaleDateString(engine, cache, 0, []string{"de"}, nil); err != nil {
		t.Fatalf("LocaleDateString with locales: %v", err)
	}
	if cache.get(DefaultsDate) != nil {
		t.Error("explicit locales populated the cache")
	}

	if _, err := LocaleDateString(engine, cache, 0, nil, &Options{Year: "numeric"}); err != nil {
		t.Fatalf("LocaleDateString with options: %v", err)
	}
	if cache.get(DefaultsDate) != nil {
		t.Error("explicit options populated the cache")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	engine := newTestEngine(t)

	got, err := LocaleDateString(engine, nil, msAt(testInstant), nil, nil)
	if err != nil {
		t.Fatalf("LocaleDateString: %v", err)
	}
	if got != "1/15/2020" {
		t.Errorf("LocaleDateString = %q; want 1/15/2020", got)
	}
}
