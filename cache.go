package datetime

import (
	"math"
	"sync"
)

// InvalidDate is what the convenience entry points return for a NaN
// timestamp instead of failing.
const InvalidDate = "Invalid Date"

// FormatterCache holds at most one fully defaulted DateTimeFormat per
// defaults kind. It is a capability owned by the embedding context, not
// package state: callers that want the reuse pass the same cache around.
//
// The cache is read-checked before construction and written once after; two
// concurrent misses may both construct (the result is a pure function of
// the defaults) and the last writer wins.
type FormatterCache struct {
	mu    sync.Mutex
	slots map[DefaultsOption]*DateTimeFormat
}

// NewFormatterCache returns an empty cache.
func NewFormatterCache() *FormatterCache {
	return &FormatterCache{slots: make(map[DefaultsOption]*DateTimeFormat)}
}

func (c *FormatterCache) get(key DefaultsOption) *DateTimeFormat {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slots[key]
}

func (c *FormatterCache) put(key DefaultsOption, format *DateTimeFormat) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.slots == nil {
		c.slots = make(map[DefaultsOption]*DateTimeFormat)
	}
	c.slots[key] = format
}

// LocaleString formats a timestamp with both date and time defaults, the
// equivalent of Date.prototype.toLocaleString.
func LocaleString(engine Engine, cache *FormatterCache, ms float64, locales []string, options *Options) (string, error) {
	return localeDateTime(engine, cache, ms, locales, options, RequiredAny, DefaultsAll)
}

// LocaleDateString formats a timestamp with date defaults only.
func LocaleDateString(engine Engine, cache *FormatterCache, ms float64, locales []string, options *Options) (string, error) {
	return localeDateTime(engine, cache, ms, locales, options, RequiredDate, DefaultsDate)
}

// LocaleTimeString formats a timestamp with time defaults only.
func LocaleTimeString(engine Engine, cache *FormatterCache, ms float64, locales []string, options *Options) (string, error) {
	return localeDateTime(engine, cache, ms, locales, options, RequiredTime, DefaultsTime)
}

func localeDateTime(engine Engine, cache *FormatterCache, ms float64, locales []string,
	options *Options, required RequiredOption, defaults DefaultsOption) (string, error) {
	if math.IsNaN(ms) {
		return InvalidDate, nil
	}

	// Only a fully defaulted request is cacheable: examining locales or
	// options is observable, so any explicit argument bypasses the cache.
	canCache := len(locales) == 0 && options == nil
	if canCache {
		if cached := cache.get(defaults); cached != nil {
			return cached.Format(ms)
		}
	}

	internal := ToDateTimeOptions(options, required, defaults)
	format, err := New(engine, locales, internal)
	if err != nil {
		return "", err
	}
	if canCache {
		cache.put(defaults, format)
	}
	return format.Format(ms)
}
