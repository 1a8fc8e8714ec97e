package datetime

// ResolvedOptions reports the publicly observable configuration after
// defaulting and negotiation, in a fixed order: locale, calendar,
// numberingSystem, timeZone, hourCycle, hour12, then the per-field values
// reverse-mapped from the concrete pattern in field declaration order.
func (f *DateTimeFormat) ResolvedOptions() ([]ResolvedEntry, error) {
	if f == nil || f.formatter == nil {
		return nil, ErrWrongReceiver
	}

	entries := make([]ResolvedEntry, 0, 16)
	entries = append(entries, ResolvedEntry{Key: "locale", Value: f.locale})
	entries = append(entries, ResolvedEntry{Key: "calendar", Value: bcp47CalendarName(f.calendarType)})
	if f.numberingSystem != "" {
		entries = append(entries, ResolvedEntry{Key: "numberingSystem", Value: f.numberingSystem})
	}
	entries = append(entries, ResolvedEntry{Key: "timeZone", Value: reportedTimeZone(f.timeZoneID)})

	if f.hourCycle != HourCycleUndefined {
		entries = append(entries, ResolvedEntry{Key: "hourCycle", Value: string(f.hourCycle)})
		switch f.hourCycle {
		case HourCycleH11, HourCycleH12:
			entries = append(entries, ResolvedEntry{Key: "hour12", Value: true})
		case HourCycleH23, HourCycleH24:
			entries = append(entries, ResolvedEntry{Key: "hour12", Value: false})
		}
	}

	entries = append(entries, reverseMapPattern(f.formatter.Pattern())...)
	return entries, nil
}

// bcp47CalendarName remaps the engine's legacy calendar type names to their
// BCP-47 "ca" key values.
func bcp47CalendarName(calendarType string) string {
	switch calendarType {
	case "gregorian":
		return "gregory"
	case "ethiopic-amete-alem":
		return "ethioaa"
	}
	return calendarType
}

// reportedTimeZone collapses the canonical Etc/UTC and Etc/GMT ids, which
// name the same zone, to the literal "UTC".
func reportedTimeZone(id string) string {
	if id == "Etc/UTC" || id == "Etc/GMT" {
		return "UTC"
	}
	return id
}
