package datetime

// LocaleBundle carries the locale data the built-in Gregorian engine needs:
// display names plus the layout rules pattern synthesis follows. Bundles for
// additional locales can be registered with WithBundle or loaded from JSON
// with WithBundleFile.
type LocaleBundle struct {
	Locale string `json:"locale"`

	Months        []string `json:"months"`
	MonthsShort   []string `json:"months_short"`
	MonthsNarrow  []string `json:"months_narrow,omitempty"`
	Weekdays      []string `json:"weekdays"`
	WeekdaysShort []string `json:"weekdays_short"`
	DayPeriods    []string `json:"day_periods"`
	ErasShort     []string `json:"eras_short"`
	ErasLong      []string `json:"eras_long"`
	ErasNarrow    []string `json:"eras_narrow"`

	// DateOrder arranges numeric date fields: "MDY", "DMY" or "YMD".
	DateOrder string `json:"date_order"`
	// DateSep separates numeric date fields, e.g. "/" or ".".
	DateSep string `json:"date_sep"`
	// LongDate is the template used when a text month, a day and a year are
	// all requested, e.g. "{month} {day}, {year}". Literal words that could
	// read as pattern letters must be quoted, e.g. "{day} 'de' {month}".
	LongDate string `json:"long_date"`
	// PreferredHour is the hour token substituted for the locale-default
	// skeleton token "j": "h" or "H".
	PreferredHour string `json:"preferred_hour"`
	// WeekdayAfter places the weekday name after the date instead of before
	// it (ja style).
	WeekdayAfter bool `json:"weekday_after,omitempty"`
	// WeekdaySep sits between the weekday name and the date.
	WeekdaySep string `json:"weekday_sep"`
	// DateTimeSep joins the date and time halves of a combined pattern.
	DateTimeSep string `json:"datetime_sep"`
}

var englishMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishMonthsShort = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var englishWeekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var englishWeekdaysShort = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var defaultBundles = []*LocaleBundle{
	{
		Locale:        "en",
		Months:        englishMonths,
		MonthsShort:   englishMonthsShort,
		Weekdays:      englishWeekdays,
		WeekdaysShort: englishWeekdaysShort,
		DayPeriods:    []string{"AM", "PM"},
		ErasShort:     []string{"BC", "AD"},
		ErasLong:      []string{"Before Christ", "Anno Domini"},
		ErasNarrow:    []string{"B", "A"},
		DateOrder:     "MDY",
		DateSep:       "/",
		LongDate:      "{month} {day}, {year}",
		PreferredHour: "h",
		WeekdaySep:    ", ",
		DateTimeSep:   ", ",
	},
	{
		Locale:        "en-GB",
		Months:        englishMonths,
		MonthsShort:   englishMonthsShort,
		Weekdays:      englishWeekdays,
		WeekdaysShort: englishWeekdaysShort,
		DayPeriods:    []string{"am", "pm"},
		ErasShort:     []string{"BC", "AD"},
		ErasLong:      []string{"Before Christ", "Anno Domini"},
		ErasNarrow:    []string{"B", "A"},
		DateOrder:     "DMY",
		DateSep:       "/",
		LongDate:      "{day} {month} {year}",
		PreferredHour: "H",
		WeekdaySep:    ", ",
		DateTimeSep:   ", ",
	},
	{
		Locale: "es",
		Months: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthsShort: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic",
		},
		Weekdays: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		WeekdaysShort: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		DayPeriods:    []string{"a. m.", "p. m."},
		ErasShort:     []string{"a. C.", "d. C."},
		ErasLong:      []string{"antes de Cristo", "después de Cristo"},
		ErasNarrow:    []string{"a. C.", "d. C."},
		DateOrder:     "DMY",
		DateSep:       "/",
		LongDate:      "{day} 'de' {month} 'de' {year}",
		PreferredHour: "H",
		WeekdaySep:    ", ",
		DateTimeSep:   ", ",
	},
	{
		Locale: "de",
		Months: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		Weekdays: []string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		WeekdaysShort: []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		DayPeriods:    []string{"AM", "PM"},
		ErasShort:     []string{"v. Chr.", "n. Chr."},
		ErasLong:      []string{"vor Christus", "nach Christus"},
		ErasNarrow:    []string{"v. Chr.", "n. Chr."},
		DateOrder:     "DMY",
		DateSep:       ".",
		LongDate:      "{day}. {month} {year}",
		PreferredHour: "H",
		WeekdaySep:    ", ",
		DateTimeSep:   ", ",
	},
	{
		Locale: "fr",
		Months: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthsShort: []string{
			"janv", "févr", "mars", "avr", "mai", "juin",
			"juil", "août", "sept", "oct", "nov", "déc",
		},
		Weekdays: []string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		WeekdaysShort: []string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
		DayPeriods:    []string{"AM", "PM"},
		ErasShort:     []string{"av. J.-C.", "ap. J.-C."},
		ErasLong:      []string{"avant Jésus-Christ", "après Jésus-Christ"},
		ErasNarrow:    []string{"av. J.-C.", "ap. J.-C."},
		DateOrder:     "DMY",
		DateSep:       "/",
		LongDate:      "{day} {month} {year}",
		PreferredHour: "H",
		WeekdaySep:    " ",
		DateTimeSep:   " ",
	},
	{
		Locale: "ja",
		Months: []string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		MonthsShort: []string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		MonthsNarrow: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
		Weekdays: []string{
			"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日",
		},
		WeekdaysShort: []string{"日", "月", "火", "水", "木", "金", "土"},
		DayPeriods:    []string{"午前", "午後"},
		ErasShort:     []string{"紀元前", "西暦"},
		ErasLong:      []string{"紀元前", "西暦"},
		ErasNarrow:    []string{"BC", "AD"},
		DateOrder:     "YMD",
		DateSep:       "/",
		LongDate:      "{year}年{month}{day}日",
		PreferredHour: "H",
		WeekdayAfter:  true,
		WeekdaySep:    "",
		DateTimeSep:   " ",
	},
}

func (b *LocaleBundle) monthName(month int, width int) string {
	idx := month - 1
	switch {
	case width >= 5:
		if len(b.MonthsNarrow) == 12 {
			return b.MonthsNarrow[idx]
		}
		return firstRune(b.Months[idx])
	case width == 4:
		return b.Months[idx]
	default:
		return b.MonthsShort[idx]
	}
}

func (b *LocaleBundle) weekdayName(weekday int, width int) string {
	switch {
	case width >= 5:
		return firstRune(b.Weekdays[weekday])
	case width == 4:
		return b.Weekdays[weekday]
	default:
		return b.WeekdaysShort[weekday]
	}
}

func (b *LocaleBundle) eraName(era int, width int) string {
	switch {
	case width >= 5:
		return b.ErasNarrow[era]
	case width == 4:
		return b.ErasLong[era]
	default:
		return b.ErasShort[era]
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return s
}
