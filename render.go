package datetime

import (
	"strconv"
	"strings"
	"time"
)

// segment is one compiled pattern element: either a literal run or a field
// token identified by its letter and width.
type segment struct {
	literal string
	letter  byte
	width   int
}

// compilePattern splits a pattern into literal and token segments. Runs of
// the same ASCII letter form tokens; single quotes delimit literal text
// with '' as the escaped quote; everything else passes through literally.
func compilePattern(pattern string) []segment {
	var segments []segment
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		ch := pattern[i]
		switch {
		case ch == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			end := i + 1
			for end < len(pattern) && pattern[end] != '\'' {
				end++
			}
			literal.WriteString(pattern[i+1 : end])
			if end < len(pattern) {
				end++
			}
			i = end
		case isASCIIAlpha(ch):
			width := 1
			for i+width < len(pattern) && pattern[i+width] == ch {
				width++
			}
			flushLiteral()
			segments = append(segments, segment{letter: ch, width: width})
			i += width
		default:
			literal.WriteByte(ch)
			i++
		}
	}
	flushLiteral()
	return segments
}

// patternFormatter renders a compiled pattern with a bundle's names in a
// fixed location. It is immutable and safe for concurrent use.
type patternFormatter struct {
	pattern  string
	segments []segment
	bundle   *LocaleBundle
	loc      *time.Location
}

func (f *patternFormatter) Pattern() string { return f.pattern }

func (f *patternFormatter) Format(ms float64) (string, error) {
	formatted, _ := f.render(ms)
	return formatted, nil
}

func (f *patternFormatter) FormatWithFieldPositions(ms float64) (string, []FieldSpan, error) {
	formatted, spans := f.render(ms)
	return formatted, spans, nil
}

func (f *patternFormatter) render(ms float64) (string, []FieldSpan) {
	t := time.UnixMilli(int64(ms)).In(f.loc)

	var sb strings.Builder
	var spans []FieldSpan
	for _, seg := range f.segments {
		if seg.literal != "" {
			sb.WriteString(seg.literal)
			continue
		}
		text, field, known := f.renderToken(seg, t)
		if !known {
			sb.WriteString(text)
			continue
		}
		begin := sb.Len()
		sb.WriteString(text)
		spans = append(spans, FieldSpan{Begin: begin, End: sb.Len(), Field: field})
	}
	return sb.String(), spans
}

func (f *patternFormatter) renderToken(seg segment, t time.Time) (string, FieldID, bool) {
	year := t.Year()
	hour := t.Hour()

	switch seg.letter {
	case 'G':
		era := 1
		if year <= 0 {
			era = 0
		}
		return f.bundle.eraName(era, seg.width), FieldIDEra, true
	case 'y':
		display := year
		if year <= 0 {
			display = 1 - year
		}
		if seg.width == 2 {
			return padNumber(display%100, 2), FieldIDYear, true
		}
		return padNumber(display, seg.width), FieldIDYear, true
	case 'M':
		return f.renderMonth(seg.width, int(t.Month())), FieldIDMonth, true
	case 'L':
		return f.renderMonth(seg.width, int(t.Month())), FieldIDStandaloneMonth, true
	case 'd':
		return padNumber(t.Day(), seg.width), FieldIDDayOfMonth, true
	case 'E':
		return f.bundle.weekdayName(int(t.Weekday()), seg.width), FieldIDDayOfWeek, true
	case 'c':
		return f.bundle.weekdayName(int(t.Weekday()), seg.width), FieldIDStandaloneDay, true
	case 'a':
		period := 0
		if hour >= 12 {
			period = 1
		}
		return f.bundle.DayPeriods[period], FieldIDAmPM, true
	case 'H':
		return padNumber(hour, seg.width), FieldIDHourOfDay0, true
	case 'k':
		display := hour
		if display == 0 {
			display = 24
		}
		return padNumber(display, seg.width), FieldIDHourOfDay1, true
	case 'h':
		display := hour % 12
		if display == 0 {
			display = 12
		}
		return padNumber(display, seg.width), FieldIDHour1, true
	case 'K':
		return padNumber(hour%12, seg.width), FieldIDHour0, true
	case 'm':
		return padNumber(t.Minute(), seg.width), FieldIDMinute, true
	case 's':
		return padNumber(t.Second(), seg.width), FieldIDSecond, true
	case 'z':
		if seg.width >= 4 {
			return longZoneName(t), FieldIDTimeZone, true
		}
		return shortZoneName(t), FieldIDTimeZone, true
	}
	// An unrecognized letter renders as itself, the way lenient pattern
	// interpreters treat unknown symbols.
	return strings.Repeat(string(seg.letter), seg.width), 0, false
}

func (f *patternFormatter) renderMonth(width, month int) string {
	if width >= 3 {
		return f.bundle.monthName(month, width)
	}
	return padNumber(month, width)
}

func padNumber(value, width int) string {
	text := strconv.Itoa(value)
	for len(text) < width {
		text = "0" + text
	}
	return text
}

// shortZoneName prefers the zone abbreviation and falls back to a short
// localized GMT form for purely numeric zone names.
func shortZoneName(t time.Time) string {
	name, offset := t.Zone()
	if name != "" && !isOffsetName(name) {
		return name
	}
	return gmtOffsetName(offset, false)
}

func longZoneName(t time.Time) string {
	_, offset := t.Zone()
	return gmtOffsetName(offset, true)
}

func isOffsetName(name string) bool {
	return name[0] == '+' || name[0] == '-'
}

func gmtOffsetName(offset int, long bool) string {
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if long {
		return "GMT" + sign + padNumber(hours, 2) + ":" + padNumber(minutes, 2)
	}
	if minutes == 0 {
		return "GMT" + sign + strconv.Itoa(hours)
	}
	return "GMT" + sign + strconv.Itoa(hours) + ":" + padNumber(minutes, 2)
}
