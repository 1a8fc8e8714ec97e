package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-datetime"
)

type cliConfig struct {
	locales   []string
	options   datetime.Options
	hour12    string
	bundles   string
	when      string
	showParts bool
	resolved  bool
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datetime-fmt: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig
	var localeList localeFlag

	flag.Var(&localeList, "locale", "locale to request, best match wins. Repeat flag or comma-separate to add more.")
	flag.StringVar(&cfg.options.Weekday, "weekday", "", "weekday style: narrow, long or short")
	flag.StringVar(&cfg.options.Era, "era", "", "era style: narrow, long or short")
	flag.StringVar(&cfg.options.Year, "year", "", "year style: 2-digit or numeric")
	flag.StringVar(&cfg.options.Month, "month", "", "month style: narrow, long, short, 2-digit or numeric")
	flag.StringVar(&cfg.options.Day, "day", "", "day style: 2-digit or numeric")
	flag.StringVar(&cfg.options.Hour, "hour", "", "hour style: 2-digit or numeric")
	flag.StringVar(&cfg.options.Minute, "minute", "", "minute style: 2-digit or numeric")
	flag.StringVar(&cfg.options.Second, "second", "", "second style: 2-digit or numeric")
	flag.StringVar(&cfg.options.TimeZoneName, "zone-name", "", "time zone name style: long or short")
	flag.StringVar(&cfg.options.TimeZone, "timezone", "", "IANA time zone id, e.g. America/New_York")
	flag.StringVar(&cfg.options.HourCycle, "hour-cycle", "", "hour cycle: h11, h12, h23 or h24")
	flag.StringVar(&cfg.hour12, "hour12", "", "force 12-hour (true) or 24-hour (false) display")
	flag.StringVar(&cfg.bundles, "bundles", "", "path to a JSON locale bundle file to load")
	flag.StringVar(&cfg.when, "when", "", "instant to format: RFC 3339 or epoch milliseconds (default now)")
	flag.BoolVar(&cfg.showParts, "parts", false, "print the formatted parts instead of plain text")
	flag.BoolVar(&cfg.resolved, "resolved", false, "print the resolved options before the output")

	flag.Parse()

	cfg.locales = localeList.items
	return cfg, nil
}

func run(cfg cliConfig) error {
	var engineOpts []datetime.EngineOption
	if cfg.bundles != "" {
		engineOpts = append(engineOpts, datetime.WithBundleFile(cfg.bundles))
	}

	engine, err := datetime.NewGregorianEngine(engineOpts...)
	if err != nil {
		return err
	}

	options := cfg.options
	if cfg.hour12 != "" {
		value, err := strconv.ParseBool(cfg.hour12)
		if err != nil {
			return fmt.Errorf("invalid -hour12 value %q", cfg.hour12)
		}
		options.Hour12 = &value
	}

	var input *datetime.Options
	if options != (datetime.Options{}) {
		input = &options
	}

	format, err := datetime.New(engine, cfg.locales, input)
	if err != nil {
		return err
	}

	ms, err := parseInstant(cfg.when)
	if err != nil {
		return err
	}

	if cfg.resolved {
		entries, err := format.ResolvedOptions()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Printf("%s: %v\n", entry.Key, entry.Value)
		}
	}

	if cfg.showParts {
		parts, err := format.FormatToParts(ms)
		if err != nil {
			return err
		}
		for _, part := range parts {
			fmt.Printf("%-12s %q\n", part.Type, part.Text)
		}
		return nil
	}

	formatted, err := format.Format(ms)
	if err != nil {
		return err
	}
	fmt.Println(formatted)
	return nil
}

// parseInstant accepts an RFC 3339 timestamp or raw epoch milliseconds, and
// defaults to the current instant.
func parseInstant(value string) (float64, error) {
	if value == "" {
		return float64(time.Now().UnixMilli()), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return float64(t.UnixMilli()), nil
	}
	if ms, err := strconv.ParseFloat(value, 64); err == nil {
		return ms, nil
	}
	return 0, errors.New("-when must be RFC 3339 or epoch milliseconds")
}
