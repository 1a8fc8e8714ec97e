package datetime

import "testing"

func TestCanonicalizeTimeZoneID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "utc", want: "UTC"},
		{input: "UTC", want: "UTC"},
		{input: "gmt", want: "UTC"},
		{input: "etc/UTC", want: "UTC"},
		{input: "Etc/GMT", want: "UTC"},
		{input: "etc/gmt", want: "UTC"},

		{input: "Etc/GMT0", want: "Etc/GMT0"},
		{input: "etc/gmt0", want: "Etc/GMT0"},
		{input: "Etc/GMT+5", want: "Etc/GMT+5"},
		{input: "etc/gmt-9", want: "Etc/GMT-9"},
		{input: "Etc/GMT+14", want: "Etc/GMT+14"},
		{input: "Etc/GMT-14", want: "Etc/GMT-14"},
		{input: "Etc/GMT+15", want: ""},
		{input: "Etc/GMT-20", want: ""},
		{input: "Etc/GMT5", want: ""},
		{input: "Etc/GMT+5:30", want: ""},

		{input: "bueNos_airES", want: "Buenos_Aires"},
		{input: "ho_cHi_minH", want: "Ho_Chi_Minh"},
		{input: "AMERICA/NEW_YORK", want: "America/New_York"},
		{input: "europe/paris", want: "Europe/Paris"},
		{input: "america/Of_Something", want: "America/of_Something"},
		{input: "australia/es_perth", want: "Australia/es_Perth"},
		{input: "port-au-prince", want: "Port-au-Prince"},

		{input: "Europe_5", want: ""},
		{input: "America/São_Paulo", want: ""},
		{input: "bad zone", want: ""},
	}

	for _, tc := range tests {
		if got := CanonicalizeTimeZoneID(tc.input); got != tc.want {
			t.Errorf("CanonicalizeTimeZoneID(%q) = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestCanonicalizeTimeZoneIDTrailingShortWord(t *testing.T) {
	// The of/es/au lowercasing only applies at a separator; a trailing
	// two-letter word keeps its titlecase.
	if got := CanonicalizeTimeZoneID("america/of"); got != "America/Of" {
		t.Fatalf("CanonicalizeTimeZoneID(america/of) = %q; want America/Of", got)
	}
}
