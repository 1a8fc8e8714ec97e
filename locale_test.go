package datetime

import (
	"errors"
	"reflect"
	"testing"
)

func TestCanonicalizeLocaleList(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"empty", nil, nil},
		{"canonical_casing", []string{"en-us"}, []string{"en-US"}},
		{"dedupe_after_canonicalization", []string{"en-US", "en-us", "de"}, []string{"en-US", "de"}},
		{"keeps_extensions", []string{"en-u-hc-h11"}, []string{"en-u-hc-h11"}},
		{"trims_space", []string{" fr "}, []string{"fr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := canonicalizeLocaleList(tt.input)
			if err != nil {
				t.Fatalf("canonicalizeLocaleList: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCanonicalizeLocaleListErrors(t *testing.T) {
	for _, input := range [][]string{{""}, {"   "}, {"not a tag!!"}} {
		if _, err := canonicalizeLocaleList(input); !errors.Is(err, ErrInvalidLanguageTag) {
			t.Errorf("canonicalizeLocaleList(%v) err = %v; want ErrInvalidLanguageTag", input, err)
		}
	}
}

func TestBaseLocale(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"en-US", "en-US"},
		{"en-u-hc-h11", "en"},
		{"de-DE-u-ca-gregory", "de-DE"},
		{"ja-t-de-t0-und", "ja"},
		{"fr-x-private", "fr"},
	}

	for _, tt := range tests {
		if got := baseLocale(tt.input); got != tt.want {
			t.Errorf("baseLocale(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripExtensionKey(t *testing.T) {
	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"en-u-hc-h11", "hc", "en"},
		{"en-u-ca-gregory-hc-h11", "hc", "en-u-ca-gregory"},
		{"en", "hc", "en"},
	}

	for _, tt := range tests {
		if got := stripExtensionKey(tt.locale, tt.key); got != tt.want {
			t.Errorf("stripExtensionKey(%q, %q) = %q; want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestLocaleParentChain(t *testing.T) {
	chain := localeParentChain("es-MX")
	if len(chain) == 0 {
		t.Fatal("es-MX has no parent chain")
	}
	if chain[len(chain)-1] != "es" {
		t.Errorf("chain = %v; want it to end at es", chain)
	}

	if chain := localeParentChain("en"); len(chain) != 0 {
		t.Errorf("en chain = %v; want empty", chain)
	}
}
