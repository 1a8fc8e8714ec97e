package datetime

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// canonicalizeLocaleList parses and canonicalizes the requested locale
// tags, dropping duplicates while preserving request order. A tag that does
// not parse is a caller error.
func canonicalizeLocaleList(locales []string) ([]string, error) {
	if len(locales) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, locale)
		}
		tag, err := language.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageTag, locale)
		}
		canonical := tag.String()
		if _, exists := seen[canonical]; exists {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}
	return result, nil
}

// baseLocale strips every extension subtag, leaving the bare
// language-script-region tag.
func baseLocale(locale string) string {
	for _, sep := range []string{"-u-", "-t-", "-x-"} {
		if idx := strings.Index(locale, sep); idx > 0 {
			locale = locale[:idx]
		}
	}
	return locale
}

// stripExtensionKey removes a single -u- extension key/value pair from a
// locale tag, e.g. stripExtensionKey("en-u-hc-h11", "hc") == "en".
func stripExtensionKey(locale, key string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	stripped, err := tag.SetTypeForKey(key, "")
	if err != nil {
		return locale
	}
	return stripped.String()
}

// localeParentChain walks a tag toward root, closest parent first. Engines
// use it to fall back to a parent locale's data bundle.
func localeParentChain(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}

	var chain []string
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		value := parent.String()
		if value == "" || value == "und" {
			break
		}
		chain = append(chain, value)
	}
	return chain
}
