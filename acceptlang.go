package strbundle

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

type weightedLocale struct {
	locale  string
	quality float64
}

// NegotiateLocale picks the best member of available for an Accept-Language
// header value, honoring q-values. Tags are compared case-insensitively and a
// bare language matches any of its regional variants ("en" matches "en-US").
// When the header is empty or nothing matches, the first available locale is
// returned; "" only when available is empty.
//
// The result is a convenience for hosts deciding which locale id to hand to
// New; it adds no fallback tier inside the bundle itself.
func NegotiateLocale(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	for _, want := range parseWeightedLocales(header) {
		for _, avail := range available {
			if localeMatches(want.locale, avail) {
				return avail
			}
		}
	}

	return available[0]
}

// parseWeightedLocales splits an Accept-Language header into locale tags
// sorted by descending quality. Wildcards and malformed q-values are dropped.
func parseWeightedLocales(header string) []weightedLocale {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var locales []weightedLocale
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil || parsed < 0 || parsed > 1 {
				continue
			}
			quality = parsed
		}

		locales = append(locales, weightedLocale{locale: tag, quality: quality})
	}

	slices.SortStableFunc(locales, func(a, b weightedLocale) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return locales
}

// localeMatches reports whether a requested tag is served by an available
// one: exact match, or same base language on either side.
func localeMatches(requested, available string) bool {
	requested = strings.ToLower(requested)
	available = strings.ToLower(available)
	if requested == available {
		return true
	}
	reqBase, _, _ := strings.Cut(requested, "-")
	availBase, _, _ := strings.Cut(available, "-")
	return reqBase == availBase
}
