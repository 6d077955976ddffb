package strbundle

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is the fixed reference locale used for the fallback table and
// by the default alternate-locale resolver.
const DefaultLocale = "en-US"

// ResolveAlternate maps a locale that failed to load to the locale tried in
// its place. It must be pure; returning "" or the input disables the retry.
type ResolveAlternate func(requested string) string

// CanonicalLocale parses id as a BCP 47 tag and returns its canonical form,
// e.g. "EN_us" becomes "en-US". Loaders keyed by canonical locale names can
// use it to normalize host-supplied identifiers before lookup.
func CanonicalLocale(id string) (string, error) {
	tag, err := language.Parse(id)
	if err != nil {
		return "", fmt.Errorf("strbundle: parsing locale %q: %w", id, err)
	}
	return tag.String(), nil
}

// MatchAvailable returns the member of available that best serves the
// requested locale, using BCP 47 matching (so "en-GB" can match an available
// "en"). Unparseable entries in available are skipped; if nothing matches or
// nothing parses, the first available entry is returned, and "" only when
// available is empty.
func MatchAvailable(requested string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for _, id := range available {
		tag, err := language.Parse(id)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, id)
	}
	if len(tags) == 0 {
		return available[0]
	}

	want, err := language.Parse(requested)
	if err != nil {
		return names[0]
	}

	_, index, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No {
		return names[0]
	}
	return names[index]
}
