package strbundle

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleFormat renders numbers with locale-specific digits and separators.
// It complements the Bundle: templates carry the words, LocaleFormat renders
// the quantities substituted into them. Immutable and safe for concurrent use.
type LocaleFormat struct {
	printer *message.Printer
	locale  string
}

// NewLocaleFormat builds a formatter for the given BCP 47 locale identifier.
func NewLocaleFormat(locale string) (*LocaleFormat, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("strbundle: parsing locale %q: %w", locale, err)
	}
	return &LocaleFormat{
		printer: message.NewPrinter(tag),
		locale:  tag.String(),
	}, nil
}

// FormatNumber formats n with the locale's decimal and grouping separators.
func (f *LocaleFormat) FormatNumber(n float64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// FormatInt formats an integer with the locale's grouping separators.
func (f *LocaleFormat) FormatInt(n int64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// FormatPercent formats a decimal fraction as a percentage (0.5 renders as
// 50% in the en-US locale).
func (f *LocaleFormat) FormatPercent(n float64) string {
	return f.printer.Sprint(number.Percent(n))
}

// Locale returns the canonical locale identifier the formatter uses.
func (f *LocaleFormat) Locale() string {
	return f.locale
}
