package strbundle

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// PluralRuleKey is the reserved table key holding the numeric plural rule id
// for the locale. The rule is resolved once at construction, from the primary
// table first and the fallback table on miss.
const PluralRuleKey = "pluralRule"

// DefaultPluralSeparator delimits the sub-forms of a pluralized template.
// The delimiter is a convention of the template data, not of the formatter;
// override it with WithPluralSeparator when the data uses another one.
const DefaultPluralSeparator = ";"

// Bundle resolves keys against a primary and a fallback template table,
// substitutes positional arguments and selects plural forms. It is immutable
// after New and therefore safe for concurrent use without synchronization.
type Bundle struct {
	primary  Table
	fallback Table

	rule      PluralRule
	ruleID    int
	ruleForms int

	locale         string
	fallbackLocale string
	separator      string

	logger     *slog.Logger
	onMissing  func(locale, key string)
	resolveAlt ResolveAlternate

	clampPluralForms bool
}

// Option configures a Bundle during construction.
type Option func(*Bundle) error

// WithFallbackLocale overrides the fixed reference locale (default "en-US")
// whose table backs missing keys and, when nothing else loads, serves as the
// primary table.
func WithFallbackLocale(locale string) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		b.fallbackLocale = locale
		return nil
	}
}

// WithAlternateResolver sets the function consulted when the requested locale
// fails to load. The default resolver returns the fallback locale.
func WithAlternateResolver(resolve ResolveAlternate) Option {
	return func(b *Bundle) error {
		b.resolveAlt = resolve
		return nil
	}
}

// WithPluralSeparator sets the delimiter splitting a pluralized template into
// its sub-forms.
func WithPluralSeparator(sep string) Option {
	return func(b *Bundle) error {
		if sep == "" {
			return fmt.Errorf("strbundle: plural separator cannot be empty")
		}
		b.separator = sep
		return nil
	}
}

// WithClampPluralForms switches plural selection from the default fail-fast
// policy to clamping: a form index beyond the available sub-forms selects the
// last sub-form instead of returning ErrPluralFormOutOfRange.
func WithClampPluralForms() Option {
	return func(b *Bundle) error {
		b.clampPluralForms = true
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked when a key is absent from both
// tables, before the lookup fails. Useful for surfacing translation gaps.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(b *Bundle) error {
		b.onMissing = handler
		return nil
	}
}

// WithLogger sets the logger for fallback and bootstrap events. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) error {
		if logger == nil {
			return fmt.Errorf("strbundle: logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// New builds a Bundle for the requested locale.
//
// The primary table is loaded for locale; if that fails, the alternate locale
// from the resolver is tried. The fallback table for the fallback locale is
// loaded unconditionally and backs individual missing keys even when the
// primary locale loaded fine. When the primary and alternate both fail but
// the fallback table exists, it serves as primary. When no table loads at
// all, New fails with ErrLocaleUnavailable.
//
// After loading, the plural rule is resolved from the reserved PluralRuleKey
// entry (primary first, then fallback). A missing entry selects
// DefaultPluralRuleID; a malformed or unregistered id fails construction
// with ErrUnknownPluralRule.
func New(locale string, loader Loader, opts ...Option) (*Bundle, error) {
	if locale == "" {
		return nil, ErrEmptyLocale
	}
	if loader == nil {
		return nil, ErrNilLoader
	}

	b := &Bundle{
		locale:         locale,
		fallbackLocale: DefaultLocale,
		separator:      DefaultPluralSeparator,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("strbundle: applying option: %w", err)
		}
	}
	if b.resolveAlt == nil {
		b.resolveAlt = func(string) string { return b.fallbackLocale }
	}

	primary, primaryErr := loader.Load(locale)
	if primaryErr != nil {
		alt := b.resolveAlt(locale)
		b.logger.Warn("primary locale unavailable, trying alternate",
			"locale", locale, "alternate", alt, "error", primaryErr)
		if alt != "" && alt != locale {
			primary, primaryErr = loader.Load(alt)
			if primaryErr == nil {
				b.locale = alt
			}
		}
	}

	fallback, fallbackErr := loader.Load(b.fallbackLocale)
	if fallbackErr != nil {
		if primaryErr != nil {
			return nil, fmt.Errorf("%w: locale %q (%v), fallback %q (%v)",
				ErrLocaleUnavailable, locale, primaryErr, b.fallbackLocale, fallbackErr)
		}
		b.logger.Debug("fallback table unavailable, key fallback disabled",
			"fallback", b.fallbackLocale, "error", fallbackErr)
		fallback = Table{}
	}
	if primaryErr != nil {
		primary = fallback
		b.locale = b.fallbackLocale
	}

	b.primary = primary
	b.fallback = fallback

	if err := b.resolvePluralRule(); err != nil {
		return nil, err
	}

	return b, nil
}

// resolvePluralRule bootstraps the plural rule from the tables themselves.
func (b *Bundle) resolvePluralRule() error {
	raw, ok := b.primary[PluralRuleKey]
	if !ok {
		raw, ok = b.fallback[PluralRuleKey]
	}
	if !ok {
		b.ruleID = DefaultPluralRuleID
		b.rule, b.ruleForms, _ = RuleByID(DefaultPluralRuleID)
		b.logger.Debug("no plural rule in tables, using default",
			"locale", b.locale, "ruleID", b.ruleID)
		return nil
	}

	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownPluralRule, raw)
	}
	rule, forms, err := RuleByID(id)
	if err != nil {
		return fmt.Errorf("%w: %d", err, id)
	}
	b.ruleID = id
	b.rule = rule
	b.ruleForms = forms
	return nil
}

// Get returns the raw template for key, without substitution. Lookup order is
// primary table, then fallback table; a miss in both fails with ErrMissingKey.
func (b *Bundle) Get(key string) (string, error) {
	if template, ok := b.primary[key]; ok {
		return template, nil
	}
	if template, ok := b.fallback[key]; ok {
		return template, nil
	}
	if b.onMissing != nil {
		b.onMissing(b.locale, key)
	}
	b.logger.Warn("key not found", "locale", b.locale, "key", key)
	return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
}

// Format resolves key and substitutes the positional arguments. See
// Substitute for the placeholder grammar and the best-effort contract on
// unresolved positions.
func (b *Bundle) Format(key string, args ...any) (string, error) {
	template, err := b.Get(key)
	if err != nil {
		return "", err
	}
	return Substitute(template, args...), nil
}

// FormatN resolves key as a pluralized template, selects the sub-form for
// quantity n using the bundle's plural rule, then substitutes args. Sub-forms
// are separated by the bundle's plural separator and trimmed of surrounding
// whitespace. A rule index with no matching sub-form fails with
// ErrPluralFormOutOfRange unless WithClampPluralForms was set.
func (b *Bundle) FormatN(key string, n int, args ...any) (string, error) {
	template, err := b.Get(key)
	if err != nil {
		return "", err
	}
	form, err := b.selectForm(template, n)
	if err != nil {
		return "", fmt.Errorf("%w (key %q)", err, key)
	}
	return Substitute(form, args...), nil
}

func (b *Bundle) selectForm(template string, n int) (string, error) {
	forms := strings.Split(template, b.separator)
	index := b.rule(n)
	if index >= len(forms) {
		if !b.clampPluralForms {
			return "", fmt.Errorf("%w: index %d, %d forms", ErrPluralFormOutOfRange, index, len(forms))
		}
		index = len(forms) - 1
	}
	return strings.TrimSpace(forms[index]), nil
}

// Locale returns the locale whose table serves as primary. It differs from
// the requested locale when loading fell through to the alternate or the
// fallback locale.
func (b *Bundle) Locale() string {
	return b.locale
}

// FallbackLocale returns the fixed reference locale backing missing keys.
func (b *Bundle) FallbackLocale() string {
	return b.fallbackLocale
}

// PluralRuleID returns the registry id of the plural rule in effect.
func (b *Bundle) PluralRuleID() int {
	return b.ruleID
}

// PluralForms returns how many sub-forms the bundle's plural rule selects
// between. Pluralized templates are expected to carry exactly this many.
func (b *Bundle) PluralForms() int {
	return b.ruleForms
}

// Has reports whether key resolves in the primary or fallback table.
func (b *Bundle) Has(key string) bool {
	if _, ok := b.primary[key]; ok {
		return true
	}
	_, ok := b.fallback[key]
	return ok
}
