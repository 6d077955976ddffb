package strbundle

import "errors"

var (
	// ErrLocaleUnavailable is returned by New when no template table could be
	// loaded for the requested locale, the alternate locale, or the fallback
	// locale. A bundle that failed this way is unusable.
	ErrLocaleUnavailable = errors.New("strbundle: no template table available")

	// ErrMissingKey is returned when a key is absent from both the primary
	// and the fallback table.
	ErrMissingKey = errors.New("strbundle: key not found")

	// ErrPluralFormOutOfRange is returned when the plural rule selects a form
	// index with no corresponding sub-form in the template. See
	// WithClampPluralForms for the clamping alternative.
	ErrPluralFormOutOfRange = errors.New("strbundle: plural form index out of range")

	// ErrUnknownPluralRule is returned by New when the reserved pluralRule key
	// holds a value that is not a registered rule id.
	ErrUnknownPluralRule = errors.New("strbundle: unknown plural rule id")

	// ErrLocaleNotFound is returned by loaders when no table exists for the
	// requested locale.
	ErrLocaleNotFound = errors.New("strbundle: locale not found")

	// ErrInvalidFile wraps parse failures of template table files.
	ErrInvalidFile = errors.New("strbundle: invalid template table file")

	ErrNilLoader   = errors.New("strbundle: loader cannot be nil")
	ErrEmptyLocale = errors.New("strbundle: locale cannot be empty")
)
