// Package strbundle provides locale-aware string bundles: per-locale template
// tables with primary-to-fallback key resolution, positional argument
// substitution, and data-driven plural form selection.
//
// A Bundle is immutable after construction and safe for concurrent use.
//
// # Basic Usage
//
// Supply a loader and the requested locale; the bundle also loads a fallback
// table for the reference locale (en-US by default) that backs missing keys:
//
//	loader := strbundle.MapLoader{
//		"fr": strbundle.Table{
//			"greeting":   "Bonjour, %S !",
//			"pluralRule": "2",
//		},
//		"en-US": strbundle.Table{
//			"greeting": "Hello, %S!",
//			"farewell": "Goodbye, %S!",
//		},
//	}
//
//	bundle, err := strbundle.New("fr", loader)
//	if err != nil {
//		// neither the requested nor the fallback locale could be loaded
//	}
//
//	msg, _ := bundle.Format("greeting", "Marie")
//	// "Bonjour, Marie !"
//
//	msg, _ = bundle.Format("farewell", "Marie")
//	// "Goodbye, Marie!" — key missing in fr, served by the fallback table
//
// # Placeholders
//
// Templates reference arguments positionally, case-insensitively: %S is the
// first argument and %N$S is the Nth (1-based):
//
//	"Here, have %s and %2$S" with args ("a cookie", "$5")
//	// "Here, have a cookie and $5"
//
// A placeholder whose index exceeds the supplied arguments stays in the
// output verbatim; substitution is best effort, never an error.
//
// # Pluralization
//
// A pluralized template packs one sub-form per plural form index, separated
// by ";" (configurable with WithPluralSeparator). The form index for a
// quantity comes from the locale's plural rule, which the table selects
// itself: the reserved key "pluralRule" holds a numeric id into the closed
// rule registry (see RuleByID).
//
//	"fr": strbundle.Table{
//		"downloads":  "%S téléchargement;%S téléchargements",
//		"pluralRule": "2",
//	}
//
//	bundle.FormatN("downloads", 1, 1)  // "1 téléchargement"
//	bundle.FormatN("downloads", 5, 5)  // "5 téléchargements"
//
// A rule index beyond the available sub-forms fails with
// ErrPluralFormOutOfRange; WithClampPluralForms switches to selecting the
// last sub-form instead.
//
// # Loading Tables
//
// Tables can come from memory (MapLoader), from a custom Loader, or from
// fs.FS-backed files named <locale>.<ext>:
//
//	//go:embed locales
//	var localeFS embed.FS
//
//	sub, _ := fs.Sub(localeFS, "locales")
//	bundle, err := strbundle.New("pl", strbundle.NewPropertiesLoader(sub))
//
// Properties files use key=value syntax; JSON, YAML and TOML files may nest,
// and nested keys flatten to dot-separated paths.
//
// # Locale Resolution
//
// The requested locale is used as-is; when it fails to load, the alternate
// resolver (default: the fallback locale) is consulted once. No further
// fallback tiers exist. Hosts choosing a locale can use MatchAvailable or
// NegotiateLocale (Accept-Language) before calling New.
package strbundle
