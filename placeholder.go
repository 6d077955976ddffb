package strbundle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// positionalPattern matches explicit positional placeholders: %1$S, %2$s, ...
// The index is 1-based and the trailing s is case-insensitive.
var positionalPattern = regexp.MustCompile(`%(\d+)\$[sS]`)

// Substitute replaces positional placeholders in the template with values
// from args. Two placeholder forms are recognized, both case-insensitive:
//
//	%S     the first argument
//	%N$S   the Nth argument (1-based)
//
// Replacement is global and the two passes never interfere: %1$S and %S
// target the same value, so the result is order-independent for unambiguous
// templates. Values are rendered with fmt's %v verb.
//
// A positional index beyond len(args) is left intact rather than failing;
// substitution is best effort and partial output is valid output.
//
// Example:
//
//	Substitute("Here, have %s and %2$S", "a cookie", "$5")
//	// "Here, have a cookie and $5"
func Substitute(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}

	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = fmt.Sprintf("%v", arg)
	}

	// Implicit first-argument placeholder. The literal "%s" never overlaps
	// "%N$s" (the positional form has no '%' directly before its 's'), so
	// running this pass first cannot corrupt positional placeholders.
	result := strings.ReplaceAll(template, "%s", rendered[0])
	result = strings.ReplaceAll(result, "%S", rendered[0])

	return positionalPattern.ReplaceAllStringFunc(result, func(match string) string {
		// match is "%<digits>$S"; strip the leading % and trailing $S.
		pos, err := strconv.Atoi(match[1 : len(match)-2])
		if err != nil || pos < 1 || pos > len(rendered) {
			return match
		}
		return rendered[pos-1]
	})
}
