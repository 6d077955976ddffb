package strbundle

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseProperties decodes a properties-format template table: one key=value
// pair per line, where the separator may be '=' or ':' surrounded by optional
// whitespace. Lines starting with '#' or '!' are comments, blank lines are
// skipped, and a trailing backslash continues the value on the next line
// (with its leading whitespace stripped). Values support the escapes \n, \r,
// \t, \\, and \uXXXX.
func ParseProperties(data []byte) (Table, error) {
	table := make(Table)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}

		// Logical line: join continuation lines ending in a backslash.
		for strings.HasSuffix(line, "\\") && !strings.HasSuffix(line, "\\\\") {
			if !scanner.Scan() {
				line = strings.TrimSuffix(line, "\\")
				break
			}
			lineNo++
			line = strings.TrimSuffix(line, "\\") + strings.TrimLeftFunc(scanner.Text(), unicode.IsSpace)
		}

		sep := strings.IndexAny(line, "=:")
		if sep < 1 {
			return nil, fmt.Errorf("line %d: missing key/value separator", lineNo)
		}

		key := strings.TrimSpace(line[:sep])
		value, err := unescapeProperties(strings.TrimSpace(line[sep+1:]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		table[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

func unescapeProperties(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			out.WriteByte('\\')
			break
		}
		switch s[i] {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case '\\':
			out.WriteByte('\\')
		case 'u':
			if i+4 >= len(s) {
				return "", fmt.Errorf("truncated \\u escape")
			}
			code, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid \\u escape %q", s[i+1:i+5])
			}
			out.WriteRune(rune(code))
			i += 4
		default:
			// Unknown escapes pass through verbatim, backslash included.
			out.WriteByte('\\')
			out.WriteByte(s[i])
		}
	}

	return out.String(), nil
}
