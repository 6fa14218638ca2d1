package csvio

import (
	"strings"
)

// DetectDelimiter picks the field delimiter for a file by comparing the
// number of semicolons and commas on the header line. Exports from some
// networks use ';' with ',' as the decimal separator inside fields.
func DetectDelimiter(headerLine string) rune {
	if strings.Count(headerLine, ";") > strings.Count(headerLine, ",") {
		return ';'
	}
	return ','
}

// SplitRow splits one line into trimmed fields. A double quote toggles
// quoted mode, during which the delimiter is literal text. An unterminated
// quote leaves the remainder of the line as a single trailing field, which
// is accepted rather than reported as an error.
func SplitRow(line string, delimiter rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))

	for i, f := range fields {
		f = strings.TrimPrefix(f, `"`)
		f = strings.TrimSuffix(f, `"`)
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// SplitLines breaks raw CSV text into non-empty lines, tolerating both
// \n and \r\n endings.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
