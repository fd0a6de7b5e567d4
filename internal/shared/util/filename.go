package util

import (
	"strings"
	"unicode"
)

// OutputFileName builds the download name for a rendered CV, e.g.
// "CV_Jean_Dupont.pdf". Whitespace inside names becomes underscores and
// anything unsafe for a Content-Disposition filename is dropped.
func OutputFileName(firstName, lastName, ext string) string {
	parts := []string{"CV"}
	for _, name := range []string{firstName, lastName} {
		if s := fileNamePart(name); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "_") + "." + strings.TrimPrefix(ext, ".")
}

func fileNamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}
	return b.String()
}
