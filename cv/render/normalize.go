package render

import (
	"net/url"
	"regexp"
	"strings"
)

// Text normalizers used when projecting profile values into a template.
// All of them are total: nil-ish input maps to the empty string, and none
// of them panic on any input.

const ellipsis = "…"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Clean trims the string and collapses internal whitespace runs to a single
// space.
func Clean(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Truncate shortens s to at most max runes, appending an ellipsis when it had
// to cut. When max is smaller than the suffix itself the result is simply the
// first max runes: the output never exceeds max.
func Truncate(s string, max int) string {
	return TruncateWith(s, max, ellipsis)
}

// TruncateWith is Truncate with a caller-chosen suffix.
func TruncateWith(s string, max int, suffix string) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	suffixRunes := []rune(suffix)
	if max <= len(suffixRunes) {
		return string(runes[:max])
	}
	return string(runes[:max-len(suffixRunes)]) + suffix
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML maps the five HTML-significant characters to entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeHTMLPreserveNewlines escapes like EscapeHTML and additionally turns
// newlines into <br> tags, for multi-line free-text fields.
func EscapeHTMLPreserveNewlines(s string) string {
	return strings.ReplaceAll(EscapeHTML(s), "\n", "<br>")
}

// FormatName joins first and last name. When the combined form exceeds max
// runes it degrades to "F. last": the surname is never truncated.
func FormatName(first, last string, max int) string {
	first = Clean(first)
	last = Clean(last)
	full := strings.TrimSpace(first + " " + last)
	if len([]rune(full)) <= max {
		return full
	}
	initial := ""
	if r := []rune(first); len(r) > 0 {
		initial = strings.ToUpper(string(r[0])) + "."
	}
	short := strings.TrimSpace(initial + " " + last)
	if len([]rune(short)) <= max {
		return short
	}
	return Truncate(short, max)
}

// CleanURL returns the cleaned URL when it parses as an absolute URL, and the
// empty string otherwise. Dropping invalid URLs silently is intentional: a
// broken link is a display detail, not a reason to fail a render.
func CleanURL(u string) string {
	cleaned := Clean(u)
	if cleaned == "" {
		return ""
	}
	parsed, err := url.Parse(cleaned)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return cleaned
}

// FormatList drops empty entries, cleans the rest and joins them.
func FormatList(items []string, sep string) string {
	var kept []string
	for _, it := range items {
		if c := Clean(it); c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, sep)
}

// FormatAddress joins the non-empty address parts with commas.
func FormatAddress(parts ...string) string {
	return FormatList(parts, ", ")
}

var yearRe = regexp.MustCompile(`^(\d{4})`)

// displayYear extracts the leading four-digit year of a date string, falling
// back to the cleaned input when it has no year prefix.
func displayYear(date string) string {
	date = Clean(date)
	if date == "" {
		return ""
	}
	if m := yearRe.FindStringSubmatch(date); m != nil {
		return m[1]
	}
	return date
}
