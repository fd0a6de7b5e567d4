package render

import (
	"regexp"
	"strings"
)

// Final normalization pass. Individual field removals can leave doubled
// bullet separators or empty wrapper elements behind; this collapses them so
// the rendered page never shows stray debris.

var (
	doubledBulletRe  = regexp.MustCompile(`•\s*•`)
	doubledThinRe    = regexp.MustCompile(`<span class="thin">•</span>\s*<span class="thin">•</span>`)
	emptyItemRe      = regexp.MustCompile(`<div[^>]*id="[^"]*-(?:item|container)"[^>]*>\s*</div>`)
	emptySectionRe   = regexp.MustCompile(`<section class="section">\s*</section>`)
	emptySectionDiv  = regexp.MustCompile(`<div class="section"[^>]*>\s*</div>`)
	// Trailing separators only collapse at block closers. Spans are excluded
	// on purpose: the license and vehicle indicator spans legitimately hold a
	// bare "•" as their whole content.
	trailingThinRe   = regexp.MustCompile(`<span class="thin">•</span>\s*(</div>|</p>)`)
	trailingBulletRe = regexp.MustCompile(`•\s*(</div>|</p>)`)
)

const maxCleanupPasses = 4

func cleanupHTML(html string) string {
	for i := 0; i < maxCleanupPasses; i++ {
		before := html
		html = doubledThinRe.ReplaceAllString(html, `<span class="thin">•</span>`)
		html = doubledBulletRe.ReplaceAllString(html, "•")
		html = emptyItemRe.ReplaceAllString(html, "")
		html = emptySectionRe.ReplaceAllString(html, "")
		html = emptySectionDiv.ReplaceAllString(html, "")
		if html == before {
			break
		}
	}
	html = trailingThinRe.ReplaceAllString(html, "$1")
	return trailingBulletRe.ReplaceAllString(html, "$1")
}

// applyNameClass appends the long-name CSS modifier to the h-name element.
// The decision uses the raw combined name length, so it must run on markup
// where the name is rendered full-size, never truncated.
func applyNameClass(html, first, last string) string {
	cls := nameModifierClass(first, last)
	if cls == "" {
		return html
	}
	return strings.ReplaceAll(html, `class="h-name"`, `class="h-name `+cls+`"`)
}
