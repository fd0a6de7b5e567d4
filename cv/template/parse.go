package template

import (
	"fmt"
	"regexp"
	"strings"
)

// SlotPredicate reports whether an element id marks a conditional slot.
type SlotPredicate func(id string) bool

var (
	startMarkerRe = regexp.MustCompile(`<!--\s*START\s+([A-Za-z][A-Za-z0-9_-]*)\s*-->`)
	placeholderRe = regexp.MustCompile(`\{\{([A-Za-z][A-Za-z0-9_.]*)\}\}`)
	openTagRe     = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>`)
	idAttrRe      = regexp.MustCompile(`\bid="([^"]+)"`)
)

// Parse builds the template tree for the given source text. A START marker
// without a matching END (or vice versa) is kept as literal text: template
// well-formedness is the author's responsibility and render never fails on it.
func Parse(name, text string, isSlot SlotPredicate) *Template {
	if isSlot == nil {
		isSlot = func(string) bool { return false }
	}
	return &Template{Name: name, Nodes: parseBlocks(text, isSlot)}
}

// parseBlocks splits the text on repeatable-section markers, then parses
// the raw stretches in between.
func parseBlocks(text string, isSlot SlotPredicate) []Node {
	var nodes []Node
	rest := text
	for {
		loc := startMarkerRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		sectionName := rest[loc[2]:loc[3]]
		endRe := regexp.MustCompile(`<!--\s*END\s+` + regexp.QuoteMeta(sectionName) + `\s*-->`)
		endLoc := endRe.FindStringIndex(rest[loc[1]:])
		if endLoc == nil {
			// Unbalanced marker: treat the marker itself as literal text and
			// keep scanning after it.
			nodes = append(nodes, parseInline(rest[:loc[1]], isSlot)...)
			rest = rest[loc[1]:]
			continue
		}

		innerStart := loc[1]
		innerEnd := loc[1] + endLoc[0]
		markerEnd := loc[1] + endLoc[1]

		blockStart, blockEnd, prefix, suffix := widenToContainer(rest, sectionName, loc[0], markerEnd)

		nodes = append(nodes, parseInline(rest[:blockStart], isSlot)...)

		innerPred := func(id string) bool {
			return strings.HasPrefix(id, sectionName+"-") || isSlot(id)
		}
		nodes = append(nodes, Section{
			Name:   sectionName,
			Prefix: prefix,
			Inner:  parseInline(rest[innerStart:innerEnd], innerPred),
			Suffix: suffix,
		})
		rest = rest[blockEnd:]
	}
	nodes = append(nodes, parseInline(rest, isSlot)...)
	return nodes
}

// widenToContainer extends a section block over its wrapping container when
// the template wraps the markers in a titled section element. Two shapes are
// recognized, matching the shipped templates:
//
//	<section class="section"> ... <div ... id="NAME-title">...</div> ... markers ... </section>
//	<div class="section" id="NAME-section"> ... markers ... </div>
//
// Returns the widened block bounds plus the markup to emit before and after
// the items when the bound list is non-empty.
func widenToContainer(text, name string, markerStart, markerEnd int) (int, int, string, string) {
	before := text[:markerStart]

	if open := strings.LastIndex(before, fmt.Sprintf(`<div class="section" id="%s-section"`, name)); open >= 0 {
		if !startMarkerRe.MatchString(before[open:]) {
			if rel := strings.Index(text[markerEnd:], "</div>"); rel >= 0 {
				closeEnd := markerEnd + rel + len("</div>")
				return open, closeEnd, text[open:markerStart], text[markerEnd:closeEnd]
			}
		}
	}

	if open := strings.LastIndex(before, "<section"); open >= 0 {
		between := before[open:]
		if strings.Contains(between, fmt.Sprintf(`id="%s-title"`, name)) && !startMarkerRe.MatchString(between) {
			if rel := strings.Index(text[markerEnd:], "</section>"); rel >= 0 {
				closeEnd := markerEnd + rel + len("</section>")
				return open, closeEnd, text[open:markerStart], text[markerEnd:closeEnd]
			}
		}
	}

	return markerStart, markerEnd, "", ""
}

// parseInline extracts placeholders and conditional slots from marker-free
// markup.
func parseInline(text string, isSlot SlotPredicate) []Node {
	var nodes []Node
	for len(text) > 0 {
		pIdx := placeholderRe.FindStringSubmatchIndex(text)
		sStart, sOpen, sTag, sID := findSlotTag(text, isSlot)

		switch {
		case pIdx != nil && (sStart < 0 || pIdx[0] < sStart):
			if pIdx[0] > 0 {
				nodes = append(nodes, Text{Value: text[:pIdx[0]]})
			}
			nodes = append(nodes, Placeholder{Path: text[pIdx[2]:pIdx[3]]})
			text = text[pIdx[1]:]

		case sStart >= 0:
			if sStart > 0 {
				nodes = append(nodes, Text{Value: text[:sStart]})
			}
			openTag := text[sStart:sOpen]
			if isVoidTag(sTag) {
				nodes = append(nodes, Slot{ID: sID, Tag: sTag, Open: openTag})
				text = text[sOpen:]
				break
			}
			closeStart, closeEnd := matchClose(text, sOpen, sTag)
			if closeStart < 0 {
				// Unclosed element: give up on slot semantics for it.
				nodes = append(nodes, Text{Value: openTag})
				text = text[sOpen:]
				break
			}
			nodes = append(nodes, Slot{
				ID:    sID,
				Tag:   sTag,
				Open:  openTag,
				Inner: parseInline(text[sOpen:closeStart], isSlot),
				Close: text[closeStart:closeEnd],
			})
			text = text[closeEnd:]

		default:
			nodes = append(nodes, Text{Value: text})
			return nodes
		}
	}
	return nodes
}

// findSlotTag locates the first opening tag whose id the predicate accepts.
// Returns start offset, end-of-open-tag offset, tag name and id, or -1.
func findSlotTag(text string, isSlot SlotPredicate) (int, int, string, string) {
	offset := 0
	for {
		loc := openTagRe.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return -1, -1, "", ""
		}
		start := offset + loc[0]
		end := offset + loc[1]
		tag := text[offset+loc[2] : offset+loc[3]]
		if m := idAttrRe.FindStringSubmatch(text[start:end]); m != nil && isSlot(m[1]) {
			return start, end, tag, m[1]
		}
		offset = end
	}
}

// matchClose finds the closing tag matching an element opened just before
// pos, honoring nesting of the same tag name.
func matchClose(text string, pos int, tag string) (int, int) {
	re := regexp.MustCompile(`(?i)<` + regexp.QuoteMeta(tag) + `\b[^>]*>|</` + regexp.QuoteMeta(tag) + `\s*>`)
	depth := 1
	offset := pos
	for {
		loc := re.FindStringIndex(text[offset:])
		if loc == nil {
			return -1, -1
		}
		start := offset + loc[0]
		end := offset + loc[1]
		if text[start+1] == '/' {
			depth--
			if depth == 0 {
				return start, end
			}
		} else if !strings.HasSuffix(text[start:end], "/>") {
			depth++
		}
		offset = end
	}
}
