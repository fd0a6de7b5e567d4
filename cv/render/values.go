package render

import (
	"fmt"
	"strings"

	"cv-backend/cv/model"
)

// nameModifierClass picks the CSS modifier appended to the h-name element so
// long names shrink instead of being truncated. Thresholds apply to the
// combined "first last" length.
func nameModifierClass(first, last string) string {
	n := len([]rune(Clean(first))) + len([]rune(Clean(last))) + 1
	switch {
	case n > 60:
		return "extremely-long-name"
	case n > 45:
		return "very-long-name"
	case n > 35:
		return "long-name"
	default:
		return ""
	}
}

const fullNameMax = 50

// scalarValues projects the profile onto the flat placeholder paths used by
// templates. Values are escaped here, once, so the tree walk can emit them
// verbatim. Derived paths (fullName, fullAddress, the generated summary) are
// computed from their source fields before any substitution happens.
func scalarValues(p model.Profile) map[string]string {
	pi := p.PersonalInfo
	first := Clean(pi.FirstName)
	last := Clean(pi.LastName)

	summary := effectiveSummary(p)

	return map[string]string{
		"personalInfo.firstName":   EscapeHTML(first),
		"personalInfo.lastName":    EscapeHTML(last),
		"personalInfo.fullName":    EscapeHTML(FormatName(first, last, fullNameMax)),
		"personalInfo.email":       EscapeHTML(Clean(pi.Email)),
		"personalInfo.phone":       EscapeHTML(Clean(pi.Phone)),
		"personalInfo.address":     EscapeHTML(Clean(pi.Address)),
		"personalInfo.city":        EscapeHTML(Clean(pi.City)),
		"personalInfo.postalCode":  EscapeHTML(Clean(pi.PostalCode)),
		"personalInfo.country":     EscapeHTML(Clean(pi.Country)),
		"personalInfo.dateOfBirth": EscapeHTML(Clean(pi.DateOfBirth)),
		"personalInfo.fullAddress": EscapeHTML(FormatAddress(pi.Address, pi.City, pi.PostalCode, pi.Country)),
		"personalInfo.linkedin":    CleanURL(pi.LinkedIn),
		"personalInfo.website":     CleanURL(pi.Website),
		"personalInfo.photo":       pi.Photo,
		"summary":                  EscapeHTMLPreserveNewlines(Clean(summary)),
		"hobbies":                  EscapeHTML(FormatList(p.Hobbies, ", ")),
	}
}

// effectiveSummary returns the summary to render: the standardized enrollment
// text when the profile carries the program extension, the free-text summary
// otherwise.
func effectiveSummary(p model.Profile) string {
	if p.PersonalInfo.Program != "" && p.PersonalInfo.StartYear != 0 {
		return enrollmentSummary(p)
	}
	return p.Summary
}

// enrollmentSummary builds the standardized introduction for enrolled
// candidates looking for an apprenticeship.
func enrollmentSummary(p model.Profile) string {
	pi := p.PersonalInfo
	var b strings.Builder
	fmt.Fprintf(&b, "Pour la rentrée de septembre %d, j'intègre le BTS %s", pi.StartYear, Clean(pi.Program))
	if school := Clean(pi.School); school != "" {
		fmt.Fprintf(&b, " à %s", school)
	}

	d := pi.EnrollmentDetails
	if d == nil {
		b.WriteString(" et je recherche une alternance. Disponible 3 jours en structure, 2 jours à l'école et à temps plein pendant les vacances, je m'appuie sur la rigueur, la fiabilité, l'implication et le sens des responsabilités.")
		return b.String()
	}

	if domain := Clean(d.Domain); domain != "" {
		fmt.Fprintf(&b, " et je recherche une alternance en %s", domain)
	} else {
		b.WriteString(" et je recherche une alternance")
	}
	if activities := Clean(d.Activities); activities != "" {
		fmt.Fprintf(&b, " : %s", activities)
	}
	if availability := Clean(d.Availability); availability != "" {
		fmt.Fprintf(&b, ". %s", availability)
	} else {
		b.WriteString(". Disponible 3 jours en structure, 2 jours à l'école et à temps plein pendant les vacances")
	}
	if qualities := Clean(d.Qualities); qualities != "" {
		fmt.Fprintf(&b, ", je m'appuie sur %s.", qualities)
	} else {
		b.WriteString(", je m'appuie sur la rigueur, la fiabilité, l'implication et le sens des responsabilités.")
	}
	return b.String()
}

// levelDisplay maps skill and CEFR language levels to the French display
// wording used by the three-column skills block.
var levelDisplay = map[string]string{
	"beginner":     "débutant",
	"intermediate": "intermédiaire",
	"advanced":     "avancé",
	"expert":       "expert",
	"A1":           "débutant",
	"A2":           "débutant",
	"B1":           "intermédiaire",
	"B2":           "intermédiaire",
	"C1":           "avancé",
	"C2":           "avancé",
	"native":       "natif",
}

func formatLevel(level string) string {
	if level == "" {
		return ""
	}
	if mapped, ok := levelDisplay[level]; ok {
		return mapped
	}
	return level
}
