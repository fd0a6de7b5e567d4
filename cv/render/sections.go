package render

import (
	"fmt"
	"strings"
	"time"

	"cv-backend/cv/model"
)

// sectionOrder is the fixed order in which repeatable blocks are expanded.
var sectionOrder = []string{
	"experience",
	"education",
	"skills",
	"languages",
	"software",
	"certifications",
	"projects",
	"references",
}

// sectionItems maps every repeatable section name to its display fields, one
// map per item, in input list order. The mappers derive everything the
// templates show: extracted years, durations, bullet lists, normalized
// prefixes.
func sectionItems(p model.Profile) map[string][]map[string]string {
	out := make(map[string][]map[string]string, len(sectionOrder))

	for _, exp := range p.Experience {
		out["experience"] = append(out["experience"], experienceItem(exp))
	}
	for _, edu := range augmentedEducation(p) {
		out["education"] = append(out["education"], educationItem(edu, p.PersonalInfo))
	}
	for _, s := range p.Skills {
		out["skills"] = append(out["skills"], map[string]string{
			"name":     EscapeHTML(Truncate(Clean(s.Name), 40)),
			"level":    EscapeHTML(s.Level),
			"category": EscapeHTML(Clean(s.Category)),
		})
	}
	for _, l := range p.Languages {
		out["languages"] = append(out["languages"], map[string]string{
			"name":  EscapeHTML(Clean(l.Name)),
			"level": EscapeHTML(l.Level),
		})
	}
	for _, s := range p.Software {
		out["software"] = append(out["software"], map[string]string{
			"name":  EscapeHTML(Clean(s.Name)),
			"level": EscapeHTML(s.Level),
		})
	}
	for _, c := range p.Certifications {
		out["certifications"] = append(out["certifications"], map[string]string{
			"name":         EscapeHTML(Clean(c.Name)),
			"issuer":       EscapeHTML(Clean(c.Issuer)),
			"date":         EscapeHTML(Clean(c.Date)),
			"credentialId": EscapeHTML(Clean(c.CredentialID)),
			"url":          CleanURL(c.URL),
		})
	}
	for _, pr := range p.Projects {
		out["projects"] = append(out["projects"], map[string]string{
			"name":         EscapeHTML(Truncate(Clean(pr.Name), 50)),
			"description":  EscapeHTMLPreserveNewlines(Truncate(Clean(pr.Description), 200)),
			"technologies": EscapeHTML(FormatList(pr.Technologies, ", ")),
			"url":          CleanURL(pr.URL),
			"startDate":    EscapeHTML(Clean(pr.StartDate)),
			"endDate":      EscapeHTML(Clean(pr.EndDate)),
		})
	}
	for _, r := range p.References {
		position := Clean(r.Position)
		if position != "" && Clean(r.Company) != "" {
			position = fmt.Sprintf("%s chez %s", position, Clean(r.Company))
		}
		out["references"] = append(out["references"], map[string]string{
			"name":     EscapeHTML(Clean(r.Name)),
			"position": EscapeHTML(position),
			"company":  EscapeHTML(Clean(r.Company)),
			"email":    EscapeHTML(Clean(r.Email)),
			"phone":    EscapeHTML(Clean(r.Phone)),
		})
	}
	return out
}

func experienceItem(exp model.Experience) map[string]string {
	startYear := displayYear(exp.StartDate)
	dateRange := startYear
	if exp.Current && startYear != "" {
		dateRange = startYear + " - auj."
	}

	duration := ""
	if !exp.Current {
		if months := monthsBetween(exp.StartDate, exp.EndDate); months == 1 {
			duration = "1 mois"
		} else if months > 1 {
			duration = fmt.Sprintf("%d mois", months)
		}
	}

	var bullets []string
	for _, a := range exp.Achievements {
		if c := Clean(a); c != "" {
			bullets = append(bullets, "• "+EscapeHTML(Truncate(c, 150)))
		}
	}

	return map[string]string{
		"company":      EscapeHTML(Truncate(Clean(exp.Company), 50)),
		"position":     EscapeHTML(Truncate(Clean(exp.Position), 50)),
		"location":     EscapeHTML(Truncate(Clean(exp.Location), 30)),
		"startDate":    EscapeHTML(dateRange),
		"endDate":      EscapeHTML(duration),
		"duration":     EscapeHTML(duration),
		"description":  EscapeHTMLPreserveNewlines(Clean(exp.Description)),
		"achievements": strings.Join(bullets, "<br>"),
	}
}

// augmentedEducation prepends the standardized school entry for enrolled
// candidates, unless an entry for that school already exists.
func augmentedEducation(p model.Profile) []model.Education {
	pi := p.PersonalInfo
	list := append([]model.Education(nil), p.Education...)

	school := Clean(pi.School)
	if pi.Program == "" || pi.StartYear == 0 || school == "" {
		return list
	}
	for _, edu := range list {
		if containsFold(edu.Institution, school) {
			return list
		}
	}
	entry := model.Education{
		Institution: school,
		Degree:      "BTS " + Clean(pi.Program),
		Location:    Clean(pi.Campus),
		StartDate:   fmt.Sprintf("%d-09", pi.StartYear),
		EndDate:     fmt.Sprintf("%d-06", pi.StartYear+2),
		Current:     true,
	}
	return append([]model.Education{entry}, list...)
}

func educationItem(edu model.Education, pi model.PersonalInfo) map[string]string {
	institution := Truncate(Clean(edu.Institution), 60)
	location := Clean(edu.Location)

	// Entries for the enrolling school always display its canonical name and
	// campus, whatever spelling the candidate typed.
	if school := Clean(pi.School); school != "" && containsFold(edu.Institution, school) {
		institution = school
		if campus := Clean(pi.Campus); campus != "" {
			location = campus
		}
	}

	endDisplay := Clean(edu.EndDate)
	if edu.Current {
		endDisplay = "En cours"
	}

	dateRange := ""
	switch {
	case edu.StartDate != "" && edu.EndDate != "":
		end := displayYear(edu.EndDate)
		if edu.Current {
			end = "En cours"
		}
		dateRange = displayYear(edu.StartDate) + " - " + end
	case edu.EndDate != "":
		dateRange = displayYear(edu.EndDate)
	case edu.StartDate != "":
		dateRange = displayYear(edu.StartDate)
	}

	field := Clean(edu.Field)
	if field != "" && !hasFoldPrefix(field, "spécialités:") {
		field = "Spécialités: " + field
	}
	gpa := Clean(edu.GPA)
	if gpa != "" && !hasFoldPrefix(gpa, "mention") {
		gpa = "Mention " + gpa
	}

	return map[string]string{
		"institution": EscapeHTML(institution),
		"degree":      EscapeHTML(Truncate(Clean(edu.Degree), 60)),
		"field":       EscapeHTML(field),
		"location":    EscapeHTML(location),
		"startDate":   EscapeHTML(Clean(edu.StartDate)),
		"endDate":     EscapeHTML(endDisplay),
		"dateRange":   EscapeHTML(dateRange),
		"description": EscapeHTMLPreserveNewlines(Clean(edu.Description)),
		"gpa":         EscapeHTML(gpa),
	}
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseDate(s string) (time.Time, bool) {
	s = Clean(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthsBetween returns the whole number of months from start to end, or 0
// when either date does not parse.
func monthsBetween(start, end string) int {
	s, ok := parseDate(start)
	if !ok {
		return 0
	}
	e, ok := parseDate(end)
	if !ok {
		return 0
	}
	return (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func hasFoldPrefix(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
