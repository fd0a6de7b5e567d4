package render

import (
	"strings"

	"cv-backend/cv/model"
	tmpl "cv-backend/cv/template"
)

// slotIDSet lists every element id the renderer treats as a conditional
// slot. Anything else keeps its markup untouched.
var slotIDSet = map[string]bool{
	"profile-image-container": true,
	"photo-container":         true,
	"profile-photo":           true,
	"qr-container":            true,
	"email-item":              true,
	"phone-item":              true,
	"address-item":            true,
	"linkedin-item":           true,
	"website-item":            true,
	"birth-date":              true,
	"phone-display":           true,
	"email-display":           true,
	"license-display":         true,
	"license-text":            true,
	"vehicle-display":         true,
	"vehicle-text":            true,
	"org-logo":                true,
	"summary-section":         true,
	"hobbies-section":         true,
	"hobbies-list":            true,
	"competences-line":        true,
	"competences-list":        true,
	"skills-container":        true,
	"skills-col1":             true,
	"skills-col2":             true,
	"skills-col3":             true,
}

func isSlotID(id string) bool { return slotIDSet[id] }

// slotHTML resolves one conditional slot: fill it with a fully-formed
// fragment when the backing data exists, or drop it outright so no empty
// wrapper survives into the output.
func (r *Renderer) slotHTML(st *renderState, slot tmpl.Slot) string {
	pi := st.profile.PersonalInfo
	switch slot.ID {
	case "profile-image-container", "profile-photo":
		if pi.Photo == "" {
			return ""
		}
		return photoImg(pi.Photo)

	case "photo-container":
		if pi.Photo == "" {
			return ""
		}
		return slot.Open + photoImg(pi.Photo) + slot.Close

	case "qr-container":
		// The QR target falls back to a fixed URL so the header keeps a
		// deterministic size even without a personal website.
		target := CleanURL(pi.Website)
		if target == "" {
			target = r.fallbackQRURL
		}
		dataURL, err := QRDataURL(target, qrPixelSize)
		if err != nil {
			return ""
		}
		return slot.Open + `<img src="` + dataURL + `" alt="QR Code" />` + slot.Close

	case "email-item":
		return fillIf(slot, Clean(pi.Email), "📧 "+EscapeHTML(Clean(pi.Email)))
	case "phone-item":
		return fillIf(slot, Clean(pi.Phone), "📱 "+EscapeHTML(Clean(pi.Phone)))
	case "address-item":
		addr := FormatAddress(pi.Address, pi.City, pi.PostalCode)
		return fillIf(slot, addr, "📍 "+EscapeHTML(addr))
	case "linkedin-item":
		u := CleanURL(pi.LinkedIn)
		return fillIf(slot, u, `💼 <a href="`+u+`">LinkedIn</a>`)
	case "website-item":
		u := CleanURL(pi.Website)
		return fillIf(slot, u, `🌐 <a href="`+u+`">Site web</a>`)

	case "birth-date":
		return fillIf(slot, Clean(pi.DateOfBirth), "Né le "+EscapeHTML(Clean(pi.DateOfBirth)))
	case "phone-display":
		return fillIf(slot, Clean(pi.Phone), "Tel. "+EscapeHTML(Clean(pi.Phone)))
	case "email-display":
		return fillIf(slot, Clean(pi.Email), " • Mail. "+EscapeHTML(Clean(pi.Email)))

	case "license-display":
		return fillIf(slot, Clean(pi.DrivingLicense), "•")
	case "license-text":
		return fillIf(slot, Clean(pi.DrivingLicense), EscapeHTML(Clean(pi.DrivingLicense)))
	case "vehicle-display":
		if !pi.HasVehicle {
			return ""
		}
		return slot.Open + "•" + slot.Close
	case "vehicle-text":
		if !pi.HasVehicle {
			return ""
		}
		return slot.Open + "Motorisé" + slot.Close

	case "org-logo":
		if r.orgLogoDataURL != "" {
			return `<img src="` + r.orgLogoDataURL + `" alt="" id="org-logo" class="org-logo">`
		}
		if r.orgName != "" {
			return "<strong>" + EscapeHTML(r.orgName) + "</strong>"
		}
		return ""

	case "summary-section":
		if st.values["summary"] == "" {
			return ""
		}
		return slot.Open + r.renderNodes(st, slot.Inner) + slot.Close

	case "hobbies-section":
		if len(st.profile.Hobbies) == 0 {
			return ""
		}
		return slot.Open + r.renderNodes(st, slot.Inner) + slot.Close

	case "hobbies-list":
		formatted := formatHobbies(st.profile.Hobbies)
		return fillIf(slot, formatted, formatted)

	case "competences-line", "competences-list":
		// Deprecated duplicate of the per-skill display; always removed.
		return ""

	case "skills-container":
		col1, col2, col3 := skillsColumns(st.profile)
		if col1 == "" && col2 == "" && col3 == "" {
			return ""
		}
		return slot.Open + r.renderNodes(st, slot.Inner) + slot.Close

	case "skills-col1", "skills-col2", "skills-col3":
		col1, col2, col3 := skillsColumns(st.profile)
		content := map[string]string{
			"skills-col1": col1,
			"skills-col2": col2,
			"skills-col3": col3,
		}[slot.ID]
		return fillIf(slot, content, content)

	default:
		return slot.Open + r.renderNodes(st, slot.Inner) + slot.Close
	}
}

// fillIf keeps the slot element with the given content when value is
// non-empty, and removes the element entirely otherwise.
func fillIf(slot tmpl.Slot, value, content string) string {
	if value == "" {
		return ""
	}
	if slot.Close == "" {
		// Void elements cannot hold content; presence is all they signal.
		return slot.Open
	}
	return slot.Open + content + slot.Close
}

func photoImg(src string) string {
	return `<img src="` + src + `" alt="" class="cv-photo" id="profile-photo">`
}

// formatHobbies renders the hobby list as "•"-separated emphasized entries.
// A "name : detail" hobby keeps only its name emphasized.
func formatHobbies(hobbies []string) string {
	var parts []string
	for _, h := range hobbies {
		hobby := Clean(h)
		if hobby == "" {
			continue
		}
		if name, detail, ok := strings.Cut(hobby, ":"); ok {
			parts = append(parts, "<em>"+EscapeHTML(strings.TrimSpace(name))+"</em> : "+EscapeHTML(strings.TrimSpace(detail)))
			continue
		}
		parts = append(parts, "<em>"+EscapeHTML(hobby)+"</em>")
	}
	return strings.Join(parts, " • ")
}

// skillsColumns builds the three-column skills block: languages first,
// software plus general skills second, personal qualities and values third.
func skillsColumns(p model.Profile) (string, string, string) {
	var byCategory = func(cat string) []model.Skill {
		var out []model.Skill
		for _, s := range p.Skills {
			switch cat {
			case "":
				if s.Category == "" || s.Category == "Compétences" {
					out = append(out, s)
				}
			default:
				if s.Category == cat {
					out = append(out, s)
				}
			}
		}
		return out
	}

	var col1 []string
	for _, l := range p.Languages {
		col1 = append(col1, "<b>"+EscapeHTML(Clean(l.Name))+"</b> : "+EscapeHTML(formatLevel(l.Level)))
	}

	var col2 []string
	for _, s := range p.Software {
		col2 = append(col2, "<b>"+EscapeHTML(Clean(s.Name))+"</b> : "+EscapeHTML(formatLevel(s.Level)))
	}
	if general := byCategory(""); len(general) > 0 {
		var names []string
		for _, s := range general {
			names = append(names, EscapeHTML(Clean(s.Name)))
		}
		col2 = append(col2, "Compétences : "+strings.Join(names, ", "))
	}

	var col3 []string
	for _, cat := range []string{"Qualités", "Valeurs"} {
		skills := byCategory(cat)
		if len(skills) == 0 {
			continue
		}
		var names []string
		for _, s := range skills {
			names = append(names, EscapeHTML(Clean(s.Name)))
		}
		col3 = append(col3, "# "+strings.Join(names, ", "))
	}

	return strings.Join(col1, "<br/>"), strings.Join(col2, "<br/>"), strings.Join(col3, "<br/>")
}
