package render

import (
	"strings"
	"testing"

	"cv-backend/cv/model"
)

func TestExperienceItemOngoing(t *testing.T) {
	item := experienceItem(model.Experience{
		Company:   "Acme",
		Position:  "Développeur",
		StartDate: "2021-04",
		Current:   true,
	})
	if item["startDate"] != "2021 - auj." {
		t.Errorf("expected ongoing date range, got %q", item["startDate"])
	}
	if item["duration"] != "" {
		t.Errorf("expected no duration for ongoing role, got %q", item["duration"])
	}
}

func TestExperienceItemDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"2020-01", "2020-07", "6 mois"},
		{"2020-01", "2020-02", "1 mois"},
		{"2020-01", "2021-01", "12 mois"},
		{"garbage", "2020-07", ""},
	}
	for _, c := range cases {
		item := experienceItem(model.Experience{Company: "X", Position: "Y", StartDate: c.start, EndDate: c.end})
		if item["duration"] != c.want {
			t.Errorf("duration(%q, %q) = %q, want %q", c.start, c.end, item["duration"], c.want)
		}
	}
}

func TestExperienceItemAchievementsBulleted(t *testing.T) {
	item := experienceItem(model.Experience{
		Company:      "Acme",
		Position:     "Dev",
		StartDate:    "2020-01",
		Achievements: []string{"Premier résultat", "  ", "Deuxième résultat"},
	})
	want := "• Premier résultat<br>• Deuxième résultat"
	if item["achievements"] != want {
		t.Errorf("achievements = %q, want %q", item["achievements"], want)
	}
}

func TestAugmentedEducationPrependsSchoolEntry(t *testing.T) {
	p := model.Profile{
		PersonalInfo: model.PersonalInfo{
			Program:   "MCO",
			StartYear: 2026,
			School:    "École Supérieure",
			Campus:    "Campus Opéra",
		},
		Education: []model.Education{
			{Institution: "Lycée Voltaire", Degree: "Bac général"},
		},
	}
	list := augmentedEducation(p)
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	first := list[0]
	if first.Degree != "BTS MCO" {
		t.Errorf("expected generated degree BTS MCO, got %q", first.Degree)
	}
	if first.StartDate != "2026-09" || first.EndDate != "2028-06" {
		t.Errorf("expected 2026-09 to 2028-06, got %q to %q", first.StartDate, first.EndDate)
	}
	if !first.Current {
		t.Error("expected generated entry to be marked current")
	}
}

func TestAugmentedEducationSkipsWhenSchoolAlreadyListed(t *testing.T) {
	p := model.Profile{
		PersonalInfo: model.PersonalInfo{
			Program:   "MCO",
			StartYear: 2026,
			School:    "École Supérieure",
		},
		Education: []model.Education{
			{Institution: "école supérieure de commerce", Degree: "BTS MCO"},
		},
	}
	list := augmentedEducation(p)
	if len(list) != 1 {
		t.Fatalf("expected existing entry to suppress generated one, got %d entries", len(list))
	}
}

func TestEducationItemPrefixesNotDoubled(t *testing.T) {
	pi := model.PersonalInfo{}

	item := educationItem(model.Education{
		Institution: "Université",
		Degree:      "Licence",
		Field:       "Commerce international",
		GPA:         "Bien",
	}, pi)
	if item["field"] != "Spécialités: Commerce international" {
		t.Errorf("field = %q", item["field"])
	}
	if item["gpa"] != "Mention Bien" {
		t.Errorf("gpa = %q", item["gpa"])
	}

	item = educationItem(model.Education{
		Institution: "Université",
		Degree:      "Licence",
		Field:       "Spécialités: déjà préfixé",
		GPA:         "mention très bien",
	}, pi)
	if strings.Count(item["field"], "Spécialités") != 1 {
		t.Errorf("field prefix doubled: %q", item["field"])
	}
	if strings.Count(strings.ToLower(item["gpa"]), "mention") != 1 {
		t.Errorf("gpa prefix doubled: %q", item["gpa"])
	}
}

func TestEducationItemCanonicalSchoolName(t *testing.T) {
	pi := model.PersonalInfo{School: "École Supérieure", Campus: "Campus Opéra"}
	item := educationItem(model.Education{
		Institution: "ecole superieure", // candidate spelling kept only if no match
		Degree:      "BTS MCO",
		Location:    "Paris",
	}, pi)
	// No fold match between accented and unaccented spellings, so the typed
	// name stays.
	if item["institution"] != "ecole superieure" {
		t.Errorf("institution = %q", item["institution"])
	}

	item = educationItem(model.Education{
		Institution: "école supérieure de commerce",
		Degree:      "BTS MCO",
		Location:    "Paris",
	}, pi)
	if item["institution"] != "École Supérieure" {
		t.Errorf("expected canonical school name, got %q", item["institution"])
	}
	if item["location"] != "Campus Opéra" {
		t.Errorf("expected canonical campus, got %q", item["location"])
	}
}

func TestEducationItemCurrentShowsEnCours(t *testing.T) {
	item := educationItem(model.Education{
		Institution: "Université",
		Degree:      "Master",
		StartDate:   "2025-09",
		EndDate:     "2027-06",
		Current:     true,
	}, model.PersonalInfo{})
	if item["endDate"] != "En cours" {
		t.Errorf("endDate = %q", item["endDate"])
	}
	if item["dateRange"] != "2025 - En cours" {
		t.Errorf("dateRange = %q", item["dateRange"])
	}
}

func TestSectionItemsOrderMatchesInput(t *testing.T) {
	p := model.Profile{
		Experience: []model.Experience{
			{Company: "A", Position: "P1", StartDate: "2020"},
			{Company: "B", Position: "P2", StartDate: "2021"},
			{Company: "C", Position: "P3", StartDate: "2019"},
		},
	}
	items := sectionItems(p)["experience"]
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"A", "B", "C"} {
		if items[i]["company"] != want {
			t.Errorf("item %d company = %q, want %q", i, items[i]["company"], want)
		}
	}
}
