package model

import (
	"errors"
	"strings"
	"testing"
)

func validProfile() Profile {
	return Profile{
		PersonalInfo: PersonalInfo{
			FirstName: "Marie",
			LastName:  "Dupont",
			Email:     "marie.dupont@example.com",
			City:      "Paris",
		},
		Summary: "Étudiante motivée.",
		Experience: []Experience{
			{Company: "Boulangerie Martin", Position: "Vendeuse", StartDate: "2024-06", EndDate: "2024-08"},
		},
		Skills:    []Skill{{Name: "Excel", Level: "advanced"}},
		Languages: []Language{{Name: "Anglais", Level: "B2"}},
	}
}

func TestValidateAcceptsCompleteProfile(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatalf("expected valid profile, got: %v", err)
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	p := validProfile()
	p.PersonalInfo.FirstName = ""
	p.PersonalInfo.Phone = strings.Repeat("0", 51)
	p.Skills[0].Level = "wizard"

	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Violations) < 3 {
		t.Fatalf("expected at least 3 violations, got %d: %v", len(verr.Violations), verr)
	}
	msg := verr.Error()
	for _, want := range []string{"firstName", "phone", "level"} {
		if !strings.Contains(msg, want) {
			t.Errorf("violation for %q missing in %q", want, msg)
		}
	}
}

func TestValidateRejectsOverlongScalars(t *testing.T) {
	p := validProfile()
	p.Summary = strings.Repeat("a", 2001)
	p.Experience[0].Description = strings.Repeat("b", 2001)

	err := p.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(verr.Violations), verr)
	}
}

// Malformed URLs are not a validation concern: they are silently dropped when
// the value is substituted into the template.
func TestValidateIgnoresMalformedURLs(t *testing.T) {
	p := validProfile()
	p.PersonalInfo.Website = "not a url at all"
	p.PersonalInfo.LinkedIn = "also::invalid"

	if err := p.Validate(); err != nil {
		t.Fatalf("malformed URLs must not fail validation, got: %v", err)
	}
}

func TestSectionCountsOrderIsStable(t *testing.T) {
	p := validProfile()
	p.Hobbies = []string{"Football", "Lecture"}
	counts := p.SectionCounts()
	want := []int{1, 0, 1, 1, 0, 0, 0, 2, 0}
	if len(counts) != len(want) {
		t.Fatalf("got %d counts, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %d, want %d", i, counts[i], want[i])
		}
	}
}
