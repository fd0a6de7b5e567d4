package model

// Profile is the canonical CV payload. It is built once per render request,
// validated, and treated as immutable afterwards.
type Profile struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Software       []Software      `json:"software,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Hobbies        []string        `json:"hobbies,omitempty"`
	References     []Reference     `json:"references,omitempty"`
}

// PersonalInfo captures identity, contact and header details, plus the
// optional program-enrollment extension used to auto-generate the summary
// and the leading education entry.
type PersonalInfo struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	Website        string `json:"website,omitempty"`
	Photo          string `json:"photo,omitempty"`
	DrivingLicense string `json:"drivingLicense,omitempty"`
	HasVehicle     bool   `json:"hasVehicle,omitempty"`

	Program           string             `json:"program,omitempty"`
	StartYear         int                `json:"startYear,omitempty"`
	School            string             `json:"school,omitempty"`
	Campus            string             `json:"campus,omitempty"`
	EnrollmentDetails *EnrollmentDetails `json:"enrollmentDetails,omitempty"`
}

// EnrollmentDetails refines the generated enrollment summary.
type EnrollmentDetails struct {
	Domain       string `json:"domain,omitempty"`
	Activities   string `json:"activities,omitempty"`
	Availability string `json:"availability,omitempty"`
	Qualities    string `json:"qualities,omitempty"`
}

// Experience is a work history entry.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a studies entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill is a named skill with an optional level and category
// ("Compétences", "Qualités", "Valeurs").
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// Software is a named tool with an optional proficiency level.
type Software struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Language is a spoken language with an optional CEFR or proficiency level.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Certification is a certification entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Project is a personal or school project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Reference is a professional reference contact.
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// SectionCounts reports the number of items per repeatable section, in the
// fixed section order used by the renderer. Used for cache fingerprinting.
func (p Profile) SectionCounts() []int {
	return []int{
		len(p.Experience),
		len(p.Education),
		len(p.Skills),
		len(p.Languages),
		len(p.Software),
		len(p.Certifications),
		len(p.Projects),
		len(p.Hobbies),
		len(p.References),
	}
}
