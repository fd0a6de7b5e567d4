package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"cv-backend/cv/model"
	"cv-backend/cv/render"
	"cv-backend/internal/shared/storage/templatestore"
)

func main() {
	outPath := flag.String("out", "./out/sample_cv.pdf", "output path for generated PDF")
	templateDir := flag.String("templates", "./templates/cv", "template directory")
	templateName := flag.String("template", "montemplate-v2", "template name")
	chromePath := flag.String("chrome", "", "path to Chrome binary (default: PATH lookup)")
	htmlOnly := flag.Bool("html-only", false, "skip PDF rasterization, write HTML instead")
	flag.Parse()

	profile := sampleProfile()
	ctx := context.Background()

	renderer := render.New(render.Config{
		Store:  templatestore.NewLocal(*templateDir),
		Engine: render.NewChromeEngine(*chromePath, 0),
	})

	if *htmlOnly {
		html, err := renderer.RenderHTML(ctx, profile, *templateName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			os.Exit(1)
		}
		htmlPath := strings.TrimSuffix(*outPath, filepath.Ext(*outPath)) + ".html"
		if err := writeOutputs(htmlPath, profile, []byte(html)); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
		if err := validateRenderedHTML(html); err != nil {
			fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", htmlPath)
		return
	}

	pdfBytes, err := renderer.Render(ctx, profile, *templateName, render.FormatPDF)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outPath, profile, pdfBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	pages, err := validateRenderedPDF(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s (%d pages)\n", *outPath, pages)
}

func writeOutputs(outPath string, profile model.Profile, data []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}

	profilePath := filepath.Join(dir, "sample_cv_profile.json")
	payload, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(profilePath, payload, 0o644)
}

func sampleProfile() model.Profile {
	return model.Profile{
		PersonalInfo: model.PersonalInfo{
			FirstName: "Jordan",
			LastName:  "Lefebvre",
			Email:     "jordan.lefebvre@example.com",
			Phone:     "+33 6 12 34 56 78",
			Address:   "12 rue de la République",
			City:      "Paris",
			LinkedIn:  "https://www.linkedin.com/in/jordanlefebvre",
		},
		Summary: "Développeur backend avec 5 ans d'expérience sur des services à fort trafic.",
		Hobbies: []string{"Escalade : bloc et falaise", "Photographie"},
		Experience: []model.Experience{
			{
				Company:     "Acme Logistique",
				Position:    "Développeur Backend Senior",
				StartDate:   "2021-04",
				Current:     true,
				Description: "Conception d'un service de routage réduisant la latence de 18%.",
				Achievements: []string{
					"Mise en place du tracing distribué",
					"Migration vers une architecture événementielle",
				},
			},
			{
				Company:   "Blue Harbor",
				Position:  "Développeur Backend",
				StartDate: "2018-01",
				EndDate:   "2021-03",
			},
		},
		Education: []model.Education{
			{
				Institution: "Université de Lyon",
				Degree:      "Master Informatique",
				StartDate:   "2015-09",
				EndDate:     "2017-06",
			},
		},
		Skills: []model.Skill{
			{Name: "Go", Level: "avancé"},
			{Name: "PostgreSQL", Level: "intermédiaire"},
		},
		Languages: []model.Language{
			{Name: "Anglais", Level: "C1"},
		},
	}
}

func validateRenderedHTML(html string) error {
	if idx := strings.Index(html, "{{"); idx != -1 {
		return fmt.Errorf("unresolved template tokens near: %s", snippetAround(html, idx, 200))
	}
	return nil
}

func validateRenderedPDF(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return 0, fmt.Errorf("output does not start with %%PDF signature")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	pages := reader.NumPage()
	if pages < 1 {
		return 0, fmt.Errorf("pdf has no pages")
	}
	return pages, nil
}

func snippetAround(text string, pos, maxLen int) string {
	if pos < 0 {
		return ""
	}
	start := pos - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
