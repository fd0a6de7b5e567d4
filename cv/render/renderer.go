// Package render fills CV templates with profile data and optionally
// rasterizes the result to PDF. The pipeline is fixed: scalar substitution,
// section expansion, conditional slot resolution, then a final cleanup pass.
package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cv-backend/cv/model"
	tmpl "cv-backend/cv/template"
	"cv-backend/internal/shared/metrics"
	"cv-backend/internal/shared/storage/templatestore"
	"cv-backend/internal/shared/telemetry"
)

// Format selects the render output.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

var (
	// ErrTemplateNotFound means the template name resolves to nothing in the
	// store. A configuration error: retrying cannot help.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrRenderFailed means the PDF engine failed or timed out. Transient:
	// callers may retry once with backoff.
	ErrRenderFailed = errors.New("pdf rendering failed")
	// ErrUnsupportedFormat rejects formats other than html and pdf.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// TemplateStore resolves template names to template text. Read-only: the
// renderer never writes templates.
type TemplateStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

// Config carries the renderer's collaborators. Store is required; Engine is
// required for PDF output; Cache is optional.
type Config struct {
	Store         TemplateStore
	Engine        PDFEngine
	Cache         *OutputCache
	OrgName       string
	OrgLogo       string // data URL or absolute URL for the org-logo slot
	FallbackQRURL string
}

// Renderer is the facade orchestrating the fill pipeline.
type Renderer struct {
	store          TemplateStore
	engine         PDFEngine
	cache          *OutputCache
	parsed         *tmpl.Cache
	orgName        string
	orgLogoDataURL string
	fallbackQRURL  string
}

const defaultFallbackQRURL = "https://www.google.com"

// New builds a Renderer from cfg.
func New(cfg Config) *Renderer {
	fallback := cfg.FallbackQRURL
	if fallback == "" {
		fallback = defaultFallbackQRURL
	}
	return &Renderer{
		store:          cfg.Store,
		engine:         cfg.Engine,
		cache:          cfg.Cache,
		parsed:         tmpl.NewCache(),
		orgName:        cfg.OrgName,
		orgLogoDataURL: cfg.OrgLogo,
		fallbackQRURL:  fallback,
	}
}

type renderState struct {
	profile  model.Profile
	values   map[string]string
	sections map[string][]map[string]string
}

// Render validates the profile, fills the named template and returns either
// HTML bytes or PDF bytes. The profile is read-only from here on.
func (r *Renderer) Render(ctx context.Context, p model.Profile, templateName string, format Format) ([]byte, error) {
	if format != FormatHTML && format != FormatPDF {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	renderID := uuid.NewString()
	start := time.Now()
	metrics.IncRenderStarted()

	key := Fingerprint(p, templateName, format)
	if r.cache != nil {
		if data, ok := r.cache.Get(key); ok {
			telemetry.Info("render.cache_hit", map[string]any{
				"render_id": renderID,
				"template":  templateName,
				"format":    string(format),
			})
			metrics.IncRenderCompleted()
			return data, nil
		}
	}

	t, err := r.templateFor(ctx, templateName)
	if err != nil {
		metrics.IncRenderFailed()
		return nil, err
	}

	html := r.fill(t, p)

	var out []byte
	switch format {
	case FormatHTML:
		out = []byte(html)
	case FormatPDF:
		if r.engine == nil {
			metrics.IncRenderFailed()
			return nil, fmt.Errorf("%w: no engine configured", ErrRenderFailed)
		}
		out, err = r.engine.RenderPDF(ctx, html)
		if err != nil {
			metrics.IncRenderFailed()
			telemetry.Error("render.failed", map[string]any{
				"render_id": renderID,
				"template":  templateName,
				"error":     err.Error(),
			})
			return nil, err
		}
	}

	if r.cache != nil {
		r.cache.Put(key, out)
	}
	metrics.IncRenderCompleted()
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("render.complete", map[string]any{
		"render_id":   renderID,
		"template":    templateName,
		"format":      string(format),
		"bytes":       len(out),
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return out, nil
}

// RenderHTML is Render with format fixed to HTML, returning a string.
func (r *Renderer) RenderHTML(ctx context.Context, p model.Profile, templateName string) (string, error) {
	out, err := r.Render(ctx, p, templateName, FormatHTML)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Templates lists the names available in the store.
func (r *Renderer) Templates(ctx context.Context) ([]string, error) {
	return r.store.List(ctx)
}

// templateFor returns the parsed tree for name, parsing and caching on first
// use.
func (r *Renderer) templateFor(ctx context.Context, name string) (*tmpl.Template, error) {
	if t, ok := r.parsed.Get(name); ok {
		return t, nil
	}
	text, err := r.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, templatestore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	t := tmpl.Parse(name, string(text), isSlotID)
	r.parsed.Put(t)
	return t, nil
}

// fill runs the whole fill pipeline over a parsed template.
func (r *Renderer) fill(t *tmpl.Template, p model.Profile) string {
	st := &renderState{
		profile:  p,
		values:   scalarValues(p),
		sections: sectionItems(p),
	}
	st.values["orgLogo"] = r.orgLogoDataURL

	html := r.renderNodes(st, t.Nodes)
	html = applyNameClass(html, p.PersonalInfo.FirstName, p.PersonalInfo.LastName)
	return cleanupHTML(html)
}

// renderNodes walks a node list and emits output markup.
func (r *Renderer) renderNodes(st *renderState, nodes []tmpl.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case tmpl.Text:
			b.WriteString(v.Value)
		case tmpl.Placeholder:
			if val, ok := st.values[v.Path]; ok {
				b.WriteString(val)
			} else {
				// Unknown paths stay visible as literal text on purpose: a
				// half-bound template should look half-bound, not silently
				// drop content.
				b.WriteString("{{" + v.Path + "}}")
			}
		case tmpl.Section:
			b.WriteString(r.renderSection(st, v))
		case tmpl.Slot:
			b.WriteString(r.slotHTML(st, v))
		}
	}
	return b.String()
}

// renderSection expands one repeatable block: nothing at all for an empty
// list (container and title included), one instantiated fragment per item
// otherwise, in input order.
func (r *Renderer) renderSection(st *renderState, sec tmpl.Section) string {
	items := st.sections[sec.Name]
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(sec.Prefix)
	for _, fields := range items {
		b.WriteString(r.renderItem(st, sec.Name, sec.Inner, fields))
	}
	b.WriteString(sec.Suffix)
	return b.String()
}

// renderItem instantiates one item fragment. A per-item slot (id "S-field")
// whose mapped value is empty disappears entirely, so no stray separators or
// bullets survive around missing fields.
func (r *Renderer) renderItem(st *renderState, section string, nodes []tmpl.Node, fields map[string]string) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case tmpl.Text:
			b.WriteString(v.Value)
		case tmpl.Placeholder:
			if field, ok := strings.CutPrefix(v.Path, section+"."); ok {
				if val, exists := fields[field]; exists {
					b.WriteString(val)
					continue
				}
			}
			if val, ok := st.values[v.Path]; ok {
				b.WriteString(val)
				continue
			}
			b.WriteString("{{" + v.Path + "}}")
		case tmpl.Slot:
			if field, ok := strings.CutPrefix(v.ID, section+"-"); ok {
				if val, exists := fields[field]; exists {
					if val == "" {
						continue
					}
					b.WriteString(v.Open)
					b.WriteString(r.renderItem(st, section, v.Inner, fields))
					b.WriteString(v.Close)
					continue
				}
			}
			b.WriteString(r.slotHTML(st, v))
		case tmpl.Section:
			// Nested sections are not supported; emit nothing.
		}
	}
	return b.String()
}
