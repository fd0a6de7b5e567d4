// Package cvapi exposes the CV rendering service over HTTP.
package cvapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cv-backend/cv/model"
	"cv-backend/cv/render"
	"cv-backend/internal/shared/server/respond"
	"cv-backend/internal/shared/util"
)

const maxRequestSize = 2 << 20 // 2MB of profile JSON is already absurd

// Handler wires HTTP handlers to the renderer.
type Handler struct {
	Renderer   *render.Renderer
	RetryDelay time.Duration
}

// NewHandler constructs a Handler.
func NewHandler(r *render.Renderer) *Handler {
	return &Handler{Renderer: r, RetryDelay: 500 * time.Millisecond}
}

// RegisterRoutes attaches CV routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cv/render", h.renderCV)
	rg.GET("/cv/templates", h.listTemplates)
}

type renderRequest struct {
	Profile  model.Profile `json:"profile"`
	Template string        `json:"template"`
	Format   string        `json:"format"`
}

func (h *Handler) renderCV(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)

	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Template = strings.TrimSpace(req.Template)
	if req.Template == "" {
		req.Template = "montemplate-v2"
	}
	format := render.Format(strings.ToLower(strings.TrimSpace(req.Format)))
	if format == "" {
		format = render.FormatPDF
	}

	c.Set("template", req.Template)
	c.Set("format", string(format))

	out, err := h.renderWithRetry(c.Request.Context(), req.Profile, req.Template, format)
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", "profile failed validation", verr.Violations)
		case errors.Is(err, render.ErrTemplateNotFound):
			respond.Error(c, http.StatusNotFound, "template_not_found", err.Error(), nil)
		case errors.Is(err, render.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, render.ErrRenderFailed):
			respond.Error(c, http.StatusBadGateway, "render_failed", "pdf rendering failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to render cv", nil)
		}
		return
	}

	switch format {
	case render.FormatPDF:
		name := util.OutputFileName(req.Profile.PersonalInfo.FirstName, req.Profile.PersonalInfo.LastName, "pdf")
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "application/pdf", out)
	default:
		c.Data(http.StatusOK, "text/html; charset=utf-8", out)
	}
}

// renderWithRetry retries exactly once on a transient engine failure. Other
// error kinds are deterministic and returned as-is.
func (h *Handler) renderWithRetry(ctx context.Context, p model.Profile, template string, format render.Format) ([]byte, error) {
	out, err := h.Renderer.Render(ctx, p, template, format)
	if err == nil || !errors.Is(err, render.ErrRenderFailed) {
		return out, err
	}
	select {
	case <-ctx.Done():
		return nil, err
	case <-time.After(h.RetryDelay):
	}
	return h.Renderer.Render(ctx, p, template, format)
}

func (h *Handler) listTemplates(c *gin.Context) {
	names, err := h.Renderer.Templates(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list templates", nil)
		return
	}
	if names == nil {
		names = []string{}
	}
	respond.OK(c, gin.H{"templates": names})
}
