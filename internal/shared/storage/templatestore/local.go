package templatestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cv-backend/internal/shared/util"
)

// Local serves templates from a directory of .html files. The template name
// is the file name without extension.
type Local struct {
	baseDir string
}

// NewLocal creates a store rooted at baseDir.
func NewLocal(baseDir string) *Local {
	return &Local{baseDir: baseDir}
}

// Get reads the markup for name. Names are sanitized so a request can never
// escape the base directory.
func (s *Local) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := util.SanitizeFileName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, clean+".html"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("read template %q: %w", name, err)
	}
	return data, nil
}

// List returns the available template names, sorted.
func (s *Local) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".html"))
	}
	sort.Strings(names)
	return names, nil
}

var _ Store = (*Local)(nil)
