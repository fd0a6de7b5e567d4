package render

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"
)

// chromePath finds a usable Chrome binary or skips the test. Browser tests
// only run where a browser exists; CI without one still passes.
func chromePath(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no Chrome binary on PATH")
	return ""
}

func TestChromeEngineProducesPDF(t *testing.T) {
	if testing.Short() {
		t.Skip("browser test skipped in short mode")
	}
	engine := NewChromeEngine(chromePath(t), time.Minute)

	pdf, err := engine.RenderPDF(context.Background(), `<html><body><h1>Jordan Lefebvre</h1></body></html>`)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected %%PDF signature, got %q", pdf[:min(8, len(pdf))])
	}
}
