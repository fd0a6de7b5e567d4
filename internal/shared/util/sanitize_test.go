package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	got, err := SanitizeFileName("montemplate-v2")
	if err != nil || got != "montemplate-v2" {
		t.Fatalf("got %q, %v", got, err)
	}

	got, err = SanitizeFileName("sub/template")
	if err != nil || got != "sub_template" {
		t.Fatalf("separator not flattened: %q, %v", got, err)
	}

	for _, bad := range []string{"", "   ", "../etc/passwd", "a/../b"} {
		if _, err := SanitizeFileName(bad); err == nil {
			t.Errorf("SanitizeFileName(%q) accepted a bad name", bad)
		}
	}
}
