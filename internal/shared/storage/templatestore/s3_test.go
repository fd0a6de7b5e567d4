package templatestore

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "montemplate-v2.html", want: "montemplate-v2.html"},
		{name: "simple prefix", prefix: "templates", key: "montemplate-v2.html", want: "templates/montemplate-v2.html"},
		{name: "prefix trailing slash", prefix: "templates/", key: "montemplate-v2.html", want: "templates/montemplate-v2.html"},
		{name: "prefix and key slashes", prefix: "/templates/", key: "/montemplate-v2.html", want: "templates/montemplate-v2.html"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
