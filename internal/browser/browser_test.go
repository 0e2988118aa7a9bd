package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.in.gov.br/web/dou/-/12345", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Open(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Open(%q): expected error, got nil", tt.url)
		}
		// Valid URLs may still fail to launch on headless CI, so only
		// the rejection side is asserted.
	}
}

func TestOpener(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open"},
		{"windows", "rundll32"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		name, args := opener(tt.goos, "https://example.com")
		if name != tt.want {
			t.Errorf("opener(%q) = %q, want %q", tt.goos, name, tt.want)
		}
		if len(args) == 0 || args[len(args)-1] != "https://example.com" {
			t.Errorf("opener(%q) args = %v, want URL as final arg", tt.goos, args)
		}
	}
}
