package internal

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"colored diagnostic", "\x1b[1m\x1b[31msrc/a.c\x1b[0m:3: boom", "src/a.c:3: boom"},
		{"plain passthrough", "src/a.c:3: boom", "src/a.c:3: boom"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
