package internal

import (
	"testing"
)

func TestJoinPrefixes(t *testing.T) {
	tests := []struct {
		prefix      string
		extraPrefix string
		filePath    string
		want        string
	}{
		{"sub", "root/", "a.txt", "root/sub/a.txt"},
		{"sub", "", "a.txt", "sub/a.txt"},
		{"", "root/", "a.txt", "root/a.txt"},
		{"", "", "a.txt", "a.txt"},
	}

	for _, tt := range tests {
		got := JoinPrefixes(tt.prefix, tt.extraPrefix, tt.filePath)
		if got != tt.want {
			t.Errorf("JoinPrefixes(%q, %q, %q) = %q, want %q",
				tt.prefix, tt.extraPrefix, tt.filePath, got, tt.want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	const currentDir = "/repo/root"

	tests := []struct {
		name        string
		prefix      string
		filePath    string
		extraPrefix string
		want        string
	}{
		{"relative inside tree", "", "src/lib.rs", "", "./src/lib.rs"},
		{"line prefix", "lib", "a.txt", "", "./lib/a.txt"},
		{"extra prefix", "", "a.txt", "vendor/", "./vendor/a.txt"},
		{"absolute outside tree", "", "/repo/other.txt", "", "../other.txt"},
		{"relative climb", "", "../x.txt", "", "../x.txt"},
		{"working directory itself", "", currentDir, "", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.prefix, tt.filePath, tt.extraPrefix, currentDir)
			if err != nil {
				t.Fatalf("ResolvePath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolvePath = %q, want %q", got, tt.want)
			}
		})
	}
}
