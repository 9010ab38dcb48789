package config

import (
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/photos", "/media/photos"},
		{"single trailing slash", "/media/photos/", "/media/photos"},
		{"multiple trailing slashes", "/media/photos///", "/media/photos"},
		{"root path", "/", "/"},
		{"relative path", "target", "target"},
		{"relative with slash", "target/", "target"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_SplitSizeBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SplitSizeBytes = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative split size")
	}
}

func TestValidate_ColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown color mode")
	}

	cfg = DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestCheckOverlap(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		name    string
		target  string
		sources []string
		wantErr bool
	}{
		{
			"disjoint directories",
			filepath.Join(base, "target"),
			[]string{filepath.Join(base, "src1"), filepath.Join(base, "src2")},
			false,
		},
		{
			"target equals source",
			filepath.Join(base, "dir"),
			[]string{filepath.Join(base, "dir")},
			true,
		},
		{
			"target inside source",
			filepath.Join(base, "src", "target"),
			[]string{filepath.Join(base, "src")},
			true,
		},
		{
			"source inside target",
			filepath.Join(base, "target"),
			[]string{filepath.Join(base, "target", "src")},
			true,
		},
		{
			"similar prefix not nested",
			filepath.Join(base, "photos"),
			[]string{filepath.Join(base, "photos2")},
			false,
		},
		{
			"second source overlaps",
			filepath.Join(base, "target"),
			[]string{filepath.Join(base, "ok"), filepath.Join(base, "target")},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOverlap(tt.target, tt.sources)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckOverlap(%q, %v) error = %v, wantErr %v",
					tt.target, tt.sources, err, tt.wantErr)
			}
		})
	}
}
