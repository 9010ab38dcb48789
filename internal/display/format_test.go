package display

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.00 B"},
		{"under a KB", 512, "512.00 B"},
		{"exactly one KB", 1024, "1.00 KB"},
		{"one and a half KB", 1536, "1.50 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.00 MB"},
		{"gigabytes", 8 << 30, "8.00 GB"},
		{"terabytes", 2 << 40, "2.00 TB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"gigabytes", "8GB", 8 << 30, false},
		{"megabytes", "500MB", 500 << 20, false},
		{"terabyte", "1TB", 1 << 40, false},
		{"lowercase unit", "1tb", 1 << 40, false},
		{"mixed case unit", "2Gb", 2 << 30, false},
		{"space before unit", "500 MB", 500 << 20, false},
		{"fractional", "1.5KB", 1536, false},
		{"bare number is bytes", "1024", 1024, false},
		{"explicit bytes", "42B", 42, false},
		{"surrounding whitespace", "  8GB  ", 8 << 30, false},
		{"empty", "", 0, true},
		{"unit only", "GB", 0, true},
		{"negative", "-5GB", 0, true},
		{"unknown unit", "8PB", 0, true},
		{"garbage", "lots", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSizeFormatBytesRoundTrip(t *testing.T) {
	for _, s := range []string{"1.00 KB", "8.00 GB", "512.00 B"} {
		bytes, err := ParseSize(s)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", s, err)
		}
		if got := FormatBytes(bytes); got != s {
			t.Errorf("FormatBytes(ParseSize(%q)) = %q", s, got)
		}
	}
}
