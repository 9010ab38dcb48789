package exiftag

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// supportedExtensions are the media types exiftool can stamp reliably
// (lowercase, with leading dot).
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".heic": true,
	".mov":  true,
	".mp4":  true,
	".png":  true,
}

// Supported reports whether path has a taggable media extension.
func Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// RiskyPath reports whether path looks like an MTP/gvfs mount, where in-place
// metadata writes are known to fail or corrupt files.
func RiskyPath(path string) bool {
	return strings.Contains(path, "mtp:") || strings.Contains(path, "gvfs")
}

// ReadDescription returns the EXIF ImageDescription of path, or "" when the
// file has none or cannot be parsed. Used for dry-run reporting only, so
// errors are deliberately swallowed.
func ReadDescription(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return ""
	}
	tag, err := x.Get(exif.ImageDescription)
	if err != nil {
		return ""
	}
	desc, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return desc
}
