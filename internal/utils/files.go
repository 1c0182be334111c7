package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ExportFileName returns the attachment name for an employee CSV export
// taken at t, in the format employees-YYYYMMDD-HHMMSS.csv.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("employees-%s.csv", t.UTC().Format("20060102-150405"))
}

// ProfileImageFileName builds a unique, URL-safe file name for an uploaded
// profile image, e.g. jane-doe-1f0c2a4e.png.
func ProfileImageFileName(owner, originalName string) string {
	base := slug.Make(owner)
	if base == "" {
		base = "employee"
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	return fmt.Sprintf("%s-%s%s", base, id[:12], ext)
}
