package constants

import "strings"

// Formats holds the supported source document formats.
var Formats = []string{"PDF", "XLSX", "CSV"}

const (
	PDF  = "PDF"
	XLSX = "XLSX"
	CSV  = "CSV"
)

// AllowedExtensions holds the default allowed file extensions for estimate documents.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"xlsx": {},
	"xlsm": {},
	"csv":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its document format, or ""
// when the extension is unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "xlsx", "xlsm":
		return XLSX
	case "csv":
		return CSV
	default:
		return ""
	}
}
