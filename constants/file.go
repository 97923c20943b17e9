package constants

import "strings"

// MediaKind is the coarse format of an uploaded document.
type MediaKind string

const (
	PDF   MediaKind = "PDF"
	IMAGE MediaKind = "IMAGE"
)

// MaxUploadBytes is the per-document size cap enforced at the upload boundary.
const MaxUploadBytes = 16 << 20 // 16 MiB

// AllowedMIMETypes maps the accepted upload content types to a media kind.
var AllowedMIMETypes = map[string]MediaKind{
	"image/jpeg":      IMAGE,
	"image/png":       IMAGE,
	"application/pdf": PDF,
}

// AllowedExtensions holds the file extensions accepted by the offline CLI.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind returns the media kind for a normalized extension,
// or "" when the extension is not accepted.
func MapExtToKind(ext string) MediaKind {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	default:
		return ""
	}
}

// MapMIMEToKind returns the media kind for an upload content type,
// or "" when the type is not accepted.
func MapMIMEToKind(mime string) MediaKind {
	kind, ok := AllowedMIMETypes[strings.ToLower(strings.TrimSpace(mime))]
	if !ok {
		return ""
	}
	return kind
}
