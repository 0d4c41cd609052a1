package resources

import (
	"fmt"
	"path"
	"strings"

	"github.com/npillmayer/mdpage/core"
)

// Kind classifies an asset by its file name.
type Kind int

// Asset kinds
const (
	Other Kind = iota
	Image
	Video
)

type mediaType struct {
	kind Kind
	mime string
}

var mediaTypes = map[string]mediaType{
	".mp4":  {Video, "video/mp4"},
	".m4v":  {Video, "video/mp4"},
	".webm": {Video, "video/webm"},
	".ogv":  {Video, "video/ogg"},
	".ogg":  {Video, "video/ogg"},
	".mov":  {Video, "video/quicktime"},
	".mkv":  {Video, "video/x-matroska"},
	".png":  {Image, "image/png"},
	".jpg":  {Image, "image/jpeg"},
	".jpeg": {Image, "image/jpeg"},
	".gif":  {Image, "image/gif"},
	".webp": {Image, "image/webp"},
	".avif": {Image, "image/avif"},
	".svg":  {Image, "image/svg+xml"},
	".bmp":  {Image, "image/bmp"},
	".ico":  {Image, "image/x-icon"},
}

// MediaType infers kind and MIME type of an asset from its file name.
// Query strings and fragments are ignored. Unknown extensions yield
// (Other, "").
func MediaType(name string) (Kind, string) {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	mt, ok := mediaTypes[strings.ToLower(path.Ext(name))]
	if !ok {
		return Other, ""
	}
	return mt.kind, mt.mime
}

// IsVideo is true if name carries a recognized video extension.
func IsVideo(name string) bool {
	k, _ := MediaType(name)
	return k == Video
}

// SwapExtension replaces the extension of name by ext (given with or
// without leading dot).
func SwapExtension(name string, ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	base := strings.TrimSuffix(name, path.Ext(name))
	return base + "." + ext
}

// IsRelative is true for asset references which have to be resolved
// against a base directory: no leading slash, no scheme, no fragment.
func IsRelative(src string) bool {
	if src == "" || strings.HasPrefix(src, "/") || strings.HasPrefix(src, "#") {
		return false
	}
	if i := strings.Index(src, ":"); i > 0 {
		if j := strings.IndexAny(src, "/?#"); j < 0 || i < j {
			return false // protocol-qualified
		}
	}
	return true
}

// ResolveAssetPath resolves a relative asset reference against baseDir by
// concatenation. The second return value reports whether src was relative;
// non-relative references are returned unchanged and should be passed
// through a URL sanitizer by the caller.
func ResolveAssetPath(src string, baseDir string) (string, bool) {
	src = strings.TrimSpace(src)
	if !IsRelative(src) {
		return src, false
	}
	src = strings.TrimPrefix(src, "./")
	if baseDir == "" {
		return src, true
	}
	resolved := strings.TrimRight(baseDir, "/") + "/" + src
	tracer().Debugf("asset %q resolved to %q", src, resolved)
	return resolved, true
}

// NotFound returns an application error for a missing asset.
func NotFound(res string, kind Kind) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch kind {
	case Image:
		s = fmt.Sprintf("image not found: %s", res)
	case Video:
		s = fmt.Sprintf("video not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}
