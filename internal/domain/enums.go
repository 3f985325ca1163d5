package domain

import (
	"path/filepath"
	"strings"
)

// MediaKind classifies an uploaded file by how its text gets extracted.
type MediaKind string

const (
	MediaText  MediaKind = "text"
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// imageExtensions maps image file extensions (without dot) handled by the
// OCR image operation.
var imageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"heic": true,
}

// videoExtensions maps video file extensions handled by the OCR video operation.
var videoExtensions = map[string]bool{
	"mp4": true,
	"mov": true,
	"avi": true,
}

// MediaKindForFilename classifies a filename by its extension. The second
// return value is false for unsupported extensions.
func MediaKindForFilename(name string) (MediaKind, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch {
	case ext == "txt":
		return MediaText, true
	case imageExtensions[ext]:
		return MediaImage, true
	case videoExtensions[ext]:
		return MediaVideo, true
	default:
		return "", false
	}
}
