package storage

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// objectFor sniffs the content type of data and builds a unique key under folder.
func objectFor(data []byte, folder media.Folder) (key, contentType string, err error) {
	if !folder.Valid() {
		return "", "", fmt.Errorf("unknown folder %q", folder)
	}
	if len(data) == 0 {
		return "", "", fmt.Errorf("empty upload")
	}

	contentType = http.DetectContentType(data)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	ext, ok := extensions[contentType]
	if !ok {
		ext = ".bin"
	}

	return string(folder) + "/" + uuid.NewString() + ext, contentType, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
