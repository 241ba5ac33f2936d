package storage

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
)

const webpQuality = 80

// WebPUploader re-encodes decodable images as WebP, bounded to maxDimension
// on the longest side, before delegating. Anything else passes through.
type WebPUploader struct {
	next         media.Uploader
	maxDimension int
}

func NewWebPUploader(next media.Uploader, maxDimension int) *WebPUploader {
	return &WebPUploader{next: next, maxDimension: maxDimension}
}

func (u *WebPUploader) Upload(ctx context.Context, data []byte, folder media.Folder) (string, error) {
	if converted, ok := u.convert(data); ok {
		data = converted
	}
	return u.next.Upload(ctx, data, folder)
}

func (u *WebPUploader) convert(data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	img = fit(img, u.maxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// fit scales img down so neither side exceeds limit. limit <= 0 disables scaling.
func fit(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if limit <= 0 || (w <= limit && h <= limit) {
		return img
	}

	nw, nh := limit, limit
	if w >= h {
		nh = h * limit / w
	} else {
		nw = w * limit / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

var _ media.Uploader = (*WebPUploader)(nil)
