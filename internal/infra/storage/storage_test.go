package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowshad-islam-dev/skipq-api/internal/config"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// ---------- object keys ----------

func TestObjectFor(t *testing.T) {
	key, ct, err := objectFor(pngBytes(t, 2, 2), media.FolderProfilePictures)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.True(t, strings.HasPrefix(key, "profile_pictures/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	key, ct, err = objectFor([]byte("plain text body"), media.FolderServicesPictures)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", ct)
	assert.True(t, strings.HasSuffix(key, ".bin"))

	_, _, err = objectFor([]byte("x"), media.Folder("avatars"))
	assert.Error(t, err)

	_, _, err = objectFor(nil, media.FolderServicesPictures)
	assert.Error(t, err)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a/b.png", joinURL("https://cdn.example/", "a/b.png"))
	assert.Equal(t, "https://cdn.example/a/b.png", joinURL("https://cdn.example", "a/b.png"))
}

// ---------- S3 ----------

type fakeS3 struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Uploader_Upload(t *testing.T) {
	fake := &fakeS3{}
	u := &S3Uploader{client: fake, bucket: "media", baseURL: "https://cdn.example"}

	url, err := u.Upload(context.Background(), pngBytes(t, 2, 2), media.FolderServicesPictures)
	require.NoError(t, err)

	require.NotNil(t, fake.in)
	assert.Equal(t, "media", *fake.in.Bucket)
	assert.Equal(t, "image/png", *fake.in.ContentType)
	assert.Equal(t, "https://cdn.example/"+*fake.in.Key, url)
	assert.True(t, strings.HasPrefix(*fake.in.Key, "services_pictures/"))
}

func TestS3Uploader_Error(t *testing.T) {
	u := &S3Uploader{client: &fakeS3{err: errors.New("access denied")}, bucket: "media", baseURL: "https://cdn.example"}

	_, err := u.Upload(context.Background(), []byte("data"), media.FolderServicesPictures)
	assert.ErrorContains(t, err, "access denied")
}

func TestNewS3Uploader_DefaultURL(t *testing.T) {
	u := NewS3Uploader(config.MediaConfig{Bucket: "media", Region: "eu-west-1"})
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", u.baseURL)

	u = NewS3Uploader(config.MediaConfig{Bucket: "media", Region: "eu-west-1", PublicBaseURL: "https://cdn.example"})
	assert.Equal(t, "https://cdn.example", u.baseURL)
}

// ---------- MinIO ----------

type fakeMinio struct {
	bucket, object string
	body           []byte
	opts           minio.PutObjectOptions
}

func (f *fakeMinio) PutObject(_ context.Context, bucket, object string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.bucket, f.object, f.opts = bucket, object, opts
	f.body, _ = io.ReadAll(r)
	return minio.UploadInfo{Bucket: bucket, Key: object}, nil
}

func TestMinioUploader_Upload(t *testing.T) {
	fake := &fakeMinio{}
	u := &MinioUploader{client: fake, bucket: "media", baseURL: "http://minio:9000/media"}

	data := pngBytes(t, 3, 3)
	url, err := u.Upload(context.Background(), data, media.FolderProfilePictures)
	require.NoError(t, err)

	assert.Equal(t, "media", fake.bucket)
	assert.Equal(t, data, fake.body)
	assert.Equal(t, "image/png", fake.opts.ContentType)
	assert.Equal(t, "http://minio:9000/media/"+fake.object, url)
}

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		in           string
		wantEndpoint string
		wantSecure   bool
		wantErr      bool
	}{
		{"minio:9000", "minio:9000", false, false},
		{"http://minio:9000", "minio:9000", false, false},
		{"https://minio:9000", "minio:9000", true, false},
		{"http://minio:9000/", "minio:9000", false, false},
		{"http://minio:9000/foo", "", false, true},
		{"", "", false, true},
	}

	for _, tt := range tests {
		ep, secure, err := normaliseEndpoint(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.wantEndpoint, ep)
		assert.Equal(t, tt.wantSecure, secure)
	}
}

func TestMinioBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example", minioBaseURL("https://cdn.example", "minio:9000", false, "media"))
	assert.Equal(t, "http://minio:9000/media", minioBaseURL("", "minio:9000", false, "media"))
	assert.Equal(t, "https://s3.local/media", minioBaseURL("", "s3.local", true, "media"))
}

// ---------- WebP ----------

type captureUploader struct {
	got []byte
}

func (c *captureUploader) Upload(_ context.Context, data []byte, _ media.Folder) (string, error) {
	c.got = data
	return "https://cdn.example/x", nil
}

func TestWebPUploader_ConvertsAndScales(t *testing.T) {
	next := &captureUploader{}
	u := NewWebPUploader(next, 100)

	_, err := u.Upload(context.Background(), pngBytes(t, 400, 200), media.FolderServicesPictures)
	require.NoError(t, err)

	require.True(t, len(next.got) > 12)
	assert.Equal(t, "RIFF", string(next.got[0:4]))
	assert.Equal(t, "WEBP", string(next.got[8:12]))

	cfg, err := webp.DecodeConfig(bytes.NewReader(next.got))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestWebPUploader_PassThrough(t *testing.T) {
	next := &captureUploader{}
	u := NewWebPUploader(next, 100)

	raw := []byte("%PDF-1.4 not an image")
	_, err := u.Upload(context.Background(), raw, media.FolderServicesPictures)
	require.NoError(t, err)
	assert.Equal(t, raw, next.got)
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 300))

	assert.Equal(t, img, fit(img, 0))
	assert.Equal(t, img, fit(img, 400))

	got := fit(img, 100).Bounds()
	assert.Equal(t, 16, got.Dx())
	assert.Equal(t, 100, got.Dy())
}
