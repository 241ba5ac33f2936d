package media

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Folder is the destination namespace of an upload.
type Folder string

const (
	FolderProfilePictures  Folder = "profile_pictures"
	FolderServicesPictures Folder = "services_pictures"
)

func (f Folder) Valid() bool {
	switch f {
	case FolderProfilePictures, FolderServicesPictures:
		return true
	}
	return false
}

// Uploader stores one buffer and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder Folder) (string, error)
}

// UploadAll uploads every buffer concurrently. It returns the URLs in input
// order, or the first error with no URLs.
func UploadAll(ctx context.Context, up Uploader, files [][]byte, folder Folder) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, data := range files {
		g.Go(func() error {
			url, err := up.Upload(gctx, data, folder)
			if err != nil {
				return fmt.Errorf("upload file %d: %w", i, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
