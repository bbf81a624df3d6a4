package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mpetrenko/brandsync/internal/filex"
	"github.com/mpetrenko/brandsync/internal/netx"
)

// downloadsDir is the subdirectory of the working directory where
// downloaded documents are stored.
const downloadsDir = "downloads"

// Upload sends a local file to object storage via a presigned URL obtained
// from the server and prints the storage key needed to download it later.
func (a *App) Upload(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Cannot read %s: %s\n", path, err.Error())
		return err
	}

	key, url, err := a.api.GetDocumentUploadURL(ctx, filepath.Base(path))
	if err != nil {
		fmt.Printf("Upload URL request failed: %s\n", err.Error())
		return err
	}

	if err := netx.UploadToPresignedURL(url, data); err != nil {
		fmt.Printf("Upload failed: %s\n", err.Error())
		return err
	}

	fmt.Printf("Uploaded, key: %s\n", key)
	return nil
}

// Download fetches a previously uploaded document by its storage key into
// the downloads subdirectory.
func (a *App) Download(ctx context.Context, key string) error {
	url, err := a.api.GetDocumentDownloadURL(ctx, key)
	if err != nil {
		fmt.Printf("Download URL request failed: %s\n", err.Error())
		return err
	}

	data, err := netx.DownloadFromPresignedURL(url)
	if err != nil {
		fmt.Printf("Download failed: %s\n", err.Error())
		return err
	}

	dir, err := filex.EnsureSubdDir(downloadsDir)
	if err != nil {
		return err
	}

	target := filepath.Join(dir, filepath.Base(key))
	if err := os.WriteFile(target, data, 0o660); err != nil {
		return err
	}

	fmt.Printf("Saved to %s\n", target)
	return nil
}
