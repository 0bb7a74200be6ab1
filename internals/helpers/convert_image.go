package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	profilePictureDir  = "uploads/profile_pictures"
	profilePictureEdge = 512 // max bounding box, keeps uploads small
)

// SaveProfileImage decodes an uploaded image (jpeg/png/webp), downsizes it to
// fit profilePictureEdge and re-encodes as webp on local disk. Returns the
// public URL path served by the /uploads static route.
func SaveProfileImage(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Fit(img, profilePictureEdge, profilePictureEdge, imaging.Lanczos)

	if err := os.MkdirAll(profilePictureDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := uuid.NewString() + ".webp"
	path := filepath.Join(profilePictureDir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	return "/" + profilePictureDir + "/" + filename, nil
}

// DeleteProfileImage removes a previously stored picture by its public URL
// path. Unknown paths are ignored so stale DB values never block updates.
func DeleteProfileImage(publicURL string) error {
	trimmed := strings.TrimPrefix(publicURL, "/")
	if !strings.HasPrefix(trimmed, profilePictureDir+"/") {
		return nil
	}
	if err := os.Remove(trimmed); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
