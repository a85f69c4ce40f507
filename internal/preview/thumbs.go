package preview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"

	"iconview/internal/errors"
)

// Thumbnail loads an image and shrinks it to fit within size x size using
// Lanczos resampling. Unlike the preview subsample this is a quality path
// meant for exported files. Images already within bounds pass through
// unchanged.
func Thumbnail(absPath string, size int) (image.Image, error) {
	f, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewImageError("image file not found", absPath, errors.ImageNotFound, err)
		}
		return nil, errors.NewImageError("failed to open image", absPath, errors.ImageNotFound, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.NewImageError("failed to decode image", absPath, errors.ImageDecode, err)
	}

	return resize.Thumbnail(uint(size), uint(size), img, resize.Lanczos3), nil
}

// WriteThumbnail encodes an image as PNG at outPath, creating parent
// directories as needed.
func WriteThumbnail(img image.Image, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrapf(err, "failed to create thumbnail directory for %s", outPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create thumbnail file %s", outPath)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return errors.Wrapf(err, "failed to encode thumbnail %s", outPath)
	}
	return nil
}
