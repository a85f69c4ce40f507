// Package preview loads icon images from disk and produces bounded-size
// previews. Oversized images shrink by an integer subsample factor (every
// factor-th pixel is kept), a blocky nearest-pixel downscale rather than
// smooth resampling. Images are never upsampled.
package preview

import (
	"image"
	"os"

	// Codecs the viewer accepts. BMP comes from golang.org/x/image;
	// the rest are standard library.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"iconview/internal/errors"
)

// Default preview bounds.
const (
	DefaultMaxWidth  = 512
	DefaultMaxHeight = 512
)

// Result is a successfully loaded preview: the (possibly downsampled)
// image plus its natural and displayed dimensions.
type Result struct {
	Image         image.Image
	Path          string
	NaturalWidth  int
	NaturalHeight int
	DisplayWidth  int
	DisplayHeight int
}

// Downsampled reports whether the preview is smaller than the source.
func (r *Result) Downsampled() bool {
	return r.DisplayWidth != r.NaturalWidth || r.DisplayHeight != r.NaturalHeight
}

// Load reads an image file and bounds it to maxWidth x maxHeight. A
// missing file yields an ImageNotFound error; an unparseable one an
// ImageDecode error. Both carry the attempted path.
func Load(absPath string, maxWidth, maxHeight int) (*Result, error) {
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

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	factor := Factor(w, h, maxWidth, maxHeight)
	display := img
	if factor > 1 {
		display = subsample(img, factor)
	}

	db := display.Bounds()
	return &Result{
		Image:         display,
		Path:          absPath,
		NaturalWidth:  w,
		NaturalHeight: h,
		DisplayWidth:  db.Dx(),
		DisplayHeight: db.Dy(),
	}, nil
}

// Factor computes the integer shrink factor for an image of the given
// natural size: ceil(max(w/maxW, h/maxH)), clamped to a minimum of 1.
func Factor(w, h, maxWidth, maxHeight int) int {
	if maxWidth <= 0 || maxHeight <= 0 {
		return 1
	}
	factor := 1
	if w > maxWidth {
		factor = ceilDiv(w, maxWidth)
	}
	if h > maxHeight {
		if f := ceilDiv(h, maxHeight); f > factor {
			factor = f
		}
	}
	return factor
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// subsample keeps every factor-th pixel in each direction, starting at the
// top-left corner. The output is ceil(w/factor) x ceil(h/factor).
func subsample(src image.Image, factor int) image.Image {
	bounds := src.Bounds()
	w := ceilDiv(bounds.Dx(), factor)
	h := ceilDiv(bounds.Dy(), factor)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, src.At(bounds.Min.X+x*factor, bounds.Min.Y+y*factor))
		}
	}
	return dst
}

// Size reads the natural dimensions of an image file without decoding the
// pixel data. Used by front ends that only display metadata.
func Size(absPath string) (int, int, error) {
	f, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, errors.NewImageError("image file not found", absPath, errors.ImageNotFound, err)
		}
		return 0, 0, errors.NewImageError("failed to open image", absPath, errors.ImageNotFound, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.NewImageError("failed to decode image", absPath, errors.ImageDecode, err)
	}
	return cfg.Width, cfg.Height, nil
}
