package platform

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extra decoders so backgrounds saved as bmp, tiff, or webp open too.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrImageLoad is returned when a background image cannot be opened or
// decoded. The scene record keeps its background reference regardless, so
// navigation stays consistent and the view shows a placeholder instead.
var ErrImageLoad = errors.New("image load failed")

// ImageExtensions lists the background file extensions offered by open
// dialogs, matching the registered decoders.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp"}

// LoadImage opens and decodes a background image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageLoad, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageLoad, path, err)
	}
	return img, nil
}
