package storage

import (
	"github.com/disintegration/imaging"
)

// Thumbnailer produces a resized derivative of an already stored image.
type Thumbnailer interface {
	Thumbnail(srcPath, dstPath string, width int) error
}

type imagingThumbnailer struct {
	quality int
}

func NewThumbnailer() Thumbnailer {
	return &imagingThumbnailer{quality: 85}
}

func (t *imagingThumbnailer) Thumbnail(srcPath, dstPath string, width int) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	// Height 0 keeps the aspect ratio.
	resized := imaging.Resize(img, width, 0, imaging.Lanczos)
	return imaging.Save(resized, dstPath, imaging.JPEGQuality(t.quality))
}
