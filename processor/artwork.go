package processor

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

const (
	artworkMaxSize = 640
	artworkQuality = 90
)

// Artwork normalizes a downloaded cover blob to a JPEG
// of bounded edge size, ready for tag embedding
type Artwork struct{}

func (Artwork) Do(data []byte) ([]byte, error) {
	cover, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if cover.Bounds().Dx() > artworkMaxSize {
		cover = resize.Resize(artworkMaxSize, 0, cover, resize.Lanczos3)
	}

	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, cover, &jpeg.Options{Quality: artworkQuality}); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
