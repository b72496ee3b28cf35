package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/handykonnect/handykonnect-api/internal/httperr"
)

const (
	maxImageWidth = 1280
	webpQuality   = 85
)

// ProcessServiceImage normalizes an uploaded service image: decode whatever
// the browser sent, cap the width at maxImageWidth, re-encode as webp.
func ProcessServiceImage(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func scaleDown(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return img
	}

	ratio := float64(maxImageWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
