package media

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// fotos de perfil não precisam de mais que isso
const maxDimension = 512

const quality = 85

// ToProfileWebP decodifica JPEG/PNG, reduz para caber em
// maxDimension e re-encoda em WebP.
func ToProfileWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, fit(src), &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

func fit(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxDimension && h <= maxDimension {
		return src
	}

	nw, nh := maxDimension, maxDimension
	if w > h {
		nh = h * maxDimension / w
	} else {
		nw = w * maxDimension / h
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
