// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging produces JPEG thumbnails of generated images so
// gallery views can load a small preview instead of the full render.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// DefaultThumbWidth is the target width for gallery thumbnails.
const DefaultThumbWidth = 320

// thumbQuality balances preview fidelity against payload size.
const thumbQuality = 80

// Thumbnail scales the source image down to the given width, keeping
// the aspect ratio, and re-encodes it as JPEG. Images already narrower
// than the target are re-encoded without upscaling.
func Thumbnail(src []byte, width int) ([]byte, error) {
	if width <= 0 {
		width = DefaultThumbWidth
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > width {
		height := bounds.Dy() * width / bounds.Dx()
		if height < 1 {
			height = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}
	return out.Bytes(), nil
}

// Extension maps a MIME content type to a file extension for object keys.
func Extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
