package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	MaxUploadBytes = 10 << 20

	// Uploaded JPEG and PNG images are scaled down to fit this box.
	MaxWidth  = 1200
	MaxHeight = 800
)

var (
	ErrNoFile          = errors.New("assets: no file provided")
	ErrUnsupportedType = errors.New("assets: unsupported image type")
	ErrTooLarge        = errors.New("assets: file too large")
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Image is an upload ready to be stored.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// PrepareImage checks an uploaded file and applies the size limit. The type
// is sniffed from the bytes, the declared content type is only used when
// sniffing is inconclusive.
func PrepareImage(data []byte, declared string) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrNoFile
	}
	if len(data) > MaxUploadBytes {
		return Image{}, ErrTooLarge
	}

	ct := http.DetectContentType(data)
	if ct == "application/octet-stream" {
		ct = strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	}
	ext, ok := extensions[ct]
	if !ok {
		return Image{}, ErrUnsupportedType
	}

	cfg, err := decodeConfig(ct, data)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	img := Image{Data: data, ContentType: ct, Ext: ext, Width: cfg.Width, Height: cfg.Height}
	if (ct == "image/jpeg" || ct == "image/png") && (cfg.Width > MaxWidth || cfg.Height > MaxHeight) {
		return downscale(img)
	}
	return img, nil
}

func decodeConfig(ct string, data []byte) (image.Config, error) {
	r := bytes.NewReader(data)
	switch ct {
	case "image/jpeg":
		return jpeg.DecodeConfig(r)
	case "image/png":
		return png.DecodeConfig(r)
	case "image/gif":
		return gif.DecodeConfig(r)
	case "image/webp":
		return webp.DecodeConfig(r)
	}
	return image.Config{}, ErrUnsupportedType
}

// FitWithin scales w x h down to fit the limit box, keeping the aspect ratio.
// Dimensions already inside the box are returned unchanged.
func FitWithin(w, h int) (int, int) {
	if w <= MaxWidth && h <= MaxHeight {
		return w, h
	}
	scale := min(float64(MaxWidth)/float64(w), float64(MaxHeight)/float64(h))
	return max(1, int(float64(w)*scale+0.5)), max(1, int(float64(h)*scale+0.5))
}

func downscale(img Image) (Image, error) {
	var (
		src image.Image
		err error
	)
	if img.ContentType == "image/jpeg" {
		src, err = jpeg.Decode(bytes.NewReader(img.Data))
	} else {
		src, err = png.Decode(bytes.NewReader(img.Data))
	}
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	w, h := FitWithin(img.Width, img.Height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if img.ContentType == "image/jpeg" {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85})
	} else {
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return Image{}, fmt.Errorf("encode resized image: %w", err)
	}

	img.Data = buf.Bytes()
	img.Width, img.Height = w, h
	return img, nil
}
