package assets

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFont returns the raw TTF bytes for path, or the bundled Go Regular face
// when path is empty.
func LoadFont(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font %q is empty", path)
	}
	return data, nil
}

// ParseFace builds a font face of the given point size at 72 DPI.
func ParseFace(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, errors.New("font size must be positive")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
