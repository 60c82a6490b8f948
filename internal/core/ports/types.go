package ports

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// RGB is an opaque color.
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses a color in the form #rrggbb or #rgb (the # is optional).
func ParseRGB(str string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(str), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q, must be in the form #rrggbb", str)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %s", str, err)
	}
	return RGB{b[0], b[1], b[2]}, nil
}

// MustParseRGB is like ParseRGB but panics on error. Meant for constants.
func MustParseRGB(str string) RGB {
	c, err := ParseRGB(str)
	if err != nil {
		panic(err)
	}
	return c
}

func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
