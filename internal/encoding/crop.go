package encoding

import (
	"fmt"
	"strings"
)

// Fallback crop components used when an entered value does not parse.
const (
	DefaultCropWidth  = 640
	DefaultCropHeight = 480
	DefaultCropX      = 0
	DefaultCropY      = 0
)

// Crop is a rectangle in source pixels: size first, then top-left offset.
type Crop struct {
	Width  int
	Height int
	X      int
	Y      int
}

// String renders the crop in ffmpeg's W:H:X:Y order.
func (c Crop) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", c.Width, c.Height, c.X, c.Y)
}

func (c Crop) filter() string {
	return "crop=" + c.String()
}

// ParseCrop parses a W:H:X:Y string. Components that are not integers fall
// back to the defaults above; a wrong number of components is an error.
func ParseCrop(value string) (Crop, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 4 {
		return Crop{}, fmt.Errorf("crop %q: expected W:H:X:Y", value)
	}
	return Crop{
		Width:  ParseCropValue(parts[0], DefaultCropWidth),
		Height: ParseCropValue(parts[1], DefaultCropHeight),
		X:      ParseCropValue(parts[2], DefaultCropX),
		Y:      ParseCropValue(parts[3], DefaultCropY),
	}, nil
}
