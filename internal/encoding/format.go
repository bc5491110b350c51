package encoding

import (
	"fmt"
	"strings"
)

// Format identifies an output container/codec pairing.
type Format string

const (
	FormatWebM Format = "webm"
	FormatMP4  Format = "mp4"
	FormatGIF  Format = "gif"
)

// Formats lists the supported formats in menu order.
func Formats() []Format {
	return []Format{FormatWebM, FormatMP4, FormatGIF}
}

func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension (without dot) used for default output names.
func (f Format) Extension() string {
	return string(f)
}

// SupportsAlpha reports whether the format can carry a transparency channel.
func (f Format) SupportsAlpha() bool {
	return f == FormatWebM || f == FormatGIF
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatWebM, FormatMP4, FormatGIF:
		return true
	default:
		return false
	}
}

// ParseMenuChoice resolves an answer to the numbered format menu. An empty
// answer selects the default (webm). Any other value is rejected.
func ParseMenuChoice(choice string) (Format, bool) {
	switch strings.TrimSpace(choice) {
	case "", "1":
		return FormatWebM, true
	case "2":
		return FormatMP4, true
	case "3":
		return FormatGIF, true
	default:
		return "", false
	}
}

// ParseFormat resolves a format name such as "webm" or "GIF".
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatWebM, nil
	}
	if !f.Valid() {
		return "", fmt.Errorf("unsupported format %q (want webm, mp4, or gif)", name)
	}
	return f, nil
}
