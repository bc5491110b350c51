package wizard

import (
	"strings"
	"testing"

	"seqenc/internal/encoding"
)

func TestRenderSummary(t *testing.T) {
	rendered := renderSummary(encoding.Settings{
		Prefix:      "S_Film.",
		Suffix:      "_5p.png",
		FPS:         30,
		Format:      encoding.FormatGIF,
		Transparent: true,
		Crop:        &encoding.Crop{Width: 320, Height: 240, X: 4, Y: 8},
		Output:      "loop.gif",
	})
	for _, fragment := range []string{"Input pattern", "S_Film.%04d_5p.png", "30", "GIF", "ON", "320:240:4:8", "loop.gif"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in summary:\n%s", fragment, rendered)
		}
	}
}

func TestRenderSummaryMP4HasNoTransparencyOrCrop(t *testing.T) {
	rendered := renderSummary(encoding.Settings{
		Prefix:      "f",
		FPS:         24,
		Format:      encoding.FormatMP4,
		Transparent: true,
	})
	for _, fragment := range []string{"MP4", "OFF", "None", "output.mp4"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in summary:\n%s", fragment, rendered)
		}
	}
}
