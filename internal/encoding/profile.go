package encoding

import "strings"

// Profile contributes the format-specific part of an encode invocation,
// placed between the input and the output path.
type Profile interface {
	Format() Format
	Args(crop *Crop, transparent bool) []string
}

// ProfileFor returns the profile for f. Unknown formats fall back to webm.
func ProfileFor(f Format) Profile {
	switch f {
	case FormatMP4:
		return mp4Profile{}
	case FormatGIF:
		return gifProfile{}
	default:
		return webmProfile{}
	}
}

// webmProfile encodes VP9, optionally keeping alpha.
type webmProfile struct{}

func (webmProfile) Format() Format { return FormatWebM }

func (webmProfile) Args(crop *Crop, transparent bool) []string {
	var args []string
	if transparent || crop != nil {
		// RGBA keeps the alpha plane intact through the crop.
		filters := []string{"format=rgba"}
		if crop != nil {
			filters = append(filters, crop.filter())
		}
		args = append(args, mapFilter("[0:v]"+strings.Join(filters, ",")+"[v]")...)
	}
	pixFmt := "yuv420p"
	if transparent {
		pixFmt = "yuva420p"
	}
	return append(args,
		"-c:v", "libvpx-vp9",
		"-pix_fmt", pixFmt,
		"-auto-alt-ref", "0",
	)
}

// mp4Profile encodes H.264, which has no alpha channel.
type mp4Profile struct{}

func (mp4Profile) Format() Format { return FormatMP4 }

func (mp4Profile) Args(crop *Crop, _ bool) []string {
	var args []string
	if crop != nil {
		args = append(args, mapFilter("[0:v]"+crop.filter()+"[v]")...)
	}
	return append(args,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
	)
}

// gifProfile builds a two-pass palette in a single filter graph.
type gifProfile struct{}

func (gifProfile) Format() Format { return FormatGIF }

func (gifProfile) Args(crop *Crop, _ bool) []string {
	graph := "[0:v]split[v0][v1];[v0]palettegen[p];[v1][p]paletteuse"
	if crop != nil {
		graph = "[0:v]format=rgba," + crop.filter() + "[tmp];" +
			"[tmp]split[v0][v1];" +
			"[v0]palettegen[p];" +
			"[v1][p]paletteuse"
	}
	return []string{"-filter_complex", graph}
}

func mapFilter(graph string) []string {
	return []string{"-filter_complex", graph, "-map", "[v]"}
}
