package encoding

import (
	"strconv"
	"strings"
)

// FrameField is the printf-style frame number placeholder ffmpeg expands
// when reading an image sequence.
const FrameField = "%04d"

// Settings is the full set of choices for one conversion.
type Settings struct {
	Prefix      string
	Suffix      string
	FPS         int
	Format      Format
	Transparent bool
	Crop        *Crop
	Output      string
}

// InputPattern joins prefix and suffix around the frame number field.
func (s Settings) InputPattern() string {
	return s.Prefix + FrameField + s.Suffix
}

// ExampleFrames returns the first two file names the pattern expects.
func (s Settings) ExampleFrames() (string, string) {
	return s.Prefix + "0000" + s.Suffix, s.Prefix + "0001" + s.Suffix
}

// DefaultOutput is the output name used when none was entered.
func (s Settings) DefaultOutput() string {
	return DefaultOutputFor(s.format())
}

// DefaultOutputFor returns output.<ext> for the given format.
func DefaultOutputFor(f Format) string {
	return "output." + f.Extension()
}

// OutputPath returns the entered output name or the default one.
func (s Settings) OutputPath() string {
	if out := strings.TrimSpace(s.Output); out != "" {
		return out
	}
	return s.DefaultOutput()
}

// EffectiveTransparent reports whether transparency applies to the chosen format.
func (s Settings) EffectiveTransparent() bool {
	return s.Transparent && s.format().SupportsAlpha()
}

// CropLabel renders the crop region, or "None" without one.
func (s Settings) CropLabel() string {
	if s.Crop == nil {
		return "None"
	}
	return s.Crop.String()
}

// Args builds the encode invocation: input options, format profile, output path.
func (s Settings) Args() []string {
	fps := s.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	args := []string{
		"-framerate", strconv.Itoa(fps),
		"-i", s.InputPattern(),
	}
	args = append(args, ProfileFor(s.format()).Args(s.Crop, s.EffectiveTransparent())...)
	return append(args, s.OutputPath())
}

func (s Settings) format() Format {
	if s.Format.Valid() {
		return s.Format
	}
	return FormatWebM
}

// ProbeArgs builds the info-only invocation that prints metadata for output.
func ProbeArgs(output string) []string {
	return []string{"-i", output, "-hide_banner"}
}

// CommandLine renders binary and args as a single space-separated line for display.
func CommandLine(binary string, args []string) string {
	if len(args) == 0 {
		return binary
	}
	return binary + " " + strings.Join(args, " ")
}
