// Package encoding turns the settings gathered for one conversion into the
// ffmpeg argument list that renders a numbered image sequence.
//
// It owns the flat Settings record, the closed set of output formats, the
// optional crop region, and one Profile per format that contributes the
// format-specific filter graph and codec flags. Parsing helpers apply the
// fixed fallbacks used by the interactive prompts (24 fps, 640x480+0+0 crop)
// so every caller resolves user input the same way.
//
// Nothing here executes ffmpeg; see internal/services/ffmpeg for that.
package encoding
