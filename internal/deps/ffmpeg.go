package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FFmpegName is the bare executable name searched for on PATH.
const FFmpegName = "ffmpeg"

var executablePath = os.Executable

// ResolveFFmpeg returns the ffmpeg command to execute.
//
// An explicitly configured binary wins. Otherwise an ffmpeg executable that
// sits next to the running program is preferred, then "ffmpeg" from PATH.
// When nothing is found the bare name is returned so the launch failure is
// reported by the caller.
func ResolveFFmpeg(configured string) string {
	return CheckFFmpeg(configured).Command
}

// CheckFFmpeg reports which ffmpeg binary ResolveFFmpeg selects, the rule
// that selected it, and whether it is available.
func CheckFFmpeg(configured string) Status {
	status := Status{
		Name:        "FFmpeg",
		Description: "encodes the image sequence and prints output metadata",
	}

	// A configured binary is never second-guessed by the other rules.
	if binary := strings.TrimSpace(configured); binary != "" {
		resolved, err := lookPath(binary)
		if err != nil {
			return status.missing(binary, fmt.Sprintf("configured binary %q not found", binary))
		}
		return status.found(resolved, SourceConfig)
	}

	if sidecar, ok := sidecarCandidate(); ok {
		return status.found(sidecar, SourceSidecar)
	}

	if resolved, err := lookPath(FFmpegName); err == nil {
		return status.found(resolved, SourcePath)
	}

	return status.missing(FFmpegName, fmt.Sprintf("no %s next to seqenc or on PATH", FFmpegName))
}

// sidecarCandidate returns the ffmpeg next to the running seqenc binary when
// it exists and is executable.
func sidecarCandidate() (string, bool) {
	self, err := executablePath()
	if err != nil || self == "" {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(self); err == nil {
		self = resolved
	}
	candidate := filepath.Join(filepath.Dir(self), executableName(FFmpegName))
	info, err := os.Stat(candidate)
	if err != nil || !isExecutable(info) {
		return "", false
	}
	return candidate, true
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
