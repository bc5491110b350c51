package deps

import (
	"fmt"
	"os/exec"
)

// Source records which rule picked the ffmpeg command.
type Source string

const (
	// SourceNone means no rule matched and the bare name is used.
	SourceNone Source = "unresolved"
	// SourceConfig is encoder.binary or the --ffmpeg flag.
	SourceConfig Source = "configured"
	// SourceSidecar is an ffmpeg placed next to the seqenc executable.
	SourceSidecar Source = "sidecar"
	// SourcePath is ffmpeg found through PATH.
	SourcePath Source = "PATH"
)

// Status is the outcome of resolving the encoder binary. Command is never
// empty: when resolution fails it holds the name seqenc will still try, so
// the launch error surfaces from the encode step.
type Status struct {
	Name        string
	Description string
	Command     string
	Source      Source
	Available   bool
	Detail      string
}

func (s Status) found(command string, source Source) Status {
	s.Command = command
	s.Source = source
	s.Available = true
	s.Detail = ""
	return s
}

func (s Status) missing(command, detail string) Status {
	s.Command = command
	s.Source = SourceNone
	s.Available = false
	s.Detail = detail
	return s
}

// lookPath resolves a bare name or a path the way the launcher will.
func lookPath(command string) (string, error) {
	resolved, err := exec.LookPath(command)
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", command, err)
	}
	return resolved, nil
}
