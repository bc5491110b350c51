// Package ffmpeg runs the ffmpeg command-line tool as a blocking subprocess.
//
// The Client forwards the console streams to ffmpeg so its own progress and
// diagnostics reach the user unchanged, and converts the outcome into errors
// the session can report: *ExitError for a nonzero exit status, and
// services.ErrNotFound when the executable cannot be launched at all. No
// timeout is applied; the call returns only once ffmpeg exits.
package ffmpeg
