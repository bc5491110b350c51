// Package wizard runs the interactive conversion loop.
//
// Each pass asks for the frame pattern, frame rate, format, transparency,
// crop and output name, shows a summary, and on confirmation hands the built
// argument list to ffmpeg. Failures are reported and the loop starts over;
// only closing standard input ends it.
package wizard
