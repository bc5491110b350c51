// Package deps locates the external executables seqenc shells out to and
// reports whether they are present.
package deps
