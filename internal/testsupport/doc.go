// Package testsupport holds helpers shared by package tests: temp-dir
// configs, stub executables on PATH, and sized fixture files.
package testsupport
