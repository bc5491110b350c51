package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"seqenc/internal/testsupport"
)

type cliTestEnv struct {
	home    string
	workDir string
	binDir  string
	stubLog string
}

// setupCLITestEnv isolates HOME, the working directory and PATH so no real
// configuration or ffmpeg install leaks into the test.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	base := t.TempDir()
	env := &cliTestEnv{
		home:    filepath.Join(base, "home"),
		workDir: filepath.Join(base, "work"),
		binDir:  filepath.Join(base, "bin"),
		stubLog: filepath.Join(base, "ffmpeg-calls.log"),
	}
	for _, dir := range []string{env.home, env.workDir, env.binDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", env.home)
	t.Setenv("PATH", env.binDir)
	t.Setenv("SEQENC_STUB_LOG", env.stubLog)
	t.Chdir(env.workDir)
	return env
}

// installStubFFmpeg places a shell script named ffmpeg on PATH that records
// its arguments and exits with $SEQENC_STUB_EXIT.
func (e *cliTestEnv) installStubFFmpeg(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub requires a POSIX shell")
	}
	path := filepath.Join(e.binDir, "ffmpeg")
	testsupport.WriteScript(t, path, "printf '%s\\n' \"$*\" >> \"$SEQENC_STUB_LOG\"\n"+
		"echo \"stub ffmpeg $1\"\n"+
		"exit ${SEQENC_STUB_EXIT:-0}\n")
	return path
}

func (e *cliTestEnv) stubCalls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.stubLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
