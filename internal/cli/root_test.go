package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"editbox/internal/system"
	tu "editbox/internal/testutil"
	"editbox/internal/textbox"
)

// resetFlags restores every flag to its default so tests do not leak
// values through the package-level commands.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	tmp := t.TempDir()
	tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)
	tu.WithEnv(t, "HOME", tmp)
	tu.WithEnv(t, "NO_COLOR", "1")
	t.Cleanup(func() { system.Configure(os.Stderr, false) })
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScriptEdit(t *testing.T) {
	out, _, err := execute(t, "\x05!\x0e\x01x\x07", "--script", "--rows", "2", "--cols", "10", "--text", "hi")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "hi!\nx\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestScriptEditFromFileWithDiff(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(seed, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, errOut, err := execute(t, "\x0bnew\x07", "--script", "--rows", "1", "--cols", "8", "--file", seed, "--diff")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out != "new\n" {
		t.Fatalf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "- old\n") || !strings.Contains(errOut, "+ new\n") {
		t.Fatalf("diff missing from stderr: %q", errOut)
	}
}

func TestScriptCancelExitCode(t *testing.T) {
	_, _, err := execute(t, "ab\x1b", "--script", "--rows", "1", "--cols", "8")
	if !errors.Is(err, textbox.ErrCancelled) {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
	if code := exitCode(err); code != exitCancelled {
		t.Fatalf("exit code = %d, want %d", code, exitCancelled)
	}
	if code := exitCode(errors.New("boom")); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestInvalidSizeAndExclusiveSeeds(t *testing.T) {
	if _, _, err := execute(t, "", "--script", "--cols", "0"); err == nil {
		t.Fatalf("expected error for zero cols")
	}
	if _, _, err := execute(t, "", "--script", "--text", "a", "--file", "b"); err == nil {
		t.Fatalf("expected error for --text with --file")
	}
}

func TestSettingsFileSuppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfgDir := filepath.Join(tmp, "editbox")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "settings.json"), []byte(`{"rows":1,"cols":3,"overwrite":true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	resetFlags(rootCmd)
	tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)
	tu.WithEnv(t, "HOME", tmp)
	t.Cleanup(func() { system.Configure(os.Stderr, false) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("\x01zz\x07"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--script", "--text", "abcdef"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	// three columns clip the seed; overwrite replaces in place
	if out.String() != "zzc\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}
