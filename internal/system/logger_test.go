package system

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestConfigureDebug(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(os.Stderr, false) })

	Configure(&buf, false)
	Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}
	Configure(&buf, true)
	Logger.Debug("shown", "op", "move-left")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "op=move-left") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}
