package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/shipscroller/prefabs"
)

func writeSpec(t *testing.T, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(prefabs.Dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
