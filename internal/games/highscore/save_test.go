package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestSlotPath(t *testing.T) {
	tests := []struct {
		slot string
		want string
	}{
		{"local", "local.txt"},
		{"ssh-ann", "ssh-ann.txt"},
		{"local.fresh", "local.fresh.txt"},
		{"../etc/passwd", "_etc_passwd.txt"},
		{"a b/c", "a_b_c.txt"},
		{"", "slot.txt"},
		{"...", "slot.txt"},
		{"жук", "___.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.slot, func(t *testing.T) {
			testutil.AssertEqual(t, "path", SlotPath("/saves", tt.slot), filepath.Join("/saves", tt.want))
		})
	}
}

func TestWriteSaveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "local.txt")

	if err := writeSaveFile(path, "first"); err != nil {
		t.Fatalf("writeSaveFile() failed: %v", err)
	}
	if err := writeSaveFile(path, "second"); err != nil {
		t.Fatalf("second writeSaveFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading save: %v", err)
	}
	testutil.AssertEqual(t, "content", string(data), "second")

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("reading save dir: %v", err)
	}
	testutil.AssertEqual(t, "no temp files left", len(entries), 1)
}

func TestWriteSaveFileBadDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := writeSaveFile(filepath.Join(blocker, "local.txt"), "x")
	testutil.AssertErrorContains(t, err, "creating save directory")
}
