package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

type fakeCache map[string]string

func (c fakeCache) LoadBoard(slot string) (string, error) {
	text, ok := c[slot]
	if !ok {
		return "", errors.New("no board")
	}
	return text, nil
}

func wornSave(t *testing.T, row, col int, amount float64) string {
	t.Helper()
	l := Default()
	l.ApplyFreshness(l.At(row, col), amount)
	return FormatSave(nil, l.Encode())
}

func writeSave(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "save.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("writing save: %v", err)
	}
	return path
}

func TestLoadPrefersFile(t *testing.T) {
	fileText := wornSave(t, 1, 1, -0.5)
	cacheText := wornSave(t, 2, 2, -0.5)
	path := writeSave(t, fileText)

	res := Load(FileProvider{Path: path}, SessionProvider{Cache: fakeCache{"s": cacheText}, Slot: "s"}, BuiltinProvider{})

	testutil.AssertEqual(t, "source", res.Source, "file:"+path)
	testutil.AssertEqual(t, "rejected", len(res.Rejected), 0)
	testutil.AssertEqual(t, "file wear", res.Level.Tile(res.Level.At(1, 1)).Freshness, float32(0.5))
	testutil.AssertEqual(t, "no cache wear", res.Level.Tile(res.Level.At(2, 2)).Freshness, float32(1))
}

func TestLoadFallsBackToSession(t *testing.T) {
	cacheText := wornSave(t, 2, 2, -0.25)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	res := Load(FileProvider{Path: missing}, SessionProvider{Cache: fakeCache{"s": cacheText}, Slot: "s"}, BuiltinProvider{})

	testutil.AssertEqual(t, "source", res.Source, "session:s")
	testutil.AssertEqual(t, "rejected", len(res.Rejected), 1)
	testutil.AssertEqual(t, "cache wear", res.Level.Tile(res.Level.At(2, 2)).Freshness, float32(0.75))
}

func TestLoadRejectsIncompleteBoards(t *testing.T) {
	l := Default()
	short := FormatSave(nil, EncodeEntries(l.Entries()[:TileCount-3]))
	path := writeSave(t, short)

	badKind := l.Entries()
	badKind[0].Kind = 9
	cache := fakeCache{"s": FormatSave(nil, EncodeEntries(badKind))}

	res := Load(FileProvider{Path: path}, SessionProvider{Cache: cache, Slot: "s"}, BuiltinProvider{})

	testutil.AssertEqual(t, "source", res.Source, "builtin")
	testutil.AssertEqual(t, "rejected", len(res.Rejected), 2)
	if !errors.Is(res.Rejected[0], ErrBoardSize) {
		t.Errorf("file rejection = %v, expected ErrBoardSize", res.Rejected[0])
	}
	if res.Level.Encode() != Default().Encode() {
		t.Error("fallback level should match the built-in map")
	}
}

func TestLoadWithoutProviders(t *testing.T) {
	res := Load()

	testutil.AssertEqual(t, "source", res.Source, "builtin")
	testutil.AssertEqual(t, "count", res.Level.Count(), TileCount)
}

func TestSessionProviderWithoutCache(t *testing.T) {
	res := Load(SessionProvider{Slot: "local"})

	testutil.AssertEqual(t, "source", res.Source, "builtin")
	testutil.AssertEqual(t, "rejected", len(res.Rejected), 1)
}
