package storage

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestBoardSaveLoad(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadBoard("local"); !errors.Is(err, ErrNoBoard) {
		t.Fatalf("LoadBoard() on empty store = %v, expected ErrNoBoard", err)
	}

	if err := store.SaveBoard("local", "header\n1,1"); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	got, err := store.LoadBoard("local")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	testutil.AssertEqual(t, "board", got, "header\n1,1")

	// Saving again replaces the board
	if err := store.SaveBoard("local", "2,0.5"); err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	got, err = store.LoadBoard("local")
	if err != nil {
		t.Fatalf("LoadBoard() failed: %v", err)
	}
	testutil.AssertEqual(t, "replaced board", got, "2,0.5")
}

func TestBoardSlotsAreIndependent(t *testing.T) {
	store := openTestStore(t)

	store.SaveBoard("ssh-ann", "a")
	store.SaveBoard("ssh-bob", "b")

	a, _ := store.LoadBoard("ssh-ann")
	b, _ := store.LoadBoard("ssh-bob")
	testutil.AssertEqual(t, "ann", a, "a")
	testutil.AssertEqual(t, "bob", b, "b")

	boards, err := store.Boards()
	if err != nil {
		t.Fatalf("Boards() failed: %v", err)
	}
	testutil.AssertEqual(t, "slot count", len(boards), 2)

	if err := store.DeleteBoard("ssh-ann"); err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if _, err := store.LoadBoard("ssh-ann"); !errors.Is(err, ErrNoBoard) {
		t.Errorf("deleted slot LoadBoard() = %v, expected ErrNoBoard", err)
	}
	if _, err := store.LoadBoard("ssh-bob"); err != nil {
		t.Errorf("other slot should survive delete: %v", err)
	}

	if err := store.DeleteBoard("missing"); err != nil {
		t.Errorf("deleting a missing slot = %v, expected nil", err)
	}
}
