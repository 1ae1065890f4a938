package level

import (
	"fmt"
	"os"
)

// Provider is one source of a saved board. Load tries providers in order.
type Provider interface {
	// Name identifies the provider in logs and diagnostics.
	Name() string
	// Entries returns a board's entries or an error if the source has none.
	Entries() ([]Entry, error)
}

// FileProvider reads a save file from disk.
type FileProvider struct {
	Path string
}

// Name implements Provider.
func (p FileProvider) Name() string {
	return "file:" + p.Path
}

// Entries implements Provider.
func (p FileProvider) Entries() ([]Entry, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", p.Path, err)
	}
	return validated(Decode(string(data)))
}

// BoardCache stores the last board of a session, keyed by save slot.
// The text has the same layout as a save file.
type BoardCache interface {
	LoadBoard(slot string) (string, error)
}

// SessionProvider reads the board cached for a slot.
type SessionProvider struct {
	Cache BoardCache
	Slot  string
}

// Name implements Provider.
func (p SessionProvider) Name() string {
	return "session:" + p.Slot
}

// Entries implements Provider.
func (p SessionProvider) Entries() ([]Entry, error) {
	if p.Cache == nil {
		return nil, fmt.Errorf("no session cache for slot %q", p.Slot)
	}
	text, err := p.Cache.LoadBoard(p.Slot)
	if err != nil {
		return nil, fmt.Errorf("loading session board %q: %w", p.Slot, err)
	}
	return validated(Decode(text))
}

// BuiltinProvider yields the built-in map at full freshness.
type BuiltinProvider struct{}

// Name implements Provider.
func (BuiltinProvider) Name() string {
	return "builtin"
}

// Entries implements Provider.
func (BuiltinProvider) Entries() ([]Entry, error) {
	return Default().Entries(), nil
}

func validated(entries []Entry) ([]Entry, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadResult describes which provider produced a board.
type LoadResult struct {
	Level    *Level
	Source   string  // Name of the provider that succeeded
	Rejected []error // One error per provider tried before it
}

// Load returns a level from the first provider that yields a complete,
// valid board. If every provider fails the built-in map is used, so Load
// always returns a level; the rejections are reported, not returned as an
// error.
func Load(providers ...Provider) LoadResult {
	var rejected []error
	for _, p := range providers {
		entries, err := p.Entries()
		if err == nil {
			err = Validate(entries)
		}
		if err != nil {
			rejected = append(rejected, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		return LoadResult{Level: BuildSaved(entries), Source: p.Name(), Rejected: rejected}
	}

	return LoadResult{Level: Default(), Source: BuiltinProvider{}.Name(), Rejected: rejected}
}
