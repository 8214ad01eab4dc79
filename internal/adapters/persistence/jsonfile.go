package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/phonebook/core/internal/domain/entities"
	"github.com/phonebook/core/internal/domain/phonebook"
)

// document is the on-disk shape of the phonebook file.
type document struct {
	Phonebook []entities.Contact `json:"phonebook"`
}

// Load reads the phonebook file at path and returns a sorted store.
func Load(path string) (*phonebook.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", entities.ErrIO, path, err)
	}
	defer f.Close()

	if err := locker.RLock(f); err != nil {
		return nil, fmt.Errorf("%w: lock %s: %w", entities.ErrIO, path, err)
	}
	data, readErr := io.ReadAll(f)
	unlockErr := locker.Unlock(f)
	if readErr != nil {
		return nil, fmt.Errorf("%w: read %s: %w", entities.ErrIO, path, readErr)
	}
	if unlockErr != nil {
		return nil, fmt.Errorf("%w: unlock %s: %w", entities.ErrIO, path, unlockErr)
	}

	store, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Decode parses a phonebook document. Every failure wraps entities.ErrParse.
func Decode(data []byte) (*phonebook.Store, error) {
	var raw struct {
		Phonebook *[]entities.Contact `json:"phonebook"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}
	if raw.Phonebook == nil {
		return nil, fmt.Errorf("%w: missing \"phonebook\" array", entities.ErrParse)
	}

	store, err := phonebook.FromContacts(*raw.Phonebook)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrParse, err)
	}
	return store, nil
}

// Encode renders contacts as an indented phonebook document.
func Encode(contacts []entities.Contact) ([]byte, error) {
	if contacts == nil {
		contacts = []entities.Contact{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Phonebook: contacts}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save replaces the content of the file at path with contacts. The file is
// exclusively locked for the whole truncate-and-write; if another process
// holds the lock Save fails instead of waiting.
func Save(path string, contacts []entities.Contact) (err error) {
	data, err := Encode(contacts)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", entities.ErrIO, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", entities.ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", entities.ErrIO, path, cerr)
		}
	}()

	if err := locker.Lock(f); err != nil {
		return fmt.Errorf("%w: lock %s: %w", entities.ErrIO, path, err)
	}
	writeErr := rewrite(f, data)
	unlockErr := locker.Unlock(f)
	if writeErr != nil {
		return fmt.Errorf("%w: write %s: %w", entities.ErrIO, path, writeErr)
	}
	if unlockErr != nil {
		return fmt.Errorf("%w: unlock %s: %w", entities.ErrIO, path, unlockErr)
	}
	return nil
}

func rewrite(f *os.File, data []byte) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// EnsureFile creates an empty phonebook document at path when no file
// exists yet. It reports whether a file was created.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: stat %s: %w", entities.ErrIO, path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("%w: mkdir %s: %w", entities.ErrIO, dir, err)
		}
	}
	if err := Save(path, nil); err != nil {
		return false, err
	}
	return true, nil
}
