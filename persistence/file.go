// File: file.go
// Role: the one place persistence touches the actual filesystem — opening
// a user-data-directory-scoped .scad file for the frame codec in
// persistence.go, and listing selectable files for an open dialog's
// enumerated requirement slot. EnsureDir creates the user-data directory
// on demand so a fresh install does not fail its first Save.
package persistence

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlogic/command"
)

// Extension is the file suffix open dialogs filter selectable files by.
const Extension = ".scad"

// ErrFileNotFound indicates an open target did not exist under the
// user-data directory.
var ErrFileNotFound = errors.New("persistence: file not found")

// SaveFile opens (creating/truncating) filename under dir and writes
// records to it via Save, releasing the file on every exit path including
// the error ones.
func SaveFile(dir, filename string, records []command.Record) error {
	if err := EnsureDir(dir); err != nil {
		return err
	}
	path := Path(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "persistence: save %s", path)
	}
	defer f.Close()
	return Save(f, records)
}

// LoadFile opens filename under dir and decodes it via Load, releasing the
// file on every exit path. A missing file is reported as ErrFileNotFound
// rather than the wrapped os.PathError Load would otherwise see.
func LoadFile(dir, filename string) ([]command.Record, error) {
	path := Path(dir, filename)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "persistence: open %s", path)
	}
	defer f.Close()
	return Load(path, f)
}

// ListFiles returns every Extension-suffixed filename directly inside dir,
// sorted, for an open dialog's enumerated-options slot.
// A missing dir is reported as an empty list, not an error: a fresh
// user-data directory that was never bootstrapped simply has no files yet.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "persistence: list %s", dir)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), Extension) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// EnsureDir creates dir (and any missing parents) if it does not already
// exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "persistence: ensure dir %s", dir)
	}
	return nil
}

// Path joins dir and filename, the one place a flat user-data-directory
// path gets assembled.
func Path(dir, filename string) string {
	return filepath.Join(dir, filename)
}
