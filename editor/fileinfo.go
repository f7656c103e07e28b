// File: fileinfo.go
// Role: FileInfo, the current-filename + dirty-bit pair the UI surface
// reads to render a title bar and a "has unsaved changes" indicator.
package editor

import "sync"

// FileInfo tracks the filename an Editor was last saved to or opened from,
// and whether it has unsaved changes since.
type FileInfo struct {
	mu       sync.RWMutex
	filename string
	dirty    bool
}

// Filename returns the current filename, or "" for a never-saved editor.
func (f *FileInfo) Filename() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.filename
}

// Dirty reports whether the editor has unsaved changes.
func (f *FileInfo) Dirty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dirty
}

// SetFilename records a new current filename (after a successful Save or
// Open) and clears the dirty bit.
func (f *FileInfo) SetFilename(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filename = name
	f.dirty = false
}

// MarkDirty sets the dirty bit; called by every Editor mutation.
func (f *FileInfo) MarkDirty() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = true
}

// MarkClean clears the dirty bit without changing the filename.
func (f *FileInfo) MarkClean() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirty = false
}
