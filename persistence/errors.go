package persistence

import (
	"errors"
	"strconv"
)

// StartByte opens every frame written by Save.
const StartByte byte = 10

// EndByte closes every frame written by Save.
const EndByte byte = 42

// ProtocolVersion is the single byte gating cross-version file
// compatibility. Any change to command.Record's shape requires
// incrementing this constant; Load refuses anything else.
const ProtocolVersion byte = 1

// MaxRecordSize bounds one record's declared payload length on read. The
// length field is untrusted file input; anything above this is treated as
// corruption rather than allocated. Far above any real command envelope
// (even a composite-gate script stays in the kilobytes).
const MaxRecordSize = 16 << 20

// ErrFileCorrupted indicates the frame's magic bytes were wrong, or a
// command payload inside an otherwise well-framed file failed to decode.
var ErrFileCorrupted = errors.New("persistence: file corrupted")

// ErrIncompatibleFile indicates the frame's version byte does not match
// ProtocolVersion. IncompatibleFileError carries both versions so a host
// can report "newer" or "older" to the user.
var ErrIncompatibleFile = errors.New("persistence: incompatible file version")

// IncompatibleFileError wraps ErrIncompatibleFile with the version actually
// read and the version this build expects.
type IncompatibleFileError struct {
	Path  string
	VRead byte
	VWant byte
}

func (e *IncompatibleFileError) Error() string {
	direction := "older"
	if e.Newer() {
		direction = "newer"
	}
	return "persistence: " + e.Path + ": file is from a " + direction + " version (" +
		strconv.Itoa(int(e.VRead)) + " vs. expected " + strconv.Itoa(int(e.VWant)) + ")"
}

func (e *IncompatibleFileError) Unwrap() error { return ErrIncompatibleFile }

// Newer reports whether the read file's version is newer than this
// build's ProtocolVersion (vs. older), for a status message's direction.
func (e *IncompatibleFileError) Newer() bool { return e.VRead > e.VWant }
