// Package persistence implements the binary, framed, versioned .scad file
// format: a start byte, a protocol version byte, a 32-bit command count,
// the commands themselves, and an end byte. Reading verifies both magic
// bytes and the version before touching a single command payload, so a
// corrupt or incompatible file is rejected up front rather than partway
// through a replay.
//
// The per-command payload is a msgpack envelope
// (github.com/vmihailenco/msgpack/v5) around command.Record. The payload
// codec is not versioned separately from the frame — any change to
// command.Record's shape is a ProtocolVersion bump.
//
// Why this shape:
//
//   - Save/Load are scoped-acquisition functions, not a long-lived Writer/
//     Reader object: the stream is opened, used, and released on every exit
//     path, which a bare io.Writer/io.Reader parameter plus defer Close in
//     the caller already gives for free.
//   - Unexpected I/O/serialisation errors are wrapped with
//     github.com/pkg/errors (captured stack trace for an outer host to
//     log), while the frame's own domain errors (ErrFileCorrupted,
//     ErrIncompatibleFile) stay plain sentinels compared with errors.Is.
//
// Errors:
//
//	ErrFileCorrupted    - frame bytes wrong or a command payload undecodable.
//	ErrIncompatibleFile - version byte does not match ProtocolVersion.
//	ErrFileNotFound     - open target absent under the user-data directory.
package persistence
