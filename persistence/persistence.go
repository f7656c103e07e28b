// File: persistence.go
// Role: the frame reader/writer. Save/Load are the two public
// entry-points; everything else in this file is the per-command msgpack
// envelope plumbing.
package persistence

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvlogic/command"
)

// Save writes records as a framed .scad payload to w: StartByte,
// ProtocolVersion, a big-endian uint32 count, each record's msgpack
// envelope preceded by its big-endian uint32 length, EndByte. Any I/O or encoding failure is wrapped with
// github.com/pkg/errors (captured stack trace) and rethrown for the outer
// host to log; the frame's own domain errors never occur on write, only on
// Load.
func Save(w io.Writer, records []command.Record) error {
	if _, err := w.Write([]byte{StartByte, ProtocolVersion}); err != nil {
		return errors.Wrap(err, "persistence: save: write header")
	}

	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(records)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return errors.Wrap(err, "persistence: save: write count")
	}

	for i, rec := range records {
		payload, err := msgpack.Marshal(&rec)
		if err != nil {
			return errors.Wrapf(err, "persistence: save: encode record %d", i)
		}
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return errors.Wrapf(err, "persistence: save: write record %d length", i)
		}
		if _, err := w.Write(payload); err != nil {
			return errors.Wrapf(err, "persistence: save: write record %d", i)
		}
	}

	if _, err := w.Write([]byte{EndByte}); err != nil {
		return errors.Wrap(err, "persistence: save: write trailer")
	}
	return nil
}

// Load reads a framed .scad payload from r, verifying both magic bytes and
// the version before decoding a single record. Returns
// ErrFileCorrupted if either magic byte is wrong, a length-prefixed record
// is truncated, or a record's msgpack payload is undecodable; returns an
// *IncompatibleFileError (wrapping ErrIncompatibleFile) if the version byte
// does not match ProtocolVersion.
func Load(path string, r io.Reader) ([]command.Record, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, errors.Wrapf(ErrFileCorrupted, "%s: read header: %v", path, err)
	}
	if header[0] != StartByte {
		return nil, errors.Wrapf(ErrFileCorrupted, "%s: bad start byte %d", path, header[0])
	}
	if header[1] != ProtocolVersion {
		return nil, &IncompatibleFileError{Path: path, VRead: header[1], VWant: ProtocolVersion}
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, errors.Wrapf(ErrFileCorrupted, "%s: read count: %v", path, err)
	}
	count := binary.BigEndian.Uint32(countBuf[:])

	// count and the per-record lengths come straight from the file, so they
	// are untrusted: records grows incrementally rather than pre-sizing from
	// count, and a length beyond MaxRecordSize is rejected before any
	// allocation. A truncated or hostile frame fails with ErrFileCorrupted
	// instead of a giant make().
	var records []command.Record
	for i := uint32(0); i < count; i++ {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, errors.Wrapf(ErrFileCorrupted, "%s: record %d: read length: %v", path, i, err)
		}
		payloadLen := binary.BigEndian.Uint32(lenBuf[:])
		if payloadLen > MaxRecordSize {
			return nil, errors.Wrapf(ErrFileCorrupted, "%s: record %d: length %d exceeds %d", path, i, payloadLen, MaxRecordSize)
		}
		payload := make([]byte, payloadLen)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, errors.Wrapf(ErrFileCorrupted, "%s: record %d: read payload: %v", path, i, err)
		}
		var rec command.Record
		if err := msgpack.Unmarshal(payload, &rec); err != nil {
			return nil, errors.Wrapf(ErrFileCorrupted, "%s: record %d: decode: %v", path, i, err)
		}
		records = append(records, rec)
	}

	var trailer [1]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, errors.Wrapf(ErrFileCorrupted, "%s: read trailer: %v", path, err)
	}
	if trailer[0] != EndByte {
		return nil, errors.Wrapf(ErrFileCorrupted, "%s: bad end byte %d", path, trailer[0])
	}

	return records, nil
}
