// Package leb128 encodes and decodes unsigned LEB128 varints: 7 data
// bits per byte, most-significant bit of each byte set iff another byte
// follows. No signed LEB128 is used anywhere in this module.
//
// Go's standard library varint format (encoding/binary's Uvarint /
// PutUvarint) is bit-for-bit identical to unsigned LEB128 -- both are
// little-endian, base-128, MSB-continuation encodings of an unsigned
// integer. Hand-rolling the bit shifting here would only reimplement
// encoding/binary under a different name, so this package is a thin
// seam over it: it gives the LEB128 concern its own name in the import
// graph and translates decode failures into the Leb128 error kind
// instead of a bare encoding/binary error.
package leb128

import (
	"bytes"
	"encoding/binary"

	"github.com/arnsholt/chess-compression/chesserror"
)

// Write appends the unsigned LEB128 encoding of v to buf.
func Write(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

// Read decodes one unsigned LEB128 varint from r.
func Read(r *bytes.Reader) (uint64, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, chesserror.Wrapf(chesserror.Leb128, err, "leb128: decode varint")
	}
	return v, nil
}
