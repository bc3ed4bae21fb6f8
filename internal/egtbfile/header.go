// Package egtbfile implements the on-disk table file format: header,
// compression block table, and the tiny/all/smart memory modes used to
// read and write compressed score payloads.
package egtbfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed, reserved size of a table file's header: a
// little-endian block wide enough for the signature, property bitset,
// DTM bound, name, copyright string and block count.
const HeaderSize = 160

// Signature is the magic value identifying a current-generation table
// file; Decode rejects any header whose signature differs.
const Signature uint32 = 0x00474546 // "FEG\0" (Felicity EGtb) read little-endian

// Property is the header's feature bitset.
type Property uint32

const (
	PropCompressed Property = 1 << iota
	PropNew
	Prop2Bytes
	PropLargeCompressTableW
	PropLargeCompressTableB
	PropCompressOptimized
	PropSideWhite
	PropSideBlack
)

func (p Property) Has(f Property) bool { return p&f != 0 }

// Header is the fixed leading block of every table file.
type Header struct {
	Signature  uint32
	Property   Property
	DtmMax     int16
	Order      uint16
	Name       string // endgame name, e.g. "kqkr"
	Copyright  string
	BlockCount uint32 // number of fixed-size compression blocks in the payload, 0 if uncompressed
}

// cellWidth returns 1 or 2, the on-disk byte width of one score cell.
func (h Header) cellWidth() int {
	if h.Property.Has(Prop2Bytes) {
		return 2
	}
	return 1
}

// Encode renders h into a fixed HeaderSize-byte buffer.
func (h Header) Encode() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Signature)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.Property))
	binary.LittleEndian.PutUint16(buf[8:10], uint16(h.DtmMax))
	binary.LittleEndian.PutUint16(buf[10:12], h.Order)

	if len(h.Name) > 32 {
		return nil, fmt.Errorf("egtbfile: name %q exceeds 32 bytes", h.Name)
	}
	copy(buf[12:44], h.Name)

	if len(h.Copyright) > 96 {
		return nil, fmt.Errorf("egtbfile: copyright string exceeds 96 bytes")
	}
	copy(buf[44:140], h.Copyright)

	binary.LittleEndian.PutUint32(buf[140:144], h.BlockCount)

	return buf, nil
}

// Decode parses a HeaderSize-byte buffer into a Header.
func Decode(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("egtbfile: header buffer too short (%d < %d)", len(buf), HeaderSize)
	}
	h := Header{
		Signature: binary.LittleEndian.Uint32(buf[0:4]),
		Property:  Property(binary.LittleEndian.Uint32(buf[4:8])),
		DtmMax:    int16(binary.LittleEndian.Uint16(buf[8:10])),
		Order:     binary.LittleEndian.Uint16(buf[10:12]),
		Name:       string(bytes.TrimRight(buf[12:44], "\x00")),
		Copyright:  string(bytes.TrimRight(buf[44:140], "\x00")),
		BlockCount: binary.LittleEndian.Uint32(buf[140:144]),
	}
	if h.Signature != Signature {
		return Header{}, fmt.Errorf("egtbfile: bad signature %#x, want %#x", h.Signature, Signature)
	}
	return h, nil
}
