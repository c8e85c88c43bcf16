// Package image persists namespace trees and their snapshot tables as a
// stream of CRC-framed binary records, and reloads them. Its loader is the
// node deserialization capability the snapshot layer consumes.
package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// ErrCorrupt reports an image stream that fails framing or checksum
// validation.
var ErrCorrupt = errors.New("corrupt image")

// writeRecord frames one payload as crc32 + length + payload.
func writeRecord(w io.Writer, payload []byte) error {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], crc32.ChecksumIEEE(payload))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// readRecord reads one framed payload and validates its checksum.
func readRecord(r io.Reader) ([]byte, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: record header: %w", ErrCorrupt, err)
	}
	want := binary.LittleEndian.Uint32(hdr[0:4])
	length := binary.LittleEndian.Uint32(hdr[4:8])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: record body: %w", ErrCorrupt, err)
	}
	if crc32.ChecksumIEEE(payload) != want {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	return payload, nil
}

// payloadReader decodes fields out of one record payload with bounds
// checking.
type payloadReader struct {
	b   []byte
	off int
}

func (p *payloadReader) take(n int) ([]byte, error) {
	if p.off+n > len(p.b) {
		return nil, fmt.Errorf("%w: truncated payload", ErrCorrupt)
	}
	b := p.b[p.off : p.off+n]
	p.off += n
	return b, nil
}

func (p *payloadReader) u8() (uint8, error) {
	b, err := p.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *payloadReader) u16() (uint16, error) {
	b, err := p.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (p *payloadReader) u32() (uint32, error) {
	b, err := p.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (p *payloadReader) i64() (int64, error) {
	b, err := p.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (p *payloadReader) str() (string, error) {
	n, err := p.u16()
	if err != nil {
		return "", err
	}
	b, err := p.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p *payloadReader) done() error {
	if p.off != len(p.b) {
		return fmt.Errorf("%w: %d trailing payload bytes", ErrCorrupt, len(p.b)-p.off)
	}
	return nil
}

// payloadWriter builds one record payload.
type payloadWriter struct {
	b []byte
}

func (p *payloadWriter) u8(v uint8)   { p.b = append(p.b, v) }
func (p *payloadWriter) u16(v uint16) { p.b = binary.LittleEndian.AppendUint16(p.b, v) }
func (p *payloadWriter) u32(v uint32) { p.b = binary.LittleEndian.AppendUint32(p.b, v) }
func (p *payloadWriter) i64(v int64)  { p.b = binary.LittleEndian.AppendUint64(p.b, uint64(v)) }

func (p *payloadWriter) str(s string) {
	p.u16(uint16(len(s)))
	p.b = append(p.b, s...)
}
