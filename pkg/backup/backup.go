// avsg-go: Axiom Verge save game inspector
// Copyright (C) 2018  Yishen Miao
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package backup stores save files in a small lz4 compressed container.
//
// A backup is laid out as
//
//	magic   int32  0x62737661
//	version int32  1
//	stored  int32  size of the block
//	raw     int32  size of the save file
//	block   [stored]byte
//
// All integers are little endian. The block is an lz4 block, or the save
// file itself when stored equals raw.
package backup

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4"

	"github.com/mys721tx/avsg-go/internal/fileio"
)

const (
	// Magic is the magic number of backup files.
	Magic int32 = 0x62737661
	// Ver is the version number of backup files.
	Ver int32 = 0x00000001
	// MaxSize is the largest save file a backup can hold.
	MaxSize = 1 << 26
)

var (
	ErrMagic      = errors.New("incorrect magic number")
	ErrVersion    = errors.New("incorrect version number")
	ErrSize       = errors.New("invalid frame size")
	ErrEncoded    = errors.New("frame is already encoded")
	ErrNotEncoded = errors.New("frame is not encoded")
)

// Frame holds one block by embedding bytes.Buffer.
type Frame struct {
	SizeRaw   int32
	SizeCom   int32
	isEncoded bool
	bytes.Buffer
}

// Stored reports whether the block holds the data uncompressed.
func (f *Frame) Stored() bool {
	return f.SizeCom == f.SizeRaw
}

// Decode decodes the frame content in place. Decode will return error when
// the frame is not encoded.
func (f *Frame) Decode() error {
	if !f.isEncoded {
		return ErrNotEncoded
	}

	if f.Stored() {
		if f.Len() != int(f.SizeRaw) {
			return fmt.Errorf("%w: expecting %d bytes, have %d", ErrSize, f.SizeRaw, f.Len())
		}

		f.isEncoded = false

		return nil
	}

	b := make([]byte, f.SizeRaw)

	n, err := lz4.UncompressBlock(f.Bytes(), b)
	if err != nil {
		return err
	}

	if int32(n) != f.SizeRaw {
		return fmt.Errorf("%w: expecting %d bytes, read %d", ErrSize, f.SizeRaw, n)
	}

	f.Reset()

	_, err = f.Write(b)

	f.isEncoded = false

	return err
}

// Encode encodes the frame content in place. Data that does not shrink is
// kept as is. Encode will return error when the frame is already encoded.
func (f *Frame) Encode() error {
	if f.isEncoded {
		return ErrEncoded
	}

	f.SizeRaw = int32(f.Len())

	b := make([]byte, lz4.CompressBlockBound(f.Len()))

	n, err := lz4.CompressBlock(f.Bytes(), b, make([]int, 1<<16))
	if err != nil {
		return err
	}

	f.isEncoded = true

	// lz4.CompressBlock returns 0 if the data is not compressible.
	if n == 0 || n >= f.Len() {
		f.SizeCom = f.SizeRaw

		return nil
	}

	f.SizeCom = int32(n)

	f.Reset()

	_, err = f.Write(b[:n])

	return err
}

// ReadInt32 reads a little endian int32.
func ReadInt32(r io.Reader) (int32, error) {
	var v int32

	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}

// WriteInt32 writes a little endian int32.
func WriteInt32(w io.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// CheckHeader checks the magic number and version number of a backup.
func CheckHeader(r io.Reader) error {
	if m, err := ReadInt32(r); err != nil {
		return fmt.Errorf("unable to read magic number: %w", err)
	} else if m != Magic {
		return fmt.Errorf("%w: %#x", ErrMagic, m)
	}

	if v, err := ReadInt32(r); err != nil {
		return fmt.Errorf("unable to read version number: %w", err)
	} else if v != Ver {
		return fmt.Errorf("%w: %#x", ErrVersion, v)
	}

	return nil
}

// WriteHeader writes the magic number and version number of a backup.
func WriteHeader(w io.Writer) error {
	if err := WriteInt32(w, Magic); err != nil {
		return fmt.Errorf("unable to write magic number: %w", err)
	}

	if err := WriteInt32(w, Ver); err != nil {
		return fmt.Errorf("unable to write version number: %w", err)
	}

	return nil
}

// ReadSizeToFrame reads the block sizes and returns an empty encoded frame.
func ReadSizeToFrame(r io.Reader) (*Frame, error) {
	f := new(Frame)

	com, err := ReadInt32(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read encoded size: %w", err)
	}

	raw, err := ReadInt32(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read unencoded size: %w", err)
	}

	if raw < 0 || raw > MaxSize || com < 0 || int(com) > max(int(raw), lz4.CompressBlockBound(int(raw))) {
		return nil, fmt.Errorf("%w: encoded %d, unencoded %d", ErrSize, com, raw)
	}

	f.SizeCom = com
	f.SizeRaw = raw
	f.isEncoded = true

	return f, nil
}

// ReadFrame reads the block of f from r.
func ReadFrame(r io.Reader, f *Frame) error {
	if _, err := io.CopyN(f, r, int64(f.SizeCom)); err != nil {
		return fmt.Errorf("unable to read block: %w", err)
	}

	return nil
}

// WriteSize writes the block sizes of f.
func WriteSize(w io.Writer, f *Frame) error {
	if err := WriteInt32(w, f.SizeCom); err != nil {
		return fmt.Errorf("unable to write encoded size: %w", err)
	}

	if err := WriteInt32(w, f.SizeRaw); err != nil {
		return fmt.Errorf("unable to write unencoded size: %w", err)
	}

	return nil
}

// WriteFrame writes the block of f.
func WriteFrame(w io.Writer, f *Frame) error {
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("unable to write block: %w", err)
	}

	return nil
}

// Pack writes data to w as a backup and returns the frame sizes.
func Pack(w io.Writer, data []byte) (*Frame, error) {
	if len(data) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSize, len(data))
	}

	f := new(Frame)
	f.Write(data)

	if err := f.Encode(); err != nil {
		return nil, fmt.Errorf("unable to compress: %w", err)
	}

	if err := WriteHeader(w); err != nil {
		return nil, err
	}

	if err := WriteSize(w, f); err != nil {
		return nil, err
	}

	if err := WriteFrame(w, f); err != nil {
		return nil, err
	}

	return f, nil
}

// Unpack reads a backup from r and returns the decoded frame.
func Unpack(r io.Reader) (*Frame, error) {
	if err := CheckHeader(r); err != nil {
		return nil, err
	}

	f, err := ReadSizeToFrame(r)
	if err != nil {
		return nil, err
	}

	if err := ReadFrame(r, f); err != nil {
		return nil, err
	}

	if err := f.Decode(); err != nil {
		return nil, fmt.Errorf("unable to decode: %w", err)
	}

	return f, nil
}

// Backup writes the save file in to a new backup file out.
func Backup(in, out string) (*Frame, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	f, err := Pack(&buf, data)
	if err != nil {
		return nil, err
	}

	if err := fileio.WriteNew(out, buf.Bytes()); err != nil {
		return nil, err
	}

	return f, nil
}

// Restore writes the save file held by the backup in to a new file out.
func Restore(in, out string) (*Frame, error) {
	fh, err := os.Open(in)
	if err != nil {
		return nil, err
	}

	defer fh.Close()

	f, err := Unpack(fh)
	if err != nil {
		return nil, fmt.Errorf("unable to restore %s: %w", in, err)
	}

	if err := fileio.WriteNew(out, f.Bytes()); err != nil {
		return nil, err
	}

	return f, nil
}
