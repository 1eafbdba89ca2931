package bitmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// On-disk header sizes in bytes.
const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize
)

// Info header constants.
const (
	planes       = 1
	bitsPerPixel = PixelSize * 8
	compressRGB  = 0 // BI_RGB, uncompressed
)

// signature is the magic number at offset 0 of every file.
var signature = [2]byte{'B', 'M'}

// FileHeader is the BITMAPFILEHEADER record at the start of the file.
// Every field is fixed width and the record is encoded without padding.
type FileHeader struct {
	Signature  [2]byte
	FileSize   uint32 // total bytes in the file
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32 // offset of the first pixel byte
}

// InfoHeader is the 40-byte BITMAPINFOHEADER record that follows the
// file header.
type InfoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // negative for top-down row order
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// writeHeaders encodes both headers in little-endian order.
func writeHeaders(w io.Writer, fh *FileHeader, ih *InfoHeader) error {
	if err := binary.Write(w, binary.LittleEndian, fh); err != nil {
		return fmt.Errorf("%w: file header: %w", ErrWriteFailure, err)
	}
	if err := binary.Write(w, binary.LittleEndian, ih); err != nil {
		return fmt.Errorf("%w: info header: %w", ErrWriteFailure, err)
	}
	return nil
}

// ReadHeaders decodes the file header and info header from r.
// It is the inverse of the header part of WriteTo and does not read
// pixel data.
func ReadHeaders(r io.Reader) (FileHeader, InfoHeader, error) {
	var fh FileHeader
	var ih InfoHeader

	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return fh, ih, fmt.Errorf("bitmap: read file header: %w", unexpectedEOF(err))
	}
	if fh.Signature != signature {
		return fh, ih, fmt.Errorf("%w: %q", ErrInvalidSignature, fh.Signature[:])
	}
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return fh, ih, fmt.Errorf("bitmap: read info header: %w", unexpectedEOF(err))
	}
	return fh, ih, nil
}

// unexpectedEOF maps io.EOF to io.ErrUnexpectedEOF: a header cut short at
// a record boundary is still a truncated file.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
