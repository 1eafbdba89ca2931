// Package bitmap writes uncompressed 24-bit BMP files from an in-memory
// pixel buffer.
//
// # Quick Start
//
//	bm, err := bitmap.New(2, 2)
//	if err != nil {
//	    return err
//	}
//	bm.SetAll(bitmap.White)
//	_ = bm.SetPixel(0, 0, bitmap.RGB(255, 0, 0))
//	if err := bm.Write("out.bmp"); err != nil {
//	    return err
//	}
//
// # File layout
//
// A written file is a 14-byte file header, a 40-byte info header and the
// pixel data, all little-endian with no padding between records. Pixels
// are stored as blue, green, red.
//
// The default LayoutPacked writes rows in memory order (row 0 first) with
// no row padding, so pixel (x, y) is found at
//
//	DataOffset() + (y*Width() + x) * PixelSize
//
// and the file is exactly HeaderSize + width*height*PixelSize bytes.
// LayoutBottomUp and LayoutTopDown pad each row to 4 bytes and produce
// files that standard image viewers accept.
//
// # Errors
//
// Out-of-range coordinates return ErrOutOfRange. Write separates
// ErrOpenFailure from ErrWriteFailure and removes a partially written file.
//
// # Logging
//
// The package is silent by default. Use SetLogger to enable debug output.
package bitmap
