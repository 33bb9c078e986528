// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package rom owns cartridge bytes and maps a 24-bit logical 65816 address
// onto a file offset according to the cartridge's mapper.
package rom

// Mapper identifies the address translation rule a cartridge image follows.
type Mapper int

const (
	// MapperLoROM is the only mapper this package fully implements.
	MapperLoROM Mapper = iota
	// MapperHiROM is declared but stubbed: Translate always reports "no byte here".
	MapperHiROM
	// MapperSA1 is declared but stubbed: Translate always reports "no byte here".
	MapperSA1
)

// Image owns the raw cartridge bytes. Once constructed it is immutable and
// safe to share by reference across an analysis run.
type Image struct {
	data   []byte
	mapper Mapper
}

// New wraps raw cartridge bytes (header already stripped by the caller) under
// the given mapper.
func New(data []byte, mapper Mapper) *Image {
	return &Image{data: data, mapper: mapper}
}

// Mapper reports the cartridge's addressing mode.
func (img *Image) Mapper() Mapper {
	return img.mapper
}

// translate converts a 24-bit logical address into a file offset, reporting
// false when the address does not land in mapped ROM space.
func (img *Image) translate(addr uint32) (offset int, ok bool) {
	switch img.mapper {
	case MapperLoROM:
		return img.translateLoROM(addr)
	default:
		// HiROM and SA-1 use different bank/offset arithmetic not implemented
		// here; they are total-but-empty so callers fall back to the
		// "no byte here" path rather than panicking on an unknown mapper.
		return 0, false
	}
}

func (img *Image) translateLoROM(addr uint32) (offset int, ok bool) {
	bank := (addr >> 16) & 0x3F
	if bank&0x30 == 0x30 {
		bank &^= 0x10
	}
	off := addr & 0x7FFF
	fileOffset := int(bank<<15 | off)
	if fileOffset < 0 || fileOffset >= len(img.data) {
		return 0, false
	}
	return fileOffset, true
}

// InMappedROM reports whether addr resolves to a byte inside the cartridge
// image under the current mapper.
func (img *Image) InMappedROM(addr uint32) bool {
	_, ok := img.translate(addr)
	return ok
}

// Load8 reads one byte. Out-of-range addresses read as zero; use
// InMappedROM first when the absence case matters.
func (img *Image) Load8(addr uint32) uint8 {
	off, ok := img.translate(addr)
	if !ok {
		return 0
	}
	return img.data[off]
}

// Load16LE reads a little-endian 16-bit word starting at addr. Each
// constituent byte is read independently, so a word straddling the end of
// mapped space reads zero for the missing half rather than failing outright.
func (img *Image) Load16LE(addr uint32) uint16 {
	lo := uint16(img.Load8(addr))
	hi := uint16(img.Load8(addr + 1))
	return lo | hi<<8
}

// Load24LE reads a little-endian 24-bit value starting at addr.
func (img *Image) Load24LE(addr uint32) uint32 {
	lo := uint32(img.Load8(addr))
	mid := uint32(img.Load8(addr + 1))
	hi := uint32(img.Load8(addr + 2))
	return lo | mid<<8 | hi<<16
}

// Load32LE reads a little-endian 32-bit, zero-extended value starting at addr.
func (img *Image) Load32LE(addr uint32) uint32 {
	b0 := uint32(img.Load8(addr))
	b1 := uint32(img.Load8(addr + 1))
	b2 := uint32(img.Load8(addr + 2))
	b3 := uint32(img.Load8(addr + 3))
	return b0 | b1<<8 | b2<<16 | b3<<24
}

// SliceInBank returns the remaining bytes of addr's current 0x8000-aligned
// ROM page, i.e. from addr up to (but excluding) the next bank-page
// boundary. Returns nil when addr itself is unmapped.
func (img *Image) SliceInBank(addr uint32) []byte {
	off, ok := img.translate(addr)
	if !ok {
		return nil
	}
	pageEnd := (addr &^ 0x7FFF) + 0x8000
	pageLen := int(pageEnd - addr)
	end := off + pageLen
	if end > len(img.data) {
		end = len(img.data)
	}
	return img.data[off:end]
}

// Size reports the number of raw bytes backing the image.
func (img *Image) Size() int {
	return len(img.data)
}
