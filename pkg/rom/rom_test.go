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

package rom

import "testing"

func TestTranslateLoROM_MirrorsBanksAndMasksOffset(t *testing.T) {
	data := make([]byte, 0x8000) // one 32KB bank's worth
	data[0x100] = 0xAB
	img := New(data, MapperLoROM)

	cases := []struct {
		name string
		addr uint32
		want uint8
	}{
		{"bank 0x00 direct", 0x008100, 0xAB},
		{"bank 0x80 mirrors bank 0x00", 0x808100, 0xAB},
	}
	for _, c := range cases {
		if got := img.Load8(c.addr); got != c.want {
			t.Errorf("%s: Load8(%06X) = %#02x, want %#02x", c.name, c.addr, got, c.want)
		}
	}
}

func TestTranslateLoROM_OutOfRangeIsUnmapped(t *testing.T) {
	img := New(make([]byte, 0x8000), MapperLoROM)
	if img.InMappedROM(0x018000) {
		t.Errorf("InMappedROM(0x018000) = true, want false (only one bank backs this image)")
	}
	if got := img.Load8(0x018000); got != 0 {
		t.Errorf("Load8 of unmapped address = %#02x, want 0", got)
	}
}

func TestHiROMAndSA1AreStubbed(t *testing.T) {
	data := make([]byte, 0x10000)
	for _, m := range []Mapper{MapperHiROM, MapperSA1} {
		img := New(data, m)
		if img.InMappedROM(0x008000) {
			t.Errorf("mapper %v: InMappedROM reported a mapped byte, want stubbed-empty", m)
		}
	}
}

func TestLoad16LE_StraddlesUnmappedTail(t *testing.T) {
	data := []byte{0x00, 0x11}
	img := New(data, MapperLoROM)
	// addr 0x8001 maps to data[1], the image's last byte; 0x8002 is past the end.
	addr := uint32(0x008001)
	got := img.Load16LE(addr)
	want := uint16(0x0011) // low byte from data[1]=0x11, high byte reads 0 (unmapped)
	if got != want {
		t.Errorf("Load16LE straddling end = %#04x, want %#04x", got, want)
	}
}

func TestSliceInBank_StopsAtPageBoundary(t *testing.T) {
	data := make([]byte, 0x8000)
	img := New(data, MapperLoROM)
	got := img.SliceInBank(0x007FFE)
	if len(got) != 2 {
		t.Errorf("SliceInBank(0x7FFE) len = %d, want 2 (up to the 0x8000 page boundary)", len(got))
	}
}

func TestStripCopierHeader(t *testing.T) {
	headered := make([]byte, copierHeaderSize+0x8000)
	headered[copierHeaderSize] = 0xEA
	stripped := StripCopierHeader(headered)
	if len(stripped) != 0x8000 || stripped[0] != 0xEA {
		t.Errorf("StripCopierHeader did not remove a detected copier header")
	}

	plain := make([]byte, 0x8000)
	plain[0] = 0xEA
	if got := StripCopierHeader(plain); len(got) != len(plain) || got[0] != 0xEA {
		t.Errorf("StripCopierHeader altered a headerless image")
	}
}
