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

// copierHeaderSize is the size of the legacy copier header some cartridge
// dumps carry ahead of the actual ROM image.
const copierHeaderSize = 0x200

// StripCopierHeader removes a leading copier header from raw cartridge
// bytes when one is present, detected the way most SNES tooling does it:
// the file size minus the header is a whole multiple of 0x8000. Absent a
// header, data is returned unchanged.
func StripCopierHeader(data []byte) []byte {
	if len(data) <= copierHeaderSize {
		return data
	}
	if (len(data)-copierHeaderSize)%0x8000 == 0 {
		return data[copierHeaderSize:]
	}
	return data
}
