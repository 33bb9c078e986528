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

package cpu65816

// Flags holds the two CPU status bits the analyzer tracks across decoding:
// accumulator width (M) and index-register width (X). true means 8-bit.
type Flags struct {
	M bool
	X bool
}

// SeenFlags records, per flag, the last value a subroutine has been observed
// to force on return. A flag that has never been forced is Unset.
type SeenFlags struct {
	M TriState
	X TriState
}

// TriState is unknown/false/true presence for a subroutine's flag effect.
type TriState int

const (
	Unset TriState = iota
	False
	True
)

// Bool reports the tri-state as (value, present).
func (t TriState) Bool() (value bool, present bool) {
	switch t {
	case False:
		return false, true
	case True:
		return true, true
	default:
		return false, false
	}
}

// FromBool converts a plain bool into a present tri-state.
func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}
