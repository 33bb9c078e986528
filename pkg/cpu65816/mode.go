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

// Mode identifies one of the 65816's addressing modes.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeRelative
	ModeRelativeLong
	ModeDirect
	ModeDirectX
	ModeDirectY
	ModeDirectIndirect
	ModeDirectIndirectX
	ModeDirectIndirectY
	ModeDirectIndirectLong
	ModeDirectIndirectLongY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsoluteIndirect
	ModeAbsoluteIndirectLong
	ModeAbsoluteIndexedIndirect
	ModeAbsoluteLong
	ModeAbsoluteLongX
	ModeStackRelative
	ModeStackRelativeIndirectY
	ModeBlockMove
)

// fixedOperandWidth is the static per-mode operand length table, used for
// every mode except Immediate (whose width depends on the mnemonic's
// register class and the current M/X flags).
var fixedOperandWidth = map[Mode]int{
	ModeImplied:                 0,
	ModeAccumulator:             0,
	ModeRelative:                1,
	ModeRelativeLong:            2,
	ModeDirect:                  1,
	ModeDirectX:                 1,
	ModeDirectY:                 1,
	ModeDirectIndirect:          1,
	ModeDirectIndirectX:         1,
	ModeDirectIndirectY:         1,
	ModeDirectIndirectLong:      1,
	ModeDirectIndirectLongY:     1,
	ModeAbsolute:                2,
	ModeAbsoluteX:               2,
	ModeAbsoluteY:               2,
	ModeAbsoluteIndirect:        2,
	ModeAbsoluteIndirectLong:    2,
	ModeAbsoluteIndexedIndirect: 2,
	ModeAbsoluteLong:            3,
	ModeAbsoluteLongX:           3,
	ModeStackRelative:           1,
	ModeStackRelativeIndirectY:  1,
	ModeBlockMove:               2,
}

// directPageLikeModes are the modes whose label_target is the raw operand
// word: direct-page family, stack-relative family, and block move.
var directPageLikeModes = map[Mode]bool{
	ModeDirect: true, ModeDirectX: true, ModeDirectY: true,
	ModeDirectIndirect: true, ModeDirectIndirectX: true, ModeDirectIndirectY: true,
	ModeDirectIndirectLong: true, ModeDirectIndirectLongY: true,
	ModeStackRelative: true, ModeStackRelativeIndirectY: true,
	ModeBlockMove: true,
}

// absoluteModes are the modes whose label_target combines the operand with
// the data bank register.
var absoluteModes = map[Mode]bool{
	ModeAbsolute: true, ModeAbsoluteX: true, ModeAbsoluteY: true,
	ModeAbsoluteIndirect: true, ModeAbsoluteIndirectLong: true,
	ModeAbsoluteIndexedIndirect: true,
}

// longModes are the modes whose label_target is the raw 24-bit operand.
var longModes = map[Mode]bool{
	ModeAbsoluteLong: true, ModeAbsoluteLongX: true,
}

// relativeModes are the modes whose label_target mirrors jump_addr.
var relativeModes = map[Mode]bool{
	ModeRelative: true, ModeRelativeLong: true,
}
