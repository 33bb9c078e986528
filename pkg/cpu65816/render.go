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

import "fmt"

// sizeSuffix reports the ".b"/".w"/".l" suffix driven by the instruction's
// effective operand width (relative branches included), or "" when there is
// no operand (implied, accumulator).
func (i Instruction) sizeSuffix() string {
	switch i.Size {
	case 1:
		return ".b"
	case 2:
		return ".w"
	case 3:
		return ".l"
	default:
		return ""
	}
}

// operandSyntax formats the operand in the addressing mode's assembler
// syntax, with numeral as the hex or symbolic representation of the
// operand's address/value.
func (i Instruction) operandSyntax(numeral string) string {
	switch i.Mode {
	case ModeImplied:
		return ""
	case ModeAccumulator:
		return " A"
	case ModeImmediate:
		return " #" + numeral
	case ModeRelative, ModeRelativeLong:
		return " " + numeral
	case ModeDirect, ModeAbsolute, ModeAbsoluteLong:
		return " " + numeral
	case ModeDirectX, ModeAbsoluteX, ModeAbsoluteLongX:
		return " " + numeral + ",x"
	case ModeDirectY, ModeAbsoluteY:
		return " " + numeral + ",y"
	case ModeDirectIndirect:
		return " (" + numeral + ")"
	case ModeDirectIndirectX:
		return " (" + numeral + ",x)"
	case ModeDirectIndirectY:
		return " (" + numeral + "),y"
	case ModeDirectIndirectLong:
		return " [" + numeral + "]"
	case ModeDirectIndirectLongY:
		return " [" + numeral + "],y"
	case ModeAbsoluteIndirect:
		return " (" + numeral + ")"
	case ModeAbsoluteIndirectLong:
		return " [" + numeral + "]"
	case ModeAbsoluteIndexedIndirect:
		return " (" + numeral + ",x)"
	case ModeStackRelative:
		return " " + numeral + ",s"
	case ModeStackRelativeIndirectY:
		return " (" + numeral + ",s),y"
	case ModeBlockMove:
		src := (i.Arg >> 8) & 0xFF
		dst := i.Arg & 0xFF
		return fmt.Sprintf(" $%02X,$%02X", src, dst)
	default:
		return " " + numeral
	}
}

// hexNumeral renders the operand as a $-prefixed hexadecimal literal, sized
// to match the operand width (2/4/6 hex digits).
func (i Instruction) hexNumeral() string {
	switch i.Size {
	case 1:
		return fmt.Sprintf("$%02X", i.Arg)
	case 2:
		return fmt.Sprintf("$%04X", i.Arg)
	case 3:
		return fmt.Sprintf("$%06X", i.Arg)
	default:
		return ""
	}
}

// Render renders the instruction's full textual form,
// "<mnemonic><size-suffix><operand>", using label (if non-empty) in place of
// a numeric literal for the operand.
func (i Instruction) Render(label string) string {
	numeral := label
	if numeral == "" {
		numeral = i.hexNumeral()
	}
	if i.Mode == ModeBlockMove {
		return i.Mnemonic.String() + i.operandSyntax(numeral)
	}
	return i.Mnemonic.String() + i.sizeSuffix() + i.operandSyntax(numeral)
}
