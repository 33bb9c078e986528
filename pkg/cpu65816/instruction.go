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

// Instruction is one decoded 65816 instruction.
//
// Size is the OPERAND length, not the total encoded length — Decode's
// first return value (consumedLen) is Size+1. This mirrors the original
// dumper's habit of walking the PC by instr.size+1 in the listing renderer;
// keeping the convention here means the renderer's "+1" is not a bug to
// chase, just the field's documented meaning.
type Instruction struct {
	Mnemonic Mnemonic
	Mode     Mode
	Size     int
	Arg      uint32
}

// Decode decodes one instruction at the front of bytes under the given CPU
// flags. It fails (ok=false) when bytes is empty or shorter than the
// instruction's encoded length.
func Decode(bytes []byte, flags Flags) (consumedLen int, instr Instruction, ok bool) {
	if len(bytes) == 0 {
		return 0, Instruction{}, false
	}

	row := opcodeTable[bytes[0]]
	operandLen := operandWidth(row.mnemonic, row.mode, flags)
	total := 1 + operandLen
	if len(bytes) < total {
		return 0, Instruction{}, false
	}

	var arg uint32
	for i := 0; i < operandLen; i++ {
		arg |= uint32(bytes[1+i]) << (8 * uint(i))
	}

	return total, Instruction{
		Mnemonic: row.mnemonic,
		Mode:     row.mode,
		Size:     operandLen,
		Arg:      arg,
	}, true
}

func operandWidth(m Mnemonic, mode Mode, flags Flags) int {
	if mode == ModeImmediate {
		switch {
		case accumulatorClass[m]:
			if flags.M {
				return 1
			}
			return 2
		case indexClass[m]:
			if flags.X {
				return 1
			}
			return 2
		default:
			return 1
		}
	}
	return fixedOperandWidth[mode]
}

// Divergent reports whether control never falls through after this instruction.
func (i Instruction) Divergent() bool {
	return i.Mnemonic.Divergent()
}

// Branch reports whether i is one of the eight conditional branches.
func (i Instruction) Branch() bool {
	return i.Mnemonic.Branch()
}

// ApplyFlags applies REP/SEP's effect on M/X to flags; every other mnemonic
// leaves flags unchanged.
func (i Instruction) ApplyFlags(flags Flags) Flags {
	switch i.Mnemonic {
	case REP:
		if i.Arg&0x20 != 0 {
			flags.M = false
		}
		if i.Arg&0x10 != 0 {
			flags.X = false
		}
	case SEP:
		if i.Arg&0x20 != 0 {
			flags.M = true
		}
		if i.Arg&0x10 != 0 {
			flags.X = true
		}
	}
	return flags
}

// ApplyFlagsSeen applies the same REP/SEP triggers as ApplyFlags, but
// records the last-seen forced value of each flag for subroutine-effect
// summarization; an unseen flag is left untouched.
func (i Instruction) ApplyFlagsSeen(seen SeenFlags) SeenFlags {
	switch i.Mnemonic {
	case REP:
		if i.Arg&0x20 != 0 {
			seen.M = False
		}
		if i.Arg&0x10 != 0 {
			seen.X = False
		}
	case SEP:
		if i.Arg&0x20 != 0 {
			seen.M = True
		}
		if i.Arg&0x10 != 0 {
			seen.X = True
		}
	}
	return seen
}

func signExtend8(v uint32) int32 {
	return int32(int8(uint8(v)))
}

func signExtend16(v uint32) int32 {
	return int32(int16(uint16(v)))
}

// JumpAddr returns the statically-resolvable next-pc target for branches,
// BRL, and direct (non-indirect) JMP/JML, given the instruction's own
// address pc. Other instructions have no statically-resolvable target.
func (i Instruction) JumpAddr(pc uint32) (target uint32, ok bool) {
	switch {
	case i.Mnemonic.Branch():
		t := int64(pc) + 2 + int64(signExtend8(i.Arg))
		return uint32(t) & 0xFFFFFF, true
	case i.Mnemonic == BRL:
		t := int64(pc) + 3 + int64(signExtend16(i.Arg))
		return uint32(t) & 0xFFFFFF, true
	case i.Mnemonic == JMP && i.Mode == ModeAbsolute:
		return (pc & 0xFF0000) | i.Arg, true
	case i.Mnemonic == JML && i.Mode == ModeAbsoluteLong:
		return i.Arg, true
	default:
		return 0, false
	}
}

// JsrAddr returns the statically-resolvable call target for direct
// (non-indirect) JSR/JSL, given the instruction's own address pc.
func (i Instruction) JsrAddr(pc uint32) (target uint32, ok bool) {
	switch {
	case i.Mnemonic == JSR && i.Mode == ModeAbsolute:
		return (pc & 0xFF0000) | i.Arg, true
	case i.Mnemonic == JSL && i.Mode == ModeAbsoluteLong:
		return i.Arg, true
	default:
		return 0, false
	}
}

// LabelTarget returns the address the operand names for data-label
// purposes, respecting addressing mode. dbr is the current data bank
// register value (0..0xFF) used to complete absolute-mode addresses.
func (i Instruction) LabelTarget(pc uint32, dbr uint8) (target uint32, ok bool) {
	switch {
	case i.Mode == ModeImmediate, i.Mode == ModeImplied, i.Mode == ModeAccumulator:
		return 0, false
	case directPageLikeModes[i.Mode]:
		return i.Arg, true
	case absoluteModes[i.Mode]:
		return i.Arg | uint32(dbr)<<16, true
	case longModes[i.Mode]:
		return i.Arg, true
	case relativeModes[i.Mode]:
		return i.JumpAddr(pc)
	default:
		return 0, false
	}
}
