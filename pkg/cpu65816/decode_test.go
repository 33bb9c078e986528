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

import "testing"

func TestDecode_AllOpcodesBothFlagPairs(t *testing.T) {
	pairs := []Flags{{M: true, X: true}, {M: true, X: false}, {M: false, X: true}, {M: false, X: false}}
	for _, flags := range pairs {
		for op := 0; op < 256; op++ {
			buf := []byte{byte(op), 0, 0, 0}
			n, _, ok := Decode(buf, flags)
			if !ok {
				t.Fatalf("opcode %#02x: Decode failed with full buffer", op)
			}
			if n < 1 || n > 4 {
				t.Errorf("opcode %#02x: consumed length %d out of [1,4]", op, n)
			}
		}
	}
}

func TestDecode_Exhaustion(t *testing.T) {
	// LDA long needs 3 operand bytes; give it none.
	_, _, ok := Decode([]byte{0xAF}, Flags{})
	if ok {
		t.Errorf("Decode() succeeded on truncated buffer, want failure")
	}
}

func TestDecode_EmptyBuffer(t *testing.T) {
	_, _, ok := Decode(nil, Flags{})
	if ok {
		t.Errorf("Decode() succeeded on empty buffer, want failure")
	}
}

func TestDecode_ImmediateWidthFollowsFlags(t *testing.T) {
	// LDA #imm: opcode 0xA9.
	_, instr, ok := Decode([]byte{0xA9, 0x12, 0x34}, Flags{M: true})
	if !ok || instr.Size != 1 {
		t.Errorf("LDA # with M=true: got size %d, want 1", instr.Size)
	}
	_, instr, ok = Decode([]byte{0xA9, 0x12, 0x34}, Flags{M: false})
	if !ok || instr.Size != 2 {
		t.Errorf("LDA # with M=false: got size %d, want 2", instr.Size)
	}

	// LDX #imm: opcode 0xA2, governed by X not M.
	_, instr, ok = Decode([]byte{0xA2, 0x12, 0x34}, Flags{X: true})
	if !ok || instr.Size != 1 {
		t.Errorf("LDX # with X=true: got size %d, want 1", instr.Size)
	}
	_, instr, ok = Decode([]byte{0xA2, 0x12, 0x34}, Flags{X: false})
	if !ok || instr.Size != 2 {
		t.Errorf("LDX # with X=false: got size %d, want 2", instr.Size)
	}
}

func TestDecode_RepSepFixedWidth(t *testing.T) {
	// REP/SEP are neither A-class nor X/Y-class: always 1 byte regardless of flags.
	_, instr, ok := Decode([]byte{0xC2, 0x30}, Flags{M: false, X: false})
	if !ok || instr.Size != 1 {
		t.Errorf("REP: got size %d, want 1", instr.Size)
	}
}

func TestJumpAddr_Branch(t *testing.T) {
	// BEQ +2 at 0x8000: target is 0x8000 + 2 + 2 = 0x8004.
	_, instr, _ := Decode([]byte{0xF0, 0x02}, Flags{})
	target, ok := instr.JumpAddr(0x8000)
	if !ok || target != 0x8004 {
		t.Errorf("JumpAddr() = (%#x, %v), want (0x8004, true)", target, ok)
	}
}

func TestJumpAddr_BranchNegativePreservesBank(t *testing.T) {
	// BEQ -2 at 0x028010: target is 0x028010 + 2 - 2 = 0x028010, bank preserved.
	_, instr, _ := Decode([]byte{0xF0, 0xFE}, Flags{})
	target, ok := instr.JumpAddr(0x028010)
	if !ok || target != 0x028010 {
		t.Errorf("JumpAddr() = (%#x, %v), want (0x028010, true)", target, ok)
	}
	if target&0xFF0000 != 0x020000 {
		t.Errorf("JumpAddr() did not preserve bank: got %#x", target)
	}
}

func TestJsrAddr_AbsoluteAndLong(t *testing.T) {
	_, jsr, _ := Decode([]byte{0x20, 0x00, 0x90}, Flags{})
	target, ok := jsr.JsrAddr(0x008000)
	if !ok || target != 0x009000 {
		t.Errorf("JSR JsrAddr() = (%#x, %v), want (0x009000, true)", target, ok)
	}

	_, jsl, _ := Decode([]byte{0x22, 0x00, 0x81, 0x01}, Flags{})
	target, ok = jsl.JsrAddr(0x008000)
	if !ok || target != 0x018100 {
		t.Errorf("JSL JsrAddr() = (%#x, %v), want (0x018100, true)", target, ok)
	}
}

func TestDivergentMnemonics(t *testing.T) {
	_, rts, _ := Decode([]byte{0x60}, Flags{})
	if !rts.Divergent() {
		t.Errorf("RTS.Divergent() = false, want true")
	}
	_, nop, _ := Decode([]byte{0xEA}, Flags{})
	if nop.Divergent() {
		t.Errorf("NOP.Divergent() = true, want false")
	}
}

func TestApplyFlags_RepSep(t *testing.T) {
	_, rep, _ := Decode([]byte{0xC2, 0x30}, Flags{})
	got := rep.ApplyFlags(Flags{M: true, X: true})
	if got.M || got.X {
		t.Errorf("REP #$30: got %+v, want both flags cleared", got)
	}

	_, sep, _ := Decode([]byte{0xE2, 0x30}, Flags{})
	got = sep.ApplyFlags(Flags{M: false, X: false})
	if !got.M || !got.X {
		t.Errorf("SEP #$30: got %+v, want both flags set", got)
	}
}

func TestRender_AbsoluteIndirectUsesParens(t *testing.T) {
	// JMP (abs): opcode 0x6C.
	_, jmp, ok := Decode([]byte{0x6C, 0x00, 0x80}, Flags{})
	if !ok || jmp.Mode != ModeAbsoluteIndirect {
		t.Fatalf("Decode(0x6C) = mode %v, ok %v, want ModeAbsoluteIndirect, true", jmp.Mode, ok)
	}
	want := "jmp.w ($8000)"
	if got := jmp.Render(""); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_AbsoluteIndirectLongUsesBrackets(t *testing.T) {
	// JML [abs]: opcode 0xDC, a distinct mode from JMP (abs) despite the
	// shared 2-byte pointer operand.
	_, jml, ok := Decode([]byte{0xDC, 0x00, 0x80}, Flags{})
	if !ok || jml.Mode != ModeAbsoluteIndirectLong {
		t.Fatalf("Decode(0xDC) = mode %v, ok %v, want ModeAbsoluteIndirectLong, true", jml.Mode, ok)
	}
	want := "jml.w [$8000]"
	if got := jml.Render(""); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_NumericOperand(t *testing.T) {
	_, lda, _ := Decode([]byte{0xAD, 0x00, 0x80}, Flags{})
	want := "lda.w $8000"
	if got := lda.Render(""); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_LabelOperand(t *testing.T) {
	_, beq, _ := Decode([]byte{0xF0, 0x02}, Flags{})
	want := "beq.b loc_008004"
	if got := beq.Render("loc_008004"); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
