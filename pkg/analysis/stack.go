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

package analysis

import "github.com/mg-tools/snes65816/pkg/cpu65816"

// StackDataType tags what a pushed byte represents. The stack shadow is
// diagnostic only: no numeric value is ever tracked, just these tags.
type StackDataType int

const (
	// StackFlags is a byte pushed by PHP, carrying the CPU flags at the
	// time of the push so a matching PLP can restore them.
	StackFlags StackDataType = iota
	// StackData is an ordinary data byte (PHA, PEA, PEI, PER, ...).
	StackData
	// StackBank is a data bank byte (PHB, PHK).
	StackBank
	// StackReturn is a return-address byte observed from inside a callee
	// (a JSR/JSL frame), as seen by a PLA/PLX-style peek into the stack.
	StackReturn
)

// StackEntry is one tagged byte on the symbolic stack shadow.
type StackEntry struct {
	Type  StackDataType
	Flags cpu65816.Flags
	Seen  cpu65816.SeenFlags
}

// Stack is a symbolic, tag-only model of the 65816 hardware stack, used
// only to interpret PHP/PLP correctly. It is a plain slice rather than a
// persistent structure, so branching the worklist clones it wholesale.
type Stack []StackEntry

// Clone returns an independent copy of the stack, for enqueuing onto a new
// worklist entry.
func (s Stack) Clone() Stack {
	if len(s) == 0 {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// pushN appends n bytes of the given tag, high-byte-first the way real
// hardware pushes a multi-byte value (irrelevant for untyped tags, but kept
// for symmetry with pop order).
func pushN(s Stack, tag StackDataType, n int) Stack {
	for i := 0; i < n; i++ {
		s = append(s, StackEntry{Type: tag})
	}
	return s
}

// popN removes up to n bytes from the top of the stack, logging (via the
// caller) when the stack underflows. It returns the last-seen StackEntry for
// the accessed bytes (used by PLP to recover a PHP'd flags token) and the
// resulting stack.
func popN(s Stack, n int) (top StackEntry, hadEnough bool, rest Stack) {
	if len(s) == 0 {
		return StackEntry{}, false, s
	}
	top = s[len(s)-1]
	take := n
	if take > len(s) {
		take = len(s)
	}
	return top, len(s) >= n, s[:len(s)-take]
}

// ApplyStackEffect applies mnemonic m's symbolic push/pop effect to the
// stack, given the current CPU flags (for sizing PHA/PHX/PHY-family pushes)
// and seen-flags (captured into a PHP token). warn is called when a pop
// finds the stack empty or carrying the wrong tag; it never aborts analysis.
func ApplyStackEffect(s Stack, instr cpu65816.Instruction, flags cpu65816.Flags, seen cpu65816.SeenFlags, warn func(string)) (Stack, cpu65816.Flags, cpu65816.SeenFlags) {
	switch instr.Mnemonic {
	case cpu65816.PHP:
		s = append(s, StackEntry{Type: StackFlags, Flags: flags, Seen: seen})
	case cpu65816.PLP:
		top, ok, rest := popN(s, 1)
		s = rest
		if !ok {
			warn("PLP on empty stack")
			break
		}
		if top.Type != StackFlags {
			warn("PLP found a non-flags token on top of stack")
			break
		}
		flags = top.Flags
		seen = top.Seen
	case cpu65816.PHA:
		s = pushN(s, StackData, widthFor(flags.M))
	case cpu65816.PLA:
		_, ok, rest := popN(s, widthFor(flags.M))
		s = rest
		if !ok {
			warn("PLA underflowed stack")
		}
	case cpu65816.PHX, cpu65816.PHY:
		s = pushN(s, StackData, widthFor(flags.X))
	case cpu65816.PLX, cpu65816.PLY:
		_, ok, rest := popN(s, widthFor(flags.X))
		s = rest
		if !ok {
			warn("PLX/PLY underflowed stack")
		}
	case cpu65816.PHB, cpu65816.PHK:
		s = pushN(s, StackBank, 1)
	case cpu65816.PLB:
		_, ok, rest := popN(s, 1)
		s = rest
		if !ok {
			warn("PLB underflowed stack")
		}
	case cpu65816.PHD, cpu65816.PEA, cpu65816.PER, cpu65816.PEI:
		s = pushN(s, StackData, 2)
	case cpu65816.PLD:
		_, ok, rest := popN(s, 2)
		s = rest
		if !ok {
			warn("PLD underflowed stack")
		}
	}
	return s, flags, seen
}

func widthFor(narrow bool) int {
	if narrow {
		return 1
	}
	return 2
}
