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

// Package listing produces the flat, addressed sequence of display lines a
// GUI renders for one ROM bank, interleaving labels, decoded instructions,
// and fall-through data bytes.
package listing

import (
	"fmt"

	"github.com/mg-tools/snes65816/pkg/analysis"
	"github.com/mg-tools/snes65816/pkg/cpu65816"
	"github.com/mg-tools/snes65816/pkg/label"
	"github.com/mg-tools/snes65816/pkg/rom"
)

// LineKind tags what a Line represents.
type LineKind int

const (
	LineLabel LineKind = iota
	LineCode
	LineData
	LineSpacing
)

// Line is one addressed row of a rendered listing.
type Line struct {
	PC     uint32
	Length int
	Text   string
	Kind   LineKind
}

// RenderBank walks bank's 0x8000..0x10000 offset window and produces its
// display lines, resolving operand labels via resolver and data-bank-relative
// absolute addresses via dbr.
func RenderBank(bank uint8, img *rom.Image, eng *analysis.Engine, resolver *label.Resolver, dbr uint8) []Line {
	var lines []Line
	addr := uint32(bank)<<16 + 0x8000
	end := uint32(bank)<<16 + 0x10000

	for addr < end {
		if eng.Labels[addr] || resolver.HasOverride(addr) {
			lines = append(lines, Line{PC: addr, Text: resolver.CodeLabel(addr) + ":", Kind: LineLabel})
		}

		if entry, ok := eng.Entries[addr]; ok {
			consumed := entry.Instruction.Size + 1
			lines = append(lines, Line{
				PC:     addr,
				Length: consumed,
				Text:   renderInstruction(entry.Instruction, addr, dbr, resolver),
				Kind:   LineCode,
			})
			if entry.Instruction.Divergent() {
				lines = append(lines, Line{PC: addr + uint32(consumed), Kind: LineSpacing})
			}
			addr += uint32(consumed)
			continue
		}

		lines = append(lines, Line{PC: addr, Length: 1, Text: fmt.Sprintf("    db $%02X", img.Load8(addr)), Kind: LineData})
		addr++
	}
	return lines
}

// renderInstruction formats one decoded instruction, preferring a code label
// for a statically-known control-transfer target, then a data label for a
// resolvable operand address, falling back to a numeric literal.
func renderInstruction(instr cpu65816.Instruction, pc uint32, dbr uint8, resolver *label.Resolver) string {
	if target, ok := instr.JumpAddr(pc); ok {
		return instr.Render(resolver.CodeLabel(target))
	}
	if target, ok := instr.JsrAddr(pc); ok {
		return instr.Render(resolver.CodeLabel(target))
	}
	if target, ok := instr.LabelTarget(pc, dbr); ok {
		return instr.Render(resolver.DataLabel(target))
	}
	return instr.Render("")
}
