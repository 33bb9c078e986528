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

package listing

import (
	"testing"

	"github.com/mg-tools/snes65816/pkg/analysis"
	"github.com/mg-tools/snes65816/pkg/label"
	"github.com/mg-tools/snes65816/pkg/rom"
)

type noOverrides struct{}

func (noOverrides) Name(addr uint32) (string, bool) { return "", false }

func poke(data []byte, addr uint32, bytes ...byte) {
	bank := (addr >> 16) & 0x3F
	off := addr & 0x7FFF
	fileOffset := int(bank<<15 | off)
	copy(data[fileOffset:], bytes)
}

func pokeVector(data []byte, vec uint32, target uint16) {
	poke(data, vec, byte(target), byte(target>>8))
}

// TestRenderBank_BranchLabelPrecedesTarget mirrors the branch-with-label
// scenario: BEQ +2, NOP, NOP, RTS at 0x008000, with the branch target
// labeled and rendered symbolically.
func TestRenderBank_BranchLabelPrecedesTarget(t *testing.T) {
	data := make([]byte, 0x20000)
	pokeVector(data, 0xFFFC, 0x8000)
	poke(data, 0x8000, 0xF0, 0x02) // BEQ +2
	poke(data, 0x8002, 0xEA)       // NOP (fallthrough)
	poke(data, 0x8003, 0xEA)       // NOP
	poke(data, 0x8004, 0x60)       // RTS (branch target)

	img := rom.New(data, rom.MapperLoROM)
	eng := analysis.New(img)
	eng.IngestRules(nil)

	resolver := label.New(noOverrides{}, eng)
	lines := RenderBank(0x00, img, eng, resolver, 0)

	// target = 0x8000 + 2 (consumed) + 2 (signed offset) = 0x8004, the RTS,
	// which is a recorded return site and so resolves to ret_008004.
	var sawLabelBeforeTarget, sawSymbolicBranch bool
	for idx, l := range lines {
		if l.Kind == LineLabel && l.PC == 0x8004 {
			if idx+1 < len(lines) && lines[idx+1].PC == 0x8004 {
				sawLabelBeforeTarget = true
			}
		}
		if l.PC == 0x8000 && l.Kind == LineCode {
			if l.Text == "beq.b ret_008004" {
				sawSymbolicBranch = true
			}
		}
	}
	if !sawLabelBeforeTarget {
		t.Errorf("no Label line immediately preceding the Code/Data line at 0x8004; lines=%+v", lines)
	}
	if !sawSymbolicBranch {
		t.Errorf("BEQ did not render with symbolic operand; lines=%+v", lines)
	}
}

func TestRenderBank_DivergentInstructionGetsSpacingLine(t *testing.T) {
	data := make([]byte, 0x20000)
	pokeVector(data, 0xFFFC, 0x8000)
	poke(data, 0x8000, 0x60) // RTS, divergent, falls through to nothing

	img := rom.New(data, rom.MapperLoROM)
	eng := analysis.New(img)
	eng.IngestRules(nil)
	resolver := label.New(noOverrides{}, eng)
	lines := RenderBank(0x00, img, eng, resolver, 0)

	foundSpacing := false
	for i, l := range lines {
		if l.PC == 0x8000 && l.Kind == LineCode {
			if i+1 < len(lines) && lines[i+1].Kind == LineSpacing {
				foundSpacing = true
			}
		}
	}
	if !foundSpacing {
		t.Errorf("expected a Spacing line after the divergent RTS; lines=%+v", lines)
	}
}
