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

// Package analysis implements the worklist-driven recursive traversal that
// recovers an approximate control-flow graph from a ROM image: the
// decoded-instruction table, the label/returns/subroutine tables, and the
// CPU-flag and stack-shadow propagation needed to interpret code whose
// instruction widths vary with runtime M/X state.
package analysis

import (
	"github.com/golang/glog"

	"github.com/mg-tools/snes65816/pkg/cpu65816"
	"github.com/mg-tools/snes65816/pkg/rom"
)

// Vector addresses read as 16-bit little-endian pointers into bank 0.
const (
	vectorReset = 0xFFFC
	vectorNMI   = 0xFFEA
	vectorIRQ   = 0xFFEE
)

// resetFlags is the CPU flag state assumed at the hardware vectors and at
// any rule-seeded entry point, since none of those have a real caller whose
// flags could be inherited. 8-bit A/X/Y (M=true, X=true) matches emulation
// mode / a freshly reset 65816.
var resetFlags = cpu65816.Flags{M: true, X: true}

// Entry is one successfully decoded instruction, with the CPU state and
// stack shadow as they were on entry, and the subroutine it belongs to.
type Entry struct {
	Instruction cpu65816.Instruction
	Flags       cpu65816.Flags
	Stack       Stack
	Subroutine  uint32
}

// Subroutine summarizes one call target: its accumulated M/X flag effect
// across every return path observed so far, and whether it ever falls
// through to a return at all.
type Subroutine struct {
	AffectM   cpu65816.TriState
	AffectX   cpu65816.TriState
	Divergent bool
}

// Engine owns the five tables populated by a single analysis run. It holds
// no process-wide state; a host analyzing two ROMs uses two Engines.
type Engine struct {
	Image *rom.Image

	Entries     map[uint32]Entry
	Labels      map[uint32]bool
	Returns     map[uint32]bool
	Subroutines map[uint32]*Subroutine
	ExtraRules  []Rule
}

// New creates an Engine with empty tables over img.
func New(img *rom.Image) *Engine {
	return &Engine{
		Image:       img,
		Entries:     make(map[uint32]Entry),
		Labels:      make(map[uint32]bool),
		Returns:     make(map[uint32]bool),
		Subroutines: make(map[uint32]*Subroutine),
	}
}

// IngestRules seeds traversal from the reset/IRQ/NMI vectors and from any
// jump-table rules supplied, then drives analysis to a fixed point. After it
// returns, Entries/Labels/Returns/Subroutines/ExtraRules are stable.
func (e *Engine) IngestRules(rules []Rule) {
	for _, vec := range []uint32{vectorReset, vectorIRQ, vectorNMI} {
		if !e.Image.InMappedROM(vec) {
			glog.Warningf("vector at %#06x is outside mapped ROM, skipping", vec)
			continue
		}
		target := uint32(e.Image.Load16LE(vec))
		e.analyzeFrom(target, resetFlags)
	}

	for _, r := range rules {
		e.applyRule(r)
	}
}

// applyRule expands one user rule into additional traversal entry points.
func (e *Engine) applyRule(r Rule) {
	switch r.Kind {
	case RuleJumpTable:
		e.applyJumpTableRule(r)
	default:
		glog.Warningf("unknown rule kind %d, skipping", r.Kind)
	}
}

func (e *Engine) applyJumpTableRule(r Rule) {
	if !e.Image.InMappedROM(r.At) {
		glog.Warningf("jump table rule at %#06x is outside mapped ROM, skipping", r.At)
		return
	}
	anchor := e.Image.SliceInBank(r.At)
	_, instr, ok := cpu65816.Decode(anchor, resetFlags)
	if !ok {
		glog.Warningf("jump table rule at %#06x: could not decode anchor instruction, skipping", r.At)
		return
	}

	entrySize := uint32(2)
	if r.Long {
		entrySize = 3
	}
	tableStart := r.At + uint32(instr.Size) + 1

	for i := 0; i < r.Count; i++ {
		entryAddr := tableStart + uint32(i)*entrySize
		if !e.Image.InMappedROM(entryAddr) {
			glog.Warningf("jump table rule at %#06x: entry %d at %#06x is outside mapped ROM, skipping entry", r.At, i, entryAddr)
			continue
		}
		var target uint32
		if r.Long {
			target = e.Image.Load24LE(entryAddr)
		} else {
			target = (r.At & 0xFF0000) | uint32(e.Image.Load16LE(entryAddr))
		}
		e.analyzeFrom(target, resetFlags)
	}
}

type worklistItem struct {
	pc    uint32
	stack Stack
	flags cpu65816.Flags
	seen  cpu65816.SeenFlags
}

// analyzeFrom is the internal recursive worker for one subroutine rooted at
// S, returning its (possibly still-being-computed) Subroutine record.
func (e *Engine) analyzeFrom(subroutineRoot uint32, entryFlags cpu65816.Flags) *Subroutine {
	if sub, ok := e.Subroutines[subroutineRoot]; ok {
		return sub
	}
	// A bank offset below 0x8000 is RAM/I/O space, not ROM, even though the
	// LoROM translation would fold it onto a cartridge byte.
	if !e.Image.InMappedROM(subroutineRoot) || subroutineRoot&0x8000 == 0 {
		glog.V(1).Infof("subroutine root %#06x is outside mapped ROM", subroutineRoot)
		sub := &Subroutine{}
		e.Subroutines[subroutineRoot] = sub
		return sub
	}

	// Insert a placeholder before descending: a mutually-recursive callee
	// that re-enters here sees "no effect yet, not divergent yet" rather
	// than an absent table entry.
	sub := &Subroutine{}
	e.Subroutines[subroutineRoot] = sub

	worklist := []worklistItem{{pc: subroutineRoot, flags: entryFlags}}
	effectM, effectX := cpu65816.Unset, cpu65816.Unset
	divergentPending := true

	for len(worklist) > 0 {
		item := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		cur := item.pc
		flags := item.flags
		seen := item.seen
		stack := item.stack
		e.Labels[cur] = true

	straightLine:
		for {
			bytes := e.Image.SliceInBank(cur)
			if len(bytes) == 0 {
				glog.Warningf("decode exhaustion at %#06x", cur)
				break straightLine
			}
			consumed, instr, ok := cpu65816.Decode(bytes, flags)
			if !ok {
				glog.Warningf("decode exhaustion at %#06x", cur)
				break straightLine
			}

			if stop := e.resolveConflict(cur, consumed, subroutineRoot, &flags, &seen, &effectM, &effectX, &divergentPending); stop {
				break straightLine
			}

			warn := func(msg string) { glog.Warningf("%#06x: %s", cur, msg) }
			e.Entries[cur] = Entry{Instruction: instr, Flags: flags, Stack: stack.Clone(), Subroutine: subroutineRoot}

			flags = instr.ApplyFlags(flags)
			seen = instr.ApplyFlagsSeen(seen)
			stack, flags, seen = ApplyStackEffect(stack, instr, flags, seen, warn)

			if instr.Mnemonic == cpu65816.RTS || instr.Mnemonic == cpu65816.RTL {
				e.Returns[cur] = true
				effectM, effectX = seen.M, seen.X
				divergentPending = false
			}

			breakWalk := false
			if target, ok := instr.JumpAddr(cur); ok {
				worklist = append(worklist, worklistItem{pc: target, stack: stack.Clone(), flags: flags, seen: seen})
			} else if target, ok := instr.JsrAddr(cur); ok {
				callee := e.analyzeFrom(target, flags)
				flags, seen = foldEffect(callee, flags, seen)
				if callee.Divergent {
					e.ExtraRules = append(e.ExtraRules, Rule{
						Kind: RuleJumpTable, At: cur, Count: 0, Long: instr.Mnemonic == cpu65816.JSL,
					})
					breakWalk = true
				}
			}

			if breakWalk || instr.Divergent() {
				break straightLine
			}
			cur += uint32(consumed)
		}
	}

	sub.AffectM = effectM
	sub.AffectX = effectX
	sub.Divergent = divergentPending
	return sub
}

// resolveConflict implements step 3a's overlap check: it reports whether
// the straight-line walk starting at cur must stop, folding a converged
// callee's flag effect in when the conflict lands exactly on cur.
func (e *Engine) resolveConflict(cur uint32, consumed int, subroutineRoot uint32, flags *cpu65816.Flags, seen *cpu65816.SeenFlags, effectM, effectX *cpu65816.TriState, divergentPending *bool) (stop bool) {
	for a := cur; a < cur+uint32(consumed); a++ {
		existing, found := e.Entries[a]
		if !found {
			continue
		}
		if a != cur {
			glog.Warningf("decode conflict: instruction at %#06x overlaps entry starting at %#06x", cur, a)
			return true
		}
		if existing.Subroutine != subroutineRoot {
			if other, ok := e.Subroutines[existing.Subroutine]; ok {
				*flags, *seen = foldEffect(other, *flags, *seen)
				if *effectM == cpu65816.Unset {
					*effectM = other.AffectM
				}
				if *effectX == cpu65816.Unset {
					*effectX = other.AffectX
				}
				*divergentPending = other.Divergent
			}
		}
		return true
	}
	return false
}

// IsSubroutineRoot reports whether addr has a Subroutine record, i.e. it was
// reached as a JSR/JSL target, a vector, or a rule-seeded entry point.
func (e *Engine) IsSubroutineRoot(addr uint32) bool {
	_, ok := e.Subroutines[addr]
	return ok
}

// IsReturn reports whether addr was recorded as an RTS/RTL instruction.
func (e *Engine) IsReturn(addr uint32) bool {
	return e.Returns[addr]
}

// foldEffect applies a callee's summarized flag effect onto the caller's
// current flags and seen-flags. An absent (Unset) effect leaves both alone.
func foldEffect(sub *Subroutine, flags cpu65816.Flags, seen cpu65816.SeenFlags) (cpu65816.Flags, cpu65816.SeenFlags) {
	if v, present := sub.AffectM.Bool(); present {
		flags.M = v
		seen.M = cpu65816.FromBool(v)
	}
	if v, present := sub.AffectX.Bool(); present {
		flags.X = v
		seen.X = cpu65816.FromBool(v)
	}
	return flags, seen
}
