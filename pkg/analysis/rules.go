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

// Rule is a user- or engine-supplied hint that expands the set of entry
// points analyzed. Jump tables are the only kind defined today.
type Rule struct {
	Kind  RuleKind
	At    uint32
	Count int
	Long  bool
}

// RuleKind discriminates Rule's tagged-union shape.
type RuleKind int

const (
	// RuleJumpTable: "a table of Count entries sits immediately after the
	// instruction at At; each entry is a 2-byte pointer within the current
	// bank if !Long, or a 3-byte absolute address if Long; each entry is
	// an additional code entry point."
	RuleJumpTable RuleKind = iota
)
