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

// Mnemonic identifies a 65816 instruction family, independent of addressing mode.
type Mnemonic int

const (
	MnemUnknown Mnemonic = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRA
	BRK
	BRL
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	COP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JML
	JMP
	JSL
	JSR
	LDA
	LDX
	LDY
	LSR
	MVN
	MVP
	NOP
	ORA
	PEA
	PEI
	PER
	PHA
	PHB
	PHD
	PHK
	PHP
	PHX
	PHY
	PLA
	PLB
	PLD
	PLP
	PLX
	PLY
	REP
	ROL
	ROR
	RTI
	RTL
	RTS
	SBC
	SEC
	SED
	SEI
	SEP
	STA
	STP
	STX
	STY
	STZ
	TAX
	TAY
	TCD
	TCS
	TDC
	TRB
	TSB
	TSC
	TSX
	TXA
	TXS
	TXY
	TYA
	TYX
	WAI
	WDM
	XBA
	XCE
)

var mnemonicNames = map[Mnemonic]string{
	MnemUnknown: "???",
	ADC:         "adc", AND: "and", ASL: "asl", BCC: "bcc", BCS: "bcs",
	BEQ: "beq", BIT: "bit", BMI: "bmi", BNE: "bne", BPL: "bpl",
	BRA: "bra", BRK: "brk", BRL: "brl", BVC: "bvc", BVS: "bvs",
	CLC: "clc", CLD: "cld", CLI: "cli", CLV: "clv", CMP: "cmp",
	COP: "cop", CPX: "cpx", CPY: "cpy", DEC: "dec", DEX: "dex",
	DEY: "dey", EOR: "eor", INC: "inc", INX: "inx", INY: "iny",
	JML: "jml", JMP: "jmp", JSL: "jsl", JSR: "jsr", LDA: "lda",
	LDX: "ldx", LDY: "ldy", LSR: "lsr", MVN: "mvn", MVP: "mvp",
	NOP: "nop", ORA: "ora", PEA: "pea", PEI: "pei", PER: "per",
	PHA: "pha", PHB: "phb", PHD: "phd", PHK: "phk", PHP: "php",
	PHX: "phx", PHY: "phy", PLA: "pla", PLB: "plb", PLD: "pld",
	PLP: "plp", PLX: "plx", PLY: "ply", REP: "rep", ROL: "rol",
	ROR: "ror", RTI: "rti", RTL: "rtl", RTS: "rts", SBC: "sbc",
	SEC: "sec", SED: "sed", SEI: "sei", SEP: "sep", STA: "sta",
	STP: "stp", STX: "stx", STY: "sty", STZ: "stz", TAX: "tax",
	TAY: "tay", TCD: "tcd", TCS: "tcs", TDC: "tdc", TRB: "trb",
	TSB: "tsb", TSC: "tsc", TSX: "tsx", TXA: "txa", TXS: "txs",
	TXY: "txy", TYA: "tya", TYX: "tyx", WAI: "wai", WDM: "wdm",
	XBA: "xba", XCE: "xce",
}

// String renders the lowercase textual mnemonic, as used by the listing renderer.
func (m Mnemonic) String() string {
	if s, ok := mnemonicNames[m]; ok {
		return s
	}
	return "???"
}

// divergentMnemonics never fall through to pc+L.
var divergentMnemonics = map[Mnemonic]bool{
	BRK: true, COP: true, JMP: true, JML: true,
	RTS: true, RTL: true, RTI: true, BRA: true, BRL: true,
}

// branchMnemonics are the eight conditional branches.
var branchMnemonics = map[Mnemonic]bool{
	BCC: true, BCS: true, BEQ: true, BNE: true,
	BMI: true, BPL: true, BVC: true, BVS: true,
}

// accumulatorClass mnemonics use the M flag to size an immediate operand.
var accumulatorClass = map[Mnemonic]bool{
	ADC: true, SBC: true, CMP: true, AND: true,
	EOR: true, ORA: true, BIT: true, LDA: true, STA: true,
}

// indexClass mnemonics use the X flag to size an immediate operand.
var indexClass = map[Mnemonic]bool{
	CPX: true, CPY: true, LDX: true, LDY: true, STX: true, STY: true,
}

// Divergent reports whether control never falls through after this mnemonic.
func (m Mnemonic) Divergent() bool {
	return divergentMnemonics[m]
}

// Branch reports whether m is one of the eight conditional branches.
func (m Mnemonic) Branch() bool {
	return branchMnemonics[m]
}
