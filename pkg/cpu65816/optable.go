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

// opcodeRow is one row of the single 256-row table that is the sole source
// of truth for opcode decoding; Decode reads both the mnemonic and the mode
// from the same row, so the two can never drift apart.
type opcodeRow struct {
	mnemonic Mnemonic
	mode     Mode
}

var opcodeTable = [256]opcodeRow{
	0x00: {BRK, ModeImmediate}, 0x01: {ORA, ModeDirectIndirectX},
	0x02: {COP, ModeImmediate}, 0x03: {ORA, ModeStackRelative},
	0x04: {TSB, ModeDirect}, 0x05: {ORA, ModeDirect},
	0x06: {ASL, ModeDirect}, 0x07: {ORA, ModeDirectIndirectLong},
	0x08: {PHP, ModeImplied}, 0x09: {ORA, ModeImmediate},
	0x0A: {ASL, ModeAccumulator}, 0x0B: {PHD, ModeImplied},
	0x0C: {TSB, ModeAbsolute}, 0x0D: {ORA, ModeAbsolute},
	0x0E: {ASL, ModeAbsolute}, 0x0F: {ORA, ModeAbsoluteLong},

	0x10: {BPL, ModeRelative}, 0x11: {ORA, ModeDirectIndirectY},
	0x12: {ORA, ModeDirectIndirect}, 0x13: {ORA, ModeStackRelativeIndirectY},
	0x14: {TRB, ModeDirect}, 0x15: {ORA, ModeDirectX},
	0x16: {ASL, ModeDirectX}, 0x17: {ORA, ModeDirectIndirectLongY},
	0x18: {CLC, ModeImplied}, 0x19: {ORA, ModeAbsoluteY},
	0x1A: {INC, ModeAccumulator}, 0x1B: {TCS, ModeImplied},
	0x1C: {TRB, ModeAbsolute}, 0x1D: {ORA, ModeAbsoluteX},
	0x1E: {ASL, ModeAbsoluteX}, 0x1F: {ORA, ModeAbsoluteLongX},

	0x20: {JSR, ModeAbsolute}, 0x21: {AND, ModeDirectIndirectX},
	0x22: {JSL, ModeAbsoluteLong}, 0x23: {AND, ModeStackRelative},
	0x24: {BIT, ModeDirect}, 0x25: {AND, ModeDirect},
	0x26: {ROL, ModeDirect}, 0x27: {AND, ModeDirectIndirectLong},
	0x28: {PLP, ModeImplied}, 0x29: {AND, ModeImmediate},
	0x2A: {ROL, ModeAccumulator}, 0x2B: {PLD, ModeImplied},
	0x2C: {BIT, ModeAbsolute}, 0x2D: {AND, ModeAbsolute},
	0x2E: {ROL, ModeAbsolute}, 0x2F: {AND, ModeAbsoluteLong},

	0x30: {BMI, ModeRelative}, 0x31: {AND, ModeDirectIndirectY},
	0x32: {AND, ModeDirectIndirect}, 0x33: {AND, ModeStackRelativeIndirectY},
	0x34: {BIT, ModeDirectX}, 0x35: {AND, ModeDirectX},
	0x36: {ROL, ModeDirectX}, 0x37: {AND, ModeDirectIndirectLongY},
	0x38: {SEC, ModeImplied}, 0x39: {AND, ModeAbsoluteY},
	0x3A: {DEC, ModeAccumulator}, 0x3B: {TSC, ModeImplied},
	0x3C: {BIT, ModeAbsoluteX}, 0x3D: {AND, ModeAbsoluteX},
	0x3E: {ROL, ModeAbsoluteX}, 0x3F: {AND, ModeAbsoluteLongX},

	0x40: {RTI, ModeImplied}, 0x41: {EOR, ModeDirectIndirectX},
	0x42: {WDM, ModeImmediate}, 0x43: {EOR, ModeStackRelative},
	0x44: {MVP, ModeBlockMove}, 0x45: {EOR, ModeDirect},
	0x46: {LSR, ModeDirect}, 0x47: {EOR, ModeDirectIndirectLong},
	0x48: {PHA, ModeImplied}, 0x49: {EOR, ModeImmediate},
	0x4A: {LSR, ModeAccumulator}, 0x4B: {PHK, ModeImplied},
	0x4C: {JMP, ModeAbsolute}, 0x4D: {EOR, ModeAbsolute},
	0x4E: {LSR, ModeAbsolute}, 0x4F: {EOR, ModeAbsoluteLong},

	0x50: {BVC, ModeRelative}, 0x51: {EOR, ModeDirectIndirectY},
	0x52: {EOR, ModeDirectIndirect}, 0x53: {EOR, ModeStackRelativeIndirectY},
	0x54: {MVN, ModeBlockMove}, 0x55: {EOR, ModeDirectX},
	0x56: {LSR, ModeDirectX}, 0x57: {EOR, ModeDirectIndirectLongY},
	0x58: {CLI, ModeImplied}, 0x59: {EOR, ModeAbsoluteY},
	0x5A: {PHY, ModeImplied}, 0x5B: {TCD, ModeImplied},
	0x5C: {JML, ModeAbsoluteLong}, 0x5D: {EOR, ModeAbsoluteX},
	0x5E: {LSR, ModeAbsoluteX}, 0x5F: {EOR, ModeAbsoluteLongX},

	0x60: {RTS, ModeImplied}, 0x61: {ADC, ModeDirectIndirectX},
	0x62: {PER, ModeRelativeLong}, 0x63: {ADC, ModeStackRelative},
	0x64: {STZ, ModeDirect}, 0x65: {ADC, ModeDirect},
	0x66: {ROR, ModeDirect}, 0x67: {ADC, ModeDirectIndirectLong},
	0x68: {PLA, ModeImplied}, 0x69: {ADC, ModeImmediate},
	0x6A: {ROR, ModeAccumulator}, 0x6B: {RTL, ModeImplied},
	0x6C: {JMP, ModeAbsoluteIndirect}, 0x6D: {ADC, ModeAbsolute},
	0x6E: {ROR, ModeAbsolute}, 0x6F: {ADC, ModeAbsoluteLong},

	0x70: {BVS, ModeRelative}, 0x71: {ADC, ModeDirectIndirectY},
	0x72: {ADC, ModeDirectIndirect}, 0x73: {ADC, ModeStackRelativeIndirectY},
	0x74: {STZ, ModeDirectX}, 0x75: {ADC, ModeDirectX},
	0x76: {ROR, ModeDirectX}, 0x77: {ADC, ModeDirectIndirectLongY},
	0x78: {SEI, ModeImplied}, 0x79: {ADC, ModeAbsoluteY},
	0x7A: {PLY, ModeImplied}, 0x7B: {TDC, ModeImplied},
	0x7C: {JMP, ModeAbsoluteIndexedIndirect}, 0x7D: {ADC, ModeAbsoluteX},
	0x7E: {ROR, ModeAbsoluteX}, 0x7F: {ADC, ModeAbsoluteLongX},

	0x80: {BRA, ModeRelative}, 0x81: {STA, ModeDirectIndirectX},
	0x82: {BRL, ModeRelativeLong}, 0x83: {STA, ModeStackRelative},
	0x84: {STY, ModeDirect}, 0x85: {STA, ModeDirect},
	0x86: {STX, ModeDirect}, 0x87: {STA, ModeDirectIndirectLong},
	0x88: {DEY, ModeImplied}, 0x89: {BIT, ModeImmediate},
	0x8A: {TXA, ModeImplied}, 0x8B: {PHB, ModeImplied},
	0x8C: {STY, ModeAbsolute}, 0x8D: {STA, ModeAbsolute},
	0x8E: {STX, ModeAbsolute}, 0x8F: {STA, ModeAbsoluteLong},

	0x90: {BCC, ModeRelative}, 0x91: {STA, ModeDirectIndirectY},
	0x92: {STA, ModeDirectIndirect}, 0x93: {STA, ModeStackRelativeIndirectY},
	0x94: {STY, ModeDirectX}, 0x95: {STA, ModeDirectX},
	0x96: {STX, ModeDirectY}, 0x97: {STA, ModeDirectIndirectLongY},
	0x98: {TYA, ModeImplied}, 0x99: {STA, ModeAbsoluteY},
	0x9A: {TXS, ModeImplied}, 0x9B: {TXY, ModeImplied},
	0x9C: {STZ, ModeAbsolute}, 0x9D: {STA, ModeAbsoluteX},
	0x9E: {STZ, ModeAbsoluteX}, 0x9F: {STA, ModeAbsoluteLongX},

	0xA0: {LDY, ModeImmediate}, 0xA1: {LDA, ModeDirectIndirectX},
	0xA2: {LDX, ModeImmediate}, 0xA3: {LDA, ModeStackRelative},
	0xA4: {LDY, ModeDirect}, 0xA5: {LDA, ModeDirect},
	0xA6: {LDX, ModeDirect}, 0xA7: {LDA, ModeDirectIndirectLong},
	0xA8: {TAY, ModeImplied}, 0xA9: {LDA, ModeImmediate},
	0xAA: {TAX, ModeImplied}, 0xAB: {PLB, ModeImplied},
	0xAC: {LDY, ModeAbsolute}, 0xAD: {LDA, ModeAbsolute},
	0xAE: {LDX, ModeAbsolute}, 0xAF: {LDA, ModeAbsoluteLong},

	0xB0: {BCS, ModeRelative}, 0xB1: {LDA, ModeDirectIndirectY},
	0xB2: {LDA, ModeDirectIndirect}, 0xB3: {LDA, ModeStackRelativeIndirectY},
	0xB4: {LDY, ModeDirectX}, 0xB5: {LDA, ModeDirectX},
	0xB6: {LDX, ModeDirectY}, 0xB7: {LDA, ModeDirectIndirectLongY},
	0xB8: {CLV, ModeImplied}, 0xB9: {LDA, ModeAbsoluteY},
	0xBA: {TSX, ModeImplied}, 0xBB: {TYX, ModeImplied},
	0xBC: {LDY, ModeAbsoluteX}, 0xBD: {LDA, ModeAbsoluteX},
	0xBE: {LDX, ModeAbsoluteY}, 0xBF: {LDA, ModeAbsoluteLongX},

	0xC0: {CPY, ModeImmediate}, 0xC1: {CMP, ModeDirectIndirectX},
	0xC2: {REP, ModeImmediate}, 0xC3: {CMP, ModeStackRelative},
	0xC4: {CPY, ModeDirect}, 0xC5: {CMP, ModeDirect},
	0xC6: {DEC, ModeDirect}, 0xC7: {CMP, ModeDirectIndirectLong},
	0xC8: {INY, ModeImplied}, 0xC9: {CMP, ModeImmediate},
	0xCA: {DEX, ModeImplied}, 0xCB: {WAI, ModeImplied},
	0xCC: {CPY, ModeAbsolute}, 0xCD: {CMP, ModeAbsolute},
	0xCE: {DEC, ModeAbsolute}, 0xCF: {CMP, ModeAbsoluteLong},

	0xD0: {BNE, ModeRelative}, 0xD1: {CMP, ModeDirectIndirectY},
	0xD2: {CMP, ModeDirectIndirect}, 0xD3: {CMP, ModeStackRelativeIndirectY},
	0xD4: {PEI, ModeDirect}, 0xD5: {CMP, ModeDirectX},
	0xD6: {DEC, ModeDirectX}, 0xD7: {CMP, ModeDirectIndirectLongY},
	0xD8: {CLD, ModeImplied}, 0xD9: {CMP, ModeAbsoluteY},
	0xDA: {PHX, ModeImplied}, 0xDB: {STP, ModeImplied},
	0xDC: {JML, ModeAbsoluteIndirectLong}, 0xDD: {CMP, ModeAbsoluteX},
	0xDE: {DEC, ModeAbsoluteX}, 0xDF: {CMP, ModeAbsoluteLongX},

	0xE0: {CPX, ModeImmediate}, 0xE1: {SBC, ModeDirectIndirectX},
	0xE2: {SEP, ModeImmediate}, 0xE3: {SBC, ModeStackRelative},
	0xE4: {CPX, ModeDirect}, 0xE5: {SBC, ModeDirect},
	0xE6: {INC, ModeDirect}, 0xE7: {SBC, ModeDirectIndirectLong},
	0xE8: {INX, ModeImplied}, 0xE9: {SBC, ModeImmediate},
	0xEA: {NOP, ModeImplied}, 0xEB: {XBA, ModeImplied},
	0xEC: {CPX, ModeAbsolute}, 0xED: {SBC, ModeAbsolute},
	0xEE: {INC, ModeAbsolute}, 0xEF: {SBC, ModeAbsoluteLong},

	0xF0: {BEQ, ModeRelative}, 0xF1: {SBC, ModeDirectIndirectY},
	0xF2: {SBC, ModeDirectIndirect}, 0xF3: {SBC, ModeStackRelativeIndirectY},
	0xF4: {PEA, ModeAbsolute}, 0xF5: {SBC, ModeDirectX},
	0xF6: {INC, ModeDirectX}, 0xF7: {SBC, ModeDirectIndirectLongY},
	0xF8: {SED, ModeImplied}, 0xF9: {SBC, ModeAbsoluteY},
	0xFA: {PLX, ModeImplied}, 0xFB: {XCE, ModeImplied},
	0xFC: {JSR, ModeAbsoluteIndexedIndirect}, 0xFD: {SBC, ModeAbsoluteX},
	0xFE: {INC, ModeAbsoluteX}, 0xFF: {SBC, ModeAbsoluteLongX},
}
