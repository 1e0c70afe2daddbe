package nes

// buildDispatchTable fills the CPU's flat 256-entry instruction table: one
// index per possible opcode byte, each holding the plain function values
// for its addressing mode and execution body plus its base cycle count.
// Every slot is populated — including undocumented opcodes, which all
// dispatch to opXXX as the same implied-mode, 2-cycle no-op (the real
// chip's per-slot cycle counts and operand bytes for them are not
// reproduced) — so lookup is always a single array index, never a
// fallback branch.
//
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
func (cpu *Cpu6502) buildDispatchTable() {
	xxx := Instruction{"???", IMP, amIMP, opXXX, 2}

	cpu.InstLookup = [256]Instruction{
		// 0x00
		{"BRK", IMP, amIMP, opBRK, 7}, {"ORA", IZX, amIZX, opORA, 6}, xxx, xxx, xxx, {"ORA", ZP0, amZP0, opORA, 3}, {"ASL", ZP0, amZP0, opASL, 5}, xxx,
		{"PHP", IMP, amIMP, opPHP, 3}, {"ORA", IMM, amIMM, opORA, 2}, {"ASL", ACC, amACC, opASL, 2}, xxx, xxx, {"ORA", ABS, amABS, opORA, 4}, {"ASL", ABS, amABS, opASL, 6}, xxx,
		// 0x10
		{"BPL", REL, amREL, opBPL, 2}, {"ORA", IZY, amIZY, opORA, 5}, xxx, xxx, xxx, {"ORA", ZPX, amZPX, opORA, 4}, {"ASL", ZPX, amZPX, opASL, 6}, xxx,
		{"CLC", IMP, amIMP, opCLC, 2}, {"ORA", ABY, amABY, opORA, 4}, xxx, xxx, xxx, {"ORA", ABX, amABX, opORA, 4}, {"ASL", ABX, amABX, opASL, 7}, xxx,
		// 0x20
		{"JSR", ABS, amABS, opJSR, 6}, {"AND", IZX, amIZX, opAND, 6}, xxx, xxx, {"BIT", ZP0, amZP0, opBIT, 3}, {"AND", ZP0, amZP0, opAND, 3}, {"ROL", ZP0, amZP0, opROL, 5}, xxx,
		{"PLP", IMP, amIMP, opPLP, 4}, {"AND", IMM, amIMM, opAND, 2}, {"ROL", ACC, amACC, opROL, 2}, xxx, {"BIT", ABS, amABS, opBIT, 4}, {"AND", ABS, amABS, opAND, 4}, {"ROL", ABS, amABS, opROL, 6}, xxx,
		// 0x30
		{"BMI", REL, amREL, opBMI, 2}, {"AND", IZY, amIZY, opAND, 5}, xxx, xxx, xxx, {"AND", ZPX, amZPX, opAND, 4}, {"ROL", ZPX, amZPX, opROL, 6}, xxx,
		{"SEC", IMP, amIMP, opSEC, 2}, {"AND", ABY, amABY, opAND, 4}, xxx, xxx, xxx, {"AND", ABX, amABX, opAND, 4}, {"ROL", ABX, amABX, opROL, 7}, xxx,
		// 0x40
		{"RTI", IMP, amIMP, opRTI, 6}, {"EOR", IZX, amIZX, opEOR, 6}, xxx, xxx, xxx, {"EOR", ZP0, amZP0, opEOR, 3}, {"LSR", ZP0, amZP0, opLSR, 5}, xxx,
		{"PHA", IMP, amIMP, opPHA, 3}, {"EOR", IMM, amIMM, opEOR, 2}, {"LSR", ACC, amACC, opLSR, 2}, xxx, {"JMP", ABS, amABS, opJMP, 3}, {"EOR", ABS, amABS, opEOR, 4}, {"LSR", ABS, amABS, opLSR, 6}, xxx,
		// 0x50
		{"BVC", REL, amREL, opBVC, 2}, {"EOR", IZY, amIZY, opEOR, 5}, xxx, xxx, xxx, {"EOR", ZPX, amZPX, opEOR, 4}, {"LSR", ZPX, amZPX, opLSR, 6}, xxx,
		{"CLI", IMP, amIMP, opCLI, 2}, {"EOR", ABY, amABY, opEOR, 4}, xxx, xxx, xxx, {"EOR", ABX, amABX, opEOR, 4}, {"LSR", ABX, amABX, opLSR, 7}, xxx,
		// 0x60
		{"RTS", IMP, amIMP, opRTS, 6}, {"ADC", IZX, amIZX, opADC, 6}, xxx, xxx, xxx, {"ADC", ZP0, amZP0, opADC, 3}, {"ROR", ZP0, amZP0, opROR, 5}, xxx,
		{"PLA", IMP, amIMP, opPLA, 4}, {"ADC", IMM, amIMM, opADC, 2}, {"ROR", ACC, amACC, opROR, 2}, xxx, {"JMP", IND, amIND, opJMP, 5}, {"ADC", ABS, amABS, opADC, 4}, {"ROR", ABS, amABS, opROR, 6}, xxx,
		// 0x70
		{"BVS", REL, amREL, opBVS, 2}, {"ADC", IZY, amIZY, opADC, 5}, xxx, xxx, xxx, {"ADC", ZPX, amZPX, opADC, 4}, {"ROR", ZPX, amZPX, opROR, 6}, xxx,
		{"SEI", IMP, amIMP, opSEI, 2}, {"ADC", ABY, amABY, opADC, 4}, xxx, xxx, xxx, {"ADC", ABX, amABX, opADC, 4}, {"ROR", ABX, amABX, opROR, 7}, xxx,
		// 0x80
		xxx, {"STA", IZX, amIZX, opSTA, 6}, xxx, xxx, {"STY", ZP0, amZP0, opSTY, 3}, {"STA", ZP0, amZP0, opSTA, 3}, {"STX", ZP0, amZP0, opSTX, 3}, xxx,
		{"DEY", IMP, amIMP, opDEY, 2}, xxx, {"TXA", IMP, amIMP, opTXA, 2}, xxx, {"STY", ABS, amABS, opSTY, 4}, {"STA", ABS, amABS, opSTA, 4}, {"STX", ABS, amABS, opSTX, 4}, xxx,
		// 0x90
		{"BCC", REL, amREL, opBCC, 2}, {"STA", IZY, amIZY, opSTA, 6}, xxx, xxx, {"STY", ZPX, amZPX, opSTY, 4}, {"STA", ZPX, amZPX, opSTA, 4}, {"STX", ZPY, amZPY, opSTX, 4}, xxx,
		{"TYA", IMP, amIMP, opTYA, 2}, {"STA", ABY, amABY, opSTA, 5}, {"TXS", IMP, amIMP, opTXS, 2}, xxx, xxx, {"STA", ABX, amABX, opSTA, 5}, xxx, xxx,
		// 0xA0
		{"LDY", IMM, amIMM, opLDY, 2}, {"LDA", IZX, amIZX, opLDA, 6}, {"LDX", IMM, amIMM, opLDX, 2}, xxx, {"LDY", ZP0, amZP0, opLDY, 3}, {"LDA", ZP0, amZP0, opLDA, 3}, {"LDX", ZP0, amZP0, opLDX, 3}, xxx,
		{"TAY", IMP, amIMP, opTAY, 2}, {"LDA", IMM, amIMM, opLDA, 2}, {"TAX", IMP, amIMP, opTAX, 2}, xxx, {"LDY", ABS, amABS, opLDY, 4}, {"LDA", ABS, amABS, opLDA, 4}, {"LDX", ABS, amABS, opLDX, 4}, xxx,
		// 0xB0
		{"BCS", REL, amREL, opBCS, 2}, {"LDA", IZY, amIZY, opLDA, 5}, xxx, xxx, {"LDY", ZPX, amZPX, opLDY, 4}, {"LDA", ZPX, amZPX, opLDA, 4}, {"LDX", ZPY, amZPY, opLDX, 4}, xxx,
		{"CLV", IMP, amIMP, opCLV, 2}, {"LDA", ABY, amABY, opLDA, 4}, {"TSX", IMP, amIMP, opTSX, 2}, xxx, {"LDY", ABX, amABX, opLDY, 4}, {"LDA", ABX, amABX, opLDA, 4}, {"LDX", ABY, amABY, opLDX, 4}, xxx,
		// 0xC0
		{"CPY", IMM, amIMM, opCPY, 2}, {"CMP", IZX, amIZX, opCMP, 6}, xxx, xxx, {"CPY", ZP0, amZP0, opCPY, 3}, {"CMP", ZP0, amZP0, opCMP, 3}, {"DEC", ZP0, amZP0, opDEC, 5}, xxx,
		{"INY", IMP, amIMP, opINY, 2}, {"CMP", IMM, amIMM, opCMP, 2}, {"DEX", IMP, amIMP, opDEX, 2}, xxx, {"CPY", ABS, amABS, opCPY, 4}, {"CMP", ABS, amABS, opCMP, 4}, {"DEC", ABS, amABS, opDEC, 6}, xxx,
		// 0xD0
		{"BNE", REL, amREL, opBNE, 2}, {"CMP", IZY, amIZY, opCMP, 5}, xxx, xxx, xxx, {"CMP", ZPX, amZPX, opCMP, 4}, {"DEC", ZPX, amZPX, opDEC, 6}, xxx,
		{"CLD", IMP, amIMP, opCLD, 2}, {"CMP", ABY, amABY, opCMP, 4}, xxx, xxx, xxx, {"CMP", ABX, amABX, opCMP, 4}, {"DEC", ABX, amABX, opDEC, 7}, xxx,
		// 0xE0
		{"CPX", IMM, amIMM, opCPX, 2}, {"SBC", IZX, amIZX, opSBC, 6}, xxx, xxx, {"CPX", ZP0, amZP0, opCPX, 3}, {"SBC", ZP0, amZP0, opSBC, 3}, {"INC", ZP0, amZP0, opINC, 5}, xxx,
		{"INX", IMP, amIMP, opINX, 2}, {"SBC", IMM, amIMM, opSBC, 2}, {"NOP", IMP, amIMP, opNOP, 2}, xxx, {"CPX", ABS, amABS, opCPX, 4}, {"SBC", ABS, amABS, opSBC, 4}, {"INC", ABS, amABS, opINC, 6}, xxx,
		// 0xF0
		{"BEQ", REL, amREL, opBEQ, 2}, {"SBC", IZY, amIZY, opSBC, 5}, xxx, xxx, xxx, {"SBC", ZPX, amZPX, opSBC, 4}, {"INC", ZPX, amZPX, opINC, 6}, xxx,
		{"SED", IMP, amIMP, opSED, 2}, {"SBC", ABY, amABY, opSBC, 4}, xxx, xxx, xxx, {"SBC", ABX, amABX, opSBC, 4}, {"INC", ABX, amABX, opINC, 7}, xxx,
	}
}
