package nes

// Arithmetic and compare instructions. The 2A03 never runs in decimal mode,
// so ADC/SBC are always binary. Z is computed from the canonical
// "(result & 0xFF) == 0" rule, not a logical-AND of the full sum against
// 0x00FF, which would evaluate on the whole nonzero-ness of the sum rather
// than its low byte.

func opADC(cpu *Cpu6502) bool {
	m := cpu.fetch()
	sum := uint16(cpu.A) + uint16(m) + uint16(cpu.getFlagByte(FlagC))

	result := byte(sum)
	cpu.SetFlag(FlagC, sum > 0xFF)
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, result&0x80 != 0)
	cpu.SetFlag(FlagV, (cpu.A^result)&(m^result)&0x80 != 0)

	cpu.A = result
	return true
}

// opSBC computes A + ^M + C, the standard identity that reuses the adder's
// carry/overflow logic for subtraction.
func opSBC(cpu *Cpu6502) bool {
	m := cpu.fetch() ^ 0xFF
	sum := uint16(cpu.A) + uint16(m) + uint16(cpu.getFlagByte(FlagC))

	result := byte(sum)
	cpu.SetFlag(FlagC, sum > 0xFF)
	cpu.SetFlag(FlagZ, result == 0)
	cpu.SetFlag(FlagN, result&0x80 != 0)
	cpu.SetFlag(FlagV, (cpu.A^result)&(m^result)&0x80 != 0)

	cpu.A = result
	return true
}

// compare implements the shared CMP/CPX/CPY rule: reg - mem on a widened
// subtraction. C comes from the widened comparison reg >= mem; an 8-bit
// difference alone can't signal borrow.
func compare(cpu *Cpu6502, reg byte) {
	m := cpu.fetch()
	diff := uint16(reg) - uint16(m)

	cpu.SetFlag(FlagC, reg >= m)
	cpu.SetFlag(FlagZ, reg == m)
	cpu.SetFlag(FlagN, byte(diff)&0x80 != 0)
}

func opCMP(cpu *Cpu6502) bool {
	compare(cpu, cpu.A)
	return true
}

func opCPX(cpu *Cpu6502) bool {
	compare(cpu, cpu.X)
	return false
}

func opCPY(cpu *Cpu6502) bool {
	compare(cpu, cpu.Y)
	return false
}

func opINC(cpu *Cpu6502) bool {
	v := cpu.fetch() + 1
	cpu.store(v)
	cpu.setZN(v)
	return false
}

func opDEC(cpu *Cpu6502) bool {
	v := cpu.fetch() - 1
	cpu.store(v)
	cpu.setZN(v)
	return false
}

func opINX(cpu *Cpu6502) bool {
	cpu.X++
	cpu.setZN(cpu.X)
	return false
}

func opINY(cpu *Cpu6502) bool {
	cpu.Y++
	cpu.setZN(cpu.Y)
	return false
}

func opDEX(cpu *Cpu6502) bool {
	cpu.X--
	cpu.setZN(cpu.X)
	return false
}

func opDEY(cpu *Cpu6502) bool {
	cpu.Y--
	cpu.setZN(cpu.Y)
	return false
}
