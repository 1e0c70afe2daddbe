package nes

// Load/store instructions. Loads are eligible for the addressing mode's
// page-cross bonus cycle; stores and stack transfers are not.

func opLDA(cpu *Cpu6502) bool {
	cpu.A = cpu.fetch()
	cpu.setZN(cpu.A)
	return true
}

func opLDX(cpu *Cpu6502) bool {
	cpu.X = cpu.fetch()
	cpu.setZN(cpu.X)
	return true
}

func opLDY(cpu *Cpu6502) bool {
	cpu.Y = cpu.fetch()
	cpu.setZN(cpu.Y)
	return true
}

func opSTA(cpu *Cpu6502) bool {
	cpu.write(cpu.AddrAbs, cpu.A)
	return false
}

func opSTX(cpu *Cpu6502) bool {
	cpu.write(cpu.AddrAbs, cpu.X)
	return false
}

func opSTY(cpu *Cpu6502) bool {
	cpu.write(cpu.AddrAbs, cpu.Y)
	return false
}
