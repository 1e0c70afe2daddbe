package nes

func opTAX(cpu *Cpu6502) bool { cpu.X = cpu.A; cpu.setZN(cpu.X); return false }
func opTAY(cpu *Cpu6502) bool { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return false }
func opTXA(cpu *Cpu6502) bool { cpu.A = cpu.X; cpu.setZN(cpu.A); return false }
func opTYA(cpu *Cpu6502) bool { cpu.A = cpu.Y; cpu.setZN(cpu.A); return false }
func opTSX(cpu *Cpu6502) bool { cpu.X = cpu.SP; cpu.setZN(cpu.X); return false }

// opTXS does not touch any status flag, unlike every other transfer.
func opTXS(cpu *Cpu6502) bool { cpu.SP = cpu.X; return false }
