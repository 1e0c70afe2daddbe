package nes

func opPHA(cpu *Cpu6502) bool {
	cpu.stackPush(cpu.A)
	return false
}

// opPHP pushes P with B and U both set to 1: B only ever takes a live
// value in the pushed byte, never in the live Status register.
func opPHP(cpu *Cpu6502) bool {
	cpu.stackPush(cpu.Status | byte(FlagB) | byte(FlagU))
	return false
}

func opPLA(cpu *Cpu6502) bool {
	cpu.A = cpu.stackPop()
	cpu.setZN(cpu.A)
	return false
}

// opPLP pulls P, discarding the stacked B bit (it has no live-register
// storage) and forcing U. The I bit is staged for delayed application,
// same as SEI/CLI, rather than taking effect immediately.
func opPLP(cpu *Cpu6502) bool {
	pulled := cpu.stackPop()
	oldI := cpu.Status & byte(FlagI)
	cpu.Status = (pulled &^ (byte(FlagB) | byte(FlagI))) | byte(FlagU) | oldI
	cpu.scheduleIFlag(pulled&byte(FlagI) != 0)
	return false
}
