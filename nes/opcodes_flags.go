package nes

func opCLC(cpu *Cpu6502) bool { cpu.SetFlag(FlagC, false); return false }
func opSEC(cpu *Cpu6502) bool { cpu.SetFlag(FlagC, true); return false }
func opCLD(cpu *Cpu6502) bool { cpu.SetFlag(FlagD, false); return false }
func opSED(cpu *Cpu6502) bool { cpu.SetFlag(FlagD, true); return false }
func opCLV(cpu *Cpu6502) bool { cpu.SetFlag(FlagV, false); return false }

// opCLI/opSEI stage their change rather than applying it immediately; see
// Cpu6502.scheduleIFlag for the delayed I-flag rule.
func opCLI(cpu *Cpu6502) bool { cpu.scheduleIFlag(false); return false }
func opSEI(cpu *Cpu6502) bool { cpu.scheduleIFlag(true); return false }
