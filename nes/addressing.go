package nes

// Addressing mode functions compute AddrAbs/AddrRel (or set Target to the
// accumulator) and report whether a page boundary was crossed — the signal
// an instruction may combine with its own "+1 if read" eligibility to earn
// an extra cycle.

// amIMP: no operand.
func amIMP(cpu *Cpu6502) bool {
	return false
}

// amACC: operand is the accumulator, redirected through Target so RMW
// instructions can read/write it without a memory address.
func amACC(cpu *Cpu6502) bool {
	cpu.Target.Accumulator = true
	return false
}

// amIMM: operand is the byte immediately following the opcode.
func amIMM(cpu *Cpu6502) bool {
	cpu.AddrAbs = cpu.PC
	cpu.PC++
	return false
}

// amREL: signed 8-bit displacement, sign-extended to 16 bits. Used only by
// branches, which combine it with PC themselves.
func amREL(cpu *Cpu6502) bool {
	offset := uint16(cpu.read(cpu.PC))
	cpu.PC++
	if offset&0x80 != 0 {
		offset |= 0xFF00
	}
	cpu.AddrRel = offset
	return false
}

// amZP0: zero-page direct.
func amZP0(cpu *Cpu6502) bool {
	cpu.AddrAbs = uint16(cpu.read(cpu.PC)) & 0x00FF
	cpu.PC++
	return false
}

// amZPX: zero-page indexed by X, wrapping inside page zero.
func amZPX(cpu *Cpu6502) bool {
	cpu.AddrAbs = uint16(cpu.read(cpu.PC)+cpu.X) & 0x00FF
	cpu.PC++
	return false
}

// amZPY: zero-page indexed by Y, wrapping inside page zero.
func amZPY(cpu *Cpu6502) bool {
	cpu.AddrAbs = uint16(cpu.read(cpu.PC)+cpu.Y) & 0x00FF
	cpu.PC++
	return false
}

// amABS: full 16-bit absolute address, little-endian.
func amABS(cpu *Cpu6502) bool {
	cpu.AddrAbs = cpu.readWord(cpu.PC)
	cpu.PC += 2
	return false
}

// amABX: absolute indexed by X; signals +1 if the index crossed a page.
func amABX(cpu *Cpu6502) bool {
	base := cpu.readWord(cpu.PC)
	cpu.PC += 2
	cpu.AddrAbs = base + uint16(cpu.X)
	return cpu.AddrAbs&0xFF00 != base&0xFF00
}

// amABY: absolute indexed by Y; signals +1 if the index crossed a page.
func amABY(cpu *Cpu6502) bool {
	base := cpu.readWord(cpu.PC)
	cpu.PC += 2
	cpu.AddrAbs = base + uint16(cpu.Y)
	return cpu.AddrAbs&0xFF00 != base&0xFF00
}

// amIND: indirect. Reproduces the well-known JMP ($xxFF) page-wrap bug: when
// the low byte of the pointer is 0xFF, the high byte of the target is read
// from $xx00, not from the next page.
func amIND(cpu *Cpu6502) bool {
	ptr := cpu.readWord(cpu.PC)
	cpu.PC += 2

	lo := cpu.read(ptr)
	var hi byte
	if ptr&0x00FF == 0x00FF {
		hi = cpu.read(ptr & 0xFF00)
	} else {
		hi = cpu.read(ptr + 1)
	}
	cpu.AddrAbs = uint16(hi)<<8 | uint16(lo)
	return false
}

// amIZX: indexed indirect, (zp,X). Both bytes of the pointer are read from
// page zero, wrapping.
func amIZX(cpu *Cpu6502) bool {
	t := uint16(cpu.read(cpu.PC)+cpu.X) & 0x00FF
	cpu.PC++

	lo := cpu.read(t)
	hi := cpu.read((t + 1) & 0x00FF)
	cpu.AddrAbs = uint16(hi)<<8 | uint16(lo)
	return false
}

// amIZY: indirect indexed, (zp),Y. Signals +1 if adding Y crossed a page.
func amIZY(cpu *Cpu6502) bool {
	t := uint16(cpu.read(cpu.PC)) & 0x00FF
	cpu.PC++

	lo := cpu.read(t)
	hi := cpu.read((t + 1) & 0x00FF)
	base := uint16(hi)<<8 | uint16(lo)
	cpu.AddrAbs = base + uint16(cpu.Y)
	return cpu.AddrAbs&0xFF00 != base&0xFF00
}
