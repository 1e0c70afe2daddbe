package nes

import (
	"bytes"
	"fmt"
)

// Disassemble renders every instruction between startAddr and endAddr into
// a human-readable line keyed by its address, using Bus.Peek so inspecting
// a program never perturbs CPU or PPU state.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (cpu *Cpu6502) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	var lineDiss bytes.Buffer
	var lo, hi byte

	var addr uint32 = uint32(startAddr)
	disassembly := make(map[uint16]string)

	for addr <= uint32(endAddr) {
		lineAddr := uint16(addr)
		lineDiss.WriteString(fmt.Sprintf("$%04X: ", lineAddr))

		opcode := cpu.bus.Peek(uint16(addr))
		addr++
		inst := cpu.InstLookup[opcode]
		lineDiss.WriteString(fmt.Sprintf("%s ", inst.Name))

		switch inst.Mode {
		case IMP:
			lineDiss.WriteString("{IMP}")
		case ACC:
			lineDiss.WriteString("A {ACC}")
		case IMM:
			value := cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("#$%02X {IMM}", value))
		case REL:
			value := cpu.bus.Peek(uint16(addr))
			addr++
			offset := int16(int8(value))
			target := uint16(int32(addr) + int32(offset))
			lineDiss.WriteString(fmt.Sprintf("$%02X [$%04X] {REL}", value, target))
		case ZP0:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X {ZP0}", lo))
		case ZPX:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X, X {ZPX}", lo))
		case ZPY:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X, Y {ZPY}", lo))
		case ABS:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			hi = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X {ABS}", uint16(hi)<<8|uint16(lo)))
		case ABX:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			hi = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X, X {ABX}", uint16(hi)<<8|uint16(lo)))
		case ABY:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			hi = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%04X, Y {ABY}", uint16(hi)<<8|uint16(lo)))
		case IND:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			hi = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%04X) {IND}", uint16(hi)<<8|uint16(lo)))
		case IZX:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X, X) {IZX}", lo))
		case IZY:
			lo = cpu.bus.Peek(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X), Y {IZY}", lo))
		}

		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	return disassembly
}
