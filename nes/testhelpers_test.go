package nes

// newTestBus returns a Bus wired to a blank 32KB PRG-ROM cartridge (mapper
// 0, linear mapped so addr&0x7FFF addresses it directly) so tests can place
// code and vectors anywhere in $8000-$FFFF the way a real ROM image would.
func newTestBus() *Bus {
	cart := &Cartridge{
		prgMem: make([]byte, 0x8000),
		chrMem: make([]byte, 0x2000),
		mapper: newMapperNROM(2, 1),
	}
	bus := NewBus()
	bus.Cart = cart
	bus.Ppu.ConnectCartridge(cart)
	return bus
}

// writeROM pokes a byte directly into the test cartridge's PRG-ROM at a CPU
// address in $8000-$FFFF, bypassing Bus.Write — NROM correctly refuses CPU
// writes to its address range (no PRG-RAM), so tests that need to seed
// program bytes or interrupt vectors have to go around it, exactly as a ROM
// file's contents would have been assembled ahead of time rather than
// written at runtime.
func writeROM(bus *Bus, addr uint16, data byte) {
	bus.Cart.prgMem[addr&0x7FFF] = data
}

func writeROMProgram(bus *Bus, addr uint16, program ...byte) {
	for i, b := range program {
		writeROM(bus, addr+uint16(i), b)
	}
}

func writeROMWord(bus *Bus, addr uint16, data uint16) {
	writeROM(bus, addr, byte(data))
	writeROM(bus, addr+1, byte(data>>8))
}
