package nes

// Ppu is a minimal 2C02 stand-in: enough register and timing behavior for
// a CPU-side program to drive it correctly (poll PPUSTATUS, write PPUCTRL/
// PPUMASK/PPUSCROLL/PPUADDR/PPUDATA/OAMADDR/OAMDATA, take a VBlank NMI) but
// with no pixel pipeline behind it. Pattern-table decoding, palette color
// lookup, and sprite evaluation are out of scope.
//
// reference: http://wiki.nesdev.com/w/index.php/PPU_registers
type Ppu struct {
	cart *Cartridge

	nameTable  [2][1024]byte // 2 physical 1KB nametables; mirroring picks among 4 logical slots
	paletteRAM [32]byte
	oam        objectAttributeMemory
	oamAddr    byte

	ctrl   PpuReg
	mask   PpuReg
	status PpuReg

	vramAddr   PpuLoopyReg // "v": current VRAM address
	tramAddr   PpuLoopyReg // "t": temporary VRAM address, latched by scroll/addr writes
	fineX      byte
	addrLatch  bool // low/high byte toggle shared by PPUSCROLL and PPUADDR
	dataBuffer byte // PPUDATA's one-read-behind buffer for non-palette reads

	scanline      int
	cycle         int
	frameComplete bool
	nmi           bool // latched for one Clock(); Bus drains it into Cpu.NMI()
}

func NewPpu() *Ppu {
	p := &Ppu{scanline: -1}
	p.oam.clear()
	return p
}

func (p *Ppu) ConnectCartridge(c *Cartridge) { p.cart = c }

// FrameComplete reports whether a full frame has finished since the last
// call, draining the flag the way Bus.Clock drains nmi.
func (p *Ppu) FrameComplete() bool {
	if p.frameComplete {
		p.frameComplete = false
		return true
	}
	return false
}

// Clock advances the PPU by one PPU cycle (three times the CPU's rate).
// It only tracks the VBlank/NMI edges a CPU program can observe; it never
// produces a pixel.
func (p *Ppu) Clock() {
	if p.scanline == -1 && p.cycle == 1 {
		p.status.clearFlag(statusVBlank)
		p.status.clearFlag(statusSprite0Hit)
		p.status.clearFlag(statusSpriteOverflow)
	}
	if p.scanline == 241 && p.cycle == 1 {
		p.status.setFlag(statusVBlank)
		if p.ctrl.isFlagSet(ctrlNmi) {
			p.nmi = true
		}
	}

	p.cycle++
	if p.cycle >= 341 {
		p.cycle = 0
		p.scanline++
		if p.scanline >= 261 {
			p.scanline = -1
			p.frameComplete = true
		}
	}
}

// cpuRead/cpuWrite implement the 8-register window visible at $2000-$2007
// (the Bus is responsible for mirroring that window every 8 bytes).
func (p *Ppu) cpuRead(reg uint16) byte {
	switch reg {
	case 0x0002: // PPUSTATUS
		data := byte(p.status)
		p.status.clearFlag(statusVBlank)
		p.addrLatch = false
		return data
	case 0x0004: // OAMDATA
		return p.oam.read(p.oamAddr)
	case 0x0007: // PPUDATA
		return p.readData()
	default: // PPUCTRL, PPUMASK, OAMADDR, PPUSCROLL, PPUADDR are write-only
		return 0
	}
}

func (p *Ppu) cpuWrite(reg uint16, data byte) {
	switch reg {
	case 0x0000: // PPUCTRL
		p.ctrl = PpuReg(data)
		p.tramAddr.setNametable(data & 0b11)
	case 0x0001: // PPUMASK
		p.mask = PpuReg(data)
	case 0x0003: // OAMADDR
		p.oamAddr = data
	case 0x0004: // OAMDATA
		p.oam.write(p.oamAddr, data)
		p.oamAddr++
	case 0x0005: // PPUSCROLL
		if !p.addrLatch {
			p.fineX = data & 0x07
			p.tramAddr.setCoarseX(data >> 3)
		} else {
			p.tramAddr.setFineY(data & 0x07)
			p.tramAddr.setCoarseY(data >> 3)
		}
		p.addrLatch = !p.addrLatch
	case 0x0006: // PPUADDR
		if !p.addrLatch {
			p.tramAddr = (p.tramAddr & 0x00FF) | (PpuLoopyReg(data&0x3F) << 8)
		} else {
			p.tramAddr = (p.tramAddr & 0xFF00) | PpuLoopyReg(data)
			p.vramAddr = p.tramAddr
		}
		p.addrLatch = !p.addrLatch
	case 0x0007: // PPUDATA
		p.writeData(data)
	}
}

func (p *Ppu) vramIncrement() uint16 {
	if p.ctrl.isFlagSet(ctrlVramInc) {
		return 32
	}
	return 1
}

// readData implements PPUDATA's buffered-read quirk: reads below the
// palette region return the byte fetched by the *previous* read, while
// palette reads (at or above $3F00) return immediately.
func (p *Ppu) readData() byte {
	addr := p.vramAddr.value() & 0x3FFF
	var data byte
	if addr >= 0x3F00 {
		data = p.ppuRead(addr)
	} else {
		data = p.dataBuffer
		p.dataBuffer = p.ppuRead(addr)
	}
	p.vramAddr = PpuLoopyReg(addr) + PpuLoopyReg(p.vramIncrement())
	return data
}

func (p *Ppu) writeData(data byte) {
	addr := p.vramAddr.value() & 0x3FFF
	p.ppuWrite(addr, data)
	p.vramAddr = PpuLoopyReg(addr) + PpuLoopyReg(p.vramIncrement())
}

// ppuRead/ppuWrite address the PPU's own bus: cartridge pattern tables
// below $2000, nametable RAM (mirrored per cartridge.Mirroring) below
// $3F00, and palette RAM (mirrored every 32 bytes, with the backdrop
// mirrors at $10/$14/$18/$1C folded to $00/$04/$08/$0C) above it.
func (p *Ppu) ppuRead(addr uint16) byte {
	addr &= 0x3FFF

	if addr <= 0x1FFF {
		if data, ok := p.cart.ppuRead(addr); ok {
			return data
		}
		return 0
	}
	if addr <= 0x3EFF {
		return p.nameTable[p.nameTableIndex(addr)][addr&0x03FF]
	}
	return p.paletteRAM[paletteIndex(addr)]
}

func (p *Ppu) ppuWrite(addr uint16, data byte) {
	addr &= 0x3FFF

	if addr <= 0x1FFF {
		p.cart.ppuWrite(addr, data)
		return
	}
	if addr <= 0x3EFF {
		p.nameTable[p.nameTableIndex(addr)][addr&0x03FF] = data
		return
	}
	p.paletteRAM[paletteIndex(addr)] = data
}

func (p *Ppu) nameTableIndex(addr uint16) int {
	logical := (addr - 0x2000) / 0x0400 % 4
	if p.cart.Mirroring == MirrorHorizontal {
		return int(logical / 2)
	}
	return int(logical % 2)
}

func paletteIndex(addr uint16) uint16 {
	idx := (addr - 0x3F00) % 32
	if idx == 0x10 || idx == 0x14 || idx == 0x18 || idx == 0x1C {
		idx &^= 0x10
	}
	return idx
}
