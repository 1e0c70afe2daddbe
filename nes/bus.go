package nes

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Bus is the NES's main address bus: the CPU's view of memory, with RAM,
// the PPU's register window, and the cartridge all wired onto it.
type Bus struct {
	Cpu  *Cpu6502
	Ppu  *Ppu
	Cart *Cartridge
	Disp *Display // non-nil only when running with --debug

	ram [2048]byte // 2KB internal RAM, mirrored through $1FFF

	ClockCount uint64
}

const (
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF

	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007

	apuIoMinAddr uint16 = 0x4000
	apuIoMaxAddr uint16 = 0x401F

	cartMinAddr uint16 = 0x4020
	cartMaxAddr uint16 = 0xFFFF
)

// NewBus builds a Bus with a fresh CPU and PPU attached, but no cartridge;
// LoadCartridge must be called before Clock/Reset do anything useful.
func NewBus() *Bus {
	cpu := NewCpu6502()
	bus := &Bus{
		Cpu: cpu,
		Ppu: NewPpu(),
	}
	cpu.ConnectBus(bus)
	return bus
}

// LoadCartridge opens an iNES ROM file, parses it, and connects it to both
// the CPU and PPU buses, replacing any cartridge already installed.
func (b *Bus) LoadCartridge(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(ErrInvalidRom, "open %s: %v", path, err)
	}
	defer f.Close()

	cart, err := LoadCartridge(f)
	if err != nil {
		return err
	}

	b.Cart = cart
	b.Ppu.ConnectCartridge(cart)
	return nil
}

// Read services a CPU memory read, consuming no cycle itself (Tick already
// accounts for the access); it never errors, reporting open bus as 0x00.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		return b.ram[addr&ramMirror]
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		return b.Ppu.cpuRead(addr & ppuMirror)
	case addr >= apuIoMinAddr && addr <= apuIoMaxAddr:
		return 0 // APU and controller ports: open bus, out of scope
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		if b.Cart != nil {
			if data, ok := b.Cart.cpuRead(addr); ok {
				return data
			}
		}
		return 0
	default:
		return 0
	}
}

// Write services a CPU memory write. A write the cartridge rejects (ROM
// with no PRG-RAM) is silently dropped, matching real hardware.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		b.ram[addr&ramMirror] = data
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		b.Ppu.cpuWrite(addr&ppuMirror, data)
	case addr >= apuIoMinAddr && addr <= apuIoMaxAddr:
		// open bus
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		if b.Cart != nil {
			b.Cart.cpuWrite(addr, data)
		}
	}
}

// Peek decodes the same address space as Read but never advances any
// cycle counter and never mutates PPU latch/buffer state; it exists so a
// disassembler or debugger can inspect memory without perturbing
// execution. Every PPU register reads as 0 through Peek, so none of the
// registers' read side effects (e.g. PPUSTATUS's VBlank-clear-on-read)
// fire.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr >= ramMinAddr && addr <= ramMaxAddr:
		return b.ram[addr&ramMirror]
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		return 0 // register state is side-effecting; no safe peek value
	case addr >= apuIoMinAddr && addr <= apuIoMaxAddr:
		return 0
	case addr >= cartMinAddr && addr <= cartMaxAddr:
		if b.Cart != nil {
			if data, ok := b.Cart.cpuRead(addr); ok {
				return data
			}
		}
		return 0
	default:
		return 0
	}
}

// Reset propagates a system reset to the CPU and zeroes the clock count.
func (b *Bus) Reset() {
	b.Cpu.Reset()
	b.ClockCount = 0
}

// IRQ/NMI forward directly to the CPU; the bus itself has no interrupt
// sources of its own besides the PPU, which Clock drains automatically.
func (b *Bus) IRQ() { b.Cpu.IRQ() }
func (b *Bus) NMI() { b.Cpu.NMI() }

// Clock advances the whole system by one PPU cycle, running the CPU at a
// third of that rate, and forwards any VBlank NMI the PPU raised.
func (b *Bus) Clock() {
	b.Ppu.Clock()

	if b.ClockCount%3 == 0 {
		b.Cpu.Tick()
	}

	if b.Ppu.nmi {
		b.Ppu.nmi = false
		b.Cpu.NMI()
	}

	b.ClockCount++
}

// CPUState returns a snapshot of the CPU's architecturally visible state.
func (b *Bus) CPUState() CPUState { return b.Cpu.State() }

// EnableDebugWindow opens the debug display; DrawDebugPanel is then safe
// to call once per frame.
func (b *Bus) EnableDebugWindow() {
	b.Disp = NewDisplay()
}

// DrawDebugPanel refreshes the debug window with the CPU's current
// register state and the instruction it last retired.
func (b *Bus) DrawDebugPanel() {
	if b.Disp == nil {
		return
	}
	b.Disp.WriteRegDebugString(b.cpuDebugString())
	b.Disp.WriteInstDebugString(b.Cpu.LastDisasm)
	b.Disp.UpdateScreen()
}

func (b *Bus) cpuDebugString() string {
	var buf bytes.Buffer
	s := b.Cpu.State()

	fmt.Fprintf(&buf, "PC: %#04X\n", s.PC)
	fmt.Fprintf(&buf, "A:  %#02X\n", s.A)
	fmt.Fprintf(&buf, "X:  %#02X\n", s.X)
	fmt.Fprintf(&buf, "Y:  %#02X\n", s.Y)
	fmt.Fprintf(&buf, "SP: %#02X\n", s.SP)
	fmt.Fprintf(&buf, "P:  %08b\n", s.P)
	fmt.Fprintf(&buf, "Cycles: %d\n", s.Cycles)

	return buf.String()
}
