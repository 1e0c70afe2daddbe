package nes

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// newTestCPU builds a cartridge-backed bus, writes program at loadAddr
// (which must be in $8000-$FFFF), points the reset vector at it, and burns
// the 7 reset idle cycles so tests can count cycles from the first real
// instruction.
func newTestCPU(t *testing.T, loadAddr uint16, program ...byte) (*Cpu6502, *Bus) {
	t.Helper()
	bus := newTestBus()
	writeROMProgram(bus, loadAddr, program...)
	writeROMWord(bus, resetVectorAddr, loadAddr)
	bus.Cpu.Reset()
	for i := 0; i < 7; i++ {
		bus.Cpu.Tick()
	}
	return bus.Cpu, bus
}

func tickN(cpu *Cpu6502, n int) {
	for i := 0; i < n; i++ {
		cpu.Tick()
	}
}

func dump(t *testing.T, cpu *Cpu6502) {
	t.Helper()
	t.Log(spew.Sdump(cpu.State()))
}

// Scenario 1: ADC basic.
func TestScenarioADCBasic(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0xA9, 0x32, // LDA #$32
		0x69, 0x10, // ADC #$10
	)
	tickN(cpu, 4)

	if cpu.A != 0x42 || cpu.GetFlag(FlagC) || cpu.GetFlag(FlagZ) || cpu.GetFlag(FlagN) || cpu.GetFlag(FlagV) {
		dump(t, cpu)
		t.Fatalf("A=%#02x C=%v Z=%v N=%v V=%v, want A=0x42 C=0 Z=0 N=0 V=0",
			cpu.A, cpu.GetFlag(FlagC), cpu.GetFlag(FlagZ), cpu.GetFlag(FlagN), cpu.GetFlag(FlagV))
	}
}

// Scenario 2: ADC overflow.
func TestScenarioADCOverflow(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0xA9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50
	)
	tickN(cpu, 4)

	if cpu.A != 0xA0 || !cpu.GetFlag(FlagN) || !cpu.GetFlag(FlagV) || cpu.GetFlag(FlagC) {
		dump(t, cpu)
		t.Fatalf("A=%#02x N=%v V=%v C=%v, want A=0xA0 N=1 V=1 C=0",
			cpu.A, cpu.GetFlag(FlagN), cpu.GetFlag(FlagV), cpu.GetFlag(FlagC))
	}
}

// Scenario 3: SBC with borrow.
func TestScenarioSBCBorrow(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0x38,       // SEC
		0xA9, 0x05, // LDA #$05
		0xE9, 0x03, // SBC #$03
	)
	tickN(cpu, 2+2+2)

	if cpu.A != 0x02 || !cpu.GetFlag(FlagC) || cpu.GetFlag(FlagZ) {
		dump(t, cpu)
		t.Fatalf("A=%#02x C=%v Z=%v, want A=0x02 C=1 Z=0", cpu.A, cpu.GetFlag(FlagC), cpu.GetFlag(FlagZ))
	}
}

// Scenario 4: JMP indirect page-wrap bug: the high byte of the target is
// re-read from the start of the same page as the pointer, not the next one.
func TestScenarioJMPIndirectBug(t *testing.T) {
	bus := newTestBus()
	// The instruction lives in a RAM cell whose mirror doesn't alias the
	// pointer table (RAM is only 2KB, mirrored every 0x0800 bytes), so
	// setting up the bug's wrapped-read byte can't clobber the opcode.
	bus.Write(0x0300, 0x6C) // JMP ($10FF)
	bus.Write(0x0301, 0xFF)
	bus.Write(0x0302, 0x10)
	bus.Write(0x10FF, 0x34) // pointer low byte
	bus.Write(0x1100, 0x56) // correct high-byte location; must NOT be used
	bus.Write(0x1000, 0x12) // same page as the pointer; the buggy wrap reads here
	writeROMWord(bus, resetVectorAddr, 0x0300)

	bus.Cpu.Reset()
	tickN(bus.Cpu, 7) // reset idle cycles
	tickN(bus.Cpu, 5) // JMP (IND) cost

	if bus.Cpu.PC != 0x1234 {
		dump(t, bus.Cpu)
		t.Fatalf("PC=%#04x, want 0x1234 (low from $10FF, wrapped high from $1000)", bus.Cpu.PC)
	}
}

// Scenario 5: BRK pushes a correctly ordered frame and vectors through $FFFE.
func TestScenarioBRKFrame(t *testing.T) {
	bus := newTestBus()
	writeROMProgram(bus, 0x8000, 0x00, 0xEA) // BRK ; NOP (padding byte BRK skips)
	writeROMWord(bus, irqVectorAddr, 0x9000)
	writeROMWord(bus, resetVectorAddr, 0x8000)

	bus.Cpu.Reset()
	tickN(bus.Cpu, 7)
	bus.Cpu.Status = 0x24
	bus.Cpu.SP = 0xFD

	tickN(bus.Cpu, 7) // BRK's cost

	if got := bus.Read(0x01FD); got != 0x80 {
		t.Errorf("stack[$01FD]=%#02x, want 0x80 (PCH)", got)
	}
	if got := bus.Read(0x01FC); got != 0x02 {
		t.Errorf("stack[$01FC]=%#02x, want 0x02 (PCL)", got)
	}
	if got := bus.Read(0x01FB); got != 0x34 {
		t.Errorf("stack[$01FB]=%#02x, want 0x34 (P with B=1,U=1)", got)
	}
	if bus.Cpu.SP != 0xFA {
		t.Errorf("SP=%#02x, want 0xFA", bus.Cpu.SP)
	}
	if bus.Cpu.PC != 0x9000 {
		t.Errorf("PC=%#04x, want 0x9000", bus.Cpu.PC)
	}
	if !bus.Cpu.GetFlag(FlagI) {
		t.Errorf("I flag not set after BRK")
	}
}

// Scenario 6: the delayed I-flag. CLI must not let an already-pending IRQ
// interrupt the very next instruction; it takes effect one boundary later.
func TestScenarioDelayedIFlag(t *testing.T) {
	bus := newTestBus()
	writeROMProgram(bus, 0x8000, 0x58, 0xEA, 0xEA) // CLI ; NOP ; NOP
	writeROMWord(bus, irqVectorAddr, 0x9000)
	writeROMWord(bus, resetVectorAddr, 0x8000)

	bus.Cpu.Reset()
	tickN(bus.Cpu, 7)
	bus.Cpu.SetFlag(FlagI, true)
	bus.Cpu.IRQ()

	tickN(bus.Cpu, 2) // CLI retires; I is still 1 at this boundary's poll
	if bus.Cpu.PC != 0x8001 || bus.Cpu.GetFlag(FlagI) != true {
		dump(t, bus.Cpu)
		t.Fatalf("after CLI: PC=%#04x I=%v, want PC=0x8001 I=true (not yet applied)", bus.Cpu.PC, bus.Cpu.GetFlag(FlagI))
	}

	tickN(bus.Cpu, 2) // first NOP after CLI retires; this is where I commits and IRQ is polled
	if bus.Cpu.PC != 0x9000 {
		dump(t, bus.Cpu)
		t.Fatalf("after the instruction following CLI: PC=%#04x, want 0x9000 (IRQ taken)", bus.Cpu.PC)
	}
}

func TestReset(t *testing.T) {
	bus := newTestBus()
	writeROMWord(bus, resetVectorAddr, 0xC000)
	bus.Cpu.Reset()

	if bus.Cpu.SP != 0xFD {
		t.Errorf("SP=%#02x, want 0xFD", bus.Cpu.SP)
	}
	if bus.Cpu.Status&0x24 != 0x24 {
		t.Errorf("P=%#08b, want U and I set (0x24 mask)", bus.Cpu.Status)
	}
	if bus.Cpu.PC != 0xC000 {
		t.Errorf("PC=%#04x, want 0xC000", bus.Cpu.PC)
	}
}

func TestFlagUAlwaysReadsSet(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000, 0xEA)
	cpu.SetFlag(FlagU, false)
	if !cpu.GetFlag(FlagU) {
		t.Fatal("FlagU must always read as set")
	}
	if cpu.Status&byte(FlagU) == 0 {
		t.Fatal("SetFlag(FlagU, false) must leave the stored U bit set in Status")
	}
}

func TestStackRoundTripPHAPLA(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0xA9, 0x7E, // LDA #$7E
		0x48,       // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	)
	tickN(cpu, 2+3+2+4)

	if cpu.A != 0x7E {
		t.Fatalf("A=%#02x after PHA/PLA round-trip, want 0x7E", cpu.A)
	}
}

func TestStackRoundTripPHPPLP(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0x38, // SEC
		0x08, // PHP
		0x18, // CLC
		0x28, // PLP
	)
	tickN(cpu, 2+3+2+4)

	if !cpu.GetFlag(FlagC) {
		t.Fatalf("P=%#08b after PHP/PLP round-trip, carry should be restored from the pushed snapshot", cpu.Status)
	}
	if cpu.Status&byte(FlagB) != 0 {
		t.Fatalf("P=%#08b after PHP/PLP round-trip, B must never be live in Status", cpu.Status)
	}
	if !cpu.GetFlag(FlagU) {
		t.Fatalf("P=%#08b after PHP/PLP round-trip, U must read set", cpu.Status)
	}
}

func TestRamMirroring(t *testing.T) {
	bus := newTestBus()
	bus.Write(0x0042, 0x99)

	for _, mirror := range []uint16{0x0042, 0x0842, 0x1042, 0x1842} {
		if got := bus.Read(mirror); got != 0x99 {
			t.Errorf("Read(%#04x)=%#02x, want 0x99 (mirrors $0042)", mirror, got)
		}
	}
}

func TestBranchCycleCosts(t *testing.T) {
	// BEQ not taken: Z=0, costs 2.
	cpu, _ := newTestCPU(t, 0x8000,
		0xA9, 0x01, // LDA #$01 (Z=0)
		0xF0, 0x10, // BEQ +16 (not taken)
	)
	tickN(cpu, 2)
	startPC := cpu.PC
	tickN(cpu, 2)
	if cpu.PC != startPC+2 {
		t.Fatalf("not-taken BEQ landed at %#04x, want %#04x", cpu.PC, startPC+2)
	}
	if cpu.Cycles != 0 {
		t.Fatalf("not-taken BEQ still owes %d cycles after 2 ticks, want 0 (cost 2)", cpu.Cycles)
	}
}

func TestCompareWidenedSubtraction(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0xA9, 0x05, // LDA #$05
		0xC9, 0x0A, // CMP #$0A  (5 - 10: borrow, C should clear)
	)
	tickN(cpu, 2+2)

	if cpu.GetFlag(FlagC) {
		t.Fatal("CMP 5 against 10 should clear carry (reg < mem)")
	}
	if cpu.GetFlag(FlagZ) {
		t.Fatal("CMP 5 against 10 should not set zero")
	}
}

// TestStateSnapshotDeepEqual checks the full CPUState snapshot against a
// hand-computed expectation in one shot, using deep.Equal's structural diff
// instead of asserting each field separately.
func TestStateSnapshotDeepEqual(t *testing.T) {
	cpu, _ := newTestCPU(t, 0x8000,
		0xA9, 0x32, // LDA #$32
		0x69, 0x10, // ADC #$10
	)
	tickN(cpu, 4)

	want := CPUState{
		A:      0x42,
		X:      0,
		Y:      0,
		SP:     0xFD,
		P:      0x24, // U|I only; C/Z/N/V all clear, nothing else touches them
		PC:     0x8004,
		Cycles: 11, // 7 reset idle cycles + 4 for LDA/ADC
	}
	got := cpu.State()

	if diff := deep.Equal(want, got); diff != nil {
		dump(t, cpu)
		t.Fatalf("CPUState mismatch: %v", diff)
	}
}
