package nes

// AddressingMode identifies which of the 6502's operand addressing schemes
// an opcode uses. The CPU's dispatch table pairs one of these with every
// opcode slot so an instruction and its addressing mode can be looked up
// together from a single index.
type AddressingMode int

const (
	IMP AddressingMode = iota
	ACC
	IMM
	REL
	ZP0
	ZPX
	ZPY
	ABS
	ABX
	ABY
	IND
	IZX
	IZY
)

func (m AddressingMode) String() string {
	switch m {
	case IMP:
		return "IMP"
	case ACC:
		return "ACC"
	case IMM:
		return "IMM"
	case REL:
		return "REL"
	case ZP0:
		return "ZP0"
	case ZPX:
		return "ZPX"
	case ZPY:
		return "ZPY"
	case ABS:
		return "ABS"
	case ABX:
		return "ABX"
	case ABY:
		return "ABY"
	case IND:
		return "IND"
	case IZX:
		return "IZX"
	case IZY:
		return "IZY"
	default:
		return "???"
	}
}

// OperandTarget records where an addressing mode left its operand so the
// instruction body knows where to write a result back, tagging accumulator
// operands explicitly instead of redirecting through a function pointer.
type OperandTarget struct {
	Accumulator bool
}

// Instruction is one entry of the CPU's flat 256-slot dispatch table: a
// plain record of function values, never a virtual/interface dispatch.
// AddrMode and Execute each report whether they earn the "+1 cycle" bonus;
// it is only charged when both agree.
type Instruction struct {
	Name     string
	Mode     AddressingMode
	AddrMode func(cpu *Cpu6502) bool
	Execute  func(cpu *Cpu6502) bool
	Cycles   byte
}

// SF6502 names a single bit of the 6502 status register P.
type SF6502 byte

const (
	FlagC SF6502 = 1 << iota // Carry
	FlagZ                    // Zero
	FlagI                    // Interrupt disable
	FlagD                    // Decimal mode (unused on the 2A03)
	FlagB                    // Break (stack-only, see cpu.go)
	FlagU                    // Unused, always reads 1
	FlagV                    // Overflow
	FlagN                    // Negative
)
