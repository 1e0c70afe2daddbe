package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperNROM16KBMirroring(t *testing.T) {
	m := newMapperNROM(1, 1).(*MapperNROM)

	lo, ok := m.cpuMapRead(0x8010)
	require.True(t, ok)
	assert.Equal(t, uint16(0x0010), lo)

	hi, ok := m.cpuMapRead(0xC010)
	require.True(t, ok, "$C000 should mirror $8000 on a 16KB board")
	assert.Equal(t, uint16(0x0010), hi)
}

func TestMapperNROM32KBDirect(t *testing.T) {
	m := newMapperNROM(2, 1).(*MapperNROM)

	lo, ok := m.cpuMapRead(0x8010)
	require.True(t, ok)
	assert.Equal(t, uint16(0x0010), lo)

	hi, ok := m.cpuMapRead(0xC010)
	require.True(t, ok, "no mirroring on a 32KB board")
	assert.Equal(t, uint16(0x4010), hi)
}

func TestMapperNROMBelowPRGWindow(t *testing.T) {
	m := newMapperNROM(1, 1).(*MapperNROM)
	_, ok := m.cpuMapRead(0x7FFF)
	assert.False(t, ok, "PRG-ROM starts at $8000")
}

func TestMapperNROMRejectsCPUWrites(t *testing.T) {
	m := newMapperNROM(2, 1).(*MapperNROM)
	_, ok := m.cpuMapWrite(0x8000)
	assert.False(t, ok, "NROM has no PRG-RAM; cpuMapWrite must always fail")
}

func TestMapperNROMCHRROMRejectsWrites(t *testing.T) {
	m := newMapperNROM(1, 1).(*MapperNROM) // chrBanks=1: CHR-ROM board
	_, ok := m.ppuMapWrite(0x0010)
	assert.False(t, ok, "a CHR-ROM board must reject PPU writes to pattern table space")
}

func TestMapperNROMCHRRAMAcceptsWrites(t *testing.T) {
	m := newMapperNROM(1, 0).(*MapperNROM) // chrBanks=0: CHR-RAM board
	offset, ok := m.ppuMapWrite(0x0010)
	require.True(t, ok)
	assert.Equal(t, uint16(0x0010), offset)
}

func TestMapperRegistryUnknownID(t *testing.T) {
	_, ok := newMapper(255, 1, 1)
	assert.False(t, ok, "no mapper is registered for ID 255")
}

func TestMapperRegistryNROM(t *testing.T) {
	m, ok := newMapper(0, 1, 1)
	require.True(t, ok, "NROM is registered as mapper 0")
	assert.IsType(t, &MapperNROM{}, m)
}
