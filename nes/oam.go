package nes

// objectAttributeMemory is the PPU's flat 256-byte sprite attribute table:
// 64 sprites of 4 bytes each (Y, pattern ID, attribute, X). OAMADDR/OAMDATA
// address it byte-by-byte, so it is kept as a flat array rather than a
// parsed slice of sprite structs.
type objectAttributeMemory [256]byte

func (oam *objectAttributeMemory) read(addr byte) byte {
	return oam[addr]
}

func (oam *objectAttributeMemory) write(addr byte, data byte) {
	oam[addr] = data
}

func (oam *objectAttributeMemory) clear() {
	for i := range oam {
		oam[i] = 0xFF
	}
}
