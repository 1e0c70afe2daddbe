package nes

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

const inesHeaderSize = 16

var inesMagic = [4]byte{0x4E, 0x45, 0x53, 0x1A} // "NES\x1A"

// ines.go parses the iNES 1.0 ROM format: a 16-byte header, an optional
// 512-byte trainer, then the PRG-ROM and CHR-ROM payload back to back.
// reference: https://wiki.nesdev.com/w/index.php/INES
type inesHeader struct {
	prgRomChunks byte // 16KB units
	chrRomChunks byte // 8KB units
	flag6        byte
	flag7        byte
}

func (h inesHeader) mapperID() byte {
	lo := h.flag6 >> 4
	hi := h.flag7 >> 4
	return hi<<4 | lo
}

func (h inesHeader) mirroring() Mirroring {
	if h.flag6&0x01 != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

func (h inesHeader) hasTrainer() bool { return h.flag6&0x04 != 0 }
func (h inesHeader) hasBattery() bool { return h.flag6&0x02 != 0 }

// LoadCartridge parses an iNES image from r and builds the Cartridge it
// describes, including the mapper named by its header.
func LoadCartridge(r io.Reader) (*Cartridge, error) {
	raw := make([]byte, inesHeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, errors.Wrap(ErrInvalidRom, "short header")
	}
	if !bytes.Equal(raw[:4], inesMagic[:]) {
		return nil, errors.Wrap(ErrInvalidRom, "bad magic number")
	}

	header := inesHeader{
		prgRomChunks: raw[4],
		chrRomChunks: raw[5],
		flag6:        raw[6],
		flag7:        raw[7],
	}

	if header.hasTrainer() {
		if _, err := io.CopyN(ioutil.Discard, r, 512); err != nil {
			return nil, errors.Wrap(ErrInvalidRom, "truncated trainer")
		}
	}

	prgSize := int(header.prgRomChunks) * 16 * 1024
	chrSize := int(header.chrRomChunks) * 8 * 1024

	prgMem := make([]byte, prgSize)
	if _, err := io.ReadFull(r, prgMem); err != nil {
		return nil, errors.Wrap(ErrInvalidRom, "truncated PRG-ROM")
	}

	// CHR-RAM boards declare zero CHR chunks; there is no payload to read,
	// so an 8KB writable buffer is allocated here and the mapper's
	// ppuMapWrite accepts writes into it.
	chrMem := make([]byte, chrSize)
	if chrSize > 0 {
		if _, err := io.ReadFull(r, chrMem); err != nil {
			return nil, errors.Wrap(ErrInvalidRom, "truncated CHR-ROM")
		}
	} else {
		chrMem = make([]byte, 8*1024)
	}

	mapper, ok := newMapper(header.mapperID(), header.prgRomChunks, header.chrRomChunks)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedMapper, "mapper %d", header.mapperID())
	}

	return &Cartridge{
		prgMem:     prgMem,
		chrMem:     chrMem,
		mapper:     mapper,
		Mirroring:  header.mirroring(),
		HasBattery: header.hasBattery(),
	}, nil
}
