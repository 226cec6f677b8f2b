package encoder

import (
	"encoding/binary"
	"unsafe"
)

// NativeOrder is the byte order of integers in memory on this machine.
// It is resolved once when the package is loaded.
var NativeOrder binary.ByteOrder

// IsLittleEndian reports whether NativeOrder is little-endian
var IsLittleEndian bool

func init() {
	probe := uint16(0x0102)
	IsLittleEndian = *(*byte)(unsafe.Pointer(&probe)) == 0x02
	if IsLittleEndian {
		NativeOrder = binary.LittleEndian
	} else {
		NativeOrder = binary.BigEndian
	}
}
