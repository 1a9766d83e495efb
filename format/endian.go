package format

import "encoding/binary"

func Le16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint16(b[off : off+2]), nil
}

func Le32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), nil
}

func Le64(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, ErrShortRead
	}
	return binary.LittleEndian.Uint64(b[off : off+8]), nil
}

func I8(b []byte, off int) (int8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, ErrShortRead
	}
	return int8(b[off]), nil
}

func I16(b []byte, off int) (int16, error) {
	v, err := Le16(b, off)
	return int16(v), err
}

func I32(b []byte, off int) (int32, error) {
	v, err := Le32(b, off)
	return int32(v), err
}

func I64(b []byte, off int) (int64, error) {
	v, err := Le64(b, off)
	return int64(v), err
}
