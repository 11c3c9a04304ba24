package sds

import (
	"encoding/binary"
	"unsafe"

	"listkit/util"
)

const (
	MAXPreAlloc = 1024 * 1024
)
const (
	Type5 = iota
	Type8
	Type16
	Type32
	Type64
	TypeMask = 7
	TypeBits = 3

	flagOffset = 0
	lenOffset  = 1
)

// SDS is an owned dynamic byte string. The backing buffer starts with a
// small header carrying the type flag and the used length; NewLen and
// Dup always copy, so no two SDS values built through them share bytes.
// The zero SDS is valid and empty.
type SDS struct {
	buf []byte
}

func sdsHdrSize(sdsType uint8) int {
	switch sdsType & TypeMask {
	case Type5:
		return int(unsafe.Sizeof(uint8(0))) // only flags uint8
	case Type8:
		return 2 * int(unsafe.Sizeof(uint8(0))) // flags uint8 + len uint8
	case Type16:
		return int(unsafe.Sizeof(uint8(0))) + int(unsafe.Sizeof(uint16(0)))
	case Type32:
		return int(unsafe.Sizeof(uint8(0))) + int(unsafe.Sizeof(uint32(0)))
	case Type64:
		return int(unsafe.Sizeof(uint8(0))) + int(unsafe.Sizeof(uint64(0)))
	}
	return 0
}

func sdsReqType(strSiz int) uint8 {
	if strSiz < 1<<5 {
		return Type5
	}
	if strSiz < 1<<8 {
		return Type8
	}
	if strSiz < 1<<16 {
		return Type16
	}
	if strSiz < 1<<32 {
		return Type32
	}
	return Type64
}

func sdsavail(s SDS) int {
	if len(s.buf) == 0 {
		return 0
	}
	sdsType := s.buf[flagOffset] & TypeMask
	hdrSize := sdsHdrSize(sdsType)
	switch sdsType {
	case Type5:
		return 0
	case Type8:
		return cap(s.buf) - int(s.buf[lenOffset]) - hdrSize
	case Type16:
		return cap(s.buf) - int(binary.BigEndian.Uint16(s.buf[lenOffset:])) - hdrSize
	case Type32:
		return cap(s.buf) - int(binary.BigEndian.Uint32(s.buf[lenOffset:])) - hdrSize
	case Type64:
		return cap(s.buf) - int(binary.BigEndian.Uint64(s.buf[lenOffset:])) - hdrSize
	}
	return 0
}

func sdssetlen(s SDS, newlen int) {
	switch s.buf[flagOffset] & TypeMask {
	case Type5:
		s.buf[flagOffset] = Type5 | uint8(newlen)<<TypeBits
	case Type8:
		s.buf[lenOffset] = uint8(newlen)
	case Type16:
		binary.BigEndian.PutUint16(s.buf[lenOffset:], uint16(newlen))
	case Type32:
		binary.BigEndian.PutUint32(s.buf[lenOffset:], uint32(newlen))
	case Type64:
		binary.BigEndian.PutUint64(s.buf[lenOffset:], uint64(newlen))
	}
}

// Empty returns a fresh empty sds with room to grow.
func Empty() SDS {
	return NewLen("")
}

// NewLen builds an sds holding a copy of init.
func NewLen(init string) SDS {
	initlen := len(init)
	sdsType := sdsReqType(initlen)
	if sdsType == Type5 && initlen == 0 {
		sdsType = Type8
	}

	hdrSize := sdsHdrSize(sdsType)

	if hdrSize+initlen < initlen {
		panic("overflow")
	}

	s := make([]byte, hdrSize+initlen)
	s[flagOffset] = sdsType // type5 will overwrite
	switch sdsType {
	case Type5:
		s[flagOffset] = sdsType | (byte(initlen) << TypeBits)
	case Type8:
		s[lenOffset] = byte(initlen)
	case Type16:
		binary.BigEndian.PutUint16(s[lenOffset:], uint16(initlen))
	case Type32:
		binary.BigEndian.PutUint32(s[lenOffset:], uint32(initlen))
	case Type64:
		binary.BigEndian.PutUint64(s[lenOffset:], uint64(initlen))
	}

	if initlen > 0 && init != "" {
		copy(s[hdrSize:], init)
	}

	return SDS{s}
}

// Len returns the used length. The zero SDS has length 0.
func Len(s SDS) int {
	if len(s.buf) == 0 {
		return 0
	}
	sdsType := s.buf[flagOffset] & TypeMask
	switch sdsType {
	case Type5:
		return int(s.buf[flagOffset] >> TypeBits)
	case Type8:
		return int(s.buf[lenOffset])
	case Type16:
		return int(binary.BigEndian.Uint16(s.buf[lenOffset:]))
	case Type32:
		return int(binary.BigEndian.Uint32(s.buf[lenOffset:]))
	case Type64:
		return int(binary.BigEndian.Uint64(s.buf[lenOffset:]))
	}
	return 0
}

// MakeRoomFor grows the buffer so that addLen more bytes fit. Small
// strings double, big ones grow by MAXPreAlloc.
func MakeRoomFor(s SDS, addLen int) SDS {
	avail := sdsavail(s)
	if avail > addLen {
		return s
	}

	oldLen := Len(s)
	reqLen := oldLen + addLen
	newLen := reqLen

	if newLen < oldLen {
		panic("overflow")
	}

	if newLen < MAXPreAlloc {
		newLen *= 2
	} else {
		newLen += MAXPreAlloc
	}
	oldType := s.buf[flagOffset] & TypeMask
	newType := sdsReqType(newLen)
	if newType == Type5 {
		newType = Type8
	}

	hdrLen := sdsHdrSize(newType)
	if (hdrLen + newLen + 1) < reqLen {
		panic("overflow")
	}

	buf := make([]byte, newLen+hdrLen)
	if oldType == newType {
		copy(buf, s.buf)
	} else {
		copy(buf[hdrLen:], s.buf[sdsHdrSize(oldType):])
		buf[flagOffset] = newType
		sdssetlen(SDS{buf}, oldLen)
	}
	s.buf = buf
	return s
}

// Catlen appends the first l bytes of p. The zero SDS is promoted to an
// empty one first.
func Catlen(s SDS, p []byte, l int) SDS {
	if len(s.buf) == 0 {
		s = Empty()
	}
	curLen := Len(s)

	s = MakeRoomFor(s, l)
	copy(s.Buf(curLen), p[:l])
	sdssetlen(s, curLen+l)

	return s
}

// Dup returns a deep copy sharing no bytes with s.
func Dup(s SDS) SDS {
	return NewLen(util.Bytes2String(s.BufData(0)))
}

// Cmp reports byte equality of two sds values.
func Cmp(a, b SDS) bool {
	return util.BytesCmp(a.BufData(0), b.BufData(0))
}

// BufData returns the used bytes starting at offset. Nil for the zero
// SDS.
func (s SDS) BufData(offset int) []byte {
	if len(s.buf) == 0 {
		return nil
	}
	end := Len(s)
	hdrSize := sdsHdrSize(s.buf[flagOffset])
	return s.buf[hdrSize+offset : hdrSize+offset+end]
}

// Buf returns the buffer past the header, used length ignored.
func (s SDS) Buf(offset int) []byte {
	return s.buf[sdsHdrSize(s.buf[flagOffset])+offset:]
}
