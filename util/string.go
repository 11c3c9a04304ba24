package util

import "unsafe"

func Bytes2String(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

func StrCmp[T []byte | string](s T, d string) bool {
	if string(s) == d {
		return true
	}
	return false
}

func BytesCmp(key1, key2 []byte) bool {
	if len(key1) != len(key2) {
		return false
	}

	for i := 0; i < len(key2); i++ {
		if key1[i] != key2[i] {
			return false
		}
	}
	return true
}
