package service

import (
	"bytes"
	"io"
	"strconv"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func groupIDString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
