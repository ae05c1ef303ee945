package icu

import (
	"sync/atomic"

	"github.com/locgo/locgo/internal/uchar"
)

// Converter wraps a UConverter for one named charset, translating
// between that charset and Go strings.
type Converter struct {
	lib    *Library
	name   string
	conv   uintptr
	closed atomic.Bool
}

// OpenConverter opens a converter for the named charset, for example
// "ISO-8859-1" or "shift_jis".
func (l *Library) OpenConverter(name string) (*Converter, error) {
	status := []int32{0}
	h := l.fn.openConverter(name, status)
	if err := l.statusErr("ucnv_open", status[0]); err != nil {
		return nil, err
	}
	return &Converter{lib: l, name: name, conv: h}, nil
}

// Name reports the charset the converter was opened for.
func (c *Converter) Name() string { return c.name }

// Decode converts charset bytes to a string.
func (c *Converter) Decode(src []byte) (string, error) {
	status := []int32{0}
	n := c.lib.fn.toUChars(c.conv, nil, 0, src, int32(len(src)), status)
	if status[0] > uZeroError && status[0] != uBufferOverflowError {
		return "", c.lib.statusErr("ucnv_toUChars", status[0])
	}
	if n <= 0 {
		return "", nil
	}
	dst := make([]uint16, n)
	status[0] = 0
	c.lib.fn.toUChars(c.conv, dst, n, src, int32(len(src)), status)
	if err := c.lib.statusErr("ucnv_toUChars", status[0]); err != nil {
		return "", err
	}
	return uchar.Decode(dst), nil
}

// Encode converts a string to charset bytes.
func (c *Converter) Encode(s string) ([]byte, error) {
	src := uchar.Encode(s)
	status := []int32{0}
	n := c.lib.fn.fromUChars(c.conv, nil, 0, src, int32(len(src)), status)
	if status[0] > uZeroError && status[0] != uBufferOverflowError {
		return nil, c.lib.statusErr("ucnv_fromUChars", status[0])
	}
	if n <= 0 {
		return []byte{}, nil
	}
	dst := make([]byte, n)
	status[0] = 0
	c.lib.fn.fromUChars(c.conv, dst, n, src, int32(len(src)), status)
	if err := c.lib.statusErr("ucnv_fromUChars", status[0]); err != nil {
		return nil, err
	}
	return dst, nil
}

// Close releases the converter. Further calls are no-ops.
func (c *Converter) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.lib.fn.closeConverter(c.conv)
	}
	return nil
}
