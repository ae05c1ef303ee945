package icu

import (
	"fmt"
	"sync/atomic"

	"github.com/locgo/locgo/core"
	"github.com/locgo/locgo/internal/uchar"
)

// Collation attributes, mirroring UColAttribute.
type Attribute int32

const (
	FrenchCollation   Attribute = 0
	AlternateHandling Attribute = 1
	CaseFirst         Attribute = 2
	CaseLevel         Attribute = 3
	NormalizationMode Attribute = 4
	Strength          Attribute = 5
	NumericCollation  Attribute = 7
)

// Attribute values, mirroring UColAttributeValue.
type AttributeValue int32

const (
	Default      AttributeValue = -1
	Primary      AttributeValue = 0
	Secondary    AttributeValue = 1
	Tertiary     AttributeValue = 2
	Quaternary   AttributeValue = 3
	Identical    AttributeValue = 15
	Off          AttributeValue = 16
	On           AttributeValue = 17
	Shifted      AttributeValue = 20
	NonIgnorable AttributeValue = 21
	LowerFirst   AttributeValue = 24
	UpperFirst   AttributeValue = 25
)

// Storage for a UCharIterator. The C struct is a fixed block of
// pointers and ints; 512 bytes clears every supported version.
const iterStorageSize = 512

// Collator wraps an open UCollator. It satisfies core.Collator. Safe
// for concurrent comparison calls; Close is idempotent.
type Collator struct {
	lib    *Library
	coll   uintptr
	closed atomic.Bool
}

// Version reports the collator's tailoring version, the value recorded
// alongside persistent data to detect drift.
func (c *Collator) Version() string {
	info := make([]byte, versionInfoLen)
	c.lib.fn.collVersion(c.coll, info)
	return c.lib.versionString(info)
}

// UCAVersion reports the UCA version the collator implements.
func (c *Collator) UCAVersion() (string, bool) {
	info := make([]byte, versionInfoLen)
	c.lib.fn.collUCAVersion(c.coll, info)
	return c.lib.versionString(info), true
}

// SetAttribute adjusts a collation attribute, such as numeric ordering.
func (c *Collator) SetAttribute(attr Attribute, value AttributeValue) error {
	status := []int32{0}
	c.lib.fn.setAttribute(c.coll, int32(attr), int32(value), status)
	return c.lib.statusErr("ucol_setAttribute", status[0])
}

// Compare orders a against b, returning a negative, zero, or positive
// result. The UTF-8 entry point avoids a transcoding round trip.
func (c *Collator) Compare(a, b string) (int, error) {
	status := []int32{0}
	r := c.lib.fn.strcollUTF8(c.coll, a, int32(len(a)), b, int32(len(b)), status)
	if err := c.lib.statusErr("ucol_strcollUTF8", status[0]); err != nil {
		return 0, err
	}
	return int(r), nil
}

// SortKey computes the binary sort key for s. Keys from the same
// collator compare bytewise in collation order.
func (c *Collator) SortKey(s string) ([]byte, error) {
	src := uchar.Encode(s)
	n := c.lib.fn.getSortKey(c.coll, src, int32(len(src)), nil, 0)
	if n <= 0 {
		return nil, fmt.Errorf("icu: ucol_getSortKey: preflight failed for %d code units", len(src))
	}
	dst := make([]byte, n)
	got := c.lib.fn.getSortKey(c.coll, src, int32(len(src)), dst, n)
	if got != n {
		return nil, fmt.Errorf("icu: ucol_getSortKey: wrote %d of %d bytes", got, n)
	}
	return dst, nil
}

// SortKeyParts returns an incremental sort key iterator over s. The
// returned iterator keeps the collator's native state and must not
// outlive the collator.
func (c *Collator) SortKeyParts(s string) (core.KeyIter, error) {
	src := make([]byte, len(s))
	copy(src, s)
	it := &keyIter{
		lib:   c.lib,
		coll:  c.coll,
		iter:  make([]byte, iterStorageSize),
		src:   src,
		state: make([]uint32, 2),
	}
	c.lib.fn.iterSetUTF8(it.iter, it.src, int32(len(it.src)))
	return it, nil
}

// Close releases the collator. Further calls are no-ops.
func (c *Collator) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.lib.fn.closeCollator(c.coll)
	}
	return nil
}

// keyIter drives ucol_nextSortKeyPart. The src slice keeps the UTF-8
// text alive for the native iterator, which holds a pointer into it.
type keyIter struct {
	lib   *Library
	coll  uintptr
	iter  []byte
	src   []byte
	state []uint32
	done  bool
}

// Next fills dst with the next chunk of the sort key. A chunk shorter
// than dst ends the key; a key whose length is an exact multiple of
// len(dst) therefore takes one extra call that yields zero bytes, which
// matches the native iterator's own contract.
func (it *keyIter) Next(dst []byte) (int, bool, error) {
	if it.done {
		return 0, true, nil
	}
	status := []int32{0}
	n := it.lib.fn.nextSortKeyPart(it.coll, it.iter, it.state, dst, int32(len(dst)), status)
	if err := it.lib.statusErr("ucol_nextSortKeyPart", status[0]); err != nil {
		return 0, false, err
	}
	if int(n) < len(dst) {
		it.done = true
	}
	return int(n), it.done, nil
}
