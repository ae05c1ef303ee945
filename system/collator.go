package system

import (
	"golang.org/x/text/collate"

	"github.com/locgo/locgo/core"
)

// collator wraps an x/text collator. Not safe for concurrent use; the
// provider contract hands each caller its own instance.
type collator struct {
	coll    *collate.Collator
	buf     collate.Buffer
	version string
}

func (c *collator) Version() string { return c.version }

func (c *collator) UCAVersion() (string, bool) { return "", false }

func (c *collator) Compare(a, b string) (int, error) {
	return c.coll.CompareString(a, b), nil
}

func (c *collator) SortKey(s string) ([]byte, error) {
	c.buf.Reset()
	key := c.coll.KeyFromString(&c.buf, s)
	out := make([]byte, len(key))
	copy(out, key)
	return out, nil
}

func (c *collator) SortKeyParts(string) (core.KeyIter, error) {
	return nil, core.ErrUnsupported
}

func (c *collator) Close() error {
	c.coll = nil
	return nil
}
