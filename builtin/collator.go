package builtin

import (
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/locgo/locgo/core"
)

// UnicodeVersion is the Unicode data version the builtin provider is
// compiled against.
const UnicodeVersion = unicode.Version

// CollatorVersion is the canonical version string builtin collators
// report. Codepoint ordering is stable across Unicode releases, but the
// version tracks the table data so stored versions surface drift in the
// casing behavior recorded alongside collations.
const CollatorVersion = Name + "-" + UnicodeVersion

type collator struct {
	version string
	closed  atomic.Bool
}

func (c *collator) Version() string { return c.version }

func (c *collator) UCAVersion() (string, bool) { return "", false }

// Compare orders by codepoint; for UTF-8 input that is byte order.
func (c *collator) Compare(a, b string) (int, error) {
	return strings.Compare(a, b), nil
}

// SortKey is the text itself: bytewise comparison of UTF-8 is codepoint
// order already.
func (c *collator) SortKey(s string) ([]byte, error) {
	key := make([]byte, len(s)+1)
	copy(key, s)
	return key, nil
}

func (c *collator) SortKeyParts(string) (core.KeyIter, error) {
	return nil, core.ErrUnsupported
}

func (c *collator) Close() error {
	c.closed.Store(true)
	return nil
}
