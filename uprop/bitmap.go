package uprop

// The membership bitmaps are three-level structures: a per-2048-codepoint
// index selects a block, a block holds 32 words, and a word holds 64
// membership bits. Identical blocks are shared, so the large unassigned
// stretches of the codepoint space all point at the zero block.

const (
	blockShift    = 11 // 2048 codepoints per block
	wordShift     = 6  // 64 codepoints per word
	wordsPerBlock = 1 << (blockShift - wordShift)
)

type bitmapBlock [wordsPerBlock]uint64

// Bitmap answers O(1) membership tests over the full codepoint space.
// It is immutable after construction.
type Bitmap struct {
	index  []uint16
	blocks []bitmapBlock
}

// Contains reports whether r is a member of the set.
func (b *Bitmap) Contains(r rune) bool {
	if r < 0 || r > MaxCodepoint {
		return false
	}
	blk := b.index[r>>blockShift]
	word := b.blocks[blk][(r>>wordShift)&(wordsPerBlock-1)]
	return word>>(uint32(r)&63)&1 != 0
}

// bitmapBuilder accumulates membership in a dense bit array, then
// compresses it into the shared-block form.
type bitmapBuilder struct {
	bits []uint64
}

func newBitmapBuilder() *bitmapBuilder {
	return &bitmapBuilder{bits: make([]uint64, (MaxCodepoint>>wordShift)+1)}
}

func (bb *bitmapBuilder) set(r rune) {
	bb.bits[r>>wordShift] |= 1 << (uint32(r) & 63)
}

func (bb *bitmapBuilder) setRange(lo, hi rune, stride rune) {
	for r := lo; r <= hi; r += stride {
		bb.set(r)
	}
}

func (bb *bitmapBuilder) build() *Bitmap {
	numBlocks := (int(MaxCodepoint) >> blockShift) + 1
	b := &Bitmap{
		index:  make([]uint16, numBlocks),
		blocks: []bitmapBlock{{}}, // block 0 stays all-zero
	}

	seen := map[bitmapBlock]uint16{{}: 0}
	for i := 0; i < numBlocks; i++ {
		var blk bitmapBlock
		base := i << (blockShift - wordShift)
		for w := 0; w < wordsPerBlock; w++ {
			if base+w < len(bb.bits) {
				blk[w] = bb.bits[base+w]
			}
		}
		id, ok := seen[blk]
		if !ok {
			id = uint16(len(b.blocks))
			b.blocks = append(b.blocks, blk)
			seen[blk] = id
		}
		b.index[i] = id
	}
	return b
}
