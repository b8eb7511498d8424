package comparison

// Character-level alignment of one engine's text against the shared reference.
// The opcode computation follows the classic LCS sequence-diff family:
// contiguous runs of matched characters become equal blocks, and the gaps
// between them become replace, delete or insert blocks.

type opTag int

const (
	opEqual opTag = iota
	opReplace
	opDelete
	opInsert
)

type opcode struct {
	tag            opTag
	i1, i2, j1, j2 int
}

// Align computes the ordered diff segments between the reference text and one
// engine's candidate text. Segment positions are rune offsets into the
// reference; the position ranges of the non-insert segments partition the
// reference, and insert segments are zero-width anchors.
func Align(reference, candidate, engineName string) []Segment {
	ref := []rune(reference)
	cand := []rune(candidate)

	segments := []Segment{}
	position := 0

	for _, op := range opcodes(ref, cand) {
		refText := string(ref[op.i1:op.i2])
		candText := string(cand[op.j1:op.j2])

		switch op.tag {
		case opEqual:
			segments = append(segments, Segment{
				Text:  refText,
				Type:  SegmentMatch,
				Start: position,
				End:   position + (op.i2 - op.i1),
				EngineTexts: map[string]string{
					ReferenceKey: refText,
					engineName:   candText,
				},
			})
			position += op.i2 - op.i1

		case opReplace:
			segments = append(segments, Segment{
				Text:  refText,
				Type:  SegmentMajorDiff,
				Start: position,
				End:   position + (op.i2 - op.i1),
				EngineTexts: map[string]string{
					ReferenceKey: refText,
					engineName:   candText,
				},
			})
			position += op.i2 - op.i1

		case opDelete:
			segments = append(segments, Segment{
				Text:  refText,
				Type:  SegmentMinorDiff,
				Start: position,
				End:   position + (op.i2 - op.i1),
				EngineTexts: map[string]string{
					ReferenceKey: refText,
					engineName:   "",
				},
			})
			position += op.i2 - op.i1

		case opInsert:
			segments = append(segments, Segment{
				Text:  "",
				Type:  SegmentMinorDiff,
				Start: position,
				End:   position,
				EngineTexts: map[string]string{
					ReferenceKey: "",
					engineName:   candText,
				},
			})
		}
	}

	return segments
}

// opcodes derives coalesced edit operations from the longest common
// subsequence of a and b.
func opcodes(a, b []rune) []opcode {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	var ops []opcode

	emitGap := func(i1, i2, j1, j2 int) {
		switch {
		case i1 < i2 && j1 < j2:
			ops = append(ops, opcode{opReplace, i1, i2, j1, j2})
		case i1 < i2:
			ops = append(ops, opcode{opDelete, i1, i2, j1, j2})
		case j1 < j2:
			ops = append(ops, opcode{opInsert, i1, i2, j1, j2})
		}
	}

	i, j := 0, 0
	for _, block := range matchingBlocks(a, b) {
		emitGap(i, block.i, j, block.j)
		ops = append(ops, opcode{opEqual, block.i, block.i + block.size, block.j, block.j + block.size})
		i, j = block.i+block.size, block.j+block.size
	}
	emitGap(i, len(a), j, len(b))

	return ops
}

type matchBlock struct {
	i, j, size int
}

// matchingBlocks returns the maximal runs of consecutively matched character
// pairs along one longest common subsequence of a and b, in order. The LCS is
// recovered with Hirschberg's divide and conquer, so memory stays linear in
// the text lengths; whole-document OCR transcripts must never materialize a
// quadratic table.
func matchingBlocks(a, b []rune) []matchBlock {
	var blocks []matchBlock
	emit := func(i, j int) {
		if len(blocks) > 0 {
			last := &blocks[len(blocks)-1]
			if last.i+last.size == i && last.j+last.size == j {
				last.size++
				return
			}
		}
		blocks = append(blocks, matchBlock{i: i, j: j, size: 1})
	}
	lcsPairs(a, b, 0, 0, emit)
	return blocks
}

// lcsPairs emits the matched index pairs of one longest common subsequence of
// a and b, in order. ai and bj are the offsets of a and b in the full texts.
func lcsPairs(a, b []rune, ai, bj int, emit func(i, j int)) {
	if len(a) == 0 || len(b) == 0 {
		return
	}

	if len(a) == 1 {
		for j, r := range b {
			if r == a[0] {
				emit(ai, bj+j)
				return
			}
		}
		return
	}

	// Split a in half and find the b split point that maximizes the combined
	// LCS of the two halves; first maximum wins so the pairing is stable.
	mid := len(a) / 2
	forward := lcsRow(a[:mid], b)
	backward := lcsRowReverse(a[mid:], b)

	split, best := 0, -1
	for k := 0; k <= len(b); k++ {
		if sum := forward[k] + backward[k]; sum > best {
			split, best = k, sum
		}
	}

	lcsPairs(a[:mid], b[:split], ai, bj, emit)
	lcsPairs(a[mid:], b[split:], ai+mid, bj+split, emit)
}

// lcsRow returns row[k] = LCS length of a and b[:k], in O(len(b)) memory.
func lcsRow(a, b []rune) []int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				curr[j+1] = prev[j] + 1
			} else if prev[j+1] >= curr[j] {
				curr[j+1] = prev[j+1]
			} else {
				curr[j+1] = curr[j]
			}
		}
		prev, curr = curr, prev
	}

	return prev
}

// lcsRowReverse returns row[k] = LCS length of a and b[k:], in O(len(b))
// memory.
func lcsRowReverse(a, b []rune) []int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				curr[j] = prev[j+1] + 1
			} else if prev[j] >= curr[j+1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j+1]
			}
		}
		prev, curr = curr, prev
	}

	return prev
}
