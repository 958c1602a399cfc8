package render

import "github.com/vovakirdan/tui-glider/internal/core"

// Style describes how a batch of draw operations is painted. Operations
// sharing a style are issued together so the underlying surface switches
// styles as rarely as possible.
type Style struct {
	Color core.Color
}

type opKind int

const (
	opFill opKind = iota
	opHLine
	opVLine
	opText
	opGlyph
)

// drawOp is one deferred drawing operation in screen-cell coordinates.
type drawOp struct {
	kind  opKind
	x, y  int
	w, h  int
	r     rune
	text  string
	style Style
}

// DrawBatch accumulates typed draw operations and issues them grouped by
// style. Operation order is preserved within each style group; groups are
// issued in first-seen style order.
type DrawBatch struct {
	ops []drawOp
}

// NewDrawBatch creates an empty batch.
func NewDrawBatch() *DrawBatch {
	return &DrawBatch{ops: make([]drawOp, 0, 64)}
}

// FillRect queues a filled rectangle of the given rune.
func (b *DrawBatch) FillRect(x, y, w, h int, r rune, style Style) {
	b.ops = append(b.ops, drawOp{kind: opFill, x: x, y: y, w: w, h: h, r: r, style: style})
}

// HLine queues a horizontal line of the given rune.
func (b *DrawBatch) HLine(x, y, length int, r rune, style Style) {
	b.ops = append(b.ops, drawOp{kind: opHLine, x: x, y: y, w: length, r: r, style: style})
}

// VLine queues a vertical line of the given rune.
func (b *DrawBatch) VLine(x, y, length int, r rune, style Style) {
	b.ops = append(b.ops, drawOp{kind: opVLine, x: x, y: y, h: length, r: r, style: style})
}

// Text queues a text run starting at (x, y).
func (b *DrawBatch) Text(x, y int, text string, style Style) {
	b.ops = append(b.ops, drawOp{kind: opText, x: x, y: y, text: text, style: style})
}

// Glyph queues a single rune at (x, y).
func (b *DrawBatch) Glyph(x, y int, r rune, style Style) {
	b.ops = append(b.ops, drawOp{kind: opGlyph, x: x, y: y, r: r, style: style})
}

// Len returns the number of queued operations.
func (b *DrawBatch) Len() int {
	return len(b.ops)
}

// Clear discards all queued operations; call after each presented frame.
func (b *DrawBatch) Clear() {
	b.ops = b.ops[:0]
}

// Execute issues all queued operations onto dst, grouped by style.
// Grouping minimizes style switches on the surface while keeping the
// relative order of operations that share a style.
func (b *DrawBatch) Execute(dst *core.Screen) {
	seen := make(map[Style]bool, 4)
	order := make([]Style, 0, 4)
	for _, op := range b.ops {
		if !seen[op.style] {
			seen[op.style] = true
			order = append(order, op.style)
		}
	}

	for _, style := range order {
		for _, op := range b.ops {
			if op.style != style {
				continue
			}
			b.issue(dst, op)
		}
	}
}

// issue paints a single operation.
func (b *DrawBatch) issue(dst *core.Screen, op drawOp) {
	c := op.style.Color
	switch op.kind {
	case opFill:
		dst.FillRect(op.x, op.y, op.w, op.h, op.r, c)
	case opHLine:
		dst.DrawHLine(op.x, op.y, op.w, op.r, c)
	case opVLine:
		dst.DrawVLine(op.x, op.y, op.h, op.r, c)
	case opText:
		dst.DrawText(op.x, op.y, op.text, c)
	case opGlyph:
		dst.Set(op.x, op.y, op.r, c)
	}
}

// StyleRuns returns the number of style switches Execute will perform,
// which equals the number of distinct styles in the batch.
func (b *DrawBatch) StyleRuns() int {
	seen := make(map[Style]bool, 4)
	for _, op := range b.ops {
		seen[op.style] = true
	}
	return len(seen)
}
