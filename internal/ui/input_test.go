package ui

import (
	"testing"

	"github.com/samdwyer/gridsnake/internal/grid"
)

func TestInputBufferKeepsOnlyLatest(t *testing.T) {
	var b InputBuffer

	b.Offer(grid.Up)
	b.Offer(grid.Left)

	d, ok := b.Poll()
	if !ok || d != grid.Left {
		t.Errorf("Poll() = %v, %v; want left, true (latest intent wins)", d, ok)
	}
}

func TestInputBufferConsumesOnPoll(t *testing.T) {
	var b InputBuffer

	b.Offer(grid.Down)
	if _, ok := b.Poll(); !ok {
		t.Fatal("first Poll() should return the buffered direction")
	}
	if _, ok := b.Poll(); ok {
		t.Error("second Poll() should find the buffer empty")
	}
}

func TestInputBufferEmpty(t *testing.T) {
	var b InputBuffer
	if _, ok := b.Poll(); ok {
		t.Error("Poll() on a fresh buffer should report no input")
	}
}
