package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerStartsAtOnePage(t *testing.T) {
	p := NewPager(24)
	assert.Equal(t, 24, p.Visible())
}

func TestPagerMoreGrowsMonotonically(t *testing.T) {
	p := NewPager(10)
	p.More()
	p.More()
	assert.Equal(t, 30, p.Visible())
}

func TestPagerWindowClampsToTotal(t *testing.T) {
	p := NewPager(10)
	p.More()
	assert.Equal(t, 7, p.Window(7))
	assert.Equal(t, 20, p.Window(100))
	assert.Equal(t, 0, p.Window(0))
}

func TestPagerResetAfterGrowth(t *testing.T) {
	p := NewPager(10)
	p.More()
	p.More()
	p.Reset()
	assert.Equal(t, 10, p.Visible())
}

func TestPagerRepeatedMoreIsBoundedByTotal(t *testing.T) {
	p := NewPager(5)
	for i := 0; i < 100; i++ {
		p.More()
	}
	assert.Equal(t, 12, p.Window(12))
}

func TestPagerDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPager(0).Visible())
}
