package view

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRasterCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newRasterCache(2)
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 1, 1))
	d := image.NewRGBA(image.Rect(0, 0, 1, 1))

	c.Set("a", a)
	c.Set("b", b)
	require.Same(t, a, c.Get("a"))

	c.Set("d", d)
	require.Equal(t, 2, c.Len())
	require.Nil(t, c.Get("b"))
	require.Same(t, a, c.Get("a"))
	require.Same(t, d, c.Get("d"))

	c.Set("a", b)
	require.Same(t, b, c.Get("a"))
	require.Equal(t, 2, c.Len())

	c.Purge()
	require.Zero(t, c.Len())
	require.Nil(t, c.Get("a"))
}
