package view_test

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/choreo/pkg/choreo/view"
	"github.com/stretchr/testify/require"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#0000ff"/>
</svg>`

func TestIconRasterize(t *testing.T) {
	icon, err := view.ParseIconBytes([]byte(square))
	require.NoError(t, err)

	img := icon.Rasterize(20, 20)
	require.NotNil(t, img)
	require.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	require.Greater(t, img.RGBAAt(10, 10).B, uint8(200))

	require.Same(t, img, icon.Rasterize(20, 20), "same size comes from the cache")
	require.Nil(t, icon.Rasterize(0, 5))

	view.PurgeIconCache()
	require.NotSame(t, img, icon.Rasterize(20, 20))
}

func TestLoadIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.svg")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))

	icon, err := view.LoadIcon(path)
	require.NoError(t, err)

	v := view.New("icon", view.Rect{W: 8, H: 8})
	v.SetIcon(icon)
	require.Same(t, icon, v.Icon())

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	v.Render(img)
	require.Greater(t, img.RGBAAt(4, 4).B, uint8(200))

	_, err = view.LoadIcon(filepath.Join(t.TempDir(), "missing.svg"))
	require.Error(t, err)
}
