package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDefaultsLoadLazily(t *testing.T) {
	regular := Regular.Get()
	large := Large.Get()
	require.NotNil(t, regular)
	require.NotNil(t, large)

	assert.Greater(t, large.Metrics().Height, regular.Metrics().Height)
}

func TestLoadFontWithSize(t *testing.T) {
	const name FontName = "tiny"
	require.NoError(t, LoadFontWithSize(name, goregular.TTF, 6))
	assert.NotNil(t, name.Get())
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
