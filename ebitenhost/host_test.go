package ebitenhost

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/phanxgames/dnd"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   dnd.Color
		want color.RGBA
	}{
		{"opaque white", dnd.ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"transparent", dnd.Color{R: 1, G: 1, B: 1, A: 0}, color.RGBA{0, 0, 0, 0}},
		{"half alpha premultiplied", dnd.Color{R: 1, G: 0, B: 0, A: 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", dnd.Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toRGBA(tt.in))
		})
	}
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	g := NewGame(dnd.NewScene(), RunConfig{Width: 320, Height: 200})
	w, h := g.Layout(1024, 768)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)

	g = NewGame(dnd.NewScene(), RunConfig{})
	w, h = g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestHasTouch(t *testing.T) {
	ids := []ebiten.TouchID{3, 7}
	assert.True(t, hasTouch(ids, 7))
	assert.False(t, hasTouch(ids, 1))
	assert.False(t, hasTouch(nil, 1))
}
