package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	yel = mino.BlockSolidYellow
	mag = mino.BlockSolidMagenta
)

func TestClearRows(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		locked  map[mino.Point]mino.Block
		cleared int
		want    map[mino.Point]mino.Block
	}{
		{
			// ....
			// mmm.
			// yyyy <- cleared, the row above drops onto it
			name: "single full row",
			w:    4, h: 3,
			locked: map[mino.Point]mino.Block{
				{X: 0, Y: 1}: mag, {X: 1, Y: 1}: mag, {X: 2, Y: 1}: mag,
				{X: 0, Y: 2}: yel, {X: 1, Y: 2}: yel, {X: 2, Y: 2}: yel, {X: 3, Y: 2}: yel,
			},
			cleared: 1,
			want: map[mino.Point]mino.Block{
				{X: 0, Y: 2}: mag, {X: 1, Y: 2}: mag, {X: 2, Y: 2}: mag,
			},
		},
		{
			// ....
			// .m..
			// yyyy <- cleared
			// m...
			// yyyy <- cleared
			name: "rows apart",
			w:    4, h: 5,
			locked: map[mino.Point]mino.Block{
				{X: 1, Y: 1}: mag,
				{X: 0, Y: 2}: yel, {X: 1, Y: 2}: yel, {X: 2, Y: 2}: yel, {X: 3, Y: 2}: yel,
				{X: 0, Y: 3}: mag,
				{X: 0, Y: 4}: yel, {X: 1, Y: 4}: yel, {X: 2, Y: 4}: yel, {X: 3, Y: 4}: yel,
			},
			cleared: 2,
			want: map[mino.Point]mino.Block{
				{X: 0, Y: 4}: mag,
				{X: 1, Y: 3}: mag,
			},
		},
		{
			// .m..
			// yyyy <- cleared
			// yyyy <- cleared
			name: "adjacent rows",
			w:    4, h: 3,
			locked: map[mino.Point]mino.Block{
				{X: 1, Y: 0}: mag,
				{X: 0, Y: 1}: yel, {X: 1, Y: 1}: yel, {X: 2, Y: 1}: yel, {X: 3, Y: 1}: yel,
				{X: 0, Y: 2}: yel, {X: 1, Y: 2}: yel, {X: 2, Y: 2}: yel, {X: 3, Y: 2}: yel,
			},
			cleared: 2,
			want: map[mino.Point]mino.Block{
				{X: 1, Y: 2}: mag,
			},
		},
		{
			name: "nothing to clear",
			w:    4, h: 3,
			locked: map[mino.Point]mino.Block{
				{X: 0, Y: 1}: mag, {X: 3, Y: 1}: mag,
				{X: 0, Y: 2}: yel, {X: 1, Y: 2}: yel, {X: 2, Y: 2}: yel,
			},
			cleared: 0,
			want: map[mino.Point]mino.Block{
				{X: 0, Y: 1}: mag, {X: 3, Y: 1}: mag,
				{X: 0, Y: 2}: yel, {X: 1, Y: 2}: yel, {X: 2, Y: 2}: yel,
			},
		},
		{
			name:    "empty",
			w:       4,
			h:       3,
			locked:  map[mino.Point]mino.Block{},
			cleared: 0,
			want:    map[mino.Point]mino.Block{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mino.NewGrid(tt.w, tt.h)
			g.Update(tt.locked, nil, true)

			assert.Equal(t, tt.cleared, ClearRows(g, tt.locked))
			assert.Equal(t, tt.want, tt.locked)
		})
	}
}
