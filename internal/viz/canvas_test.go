package viz

import (
	"strings"
	"testing"
)

func dotSet(c *Canvas, x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return int(c.Grid[y/4][x/2]-0x2800)&pixelMap[y%4][x%2] != 0
}

func countLit(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				n++
			}
		}
	}
	return n
}

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(3, 7)
	if !dotSet(c, 3, 7) {
		t.Error("dot (3,7) not lit after Set")
	}
	if dotSet(c, 2, 7) || dotSet(c, 3, 6) {
		t.Error("Set lit a neighboring dot")
	}
	c.Unset(3, 7)
	if dotSet(c, 3, 7) {
		t.Error("dot (3,7) still lit after Unset")
	}
	if c.Grid[1][1] != 0x2800 {
		t.Error("Unset did not restore the blank cell")
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(c.SubWidth(), 0)
	c.Set(0, c.SubHeight())
	if countLit(c) != 0 {
		t.Error("out of bounds Set lit a cell")
	}
}

func TestCanvasDotMarker(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Dot(4, 4)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !dotSet(c, 4+dx, 4+dy) {
				t.Errorf("marker dot (%d,%d) not lit", 4+dx, 4+dy)
			}
		}
	}
	if dotSet(c, 6, 4) {
		t.Error("marker bled outside its 3x3 block")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 4, 9, 4)
	for x := 0; x <= 9; x++ {
		if !dotSet(c, x, 4) {
			t.Errorf("horizontal line missing dot at x=%d", x)
		}
	}

	c.Clear()
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i <= 7; i++ {
		if !dotSet(c, i, i) {
			t.Errorf("diagonal line missing dot at (%d,%d)", i, i)
		}
	}
}

func TestDrawPolyline(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawPolyline([]int{0, 5, 5}, []int{0, 0, 5})
	if !dotSet(c, 3, 0) {
		t.Error("first segment not drawn")
	}
	if !dotSet(c, 5, 3) {
		t.Error("second segment not drawn")
	}
}

func TestCanvasClearAndString(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Set(0, 0)
	c.Clear()
	if countLit(c) != 0 {
		t.Error("Clear left lit cells")
	}
	s := c.String()
	if got := strings.Count(s, "\n"); got != 3 {
		t.Errorf("String has %d rows, want 3", got)
	}
	if strings.ContainsRune(s, ' ') {
		t.Error("blank canvas should render blank braille cells, not spaces")
	}
}
