package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '#', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' in green", cell)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should use ColorDefault")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.fillAll('X')
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Clear left %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

// fillAll writes the rune into every cell.
func (s *Screen) fillAll(r rune) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.Set(x, y, r)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should place runes sequentially")
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Errorf("DrawText clipping wrong, got %q at (9,1)", s.Get(9, 1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve content that still fits")
	}

	s.Resize(8, 6)
	if s.Get(1, 1) != 'A' {
		t.Error("growing Resize should preserve content")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() rows wrong: %q", lines)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawRectColored(NewRect(2, 1, 3, 2), '#', ColorRed)

	for y := 1; y < 3; y++ {
		for x := 2; x < 5; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '#' || cell.Color != ColorRed {
				t.Fatalf("DrawRectColored missed (%d, %d): %+v", x, y, cell)
			}
		}
	}
	if s.Get(5, 1) != ' ' {
		t.Error("DrawRectColored should not draw outside the rect")
	}
}
