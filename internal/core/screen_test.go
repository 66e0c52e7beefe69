package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(1, 2, '@', ColorPlayer)
	if c := s.GetCell(1, 2); c.Rune != '@' || c.Color != ColorPlayer {
		t.Errorf("GetCell(1, 2) = %+v, expected colored '@'", c)
	}

	// Out-of-bounds writes are dropped.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawTextColored(0, 0, "walls", ColorWall)
	s.Clear()

	if got := s.String(); strings.TrimSpace(got) != "" {
		t.Errorf("after Clear screen should be blank, got %q", got)
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(6, 3)
	if s.Row(0) != "abcd  " || s.Row(1) != "efgh  " || s.Row(2) != "      " {
		t.Errorf("grow lost content: %q", s.String())
	}

	s.Resize(2, 1)
	if s.String() != "ab" {
		t.Errorf("shrink = %q, expected %q", s.String(), "ab")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText wrote %q", got)
	}

	s.DrawText(18, 0, "Hello") // clipped to "He"
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorHUD)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorHUD {
		t.Error("DrawTextCentered should apply the color")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "█▒x")
	if s.Get(0, 0) != '█' || s.Get(1, 0) != '▒' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 1, "xxxxxxxxxx")
	s.DrawBox(NewRect(1, 0, 5, 3), ColorHUD)

	expected := []string{
		" ┌───┐    ",
		"x│   │xxxx",
		" └───┘    ",
	}
	for y, row := range expected {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawPanel(t *testing.T) {
	s := NewScreen(20, 7)
	s.DrawPanel([]string{"PAUSED", "P to resume"}, ColorHUD)

	out := s.String()
	if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "P to resume") {
		t.Errorf("panel text missing:\n%s", out)
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Errorf("panel border missing:\n%s", out)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	if got := s.String(); got != "A  \n  B" {
		t.Errorf("String() = %q", got)
	}
	if s.Row(5) != "   " {
		t.Error("out-of-range Row should be blank")
	}
}
