package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-spawner/internal/core"
)

func TestRenderScreenPlainMatchesString(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "live 3/5")
	s.DrawBox(core.NewRect(0, 1, 12, 2))

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("plain render differs:\n%q\n%q", got, want)
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(2, 1, "|||", core.ColorBrightBlue)
	s.SetColor(0, 0, '◆', core.ColorBrightWhite)

	out := RenderScreen(s)
	if !strings.Contains(out, "|||") || !strings.Contains(out, "◆") {
		t.Errorf("colored runs lost: %q", out)
	}
	if rows := strings.Count(out, "\n"); rows != 1 {
		t.Errorf("expected 2 rows, got %d separators", rows)
	}
}

func TestStyleFor(t *testing.T) {
	if _, ok := styleFor(core.ColorDefault); ok {
		t.Error("default color should be unstyled")
	}
	if _, ok := styleFor(core.ColorOrange); !ok {
		t.Error("orange should be styled")
	}
	if _, ok := styleFor(core.Color(200)); ok {
		t.Error("unknown color should be unstyled")
	}
}
