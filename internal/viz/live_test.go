package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dcmlab/internal/machine"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResetRestoresLaunchState(t *testing.T) {
	s := machine.NewState()
	s.SetFluxDensity(1.2)
	s.SetSpeed(30)
	m := NewModel(s, 50, 10)

	nm, _ := m.Update(keyMsg('k')) // bump the selected flux slider
	m = nm.(Model)
	if m.state.FluxDensity() == 1.2 {
		t.Fatal("adjust did not move flux")
	}

	nm, _ = m.Update(keyMsg('r'))
	m = nm.(Model)
	if got := m.state.FluxDensity(); got != 1.2 {
		t.Errorf("flux after reset = %v, want the launch value 1.2", got)
	}
	if got := m.state.Speed(); got != 30 {
		t.Errorf("speed after reset = %v, want the launch value 30", got)
	}
	if m.theta != 0 {
		t.Errorf("theta after reset = %v, want 0", m.theta)
	}
}

func TestStatusNoteExpires(t *testing.T) {
	m := NewModel(machine.NewState(), 50, 10)
	m.status = "saved frame.svg"
	m.statusLeft = 2

	tick := TickMsg(time.Now())
	nm, _ := m.Update(tick)
	m = nm.(Model)
	if m.status == "" {
		t.Fatal("status cleared a tick early")
	}
	nm, _ = m.Update(tick)
	m = nm.(Model)
	if m.status != "" {
		t.Errorf("status %q still shown after its ticks ran out", m.status)
	}
}

func TestViewCarriesPoleLegend(t *testing.T) {
	legend := poleLegend()
	if !strings.Contains(legend, "north") || !strings.Contains(legend, "south") {
		t.Fatalf("legend %q missing a pole", legend)
	}
	m := NewModel(machine.NewState(), 50, 10)
	view := m.View()
	if !strings.Contains(view, "north") || !strings.Contains(view, "south") {
		t.Error("view does not show the pole legend")
	}
}
