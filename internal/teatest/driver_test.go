package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// counter counts pings and quits on q. Init schedules a slow tick.
type counter struct {
	pings int
	width int
}

func (c counter) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return pingMsg{} },
		tea.Tick(time.Second, func(time.Time) tea.Msg { return pingMsg{} }),
	)
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		c.pings++
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return c, tea.Quit
		case "p":
			return c, func() tea.Msg { return pingMsg{} }
		}
	}
	return c, nil
}

func (c counter) View() string {
	if c.pings > 0 {
		return "pinged"
	}
	return "waiting"
}

func TestDriver_DrainInitSkipsSlowCmds(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()

	assert.Equal(t, 1, d.Model.(counter).pings)
	assert.Equal(t, 80, d.Model.(counter).width)
	assert.Equal(t, 1, d.Dropped)
	assert.True(t, d.ViewContains("pinged"))
}

func TestDriver_KeyCmdsAreDrained(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('p')
	d.PressKey('p')
	assert.Equal(t, 2, d.Model.(counter).pings)
}

func TestDriver_QuitStopsFurtherSends(t *testing.T) {
	d := New(t, counter{})
	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.PressKey('p')
	assert.Equal(t, 0, d.Model.(counter).pings)
	assert.False(t, d.ViewContains("pinged"))
}
