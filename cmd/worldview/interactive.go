package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CLOEI/gtworld-r/catalog"
	"github.com/CLOEI/gtworld-r/render"
	"github.com/CLOEI/gtworld-r/world"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E8B57")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	viewCols = 32
	viewRows = 14
)

type inspectorState int

const (
	stateBrowse inspectorState = iota
	stateJump
)

type inspectorModel struct {
	err       error
	w         *world.World
	cat       *catalog.Memory
	colors    *render.Renderer
	jump      textinput.Model
	itemsFile string
	worldFile string
	cursorX   uint32
	cursorY   uint32
	state     inspectorState
}

type worldLoadedMsg struct {
	err error
	w   *world.World
	cat *catalog.Memory
}

func newInspectorModel(itemsFile, worldFile string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "x,y"
	ti.Prompt = "Go to: "
	ti.Width = 16
	return &inspectorModel{
		itemsFile: itemsFile,
		worldFile: worldFile,
		jump:      ti,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadWorld
}

func (m *inspectorModel) loadWorld() tea.Msg {
	cat, err := catalog.LoadYAMLFile(m.itemsFile)
	if err != nil {
		return worldLoadedMsg{err: err}
	}
	data, err := os.ReadFile(m.worldFile)
	if err != nil {
		return worldLoadedMsg{err: err}
	}
	w := world.New(cat)
	if err := w.Parse(data); err != nil {
		return worldLoadedMsg{err: err}
	}
	return worldLoadedMsg{w: w, cat: cat}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateJump {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateBrowse
				m.jump.Blur()
			case "enter":
				m.applyJump()
				m.state = stateBrowse
				m.jump.Blur()
			default:
				var cmd tea.Cmd
				m.jump, cmd = m.jump.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
			}
		case "down", "j":
			if m.w != nil && m.cursorY+1 < m.w.Height {
				m.cursorY++
			}
		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.w != nil && m.cursorX+1 < m.w.Width {
				m.cursorX++
			}

		case "g":
			m.state = stateJump
			m.jump.SetValue("")
			m.jump.Focus()
			return m, textinput.Blink
		}

	case worldLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.w = msg.w
		m.cat = msg.cat
		m.colors = render.New(msg.cat)
	}

	return m, nil
}

func (m *inspectorModel) applyJump() {
	parts := strings.SplitN(m.jump.Value(), ",", 2)
	if len(parts) != 2 || m.w == nil {
		return
	}
	x, errX := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	y, errY := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if errX != nil || errY != nil {
		return
	}
	if uint32(x) < m.w.Width && uint32(y) < m.w.Height {
		m.cursorX = uint32(x)
		m.cursorY = uint32(y)
	}
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.w == nil {
		return "Loading world..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("World Inspector"))
	b.WriteString(fmt.Sprintf(" %s  %dx%d  weather %s\n\n",
		m.w.Name, m.w.Width, m.w.Height, m.w.CurrentWeather))

	b.WriteString(m.viewMap())
	b.WriteString("\n")
	b.WriteString(m.viewTile())
	b.WriteString("\n")

	if m.state == stateJump {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc back"))
	} else {
		b.WriteString(helpStyle.Render("←↓↑→ move • g go to • q quit"))
	}
	return b.String()
}

// viewMap draws a window of the grid around the cursor, one colored cell
// per tile.
func (m *inspectorModel) viewMap() string {
	startX := clampStart(m.cursorX, m.w.Width, viewCols)
	startY := clampStart(m.cursorY, m.w.Height, viewRows)

	var b strings.Builder
	for y := startY; y < startY+viewRows && y < m.w.Height; y++ {
		for x := startX; x < startX+viewCols && x < m.w.Width; x++ {
			tile, ok := m.w.GetTile(x, y)
			if !ok {
				b.WriteString("??")
				continue
			}
			if x == m.cursorX && y == m.cursorY {
				b.WriteString(cursorStyle.Render("[]"))
				continue
			}
			c := m.colors.TileColor(tile)
			cell := lipgloss.NewStyle().
				Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
			b.WriteString(cell.Render("  "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *inspectorModel) viewTile() string {
	tile, ok := m.w.GetTile(m.cursorX, m.cursorY)
	if !ok {
		return errorStyle.Render("tile out of bounds")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d, %d)\n",
		labelStyle.Render("Tile"), m.cursorX, m.cursorY)
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Foreground:"),
		valueStyle.Render(m.itemLabel(tile.ForegroundItemID)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Background:"),
		valueStyle.Render(m.itemLabel(tile.BackgroundItemID)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Variant:"),
		valueStyle.Render(tile.Type.Kind().String()))
	if names := flagNames(tile.Flags); len(names) > 0 {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render("Flags:"),
			valueStyle.Render(strings.Join(names, ", ")))
	}
	if tile.Type.Kind() != world.KindBasic {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render("Payload:"),
			fmt.Sprintf("%+v", tile.Type))
	}
	return b.String()
}

func (m *inspectorModel) itemLabel(id uint16) string {
	item, ok := m.cat.Get(uint32(id))
	if !ok {
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("%s (#%d)", item.Name, id)
}

func flagNames(f world.TileFlags) []string {
	var names []string
	for _, e := range []struct {
		set  bool
		name string
	}{
		{f.HasExtraData, "extra-data"},
		{f.HasParent, "parent"},
		{f.WasSpliced, "spliced"},
		{f.WillSpawnSeedsToo, "spawns-seeds"},
		{f.IsSeedling, "seedling"},
		{f.FlippedX, "flipped"},
		{f.IsOn, "on"},
		{f.IsOpenToPublic, "public"},
		{f.BgIsOn, "bg-on"},
		{f.FgAltMode, "fg-alt"},
		{f.IsWet, "wet"},
		{f.Glued, "glued"},
		{f.OnFire, "on-fire"},
		{f.PaintedRed, "red"},
		{f.PaintedGreen, "green"},
		{f.PaintedBlue, "blue"},
	} {
		if e.set {
			names = append(names, e.name)
		}
	}
	return names
}

func clampStart(cursor, extent uint32, window uint32) uint32 {
	if extent <= window {
		return 0
	}
	half := window / 2
	if cursor < half {
		return 0
	}
	start := cursor - half
	if start+window > extent {
		start = extent - window
	}
	return start
}

func runInteractive(itemsFile, worldFile string) error {
	p := tea.NewProgram(newInspectorModel(itemsFile, worldFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
