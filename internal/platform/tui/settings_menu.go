package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mergetile/internal/config"
	"github.com/vovakirdan/mergetile/internal/core"
)

// boardSizes offered in the size sub-menu.
var boardSizes = []int{4, 5, 6, 7, 8, 9, 10, 12}

// SetupSelection holds the user's choice from the setup menu.
type SetupSelection struct {
	Preset config.DifficultyPreset
	Size   int // 0 = use the preset's board size
}

// SetupModel lets users choose a difficulty preset or a custom board size
// before starting a game.
type SetupModel struct {
	cursor         int
	sizeCursor     int
	inSizeSelect   bool
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      SetupSelection
	choosing       bool
	quitting       bool
	back           bool
	openScoreboard bool
}

// NewSetupModel creates a new setup menu model.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		cursor:    1, // Default to Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inSizeSelect {
		return m.handleSizeSelectKey(action)
	}
	return m.handlePresetKey(action)
}

func (m SetupModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 3 { // Easy, Normal, Hard, Board size...
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = SetupSelection{Preset: config.DifficultyEasy}
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection = SetupSelection{Preset: config.DifficultyNormal}
			return m, tea.Quit
		case 2:
			m.choosing = false
			m.selection = SetupSelection{Preset: config.DifficultyHard}
			return m, tea.Quit
		case 3:
			m.inSizeSelect = true
			m.sizeCursor = 4 // 8x8
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleSizeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.sizeCursor > 0 {
			m.sizeCursor--
		}
	case MenuActionDown:
		if m.sizeCursor < len(boardSizes)-1 {
			m.sizeCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = SetupSelection{
			Preset: config.DifficultyNormal,
			Size:   boardSizes[m.sizeCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inSizeSelect = false
	}

	return m, nil
}

// View renders the preset/size selection.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inSizeSelect {
		return m.viewSizeSelect()
	}
	return m.viewPresetSelect()
}

func (m SetupModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("M E R G E   T I L E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	presets := []string{
		"Easy   (9x9, tiles 2..8)",
		"Normal (8x8, tiles 2..16)",
		"Hard   (7x7, tiles 2..32)",
		"Board size...",
	}

	for i, preset := range presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, preset), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewSizeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("BOARD SIZE", m.width))
	b.WriteString("\n\n")

	for i, size := range boardSizes {
		cursor := "  "
		if i == m.sizeCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%dx%d", cursor, size, size), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// ResolveSetup layers a setup menu selection over the loaded config file
// and returns the normalized result.
func ResolveSetup(base config.MergeConfig, sel SetupSelection) config.MergeConfig {
	cfg := base
	config.ApplyMergePreset(&cfg, sel.Preset)
	if sel.Size > 0 {
		cfg.Board.Size = sel.Size
	}
	cfg.Normalize()
	return cfg
}

// SetupResult holds the outcome of running the setup menu.
type SetupResult struct {
	Selection       *SetupSelection
	WantsScoreboard bool
	Quit            bool
}

// RunSetupMenu runs the setup menu and returns the selection.
func RunSetupMenu(cfg core.RuntimeConfig) (SetupResult, error) {
	model := NewSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Quit: true}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Quit: true}, nil
	}

	if m.WantsScoreboard() {
		return SetupResult{WantsScoreboard: true}, nil
	}
	if m.IsQuitting() || m.WantsBack() {
		return SetupResult{Quit: true}, nil
	}

	return SetupResult{Selection: m.Selected()}, nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
