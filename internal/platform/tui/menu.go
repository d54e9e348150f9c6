package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceHistory
	ChoiceQuit
)

func (c MenuChoice) String() string {
	switch c {
	case ChoiceNewGame:
		return "New game"
	case ChoiceHistory:
		return "Match history"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the start menu. It never quits the program itself; the
// owner reads Chosen after each update.
type MenuModel struct {
	items     []MenuChoice
	cursor    int
	width     int
	height    int
	player    string
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates the start menu. History is offered only when
// matches are being recorded.
func NewMenuModel(width, height int, player string, withHistory bool) MenuModel {
	items := []MenuChoice{ChoiceNewGame}
	if withHistory {
		items = append(items, ChoiceHistory)
	}
	items = append(items, ChoiceQuit)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		player:    player,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.chosen = ChoiceQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = m.items[m.cursor]
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B A T T L E S H I P"), m.width))
	b.WriteString("\n\n")
	if m.player != "" {
		b.WriteString(centerText(fmt.Sprintf("Welcome aboard, %s", m.player), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.String(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
