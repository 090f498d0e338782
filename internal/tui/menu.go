package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem int

const (
	menuLike menuItem = iota
	menuComment
	menuShare
	menuAbout
	menuLicense
	menuTheme
	menuQuit
	menuItemCount
)

const (
	noticeLiked       = "Thanks, ZIKKY loves you too!"
	noticeUnliked     = "Like removed"
	noticeCommented   = "Comment sending!..."
	noticeUncommented = "Comment removed"
)

func (m *CalculatorModel) menuLabels() []string {
	like := "Like"
	if m.liked {
		like = "Liked"
	}
	comment := "Comment"
	if m.commented {
		comment = "Sent"
	}
	return []string{like, comment, "Share", "About", "License", "Toggle theme", "Quit"}
}

// selectMenuItem runs the menu entry under the cursor
func (m *CalculatorModel) selectMenuItem() tea.Cmd {
	switch menuItem(m.menuCursor) {
	case menuLike:
		m.liked = !m.liked
		if m.liked {
			return m.notify(noticeLiked)
		}
		return m.notify(noticeUnliked)
	case menuComment:
		m.commented = !m.commented
		if m.commented {
			return m.notify(noticeCommented)
		}
		return m.notify(noticeUncommented)
	case menuShare:
		m.shareCursor = 0
		m.dialog = dialogShare
	case menuAbout:
		m.dialog = dialogAbout
	case menuLicense:
		m.dialog = dialogLicense
	case menuTheme:
		return m.toggleTheme()
	case menuQuit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *CalculatorModel) renderMenu() string {
	return m.theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelTitle.Render("Menu"),
		m.renderList(m.menuLabels(), m.menuCursor),
	))
}
