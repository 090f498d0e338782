package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dialog is the popup drawn over the calculator and the menu
type dialog int

const (
	dialogNone dialog = iota
	dialogShare
	dialogAbout
	dialogLicense
)

// AboutText is shown by the about dialog and `zikkycal about`
const AboutText = `ZikkyCal is a small calculator for the terminal.

Type digits and operators, press enter for the result.
Chained operators evaluate left to right: 5 + 3 × 2 = 16.
x² and √ act on the number shown; xʸ waits for the exponent.`

// LicenseText is shown by the license dialog and `zikkycal license`
const LicenseText = `MIT License

Copyright (c) ZikkyCal contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.`

// Notification texts
const (
	noticeCopied      = "Link copied to clipboard!"
	noticeOpening     = "Opening link..."
	noticeSendDevices = "Send to devices feature would open here"
)

type shareOption int

const (
	shareCopy shareOption = iota
	shareOpen
	shareSendDevices
	shareClose
)

var shareOptions = []string{"Copy link", "Open in browser", "Send to devices", "Close"}

// shareResultMsg reports the outcome of a share action run as a command
type shareResultMsg struct {
	text string
	err  error
}

// selectShareOption runs the share action under the cursor
func (m *CalculatorModel) selectShareOption() tea.Cmd {
	url := m.opts.ShareURL
	switch shareOption(m.shareCursor) {
	case shareCopy:
		copyFn := m.opts.CopyToClipboard
		return func() tea.Msg {
			if err := copyFn(url); err != nil {
				return shareResultMsg{err: fmt.Errorf("copy failed: %w", err)}
			}
			return shareResultMsg{text: noticeCopied}
		}
	case shareOpen:
		openFn := m.opts.OpenURL
		notice := m.notify(noticeOpening)
		return tea.Batch(notice, func() tea.Msg {
			if err := openFn(url); err != nil {
				return shareResultMsg{err: fmt.Errorf("could not open %s: %w", url, err)}
			}
			return nil
		})
	case shareSendDevices:
		return m.notify(noticeSendDevices)
	case shareClose:
		m.dialog = dialogNone
	}
	return nil
}

func (m *CalculatorModel) handleShareResult(msg shareResultMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Warn("share action failed", "error", msg.err)
		return m.notify(msg.err.Error())
	}
	if m.dialog == dialogShare {
		m.dialog = dialogNone
	}
	return m.notify(msg.text)
}

func (m *CalculatorModel) renderDialog() string {
	var title, body string
	switch m.dialog {
	case dialogShare:
		title = "Share ZikkyCal"
		var b strings.Builder
		b.WriteString(m.theme.Item.Render(m.opts.ShareURL))
		b.WriteString("\n\n")
		b.WriteString(m.renderList(shareOptions, m.shareCursor))
		body = b.String()
	case dialogAbout:
		title = "About"
		body = m.theme.Item.Render(AboutText)
	case dialogLicense:
		title = "License"
		body = m.theme.Item.Render(LicenseText)
	default:
		return ""
	}
	return m.theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelTitle.Render(title),
		body,
	))
}

// renderList draws a vertical list with the cursor row highlighted
func (m *CalculatorModel) renderList(items []string, cursor int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == cursor {
			lines[i] = m.theme.SelectedItem.Render("> " + item)
		} else {
			lines[i] = m.theme.Item.Render("  " + item)
		}
	}
	return strings.Join(lines, "\n")
}
