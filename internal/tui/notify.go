package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NotificationTimeout is how long a notification stays on screen
const NotificationTimeout = 3 * time.Second

// notification is the transient popup under the keypad
type notification struct {
	id   int
	text string
}

// notificationExpiredMsg dismisses the notification with the matching id.
// Ids keep a stale timer from dismissing a newer notification.
type notificationExpiredMsg struct {
	id int
}

// notify replaces the current notification and schedules its expiry
func (m *CalculatorModel) notify(text string) tea.Cmd {
	m.noticeSeq++
	id := m.noticeSeq
	m.notice = &notification{id: id, text: text}
	m.log.Debug("notification", "text", text)
	return tea.Tick(NotificationTimeout, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

func (m *CalculatorModel) expireNotification(msg notificationExpiredMsg) {
	if m.notice != nil && m.notice.id == msg.id {
		m.notice = nil
	}
}
