package view

// Notification is a dismissable alert with a fixed title and a message body.
type Notification struct {
	Title   string
	Message string
}

// Notifications is a stack of sticky alerts, newest last.
type Notifications struct {
	items []Notification
}

// Push adds a notification
func (n *Notifications) Push(title, message string) {
	n.items = append(n.items, Notification{Title: title, Message: message})
}

// Dismiss removes the newest notification and reports whether one was removed.
func (n *Notifications) Dismiss() bool {
	if len(n.items) == 0 {
		return false
	}
	n.items = n.items[:len(n.items)-1]
	return true
}

// Clear removes every notification
func (n *Notifications) Clear() {
	n.items = nil
}

// Items returns the notifications, oldest first
func (n *Notifications) Items() []Notification {
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Len returns the number of pending notifications
func (n *Notifications) Len() int {
	return len(n.items)
}
