package main

import "sync"

const noticeHistory = 5

// noticeLog implements the notifier over an in-memory ring shown in the
// footer. The engine may call it from background goroutines.
type noticeLog struct {
	mu      sync.Mutex
	entries []string
}

func newNoticeLog() *noticeLog {
	return &noticeLog{}
}

func (n *noticeLog) Info(text string)    { n.append(text) }
func (n *noticeLog) Success(text string) { n.append("✓ " + text) }
func (n *noticeLog) Error(text string)   { n.append("✗ " + text) }

func (n *noticeLog) append(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.entries = append(n.entries, text)
	if len(n.entries) > noticeHistory {
		n.entries = n.entries[len(n.entries)-noticeHistory:]
	}
}

func (n *noticeLog) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.entries) == 0 {
		return ""
	}
	return n.entries[len(n.entries)-1]
}
