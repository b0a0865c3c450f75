package session

import (
	"log/slog"
	"sync"
)

// Session holds the single active forwarding target. The whole process has
// at most one: a new topic fully replaces the previous one, and racing /new
// commands resolve last-writer-wins.
type Session struct {
	mu              sync.RWMutex
	currentTopic    string
	currentThreadID int
}

func New() *Session {
	return &Session{}
}

// SetActive overwrites the active topic. Both fields always change together.
func (s *Session) SetActive(topicName string, threadID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentTopic = topicName
	s.currentThreadID = threadID

	slog.Info("new session", "topic", topicName, "threadID", threadID)
}

// Active returns the current topic and thread ID. ok is false until the
// first successful /new; nothing ever clears the session short of a restart.
func (s *Session) Active() (topic string, threadID int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentTopic, s.currentThreadID, s.currentThreadID != 0
}
