package store

import (
	"context"
	"sync"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/research"
)

type session struct {
	history    []scribe.Message
	reports    map[string]*research.Response
	topicOrder []string
}

// Memory provides thread-safe in-memory session storage.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewMemory creates an in-memory session store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*session),
	}
}

func (m *Memory) getOrCreate(sessionID string) *session {
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{reports: make(map[string]*research.Response)}
		m.sessions[sessionID] = s
	}
	return s
}

// History returns a copy of the session's conversation history.
func (m *Memory) History(_ context.Context, sessionID string) ([]scribe.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	history := make([]scribe.Message, len(s.history))
	copy(history, s.history)
	return history, nil
}

// AppendHistory appends messages to the session's history.
func (m *Memory) AppendHistory(_ context.Context, sessionID string, messages ...scribe.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.getOrCreate(sessionID)
	s.history = append(s.history, messages...)
	return nil
}

// SaveReport stores a report, replacing any earlier one for the topic.
func (m *Memory) SaveReport(_ context.Context, sessionID string, report *research.Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.getOrCreate(sessionID)
	if _, exists := s.reports[report.Topic]; !exists {
		s.topicOrder = append(s.topicOrder, report.Topic)
	}
	s.reports[report.Topic] = report
	return nil
}

// Report returns the stored report for a topic.
func (m *Memory) Report(_ context.Context, sessionID, topic string) (*research.Response, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, false, nil
	}
	report, ok := s.reports[topic]
	return report, ok, nil
}

// Reports returns all stored reports in first-saved order.
func (m *Memory) Reports(_ context.Context, sessionID string) ([]*research.Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	reports := make([]*research.Response, 0, len(s.topicOrder))
	for _, topic := range s.topicOrder {
		reports = append(reports, s.reports[topic])
	}
	return reports, nil
}

var _ Store = (*Memory)(nil)
