package ai

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockClient is a mock implementation of Client for testing purposes.
// It allows setting predefined responses and errors without making actual API calls.
type MockClient struct {
	mu                sync.Mutex
	mockCommitMessage string
	mockCommitError   error
	delay             time.Duration
	commitCallCount   int
	lastDiff          string
	keys              []string
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a new MockClient instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Factory returns a Factory that always hands out this mock and records the
// key it was built with.
func (m *MockClient) Factory() Factory {
	return func(_ context.Context, apiKey string) (Client, error) {
		m.mu.Lock()
		m.keys = append(m.keys, apiKey)
		m.mu.Unlock()
		return m, nil
	}
}

// GenerateCommitMessage implements Client.
// Returns the mock commit message if set, otherwise returns an error.
func (m *MockClient) GenerateCommitMessage(ctx context.Context, diff string) (string, error) {
	m.mu.Lock()
	m.commitCallCount++
	m.lastDiff = diff
	delay := m.delay
	msg, err := m.mockCommitMessage, m.mockCommitError
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", err
	}
	if msg == "" {
		return "", fmt.Errorf("no mock commit message set, use SetMockCommitMessage()")
	}
	return msg, nil
}

// SetMockCommitMessage sets the mock commit message to return for GenerateCommitMessage.
func (m *MockClient) SetMockCommitMessage(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockCommitMessage = message
	m.mockCommitError = nil
}

// SetMockCommitError sets the mock error to return for GenerateCommitMessage.
func (m *MockClient) SetMockCommitError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockCommitError = err
	m.mockCommitMessage = ""
}

// SetDelay makes GenerateCommitMessage wait for d or until its context ends.
func (m *MockClient) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// Reset clears all mock state.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockCommitMessage = ""
	m.mockCommitError = nil
	m.delay = 0
	m.commitCallCount = 0
	m.lastDiff = ""
	m.keys = nil
}

// CommitCallCount returns the number of times GenerateCommitMessage has been called.
func (m *MockClient) CommitCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commitCallCount
}

// LastDiff returns the last diff passed to GenerateCommitMessage.
func (m *MockClient) LastDiff() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDiff
}

// Keys returns the API keys passed to Factory, in order.
func (m *MockClient) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.keys...)
}
