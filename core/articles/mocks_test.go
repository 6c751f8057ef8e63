package articles

import (
	"context"
	"sync"

	"newshub-api/core/domain"
)

// mockDataSource is a mock implementation of the ArticleDataSource interface
type mockDataSource struct {
	fetchFunc func(ctx context.Context, category *domain.Category, page int) ([]domain.Article, error)

	mu    sync.Mutex
	calls int
}

func (m *mockDataSource) FetchArticles(ctx context.Context, category *domain.Category, page int) ([]domain.Article, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, category, page)
	}
	return nil, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
