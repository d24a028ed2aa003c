package mocks

import (
	"context"

	"github.com/shiroemons/go-mtclone/internal/models"
)

// MockSeedSearcher はテスト用のシード検索モック
type MockSeedSearcher struct {
	Results   map[models.SearchMode]models.Recovered
	Errors    map[models.SearchMode]error
	Calls     []models.SearchQuery
	CallCount int

	// SearchFunc が設定されている場合は Results と Errors より優先されます
	SearchFunc func(ctx context.Context, query models.SearchQuery) (models.Recovered, error)
}

// NewMockSeedSearcher は新しいMockSeedSearcherを作成します
func NewMockSeedSearcher() *MockSeedSearcher {
	return &MockSeedSearcher{
		Results: make(map[models.SearchMode]models.Recovered),
		Errors:  make(map[models.SearchMode]error),
	}
}

// Search は呼び出しを記録し、モードごとに設定された結果を返します
func (m *MockSeedSearcher) Search(ctx context.Context, query models.SearchQuery) (models.Recovered, error) {
	m.CallCount++
	m.Calls = append(m.Calls, query)

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	if err := m.Errors[query.Mode]; err != nil {
		return models.Recovered{}, err
	}
	return m.Results[query.Mode], nil
}
