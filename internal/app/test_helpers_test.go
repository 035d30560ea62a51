package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/firmforge/fwtool/internal/format"
)

// MockManager is a testify mock for the Manager interface.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) CFormat(ctx context.Context, opts format.Options, output string, useColour bool) error {
	args := m.Called(ctx, opts, output, useColour)
	return args.Error(0)
}

func (m *MockManager) WatchFormat(ctx context.Context, opts format.Options, output string, useColour bool,
	readyChan chan<- struct{},
) error {
	args := m.Called(ctx, opts, output, useColour, readyChan)
	return args.Error(0)
}

// mockEnvProvider is a test implementation of fsh.EnvProvider.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	if m.values == nil {
		return ""
	}
	return m.values[key]
}
