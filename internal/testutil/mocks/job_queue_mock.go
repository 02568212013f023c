package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/vytor/dsaportal/internal/jobs"
)

// MockProgressQueue is a mock implementation of jobs.ProgressQueue
type MockProgressQueue struct {
	mock.Mock
}

func (m *MockProgressQueue) EnqueueProgress(push jobs.ProgressPush) error {
	args := m.Called(push)
	return args.Error(0)
}
