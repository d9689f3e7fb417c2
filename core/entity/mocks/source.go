package mocks

import (
	"context"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of entity.Source
type Source struct {
	mock.Mock
}

func (m *Source) Fetch(ctx context.Context, endpoint entity.Endpoint) ([]byte, error) {
	args := m.Called(ctx, endpoint)
	if payload, ok := args.Get(0).([]byte); ok {
		return payload, args.Error(1)
	}
	return nil, args.Error(1)
}

// Serve registers a payload for every fetch of the dataset named name.
func (m *Source) Serve(name, payload string) *mock.Call {
	return m.On("Fetch", mock.Anything, mock.MatchedBy(func(e entity.Endpoint) bool {
		return e.Name == name
	})).Return([]byte(payload), nil)
}
