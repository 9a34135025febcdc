package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.nivo.ch/panelctl/internal/app"
	"go.nivo.ch/panelctl/internal/core/domain"
	"go.nivo.ch/panelctl/internal/core/ports"
	"go.nivo.ch/panelctl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(application *app.App, logger ports.Logger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(mockLoader, func(_ *domain.ClientConfig) ports.Transport {
		return mocks.NewMockTransport(ctrl)
	}, mockLogger)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, newProvider(application, mockLogger))
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	application := app.New(mockLoader, func(_ *domain.ClientConfig) ports.Transport {
		return mocks.NewMockTransport(ctrl)
	}, mockLogger)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"domains", "list"}, stderr, newProvider(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}
