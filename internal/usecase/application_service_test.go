package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/esports-club/internal/domain/application"
	applicationmock "github.com/riskibarqy/esports-club/internal/mocks/domain/application"
	"github.com/riskibarqy/esports-club/internal/platform/cache"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

var sampleApplication = application.Application{
	Name:    "Ada Lovelace",
	Discord: "ada#0001",
	Email:   "ada@college.edu",
}

func TestApplicationService_Submit_Validation(t *testing.T) {
	t.Parallel()

	notifier := applicationmock.NewNotifier(t)
	service := NewApplicationService(notifier, nil, logging.NewNop())

	err := service.Submit(context.Background(), application.Application{Name: "Ada", Email: "ada@college.edu"}, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	notifier.AssertNotCalled(t, "PostApplication", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_PassesRelayErrorThrough(t *testing.T) {
	t.Parallel()

	notifier := applicationmock.NewNotifier(t)
	relayErr := NewRelayError(http.StatusServiceUnavailable, "Bot is initializing. Try again in a moment.", nil)
	notifier.On("PostApplication", mock.Anything, sampleApplication).Return(relayErr).Once()

	service := NewApplicationService(notifier, nil, logging.NewNop())
	err := service.Submit(context.Background(), sampleApplication, "")

	var got *RelayError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, http.StatusServiceUnavailable, got.StatusCode)
	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestApplicationService_Submit_IdempotencyKeyPostsOnce(t *testing.T) {
	t.Parallel()

	notifier := applicationmock.NewNotifier(t)
	notifier.On("PostApplication", mock.Anything, sampleApplication).
		Run(func(mock.Arguments) { time.Sleep(10 * time.Millisecond) }).
		Return(nil).
		Once()

	service := NewApplicationService(notifier, cache.NewStore[time.Time](time.Minute), logging.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, service.Submit(context.Background(), sampleApplication, "key-1"))
		}()
	}
	wg.Wait()

	require.NoError(t, service.Submit(context.Background(), sampleApplication, "key-1"))
}

func TestApplicationService_Submit_FailureIsNotRemembered(t *testing.T) {
	t.Parallel()

	notifier := applicationmock.NewNotifier(t)
	notifier.On("PostApplication", mock.Anything, sampleApplication).Return(errors.New("discord 500")).Once()
	notifier.On("PostApplication", mock.Anything, sampleApplication).Return(nil).Once()

	service := NewApplicationService(notifier, cache.NewStore[time.Time](time.Minute), logging.NewNop())

	assert.Error(t, service.Submit(context.Background(), sampleApplication, "key-2"))
	assert.NoError(t, service.Submit(context.Background(), sampleApplication, "key-2"))
}
