package alert

import (
	"context"
	"sync"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// Ensure, that eventPublisherMock does implement eventPublisher.
// If this is not the case, regenerate this file with moq.
var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishAlertEventFunc func(ctx context.Context, event domain.AlertEvent) error

	calls struct {
		PublishAlertEvent []struct {
			Ctx   context.Context
			Event domain.AlertEvent
		}
	}
	lockPublishAlertEvent sync.RWMutex
}

func (mock *eventPublisherMock) PublishAlertEvent(ctx context.Context, event domain.AlertEvent) error {
	if mock.PublishAlertEventFunc == nil {
		panic("eventPublisherMock.PublishAlertEventFunc: method is nil but eventPublisher.PublishAlertEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.AlertEvent
	}{
		Ctx:   ctx,
		Event: event,
	}
	mock.lockPublishAlertEvent.Lock()
	mock.calls.PublishAlertEvent = append(mock.calls.PublishAlertEvent, callInfo)
	mock.lockPublishAlertEvent.Unlock()
	return mock.PublishAlertEventFunc(ctx, event)
}

// PublishAlertEventCalls gets all the calls that were made to PublishAlertEvent.
func (mock *eventPublisherMock) PublishAlertEventCalls() []struct {
	Ctx   context.Context
	Event domain.AlertEvent
} {
	var calls []struct {
		Ctx   context.Context
		Event domain.AlertEvent
	}
	mock.lockPublishAlertEvent.RLock()
	calls = mock.calls.PublishAlertEvent
	mock.lockPublishAlertEvent.RUnlock()
	return calls
}
