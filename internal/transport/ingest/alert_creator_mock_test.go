package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/alert"
)

// Ensure, that alertCreatorMock does implement alertCreator.
// If this is not the case, regenerate this file with moq.
var _ alertCreator = &alertCreatorMock{}

type alertCreatorMock struct {
	CreateAlertFunc func(ctx context.Context, input alert.CreateAlertInput) (*domain.Alert, error)

	calls struct {
		CreateAlert []struct {
			Ctx   context.Context
			Input alert.CreateAlertInput
		}
	}
	lockCreateAlert sync.RWMutex
}

func (mock *alertCreatorMock) CreateAlert(ctx context.Context, input alert.CreateAlertInput) (*domain.Alert, error) {
	if mock.CreateAlertFunc == nil {
		panic("alertCreatorMock.CreateAlertFunc: method is nil but alertCreator.CreateAlert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alert.CreateAlertInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateAlert.Lock()
	mock.calls.CreateAlert = append(mock.calls.CreateAlert, callInfo)
	mock.lockCreateAlert.Unlock()
	return mock.CreateAlertFunc(ctx, input)
}

// CreateAlertCalls gets all the calls that were made to CreateAlert.
func (mock *alertCreatorMock) CreateAlertCalls() []struct {
	Ctx   context.Context
	Input alert.CreateAlertInput
} {
	var calls []struct {
		Ctx   context.Context
		Input alert.CreateAlertInput
	}
	mock.lockCreateAlert.RLock()
	calls = mock.calls.CreateAlert
	mock.lockCreateAlert.RUnlock()
	return calls
}
