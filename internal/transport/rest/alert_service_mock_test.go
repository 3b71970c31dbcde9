package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/alert"
)

// Ensure, that alertServiceMock does implement alertService.
// If this is not the case, regenerate this file with moq.
var _ alertService = &alertServiceMock{}

type alertServiceMock struct {
	AlertHistoryFunc    func(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error)
	CreateAlertFunc     func(ctx context.Context, input alert.CreateAlertInput) (*domain.Alert, error)
	GetAlertFunc        func(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	ListAlertsFunc      func(ctx context.Context, input alert.ListAlertsInput) (*alert.ListResult, error)
	ReopenAlertFunc     func(ctx context.Context, input alert.ReopenAlertInput) (*domain.Alert, error)
	TransitionAlertFunc func(ctx context.Context, input alert.TransitionAlertInput) (*domain.Alert, error)

	calls struct {
		AlertHistory []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateAlert []struct {
			Ctx   context.Context
			Input alert.CreateAlertInput
		}
		GetAlert []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListAlerts []struct {
			Ctx   context.Context
			Input alert.ListAlertsInput
		}
		ReopenAlert []struct {
			Ctx   context.Context
			Input alert.ReopenAlertInput
		}
		TransitionAlert []struct {
			Ctx   context.Context
			Input alert.TransitionAlertInput
		}
	}
	lockAlertHistory    sync.RWMutex
	lockCreateAlert     sync.RWMutex
	lockGetAlert        sync.RWMutex
	lockListAlerts      sync.RWMutex
	lockReopenAlert     sync.RWMutex
	lockTransitionAlert sync.RWMutex
}

func (mock *alertServiceMock) AlertHistory(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error) {
	if mock.AlertHistoryFunc == nil {
		panic("alertServiceMock.AlertHistoryFunc: method is nil but alertService.AlertHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockAlertHistory.Lock()
	mock.calls.AlertHistory = append(mock.calls.AlertHistory, callInfo)
	mock.lockAlertHistory.Unlock()
	return mock.AlertHistoryFunc(ctx, id)
}

// AlertHistoryCalls gets all the calls that were made to AlertHistory.
func (mock *alertServiceMock) AlertHistoryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockAlertHistory.RLock()
	calls = mock.calls.AlertHistory
	mock.lockAlertHistory.RUnlock()
	return calls
}

func (mock *alertServiceMock) CreateAlert(ctx context.Context, input alert.CreateAlertInput) (*domain.Alert, error) {
	if mock.CreateAlertFunc == nil {
		panic("alertServiceMock.CreateAlertFunc: method is nil but alertService.CreateAlert was just called")
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
func (mock *alertServiceMock) CreateAlertCalls() []struct {
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

func (mock *alertServiceMock) GetAlert(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	if mock.GetAlertFunc == nil {
		panic("alertServiceMock.GetAlertFunc: method is nil but alertService.GetAlert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetAlert.Lock()
	mock.calls.GetAlert = append(mock.calls.GetAlert, callInfo)
	mock.lockGetAlert.Unlock()
	return mock.GetAlertFunc(ctx, id)
}

// GetAlertCalls gets all the calls that were made to GetAlert.
func (mock *alertServiceMock) GetAlertCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetAlert.RLock()
	calls = mock.calls.GetAlert
	mock.lockGetAlert.RUnlock()
	return calls
}

func (mock *alertServiceMock) ListAlerts(ctx context.Context, input alert.ListAlertsInput) (*alert.ListResult, error) {
	if mock.ListAlertsFunc == nil {
		panic("alertServiceMock.ListAlertsFunc: method is nil but alertService.ListAlerts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alert.ListAlertsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListAlerts.Lock()
	mock.calls.ListAlerts = append(mock.calls.ListAlerts, callInfo)
	mock.lockListAlerts.Unlock()
	return mock.ListAlertsFunc(ctx, input)
}

// ListAlertsCalls gets all the calls that were made to ListAlerts.
func (mock *alertServiceMock) ListAlertsCalls() []struct {
	Ctx   context.Context
	Input alert.ListAlertsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input alert.ListAlertsInput
	}
	mock.lockListAlerts.RLock()
	calls = mock.calls.ListAlerts
	mock.lockListAlerts.RUnlock()
	return calls
}

func (mock *alertServiceMock) ReopenAlert(ctx context.Context, input alert.ReopenAlertInput) (*domain.Alert, error) {
	if mock.ReopenAlertFunc == nil {
		panic("alertServiceMock.ReopenAlertFunc: method is nil but alertService.ReopenAlert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alert.ReopenAlertInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReopenAlert.Lock()
	mock.calls.ReopenAlert = append(mock.calls.ReopenAlert, callInfo)
	mock.lockReopenAlert.Unlock()
	return mock.ReopenAlertFunc(ctx, input)
}

// ReopenAlertCalls gets all the calls that were made to ReopenAlert.
func (mock *alertServiceMock) ReopenAlertCalls() []struct {
	Ctx   context.Context
	Input alert.ReopenAlertInput
} {
	var calls []struct {
		Ctx   context.Context
		Input alert.ReopenAlertInput
	}
	mock.lockReopenAlert.RLock()
	calls = mock.calls.ReopenAlert
	mock.lockReopenAlert.RUnlock()
	return calls
}

func (mock *alertServiceMock) TransitionAlert(ctx context.Context, input alert.TransitionAlertInput) (*domain.Alert, error) {
	if mock.TransitionAlertFunc == nil {
		panic("alertServiceMock.TransitionAlertFunc: method is nil but alertService.TransitionAlert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input alert.TransitionAlertInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockTransitionAlert.Lock()
	mock.calls.TransitionAlert = append(mock.calls.TransitionAlert, callInfo)
	mock.lockTransitionAlert.Unlock()
	return mock.TransitionAlertFunc(ctx, input)
}

// TransitionAlertCalls gets all the calls that were made to TransitionAlert.
func (mock *alertServiceMock) TransitionAlertCalls() []struct {
	Ctx   context.Context
	Input alert.TransitionAlertInput
} {
	var calls []struct {
		Ctx   context.Context
		Input alert.TransitionAlertInput
	}
	mock.lockTransitionAlert.RLock()
	calls = mock.calls.TransitionAlert
	mock.lockTransitionAlert.RUnlock()
	return calls
}
