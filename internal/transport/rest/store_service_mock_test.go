package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/store"
)

// Ensure, that storeServiceMock does implement storeService.
// If this is not the case, regenerate this file with moq.
var _ storeService = &storeServiceMock{}

type storeServiceMock struct {
	CreateStoreFunc func(ctx context.Context, input store.CreateStoreInput) (*domain.Store, error)
	DeleteStoreFunc func(ctx context.Context, input store.DeleteStoreInput) error
	GetStoreFunc    func(ctx context.Context, id uuid.UUID) (*domain.StoreSummary, error)
	ListStoresFunc  func(ctx context.Context, input store.ListStoresInput) ([]domain.StoreSummary, error)

	calls struct {
		CreateStore []struct {
			Ctx   context.Context
			Input store.CreateStoreInput
		}
		DeleteStore []struct {
			Ctx   context.Context
			Input store.DeleteStoreInput
		}
		GetStore []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListStores []struct {
			Ctx   context.Context
			Input store.ListStoresInput
		}
	}
	lockCreateStore sync.RWMutex
	lockDeleteStore sync.RWMutex
	lockGetStore    sync.RWMutex
	lockListStores  sync.RWMutex
}

func (mock *storeServiceMock) CreateStore(ctx context.Context, input store.CreateStoreInput) (*domain.Store, error) {
	if mock.CreateStoreFunc == nil {
		panic("storeServiceMock.CreateStoreFunc: method is nil but storeService.CreateStore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input store.CreateStoreInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateStore.Lock()
	mock.calls.CreateStore = append(mock.calls.CreateStore, callInfo)
	mock.lockCreateStore.Unlock()
	return mock.CreateStoreFunc(ctx, input)
}

// CreateStoreCalls gets all the calls that were made to CreateStore.
func (mock *storeServiceMock) CreateStoreCalls() []struct {
	Ctx   context.Context
	Input store.CreateStoreInput
} {
	var calls []struct {
		Ctx   context.Context
		Input store.CreateStoreInput
	}
	mock.lockCreateStore.RLock()
	calls = mock.calls.CreateStore
	mock.lockCreateStore.RUnlock()
	return calls
}

func (mock *storeServiceMock) DeleteStore(ctx context.Context, input store.DeleteStoreInput) error {
	if mock.DeleteStoreFunc == nil {
		panic("storeServiceMock.DeleteStoreFunc: method is nil but storeService.DeleteStore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input store.DeleteStoreInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteStore.Lock()
	mock.calls.DeleteStore = append(mock.calls.DeleteStore, callInfo)
	mock.lockDeleteStore.Unlock()
	return mock.DeleteStoreFunc(ctx, input)
}

// DeleteStoreCalls gets all the calls that were made to DeleteStore.
func (mock *storeServiceMock) DeleteStoreCalls() []struct {
	Ctx   context.Context
	Input store.DeleteStoreInput
} {
	var calls []struct {
		Ctx   context.Context
		Input store.DeleteStoreInput
	}
	mock.lockDeleteStore.RLock()
	calls = mock.calls.DeleteStore
	mock.lockDeleteStore.RUnlock()
	return calls
}

func (mock *storeServiceMock) GetStore(ctx context.Context, id uuid.UUID) (*domain.StoreSummary, error) {
	if mock.GetStoreFunc == nil {
		panic("storeServiceMock.GetStoreFunc: method is nil but storeService.GetStore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetStore.Lock()
	mock.calls.GetStore = append(mock.calls.GetStore, callInfo)
	mock.lockGetStore.Unlock()
	return mock.GetStoreFunc(ctx, id)
}

// GetStoreCalls gets all the calls that were made to GetStore.
func (mock *storeServiceMock) GetStoreCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetStore.RLock()
	calls = mock.calls.GetStore
	mock.lockGetStore.RUnlock()
	return calls
}

func (mock *storeServiceMock) ListStores(ctx context.Context, input store.ListStoresInput) ([]domain.StoreSummary, error) {
	if mock.ListStoresFunc == nil {
		panic("storeServiceMock.ListStoresFunc: method is nil but storeService.ListStores was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input store.ListStoresInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListStores.Lock()
	mock.calls.ListStores = append(mock.calls.ListStores, callInfo)
	mock.lockListStores.Unlock()
	return mock.ListStoresFunc(ctx, input)
}

// ListStoresCalls gets all the calls that were made to ListStores.
func (mock *storeServiceMock) ListStoresCalls() []struct {
	Ctx   context.Context
	Input store.ListStoresInput
} {
	var calls []struct {
		Ctx   context.Context
		Input store.ListStoresInput
	}
	mock.lockListStores.RLock()
	calls = mock.calls.ListStores
	mock.lockListStores.RUnlock()
	return calls
}
