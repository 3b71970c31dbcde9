package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/service/camera"
)

// Ensure, that cameraServiceMock does implement cameraService.
// If this is not the case, regenerate this file with moq.
var _ cameraService = &cameraServiceMock{}

type cameraServiceMock struct {
	CreateCameraFunc    func(ctx context.Context, input camera.CreateCameraInput) (*domain.Camera, error)
	GetCameraFunc       func(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
	ListCamerasFunc     func(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error)
	SetCameraActiveFunc func(ctx context.Context, input camera.SetCameraActiveInput) (*domain.Camera, error)

	calls struct {
		CreateCamera []struct {
			Ctx   context.Context
			Input camera.CreateCameraInput
		}
		GetCamera []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListCameras []struct {
			Ctx     context.Context
			StoreID *uuid.UUID
		}
		SetCameraActive []struct {
			Ctx   context.Context
			Input camera.SetCameraActiveInput
		}
	}
	lockCreateCamera    sync.RWMutex
	lockGetCamera       sync.RWMutex
	lockListCameras     sync.RWMutex
	lockSetCameraActive sync.RWMutex
}

func (mock *cameraServiceMock) CreateCamera(ctx context.Context, input camera.CreateCameraInput) (*domain.Camera, error) {
	if mock.CreateCameraFunc == nil {
		panic("cameraServiceMock.CreateCameraFunc: method is nil but cameraService.CreateCamera was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input camera.CreateCameraInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateCamera.Lock()
	mock.calls.CreateCamera = append(mock.calls.CreateCamera, callInfo)
	mock.lockCreateCamera.Unlock()
	return mock.CreateCameraFunc(ctx, input)
}

// CreateCameraCalls gets all the calls that were made to CreateCamera.
func (mock *cameraServiceMock) CreateCameraCalls() []struct {
	Ctx   context.Context
	Input camera.CreateCameraInput
} {
	var calls []struct {
		Ctx   context.Context
		Input camera.CreateCameraInput
	}
	mock.lockCreateCamera.RLock()
	calls = mock.calls.CreateCamera
	mock.lockCreateCamera.RUnlock()
	return calls
}

func (mock *cameraServiceMock) GetCamera(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	if mock.GetCameraFunc == nil {
		panic("cameraServiceMock.GetCameraFunc: method is nil but cameraService.GetCamera was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetCamera.Lock()
	mock.calls.GetCamera = append(mock.calls.GetCamera, callInfo)
	mock.lockGetCamera.Unlock()
	return mock.GetCameraFunc(ctx, id)
}

// GetCameraCalls gets all the calls that were made to GetCamera.
func (mock *cameraServiceMock) GetCameraCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetCamera.RLock()
	calls = mock.calls.GetCamera
	mock.lockGetCamera.RUnlock()
	return calls
}

func (mock *cameraServiceMock) ListCameras(ctx context.Context, storeID *uuid.UUID) ([]domain.Camera, error) {
	if mock.ListCamerasFunc == nil {
		panic("cameraServiceMock.ListCamerasFunc: method is nil but cameraService.ListCameras was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		StoreID *uuid.UUID
	}{
		Ctx:     ctx,
		StoreID: storeID,
	}
	mock.lockListCameras.Lock()
	mock.calls.ListCameras = append(mock.calls.ListCameras, callInfo)
	mock.lockListCameras.Unlock()
	return mock.ListCamerasFunc(ctx, storeID)
}

// ListCamerasCalls gets all the calls that were made to ListCameras.
func (mock *cameraServiceMock) ListCamerasCalls() []struct {
	Ctx     context.Context
	StoreID *uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		StoreID *uuid.UUID
	}
	mock.lockListCameras.RLock()
	calls = mock.calls.ListCameras
	mock.lockListCameras.RUnlock()
	return calls
}

func (mock *cameraServiceMock) SetCameraActive(ctx context.Context, input camera.SetCameraActiveInput) (*domain.Camera, error) {
	if mock.SetCameraActiveFunc == nil {
		panic("cameraServiceMock.SetCameraActiveFunc: method is nil but cameraService.SetCameraActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input camera.SetCameraActiveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSetCameraActive.Lock()
	mock.calls.SetCameraActive = append(mock.calls.SetCameraActive, callInfo)
	mock.lockSetCameraActive.Unlock()
	return mock.SetCameraActiveFunc(ctx, input)
}

// SetCameraActiveCalls gets all the calls that were made to SetCameraActive.
func (mock *cameraServiceMock) SetCameraActiveCalls() []struct {
	Ctx   context.Context
	Input camera.SetCameraActiveInput
} {
	var calls []struct {
		Ctx   context.Context
		Input camera.SetCameraActiveInput
	}
	mock.lockSetCameraActive.RLock()
	calls = mock.calls.SetCameraActive
	mock.lockSetCameraActive.RUnlock()
	return calls
}
