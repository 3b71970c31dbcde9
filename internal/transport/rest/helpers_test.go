package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/pkg/ctxutil"
)

//go:generate moq -out alert_service_mock_test.go -pkg rest . alertService
//go:generate moq -out store_service_mock_test.go -pkg rest . storeService
//go:generate moq -out camera_service_mock_test.go -pkg rest . cameraService
//go:generate moq -out auth_service_mock_test.go -pkg rest . authService

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type testMocks struct {
	alerts  *alertServiceMock
	stores  *storeServiceMock
	cameras *cameraServiceMock
	auth    *authServiceMock
}

func newMocks() testMocks {
	return testMocks{
		alerts:  &alertServiceMock{},
		stores:  &storeServiceMock{},
		cameras: &cameraServiceMock{},
		auth:    &authServiceMock{},
	}
}

func (m testMocks) router() http.Handler {
	return NewRouter(Routes{
		Alerts:  NewAlertHandler(m.alerts, discard),
		Stores:  NewStoreHandler(m.stores, discard),
		Cameras: NewCameraHandler(m.cameras, discard),
		Auth:    NewAuthHandler(m.auth, discard),
		Health:  NewHealthHandler(&dbPingerMock{}, "test"),
	})
}

// caller attaches an authenticated identity to the request.
type caller struct {
	id   uuid.UUID
	role domain.UserRole
}

func owner() *caller { return &caller{id: uuid.New(), role: domain.UserRoleOwner} }
func staff() *caller { return &caller{id: uuid.New(), role: domain.UserRoleStaff} }

func do(t *testing.T, h http.Handler, method, target string, body any, who *caller) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		case io.Reader:
			// Unknown length: the request goes out with ContentLength -1, like a chunked upload.
			reader = b
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	if who != nil {
		ctx := ctxutil.WithUserID(req.Context(), who.id)
		ctx = ctxutil.WithUserRole(ctx, string(who.role))
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func ptr[T any](v T) *T { return &v }
