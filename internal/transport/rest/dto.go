package rest

import (
	"time"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

type nameRef struct {
	Name string `json:"name"`
}

type alertResponse struct {
	ID         string             `json:"id"`
	CameraID   string             `json:"cameraId"`
	StoreID    string             `json:"storeId"`
	Type       string             `json:"type"`
	Severity   string             `json:"severity"`
	Status     string             `json:"status"`
	Detections []domain.Detection `json:"detections"`
	Version    int                `json:"version"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	ResolvedAt *time.Time         `json:"resolvedAt"`
	Camera     *nameRef           `json:"camera,omitempty"`
	Store      *nameRef           `json:"store,omitempty"`
}

func toAlertResponse(a *domain.Alert) alertResponse {
	resp := alertResponse{
		ID:         a.ID.String(),
		CameraID:   a.CameraID.String(),
		StoreID:    a.StoreID.String(),
		Type:       a.Type.String(),
		Severity:   a.Severity.String(),
		Status:     a.Status.String(),
		Detections: a.Detections,
		Version:    a.Version,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		ResolvedAt: a.ResolvedAt,
	}
	if resp.Detections == nil {
		resp.Detections = []domain.Detection{}
	}
	if a.CameraName != "" {
		resp.Camera = &nameRef{Name: a.CameraName}
	}
	if a.StoreName != "" {
		resp.Store = &nameRef{Name: a.StoreName}
	}
	return resp
}

func toAlertResponses(alerts []domain.Alert) []alertResponse {
	out := make([]alertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertResponse(&alerts[i]))
	}
	return out
}

type auditResponse struct {
	ID         string         `json:"id"`
	UserID     *string        `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponses(records []domain.AuditRecord) []auditResponse {
	out := make([]auditResponse, 0, len(records))
	for _, rec := range records {
		item := auditResponse{
			ID:         rec.ID.String(),
			EntityType: rec.EntityType.String(),
			EntityID:   rec.EntityID.String(),
			Action:     rec.Action.String(),
			Changes:    rec.Changes,
			CreatedAt:  rec.CreatedAt,
		}
		if rec.UserID != nil {
			id := rec.UserID.String()
			item.UserID = &id
		}
		out = append(out, item)
	}
	return out
}

type cameraResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	Store     *nameRef  `json:"store,omitempty"`
}

func toCameraResponse(c *domain.Camera) cameraResponse {
	resp := cameraResponse{
		ID:        c.ID.String(),
		StoreID:   c.StoreID.String(),
		Name:      c.Name,
		Location:  c.Location,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
	if c.StoreName != "" {
		resp.Store = &nameRef{Name: c.StoreName}
	}
	return resp
}

type ownerRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type storeCounts struct {
	Cameras int `json:"cameras"`
	Alerts  int `json:"alerts"`
}

type storeResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	OwnerID   string       `json:"ownerId"`
	CreatedAt time.Time    `json:"createdAt"`
	Owner     *ownerRef    `json:"owner,omitempty"`
	Count     *storeCounts `json:"_count,omitempty"`
}

func toStoreResponse(s *domain.Store) storeResponse {
	return storeResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Address:   s.Address,
		OwnerID:   s.OwnerID.String(),
		CreatedAt: s.CreatedAt,
	}
}

func toStoreSummaryResponse(s *domain.StoreSummary) storeResponse {
	resp := toStoreResponse(&s.Store)
	resp.Owner = &ownerRef{Name: s.OwnerName, Email: s.OwnerEmail}
	resp.Count = &storeCounts{Cameras: s.CameraCount, Alerts: s.AlertCount}
	return resp
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}
