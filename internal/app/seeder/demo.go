package seeder

import (
	"time"

	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

type demoCamera struct {
	Name     string
	Location string
}

var demoCameras = []demoCamera{
	{Name: "Aisle 1 - Beverages", Location: "Aisle 1, Left Side"},
	{Name: "Aisle 3 - Snacks", Location: "Aisle 3, Right Side"},
}

// demoAlert is created as NEW and then moved to Status through the regular
// forward edges, so seeded rows look like triaged ones.
type demoAlert struct {
	Camera    string
	Type      domain.AlertType
	Severity  domain.Severity
	Status    domain.AlertStatus
	Detection domain.Detection
	Age       time.Duration
}

var demoAlerts = []demoAlert{
	{
		Camera: "Aisle 1 - Beverages", Type: domain.AlertTypeEmptyShelf, Severity: domain.SeverityHigh,
		Status:    domain.AlertStatusNew,
		Detection: domain.Detection{X: 120, Y: 80, Width: 200, Height: 150, Class: "empty_shelf", Confidence: 0.92},
		Age:       5 * time.Hour,
	},
	{
		Camera: "Aisle 1 - Beverages", Type: domain.AlertTypeLowStock, Severity: domain.SeverityMedium,
		Status:    domain.AlertStatusNew,
		Detection: domain.Detection{X: 300, Y: 100, Width: 180, Height: 120, Class: "empty_shelf", Confidence: 0.78},
		Age:       4 * time.Hour,
	},
	{
		Camera: "Aisle 3 - Snacks", Type: domain.AlertTypeEmptyShelf, Severity: domain.SeverityHigh,
		Status:    domain.AlertStatusAcknowledged,
		Detection: domain.Detection{X: 50, Y: 200, Width: 250, Height: 100, Class: "empty_shelf", Confidence: 0.95},
		Age:       3 * time.Hour,
	},
	{
		Camera: "Aisle 3 - Snacks", Type: domain.AlertTypeEmptyShelf, Severity: domain.SeverityLow,
		Status:    domain.AlertStatusResolved,
		Detection: domain.Detection{X: 400, Y: 150, Width: 100, Height: 80, Class: "empty_shelf", Confidence: 0.65},
		Age:       2 * time.Hour,
	},
	{
		Camera: "Aisle 1 - Beverages", Type: domain.AlertTypeLowStock, Severity: domain.SeverityMedium,
		Status:    domain.AlertStatusNew,
		Detection: domain.Detection{X: 200, Y: 300, Width: 160, Height: 140, Class: "empty_shelf", Confidence: 0.82},
		Age:       time.Hour,
	},
}
