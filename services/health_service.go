package services

import (
	"os"

	"ffmax-tournament-api/store"

	"github.com/gofiber/fiber/v2"
)

// Heartbeat is the slice of the health worker the diagnostic endpoint needs.
type Heartbeat interface {
	Healthy() bool
}

type HealthService struct {
	Store     store.Store
	DBName    string
	Heartbeat Heartbeat
}

func NewHealthService(st store.Store, dbName string, hb Heartbeat) *HealthService {
	return &HealthService{Store: st, DBName: dbName, Heartbeat: hb}
}

func (s *HealthService) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Free Fire Max Tournament API running"})
}

// TestDatabase reports store connectivity and configuration presence. A
// broken store is reportable here, never fatal.
func (s *HealthService) TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     s.DBName,
		"connection_status": "Not Connected",
		"collections":       []string{},
		"heartbeat":         "❌ Unhealthy",
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if s.Heartbeat != nil && s.Heartbeat.Healthy() {
		response["heartbeat"] = "✅ Healthy"
	}

	if err := s.Store.Ping(c.Context()); err != nil {
		response["database"] = "❌ Error: " + truncate(err.Error(), 60)
		return c.JSON(response)
	}
	response["database"] = "✅ Available"
	response["connection_status"] = "Connected"

	names, err := s.Store.Collections(c.Context())
	if err != nil {
		response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 60)
		return c.JSON(response)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"

	return c.JSON(response)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
