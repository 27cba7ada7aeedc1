package handlers

import (
	"time"

	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type IPOHandler struct {
	Dashboard *services.Dashboard
}

func NewIPOHandler(dashboard *services.Dashboard) *IPOHandler {
	return &IPOHandler{Dashboard: dashboard}
}

// GetIPOs returns display cards filtered by status tab and board type
func (h *IPOHandler) GetIPOs(c *fiber.Ctx) error {
	status := c.Query("status", "all")
	ipoType := c.Query("type", "all")

	records, err := h.Dashboard.Filter(status, ipoType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	dashboardStatus := h.Dashboard.Status()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    services.BuildIPOCards(records),
		"meta": fiber.Map{
			"count":              len(records),
			"source":             dashboardStatus.Source,
			"last_updated":       dashboardStatus.LastUpdated,
			"last_updated_label": dashboardStatus.LastUpdatedLabel,
		},
	})
}

func (h *IPOHandler) GetIPOByID(c *fiber.Ctx) error {
	id := c.Params("id")
	record, found := h.Dashboard.GetRecord(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "IPO not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    services.BuildIPOCard(record),
	})
}

// GetStatus reports what the dashboard is serving and why
func (h *IPOHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Dashboard.Status(),
	})
}

// RefreshIPOs triggers a fetch. A failed fetch still succeeds with mock data,
// so the response reports the resulting source rather than an error status.
func (h *IPOHandler) RefreshIPOs(c *fiber.Ctx) error {
	startTime := time.Now()
	result := h.Dashboard.Refresh(c.UserContext())

	logrus.WithFields(logrus.Fields{
		"component":    "IPOHandler",
		"source":       result.Source,
		"record_count": len(result.Records),
		"duration":     time.Since(startTime),
	}).Info("Manual refresh completed")

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"source":          result.Source,
			"record_count":    len(result.Records),
			"dropped_records": result.Dropped,
			"fetched_at":      result.FetchedAt,
			"fallback_reason": result.Reason,
			"status":          h.Dashboard.Status(),
		},
	})
}
