package handlers

import (
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/fenilmodi00/ipo-pulse/shared"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CacheHandler struct {
	Store     *services.CacheStore
	Dashboard *services.Dashboard
}

func NewCacheHandler(store *services.CacheStore, dashboard *services.Dashboard) *CacheHandler {
	return &CacheHandler{Store: store, Dashboard: dashboard}
}

// GetSnapshot describes the persisted snapshot without serving its records
func (h *CacheHandler) GetSnapshot(c *fiber.Ctx) error {
	snapshot, ok := h.Store.Load(c.UserContext())
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No cached snapshot found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"record_count": len(snapshot.Records),
			"fetched_at":   snapshot.FetchedAt,
			"age":          humanize.RelTime(snapshot.FetchedAt, time.Now(), "ago", "from now"),
		},
	})
}

// ImportSnapshot stores a snapshot in persisted form and serves it immediately
func (h *CacheHandler) ImportSnapshot(c *fiber.Ctx) error {
	snapshot, err := h.Store.Import(c.UserContext(), c.Body())
	if err != nil {
		status := fiber.StatusInternalServerError
		var serviceErr *shared.ServiceError
		if errors.As(err, &serviceErr) && serviceErr.Category == shared.ErrorCategoryValidation {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	reloaded := h.Dashboard.Reload(c.UserContext())

	logrus.WithFields(logrus.Fields{
		"component":    "CacheHandler",
		"record_count": len(snapshot.Records),
		"fetched_at":   snapshot.FetchedAt,
		"served":       reloaded,
	}).Info("Imported cached snapshot")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Snapshot imported successfully",
		"data": fiber.Map{
			"record_count": len(snapshot.Records),
			"fetched_at":   snapshot.FetchedAt,
			"source":       h.Dashboard.Source(),
		},
	})
}
