package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fenilmodi00/ipo-pulse/services"
	"github.com/gofiber/fiber/v2"
)

type ToolsHandler struct{}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// CalculateSIP projects a monthly investment plan
func (h *ToolsHandler) CalculateSIP(c *fiber.Ctx) error {
	monthly, err := nonNegativeQuery(c, "monthly")
	if err != nil {
		return badRequest(c, err)
	}
	rate, err := nonNegativeQuery(c, "rate")
	if err != nil {
		return badRequest(c, err)
	}
	years, err := nonNegativeQuery(c, "years")
	if err != nil {
		return badRequest(c, err)
	}

	result := services.CalculateSIP(monthly, rate, years)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"result": result,
			"formatted": fiber.Map{
				"future_value": services.FormatINR(result.FutureValue),
				"invested":     services.FormatINR(result.Invested),
				"returns":      services.FormatINR(result.Returns),
			},
		},
	})
}

// LotValue computes the amount needed for one lot
func (h *ToolsHandler) LotValue(c *fiber.Ctx) error {
	price, err := nonNegativeQuery(c, "price")
	if err != nil {
		return badRequest(c, err)
	}
	lotSize, err := nonNegativeQuery(c, "lot_size")
	if err != nil {
		return badRequest(c, err)
	}

	value := services.LotInvestmentValue(price, lotSize)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"price":     price,
			"lot_size":  lotSize,
			"value":     value,
			"formatted": services.FormatINR(value),
		},
	})
}

// Allotment estimates the chance of getting one lot at a subscription multiple
func (h *ToolsHandler) Allotment(c *fiber.Ctx) error {
	subscription, err := nonNegativeQuery(c, "subscription")
	if err != nil {
		return badRequest(c, err)
	}

	probability := services.AllotmentProbability(subscription)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"subscription": subscription,
			"probability":  probability,
			"display":      strconv.FormatFloat(probability, 'f', 2, 64) + "%",
			"odds":         services.AllotmentOdds(subscription),
		},
	})
}

// nonNegativeQuery reads a required finite, non-negative number
func nonNegativeQuery(c *fiber.Ctx, name string) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, fmt.Errorf("query parameter %s is required", name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be a number", name)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("query parameter %s must be finite", name)
	}
	if value < 0 {
		return 0, fmt.Errorf("query parameter %s must not be negative", name)
	}
	return value, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
