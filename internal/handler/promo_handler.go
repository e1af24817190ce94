package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fritzoria/pkg/logger"
)

// promoCodes maps a code to its discount percentage. Placeholder logic kept
// from the storefront; there is no real promotion model behind it.
var promoCodes = map[string]int{
	"DISKON10": 10,
	"DISKON20": 20,
}

// ValidatePromo checks a promo code and returns its discount percentage
func ValidatePromo(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "promo code is required"})
	}

	percent, ok := promoCodes[code]
	if !ok {
		log.Info("Invalid promo code", zap.String("code", code))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "invalid promo code"})
	}

	log.Info("Promo code applied", zap.String("code", code), zap.Int("percent", percent))
	return c.JSON(http.StatusOK, echo.Map{
		"code":            code,
		"discountPercent": percent,
	})
}
