package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fritzoria/pkg/config"
	"fritzoria/pkg/database"
	"fritzoria/pkg/logger"
)

// AdminHandler serves operational endpoints gated by a shared secret.
type AdminHandler struct {
	cfg *config.Config
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

// InitDatabase runs the catalog schema setup. The request must present the
// configured init key as a query parameter.
func (h *AdminHandler) InitDatabase(c echo.Context) error {
	log := logger.FromContext(c)

	key := c.QueryParam("key")
	if h.cfg.Server.DBInitKey == "" || key != h.cfg.Server.DBInitKey {
		log.Warn("Unauthorized database init attempt")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	if err := database.Setup(database.GetDB()); err != nil {
		log.Error("Failed to initialize database", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to initialize database"})
	}

	log.Info("Database initialized")
	return c.JSON(http.StatusOK, echo.Map{"message": "Database initialized successfully"})
}
