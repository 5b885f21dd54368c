package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/api/metrics"
	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

type MaterialHandler struct {
	materialService ports.MaterialService
}

func NewMaterialHandler(materialService ports.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// Material returns the cumulative material the caller has unlocked in the
// requested discipline.
//
// @Summary      Unlocked material for a discipline
// @Tags         material
// @Produce      json
// @Security     BearerAuth
// @Param        discipline  path      string  true  "Discipline name"
// @Success      200         {object}  domain.MaterialGrant
// @Failure      401         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /{discipline}/material [get]
func (h *MaterialHandler) Material(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	discipline := disciplineParam(c.Param("discipline"))

	grant, err := h.materialService.Resolve(c.Request().Context(), principal, discipline)
	if err != nil {
		metrics.MaterialRequestsTotal.WithLabelValues(discipline, materialResult(err)).Inc()
		return err
	}
	metrics.MaterialRequestsTotal.WithLabelValues(discipline, "ok").Inc()
	metrics.MaterialItemsReturned.WithLabelValues(discipline).Observe(float64(len(grant.Material)))

	return c.JSON(http.StatusOK, grant)
}

// disciplineParam normalizes the URL form of a discipline name to its catalog
// key: public routes use hyphens ("yoga-facial") where catalogs use
// underscores ("yoga_facial").
func disciplineParam(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
}

func materialResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoDisciplineAccess):
		return "forbidden"
	case errors.Is(err, domain.ErrCatalogNotFound):
		return "not_found"
	default:
		return "error"
	}
}
