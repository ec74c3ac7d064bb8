package screening

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/platform/auth"
	"github.com/Darryl-Mbae/mobileuurka-hospital-sub000/internal/platform/db"
)

type Handler struct {
	pipeline *Pipeline
}

func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	g.POST("/patients/:id/screenings", h.RunScreening)
}

type runRequest struct {
	ConfirmStale *bool `json:"confirm_stale"`
}

// RunScreening starts a screening run for the patient. Responses map run
// outcomes onto status codes: 422 when intake steps are missing, 409 when
// stale records need confirmation, 502 when the scoring service rejects the
// submission, 200 otherwise (including a declined confirmation).
func (h *Handler) RunScreening(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req runRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	in := &Input{
		PatientID:    patientID,
		OperatorID:   auth.UserIDFromContext(ctx),
		TenantScope:  db.TenantFromContext(ctx),
		ConfirmStale: req.ConfirmStale,
	}

	result, err := h.pipeline.Run(ctx, in)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusUnprocessableEntity, result)
		}
		var fErr *FatalSubmissionError
		if errors.As(err, &fErr) {
			return c.JSON(http.StatusBadGateway, map[string]interface{}{
				"state": result.State,
				"error": fErr.Err.Error(),
			})
		}
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}

	if result.State == StateAwaitingConfirmation {
		return c.JSON(http.StatusConflict, result)
	}
	return c.JSON(http.StatusOK, result)
}
