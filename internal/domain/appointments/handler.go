package appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glucocare/glucocare/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/appointments", auth.RequireSession())
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Create(c.Request().Context(), userID, in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) List(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	list, err := h.svc.List(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list appointments")
	}
	if list == nil {
		list = []*Appointment{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c echo.Context) error {
	userID, appointmentID, err := requestIDs(c)
	if err != nil {
		return err
	}
	a, err := h.svc.Get(c.Request().Context(), appointmentID, userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Update(c echo.Context) error {
	userID, appointmentID, err := requestIDs(c)
	if err != nil {
		return err
	}
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Update(c.Request().Context(), appointmentID, userID, in)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	userID, appointmentID, err := requestIDs(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), appointmentID, userID); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment deleted"})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case errors.Is(err, ErrNotOwner):
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}

func requestIDs(c echo.Context) (userID, appointmentID uuid.UUID, err error) {
	userID, err = sessionUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	appointmentID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return userID, appointmentID, nil
}

func sessionUserID(c echo.Context) (uuid.UUID, error) {
	claims, ok := auth.ClaimsFromContext(c.Request().Context())
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}
