package readings

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glucocare/glucocare/internal/platform/auth"
	"github.com/glucocare/glucocare/pkg/pagination"
)

// defaultPageSize is the readings listing page size when no limit is given.
const defaultPageSize = 10

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/readings", auth.RequireSession())
	g.POST("", h.LogReading)
	g.GET("", h.ListReadings)
}

func (h *Handler) LogReading(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var in LogInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.svc.Log(c.Request().Context(), userID, in)
	if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidUnit) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not store reading")
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListReadings(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContextDefault(c, defaultPageSize)

	var f Filter
	if v := c.QueryParam("startDate"); v != "" {
		t, err := parseDate(v, false)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
		}
		f.Start = &t
	}
	if v := c.QueryParam("endDate"); v != "" {
		t, err := parseDate(v, true)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
		}
		f.End = &t
	}

	list, total, err := h.svc.History(c.Request().Context(), userID, f, pg.Limit, pg.Offset())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list readings")
	}
	if list == nil {
		list = []*Reading{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"readings":    list,
		"totalPages":  pg.TotalPages(total),
		"currentPage": pg.Page,
	})
}

// parseDate accepts RFC 3339 timestamps or bare dates. A bare end date is
// widened to the last instant of that day so the range stays inclusive.
func parseDate(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
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
