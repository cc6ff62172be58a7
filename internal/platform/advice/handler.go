package advice

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glucocare/glucocare/internal/domain/identity"
	"github.com/glucocare/glucocare/internal/domain/readings"
	"github.com/glucocare/glucocare/internal/platform/auth"
)

// recentReadingCount bounds how much history goes into a prompt.
const recentReadingCount = 10

type Handler struct {
	client   *Client
	users    identity.UserRepository
	readings readings.ReadingRepository
}

func NewHandler(client *Client, users identity.UserRepository, rd readings.ReadingRepository) *Handler {
	return &Handler{client: client, users: users, readings: rd}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/advice", auth.RequireSession())
	g.POST("", h.GetAdvice)
	g.GET("/risk", h.GetRiskAnalysis)
}

func (h *Handler) GetAdvice(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var in struct {
		Query string `json:"query"`
	}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if in.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	pc := h.patientContext(c.Request().Context(), userID)
	answer := h.client.GetAdvice(c.Request().Context(), pc, in.Query)
	return c.JSON(http.StatusOK, map[string]string{"advice": answer})
}

func (h *Handler) GetRiskAnalysis(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}
	pc := h.patientContext(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, h.client.RiskAnalysis(c.Request().Context(), pc))
}

// patientContext assembles the prompt inputs. Lookup failures degrade to a
// thinner context rather than failing the request; the gateway's whole job
// is to answer something.
func (h *Handler) patientContext(ctx context.Context, userID uuid.UUID) PatientContext {
	pc := PatientContext{}
	if u, err := h.users.GetByID(ctx, userID); err == nil {
		pc.Name = u.Name
		if u.DiabetesType != nil {
			pc.DiabetesType = *u.DiabetesType
		}
	}
	history, err := h.readings.AllByUser(ctx, userID)
	if err != nil {
		return pc
	}
	if len(history) > recentReadingCount {
		history = history[:recentReadingCount]
	}
	for _, r := range history {
		pc.RecentReadings = append(pc.RecentReadings, ReadingSnapshot{
			Value:     r.Value,
			Unit:      r.Unit,
			Status:    string(r.Status),
			Timestamp: r.Timestamp,
		})
	}
	return pc
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
