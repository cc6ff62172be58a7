package identity

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/glucocare/glucocare/internal/platform/auth"
)

type Handler struct {
	svc      *Service
	sessions *auth.SessionManager
}

func NewHandler(svc *Service, sessions *auth.SessionManager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)

	me := api.Group("", auth.RequireSession())
	me.GET("/auth/me", h.Me)
	me.GET("/profile", h.Me)
	me.PUT("/profile", h.UpdateProfile)
}

func (h *Handler) Signup(c echo.Context) error {
	var in SignupInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Signup(c.Request().Context(), in)
	if errors.Is(err, ErrEmailTaken) {
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.issueSession(c, u); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) Login(c echo.Context) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if in.Email == "" || in.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	u, err := h.svc.Login(c.Request().Context(), in.Email, in.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}
	if err := h.issueSession(c, u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Logout(c echo.Context) error {
	h.sessions.ClearCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) Me(c echo.Context) error {
	id, err := sessionUserID(c)
	if err != nil {
		return err
	}
	u, err := h.svc.GetUser(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "lookup failed")
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateProfile persists the allowed profile fields and reissues the
// credential, since name and diabetes type are embedded in it.
func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := sessionUserID(c)
	if err != nil {
		return err
	}
	var in ProfileUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.UpdateProfile(c.Request().Context(), id, in)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.issueSession(c, u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) issueSession(c echo.Context, u *User) error {
	token, err := h.sessions.Issue(u.SessionUser())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session issue failed")
	}
	h.sessions.SetCookie(c, token)
	return nil
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
