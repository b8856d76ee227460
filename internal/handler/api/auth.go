package api

import (
	"net/http"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/config"
	"padel-booking/internal/pkg/cookie"
	"padel-booking/internal/pkg/jwt"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

var loginRules = []httperr.Rule{
	{Target: commands.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid email or password"},
	{Target: commands.ErrUserNotFound, Status: http.StatusUnauthorized, Message: "Invalid email or password"},
	{Target: commands.ErrUserInactive, Status: http.StatusForbidden, Message: "Account is inactive"},
	{Target: commands.ErrAuthenticationFailed, Status: http.StatusBadRequest, Message: "Invalid request data"},
}

var currentUserRules = []httperr.Rule{
	{Target: queries.ErrUserNotFound, Status: http.StatusNotFound, Message: "User not found"},
	{Target: queries.ErrUserInactive, Status: http.StatusForbidden, Message: "Account is inactive"},
}

// @Summary Admin login
// @Description Login with email and password; the token is returned and also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err, loginRules...)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Respond(c, err, currentUserRules...)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        resdto.FromAuthorizedUser(user),
	})
}

// @Summary Admin logout
// @Description Clears the session cookie. Bearer tokens simply expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Description Get the authenticated admin user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	// RequireAuth always sets this; a miss means the route was wired without it
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err, currentUserRules...)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(user))
}
