package api

import (
	"net/http"

	reqdto "furnicraft/internal/handler/dto/request"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/cookie"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cookieCfg,
	}
}

// @Summary User login
// @Description Login with email and password; the token is set as an HttpOnly cookie and returned in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope{data=resdto.LoginResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	profile, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.WithMessage("Login successful", resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        profile,
	}))
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.WithMessage("Logged out successfully", nil))
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=queries.UserView}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}

	profile, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK(profile))
}
