package api

import (
	"net/http"

	"furnicraft/internal/domain/user"
	reqdto "furnicraft/internal/handler/dto/request"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches name, email or phone"
// @Param status query string false "all, active, blocked or inactive"
// @Param sortBy query string false "createdAt, name, email or lastLogin"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} resdto.Envelope{data=resdto.UserListResponse}
// @Failure 400 {object} httperr.Response
// @Router /all-users-detailed [get]
func (h *UserHandler) List(c *gin.Context) {
	var query reqdto.ListUsersQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromUserPage(page)))
}

// @Summary User details
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.Envelope{data=queries.UserDetails}
// @Failure 404 {object} httperr.Response
// @Router /user-details/{userId} [get]
func (h *UserHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	details, err := h.q.Details(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(details))
}

// @Summary Update user profile
// @Description Addresses replace the stored list; preferences are merged
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body reqdto.UpdateUserProfileRequest true "Changed fields"
// @Success 200 {object} resdto.Envelope{data=queries.UserDetails}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update-user-profile/{userId} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req reqdto.UpdateUserProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), id, in); err != nil {
		httperr.Abort(c, err)
		return
	}
	details, err := h.q.Details(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("User profile updated successfully", details))
}

// @Summary Change account standing
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateUserStatusRequest true "block, unblock, activate, deactivate or reset"
// @Success 200 {object} resdto.Envelope{data=queries.UserDetails}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update-user-status [post]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateUserStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	var userID uuid.UUID
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			httperr.Abort(c, user.ErrNotFound)
			return
		}
		userID = id
	}
	message, err := h.cmds.UpdateStatus(c.Request.Context(), userID, req.Action, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	details, err := h.q.Details(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage(message, details))
}
