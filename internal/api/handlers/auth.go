package handlers

import (
	"net/http"

	"github.com/osa911/clipdesk/internal/api/constants"
	"github.com/osa911/clipdesk/internal/api/dto/common"
	"github.com/osa911/clipdesk/internal/api/dto/v1/auth"
	"github.com/osa911/clipdesk/internal/api/mapper"
	"github.com/osa911/clipdesk/internal/api/middleware"
	"github.com/osa911/clipdesk/internal/service"
	"github.com/osa911/clipdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
	cookie      utils.CookieOptions
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, cookie utils.CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		cookie:      cookie,
	}
}

// Login exchanges an identity-provider ID token for a session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	req, _ := middleware.Validated[auth.LoginRequest](c, constants.ContextKeyLogin)

	user, session, err := h.authService.Login(c.Request.Context(), req.IDToken, service.LoginMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: utils.GetRealIP(c),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SetSessionCookie(c, session.SID, session.Expire, h.cookie)
	utils.HandleSuccess(c, auth.LoginResponse{
		User:    *mapper.UserToUserResponse(user),
		Expires: session.Expire,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetString(constants.ContextKeySessionID)); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to logout")
		return
	}

	utils.ClearSessionCookie(c, h.cookie)
	utils.HandleMessage(c, "Logged out")
}

// GetUser returns the caller's stored profile
func (h *AuthHandler) GetUser(c *gin.Context) {
	d := middleware.GetDecision(c)

	user, err := h.userService.Get(c.Request.Context(), d.CallerID())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.UserToUserResponse(user))
}
