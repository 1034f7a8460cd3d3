package handler

import (
	"net/http"

	"storefront/services/storefront/helpers"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service SessionServiceInterface
}

func NewSessionHandler(service SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// LoginHandler handles POST /auth/login
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "LoginHandler")
	if !ok {
		return
	}
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	sess, err := h.service.Login(c.Request.Context(), st, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, sess, "signed in")
	helpers.LogSuccess("LoginHandler", "signed in", map[string]any{"user_id": sess.ID})
}

// RegisterHandler handles POST /auth/register. It does not sign the user in.
func (h *SessionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, profile, "account created, please sign in")
	helpers.LogSuccess("RegisterHandler", "account created", map[string]any{"user_id": profile.UID})
}

// LogoutHandler handles POST /auth/logout. Every collection of the client is cleared.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "LogoutHandler")
	if !ok {
		return
	}
	h.service.Logout(st)
	utils.JSONResponse(c, http.StatusOK, nil, "signed out")
}

// GetSessionHandler handles GET /session
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	st, ok := helpers.MustStore(c, "GetSessionHandler")
	if !ok {
		return
	}

	resp := helpers.SessionResponse{Mode: st.Mode(), CartCount: st.CartCount()}
	if sess, ok := st.Session(); ok {
		resp.Authenticated = true
		resp.Session = &sess
	}
	utils.JSONResponse(c, http.StatusOK, resp, "session retrieved successfully")
}
