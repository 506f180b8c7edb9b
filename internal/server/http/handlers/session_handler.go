package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// SessionHandler drives the OAuth round trip and the dashboard cookie.
type SessionHandler struct {
	facade SessionFacade
	tokens pkgAuth.Strategy
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SessionFacade, tokens pkgAuth.Strategy) *SessionHandler {
	return &SessionHandler{facade: facade, tokens: tokens}
}

// Login redirects the browser to the consent screen.
func (h *SessionHandler) Login(c *gin.Context) {
	url, err := h.facade.BeginLogin()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// Callback finishes the authorization code flow.
func (h *SessionHandler) Callback(c *gin.Context) {
	if reason := c.Query("error"); reason != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: reason})
		return
	}

	state, code := c.Query("state"), c.Query("code")
	if state == "" || code == "" {
		abortWithError(c, domainErrors.ErrInvalidState)
		return
	}

	sess, err := h.facade.CompleteLogin(c.Request.Context(), state, code)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !h.issueCookie(c, sess) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Create attaches an access token obtained in the browser.
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	sess, err := h.facade.AttachToken(c.Request.Context(), req.AccessToken)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !h.issueCookie(c, sess) {
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Show returns the signed-in profile.
func (h *SessionHandler) Show(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Delete signs out and expires the cookie.
func (h *SessionHandler) Delete(c *gin.Context) {
	h.facade.Logout()
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) issueCookie(c *gin.Context, sess model.Session) bool {
	token, err := h.tokens.IssueToken(sess.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return false
	}
	middleware.SetAuthCookie(c, token)
	return true
}
