package httpapi

import (
	"errors"
	"net/http"
	"time"

	"agentdesk/internal/auth"
	"agentdesk/internal/session"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call the session core, return
// JSON. The workflow rules live in internal/session, not here.
type Handlers struct {
	Auth     *auth.Manager
	Sessions *session.Manager
}

// --- Auth ---

type loginRequest struct {
	UserID    string `json:"user_id"`
	AgentCode string `json:"agent_code"`
	Role      string `json:"role"`
}

// Login issues a JWT token pair.
//
// NOTE: credential validation against the gateway's agent registry is
// still delegated to the deployment's identity proxy.
func (h Handlers) Login(c *gin.Context) {
	if h.Auth == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == "" || req.AgentCode == "" || req.Role == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id, agent_code, role required"})
		return
	}
	pair, err := h.Auth.IssuePair(time.Now(), req.UserID, req.AgentCode, req.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// --- Sessions ---

type createSessionRequest struct {
	// CTI is the optional raw descriptor from the integration layer.
	CTI string `json:"cti,omitempty"`
}

func (h Handlers) CreateSession(c *gin.Context) {
	agent, err := auth.AgentCode(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "agent_code required"})
		return
	}

	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
	}

	s, err := h.Sessions.Create(c.Request.Context(), agent, req.CTI)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session start failed"})
		return
	}
	c.JSON(http.StatusCreated, s.Snapshot())
}

func (h Handlers) GetSession(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

func (h Handlers) RemoveSession(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	h.Sessions.Remove(s.ID())
	c.Status(http.StatusNoContent)
}

type selectCampaignRequest struct {
	Name string `json:"name"`
}

func (h Handlers) SelectCampaign(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	var req selectCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.respond(c, s, s.SelectCampaign(c.Request.Context(), req.Name))
}

type setDispositionRequest struct {
	Level int    `json:"level"`
	Value string `json:"value"`
}

func (h Handlers) SetDisposition(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	var req setDispositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.respond(c, s, s.SetDisposition(req.Level, req.Value))
}

type setNotesRequest struct {
	Text string `json:"text"`
}

func (h Handlers) SetNotes(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	var req setNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.respond(c, s, s.SetNotes(req.Text))
}

// PlaceCall may park on the number selection prompt until a confirm or
// cancel request resolves it, so this handler can be long-lived.
func (h Handlers) PlaceCall(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	err := s.PlaceCall(c.Request.Context())
	if errors.Is(err, session.ErrPromptCancelled) {
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
		return
	}
	h.respond(c, s, err)
}

type selectNumberRequest struct {
	Number string `json:"number"`
}

func (h Handlers) SelectNumber(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	var req selectNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	h.respond(c, s, s.SelectNumber(req.Number))
}

func (h Handlers) ConfirmNumber(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	h.respond(c, s, s.ConfirmNumber(c.Request.Context()))
}

func (h Handlers) CancelNumber(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	h.respond(c, s, s.CancelNumber())
}

func (h Handlers) Finish(c *gin.Context) {
	s, ok := h.ownSession(c)
	if !ok {
		return
	}
	h.respond(c, s, s.Finish(c.Request.Context()))
}

// ownSession resolves the :session_id route param to a live session the
// caller operates. Other agents' sessions are not disclosed.
func (h Handlers) ownSession(c *gin.Context) (*session.Session, bool) {
	agent, err := auth.AgentCode(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "agent_code required"})
		return nil, false
	}
	s, ok := h.Sessions.Get(c.Param("session_id"))
	if !ok || s.Agent() != agent {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return s, true
}

// respond maps a session operation result to an HTTP response:
// rejections are conflicts the agent can see and fix, collaborator
// failures are bad-gateway, success returns the fresh snapshot.
func (h Handlers) respond(c *gin.Context, s *session.Session, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, s.Snapshot())
	case session.IsRejection(err):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
