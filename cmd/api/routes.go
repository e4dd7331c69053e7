package main

import (
	"agentdesk/internal/auth"
	"agentdesk/internal/httpapi"
	"agentdesk/internal/rbac"
	"agentdesk/internal/session"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, authManager *auth.Manager, sessions *session.Manager) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := httpapi.Handlers{
		Auth:     authManager,
		Sessions: sessions,
	}

	v1 := r.Group("/v1")

	// AUTH routes (token issuance).
	// NOTE: credential validation is delegated to the identity proxy in
	// front of this service; Login only mints tokens for a vetted agent.
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}

	// SESSION routes. Every endpoint operates on the caller's own
	// sessions; ownership is checked again in the handlers.
	desk := v1.Group("/sessions")
	desk.Use(auth.RequireAccessToken(authManager))
	desk.Use(rbac.RequireAgentCode())
	desk.Use(rbac.RequireAnyRole(rbac.RoleAgent, rbac.RoleSupervisor))
	{
		desk.POST("", h.CreateSession)
		desk.GET("/:session_id", h.GetSession)
		desk.DELETE("/:session_id", h.RemoveSession)

		desk.POST("/:session_id/campaign", h.SelectCampaign)
		desk.POST("/:session_id/disposition", h.SetDisposition)
		desk.POST("/:session_id/notes", h.SetNotes)

		desk.POST("/:session_id/call", h.PlaceCall)
		desk.POST("/:session_id/call/number", h.SelectNumber)
		desk.POST("/:session_id/call/confirm", h.ConfirmNumber)
		desk.POST("/:session_id/call/cancel", h.CancelNumber)

		desk.POST("/:session_id/finish", h.Finish)
	}
}
