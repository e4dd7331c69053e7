package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the only supported JWT claims shape for this service.
// AgentCode is the operator's account code at the contact-center gateway;
// every session operation is scoped to it.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string    `json:"user_id"`
	AgentCode string    `json:"agent_code"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
}
