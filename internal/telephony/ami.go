package telephony

import (
	"context"

	"github.com/google/uuid"
)

// AMIGateway is a stub adapter for an Asterisk-based contact-center
// gateway.
//
// Planned integration:
// - PlaceCall via AMI Originate (Channel=Local/<agent>, Exten=<destination>,
//   CallerID=<source>) returning the Linkedid as correlation id.
// - Disposition persistence via the gateway's REST bridge.
// - CloseForm via the screen-pop control channel.
//
// IMPORTANT: keep this adapter free of business logic. It only translates
// gateway calls; validation and state transitions belong to
// internal/session.
type AMIGateway struct{}

func (g *AMIGateway) Name() string { return "ami" }

func (g *AMIGateway) HealthCheck(ctx context.Context) error {
	return nil
}

func (g *AMIGateway) PlaceCall(ctx context.Context, req OriginateRequest) (string, error) {
	// TODO: AMI Originate; until then hand back a locally generated
	// correlation id so the desk can be exercised end to end.
	return uuid.NewString(), nil
}

func (g *AMIGateway) Record(ctx context.Context, report DispositionReport) error {
	return nil
}

func (g *AMIGateway) CloseForm(ctx context.Context, interactionID string) error {
	return nil
}

func (g *AMIGateway) DeleteContact(ctx context.Context, campaign, contact string) error {
	return nil
}
