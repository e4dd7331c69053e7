package session

// Channel describes the contact-method variant a desk instance runs.
// The telephony and messaging forms share one state machine; the profile
// captures the only two places they differ.
type Channel struct {
	// Name matches the queue channel in the campaign directory.
	Name string

	// ContactField is the client-context param holding the contact
	// identifier used for post-finish cleanup. Empty means the caller
	// phone is the contact.
	ContactField string

	// DeleteOnFinish enables the post-finish contact deletion step.
	DeleteOnFinish bool
}

var (
	// ChannelTelephony is the CTI voice desk: no cleanup step.
	ChannelTelephony = Channel{Name: "telephony"}

	// ChannelMessaging deletes the client record once dispositioned.
	ChannelMessaging = Channel{Name: "messaging", ContactField: "contact", DeleteOnFinish: true}
)

// ChannelByName resolves a configured channel name, defaulting to
// telephony.
func ChannelByName(name string) Channel {
	if name == ChannelMessaging.Name {
		return ChannelMessaging
	}
	return ChannelTelephony
}
