package domain

// Commands carried from the API surface into the session service.

type CreateSessionCommand struct {
	Name             string
	Topic            string
	Description      string
	ParticipantCount int
	SessionType      SessionType
}

type SendMessageCommand struct {
	SessionID     string
	ParticipantID string
	Content       string
	Type          MessageType
	ReplyTo       string
}

type AddReactionCommand struct {
	SessionID     string
	MessageID     string
	ParticipantID string
	Type          ReactionType
}
