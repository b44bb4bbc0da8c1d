package errors

import "fmt"

var (
	ErrWorkerPanic             = fmt.Errorf("worker panic")
	ErrSessionNotFound         = fmt.Errorf("session not found")
	ErrMessageNotFound         = fmt.Errorf("message not found")
	ErrParticipantNotFound     = fmt.Errorf("participant not found")
	ErrInvalidParticipantCount = fmt.Errorf("participant count must be at least 1")
	ErrEmptyPersonaCatalog     = fmt.Errorf("no persona templates have been found")
	ErrMissingAPIKey           = fmt.Errorf("api key is not configured")
	ErrUnsupportedProvider     = fmt.Errorf("unsupported provider")
)
