//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"echo-lab/domain"
	"echo-lab/providers"
	"echo-lab/switchboard"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// SessionListener receives a full session snapshot after every mutation,
// never partial state.
type SessionListener func(session domain.GroupSession)

// ISessionStore is the slice of the session service the coordination engine
// needs: snapshots to read, SendMessage to feed generated replies back in.
type ISessionStore interface {
	Session(sessionID string) (domain.GroupSession, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
}

// ICoordinationEngine drives per-session response cycles.
type ICoordinationEngine interface {
	StartSession(session domain.GroupSession)
	PauseSession(sessionID string)
	ResumeSession(session domain.GroupSession)
	EndSession(sessionID string)
	ProcessMessage(session domain.GroupSession, message domain.Message)
}

// ITurnSelector computes which participants respond to a message, in order.
type ITurnSelector interface {
	NextParticipants(session domain.GroupSession, message domain.Message) []string
}

// IResponder produces the next reply for a participant, falling back to
// templates whenever a real provider cannot serve.
type IResponder interface {
	ComposeReply(ctx context.Context, session domain.GroupSession, participant domain.Participant) (string, domain.MessageType)
}

// ITextGenerator is the opaque generation capability behind the responder.
type ITextGenerator interface {
	Generate(ctx context.Context, provider switchboard.ProviderID, apiKey string, params providers.GenerateParams) (string, error)
}

// ISynthesizer composes the end-of-session summary block.
type ISynthesizer interface {
	Compose(session domain.GroupSession) string
}
