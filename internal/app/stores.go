package app

import (
	"context"

	"github.com/itseyans/ruric/internal/event"
	"github.com/itseyans/ruric/internal/model"
	"github.com/itseyans/ruric/internal/repository"
)

// Store contracts consumed by the services. The gorm repositories satisfy
// them in production; tests inject in-memory stubs.

type ChatLedger interface {
	AppendAll(messages ...*model.ChatMessage) error
	ListBetween(a, b uint, types ...model.ChatType) ([]model.ChatMessage, error)
}

type AssignmentStore interface {
	UpsertWithTrace(clientID, employeeID uint, trace *model.ChatMessage) error
	GetByClient(clientID uint) (*repository.AssignmentView, error)
	ListClientsByEmployee(employeeID uint) ([]repository.AssignedClient, error)
}

type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	ListEmployeesByIDs(ids []uint) ([]model.User, error)
}

type AutoResponder interface {
	Respond(ctx context.Context, utterance string) string
}

type InboxNotifier interface {
	Publish(ctx context.Context, notification event.InboxNotification) error
}

type UnreadCounter interface {
	Count(ctx context.Context, employeeID uint) (int64, error)
	Reset(ctx context.Context, employeeID uint) error
}
