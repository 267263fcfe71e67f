package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/itseyans/ruric/internal/config"
	"github.com/itseyans/ruric/internal/event"
	"github.com/itseyans/ruric/internal/model"
	"github.com/itseyans/ruric/internal/repository"
)

// RelayService carries messages between humans: client to employee,
// employee to client, and admin to employee. Pure appends and reads, no
// routing decisions.
type RelayService struct {
	ledger      ChatLedger
	assignments AssignmentStore
	notifier    InboxNotifier
	unread      UnreadCounter
	identities  config.ChatConfig
}

func NewRelayService(
	ledger ChatLedger,
	assignments AssignmentStore,
	notifier InboxNotifier,
	unread UnreadCounter,
	identities config.ChatConfig,
) *RelayService {
	return &RelayService{
		ledger:      ledger,
		assignments: assignments,
		notifier:    notifier,
		unread:      unread,
		identities:  identities,
	}
}

// ClientSend delivers a client message to their assigned employee. A system
// notice row lands next to the message so the employee inbox can surface
// the arrival even without the notification queue.
func (s *RelayService) ClientSend(ctx context.Context, employeeID, clientID uint, message string) error {
	trimmed := strings.TrimSpace(message)
	if employeeID == 0 || clientID == 0 || trimmed == "" {
		return ErrInvalidInput
	}

	err := s.ledger.AppendAll(
		&model.ChatMessage{
			SenderID:   clientID,
			ReceiverID: employeeID,
			Message:    trimmed,
			ChatType:   model.ChatTypeClientEmployee,
		},
		&model.ChatMessage{
			SenderID:   clientID,
			ReceiverID: employeeID,
			Message:    fmt.Sprintf("System: Client %d sent a message to you.", clientID),
			ChatType:   model.ChatTypeClientEmployee,
		},
	)
	if err != nil {
		return err
	}

	s.notify(ctx, employeeID, clientID, model.ChatTypeClientEmployee)
	return nil
}

func (s *RelayService) EmployeeReply(ctx context.Context, employeeID, clientID uint, message string) error {
	trimmed := strings.TrimSpace(message)
	if employeeID == 0 || clientID == 0 || trimmed == "" {
		return ErrInvalidInput
	}

	return s.ledger.AppendAll(&model.ChatMessage{
		SenderID:   employeeID,
		ReceiverID: clientID,
		Message:    trimmed,
		ChatType:   model.ChatTypeEmployeeClient,
	})
}

func (s *RelayService) AdminSend(ctx context.Context, employeeID uint, message string) error {
	trimmed := strings.TrimSpace(message)
	if employeeID == 0 || trimmed == "" {
		return ErrInvalidInput
	}

	err := s.ledger.AppendAll(&model.ChatMessage{
		SenderID:   s.identities.AdminUserID,
		ReceiverID: employeeID,
		Message:    trimmed,
		ChatType:   model.ChatTypeAdminEmployee,
	})
	if err != nil {
		return err
	}

	s.notify(ctx, employeeID, s.identities.AdminUserID, model.ChatTypeAdminEmployee)
	return nil
}

// EmployeeTranscript returns every message between the pair in either
// direction, oldest first.
func (s *RelayService) EmployeeTranscript(employeeID, clientID uint) ([]model.ChatMessage, error) {
	if employeeID == 0 || clientID == 0 {
		return nil, ErrInvalidInput
	}
	return s.ledger.ListBetween(
		clientID, employeeID,
		model.ChatTypeClientEmployee, model.ChatTypeEmployeeClient,
	)
}

func (s *RelayService) AdminTranscript(employeeID uint) ([]model.ChatMessage, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}
	return s.ledger.ListBetween(
		s.identities.AdminUserID, employeeID,
		model.ChatTypeAdminEmployee,
	)
}

func (s *RelayService) AssignedClients(employeeID uint) ([]repository.AssignedClient, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}
	return s.assignments.ListClientsByEmployee(employeeID)
}

func (s *RelayService) UnreadCount(ctx context.Context, employeeID uint) (int64, error) {
	if employeeID == 0 {
		return 0, ErrInvalidInput
	}
	return s.unread.Count(ctx, employeeID)
}

func (s *RelayService) ClearUnread(ctx context.Context, employeeID uint) error {
	if employeeID == 0 {
		return ErrInvalidInput
	}
	return s.unread.Reset(ctx, employeeID)
}

// notify is best effort: a dropped notification must never fail the send.
func (s *RelayService) notify(ctx context.Context, employeeID, senderID uint, channel model.ChatType) {
	if s.notifier == nil {
		return
	}
	notification := event.NewInboxNotification(employeeID, senderID, channel)
	if err := s.notifier.Publish(ctx, notification); err != nil {
		log.Printf("publish inbox notification failed: %v", err)
	}
}
