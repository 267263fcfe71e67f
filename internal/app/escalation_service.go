package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/itseyans/ruric/internal/config"
	"github.com/itseyans/ruric/internal/model"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoEmployeeAvailable = errors.New("no employees available")
	ErrAssignmentNotFound  = errors.New("no assignment found")
)

// handoffReply replaces whatever the responder produced whenever the raw
// client message carries a trigger phrase.
const handoffReply = "Don't worry — I will connect you to a live agent now."

// triggerPhrases force escalation regardless of the responder's output.
var triggerPhrases = []string{
	"help", "support", "i need help", "human", "agent", "representative",
}

// replyMarkers flag responder output that itself offers a live agent.
var replyMarkers = []string{
	"speak with a live support", "connect you to a live",
}

// EscalationService decides whether a client message stays with the
// automated responder or moves to a human, and keeps the ledger and the
// assignment map consistent while doing so.
type EscalationService struct {
	ledger      ChatLedger
	assignments AssignmentStore
	users       UserStore
	responder   AutoResponder
	identities  config.ChatConfig

	pick func(n int) int
}

type RouteResult struct {
	Reply       string
	HumanNeeded bool
}

type HumanAssignment struct {
	EmployeeID   uint
	EmployeeName string
}

func NewEscalationService(
	ledger ChatLedger,
	assignments AssignmentStore,
	users UserStore,
	responder AutoResponder,
	identities config.ChatConfig,
) *EscalationService {
	return &EscalationService{
		ledger:      ledger,
		assignments: assignments,
		users:       users,
		responder:   responder,
		identities:  identities,
		pick:        rand.Intn,
	}
}

// Route answers a client message and records both sides of the exchange.
// The inbound and outbound rows are written atomically; a rejected input
// never touches the ledger.
func (s *EscalationService) Route(ctx context.Context, senderID uint, message string) (*RouteResult, error) {
	trimmed := strings.TrimSpace(message)
	if senderID == 0 || trimmed == "" {
		return nil, ErrInvalidInput
	}

	reply := s.responder.Respond(ctx, trimmed)

	humanNeeded := false
	lower := strings.ToLower(trimmed)
	for _, phrase := range triggerPhrases {
		if strings.Contains(lower, phrase) {
			humanNeeded = true
			reply = handoffReply
			break
		}
	}

	lowerReply := strings.ToLower(reply)
	for _, marker := range replyMarkers {
		if strings.Contains(lowerReply, marker) {
			humanNeeded = true
			break
		}
	}

	err := s.ledger.AppendAll(
		&model.ChatMessage{
			SenderID:   senderID,
			ReceiverID: s.identities.AIUserID,
			Message:    trimmed,
			ChatType:   model.ChatTypeClientAI,
		},
		&model.ChatMessage{
			SenderID:   s.identities.AIUserID,
			ReceiverID: senderID,
			Message:    reply,
			ChatType:   model.ChatTypeClientAI,
		},
	)
	if err != nil {
		return nil, err
	}

	return &RouteResult{Reply: reply, HumanNeeded: humanNeeded}, nil
}

// RequestHuman assigns a random eligible employee to the client. Eligible
// means role employee and membership in the configured allow-list. The
// assignment upsert and its system trace row commit together.
func (s *EscalationService) RequestHuman(ctx context.Context, clientID uint) (*HumanAssignment, error) {
	if clientID == 0 {
		return nil, ErrInvalidInput
	}

	employees, err := s.users.ListEmployeesByIDs(s.identities.EmployeeAllowlist)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEmployeeAvailable
	}

	chosen := employees[s.pick(len(employees))]

	trace := &model.ChatMessage{
		SenderID:   s.identities.AdminUserID,
		ReceiverID: clientID,
		Message: fmt.Sprintf(
			"System: client %d assigned to employee %s (id %d)",
			clientID, chosen.FullName, chosen.ID,
		),
		ChatType: model.ChatTypeSystem,
	}
	if err := s.assignments.UpsertWithTrace(clientID, chosen.ID, trace); err != nil {
		return nil, err
	}

	return &HumanAssignment{EmployeeID: chosen.ID, EmployeeName: chosen.FullName}, nil
}

// AssignmentFor returns the client's current assignment.
func (s *EscalationService) AssignmentFor(clientID uint) (*HumanAssignment, error) {
	if clientID == 0 {
		return nil, ErrInvalidInput
	}

	view, err := s.assignments.GetByClient(clientID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrAssignmentNotFound
	}
	return &HumanAssignment{EmployeeID: view.EmployeeID, EmployeeName: view.EmployeeName}, nil
}
