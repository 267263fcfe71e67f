package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itseyans/ruric/internal/event"
	"github.com/itseyans/ruric/internal/model"
)

type memNotifier struct {
	events []event.InboxNotification
	err    error
}

func (m *memNotifier) Publish(ctx context.Context, notification event.InboxNotification) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, notification)
	return nil
}

type memUnread struct {
	counts map[uint]int64
}

func newMemUnread() *memUnread {
	return &memUnread{counts: make(map[uint]int64)}
}

func (m *memUnread) Count(ctx context.Context, employeeID uint) (int64, error) {
	return m.counts[employeeID], nil
}

func (m *memUnread) Reset(ctx context.Context, employeeID uint) error {
	delete(m.counts, employeeID)
	return nil
}

func newTestRelay(ledger *memLedger, notifier *memNotifier) *RelayService {
	return NewRelayService(ledger, newMemAssignments(nil), notifier, newMemUnread(), testIdentities)
}

func TestClientSendAppendsMessageAndNotice(t *testing.T) {
	ledger := &memLedger{}
	notifier := &memNotifier{}
	svc := newTestRelay(ledger, notifier)

	err := svc.ClientSend(context.Background(), 2, 42, "my order is late")
	require.NoError(t, err)

	require.Len(t, ledger.rows, 2)
	assert.Equal(t, "my order is late", ledger.rows[0].Message)
	assert.Equal(t, "System: Client 42 sent a message to you.", ledger.rows[1].Message)
	for _, row := range ledger.rows {
		assert.Equal(t, uint(42), row.SenderID)
		assert.Equal(t, uint(2), row.ReceiverID)
		assert.Equal(t, model.ChatTypeClientEmployee, row.ChatType)
	}

	require.Len(t, notifier.events, 1)
	assert.Equal(t, uint(2), notifier.events[0].EmployeeID)
	assert.Equal(t, uint(42), notifier.events[0].SenderID)
	assert.Equal(t, model.ChatTypeClientEmployee, notifier.events[0].Channel)
	assert.NotEmpty(t, notifier.events[0].Meta.EventID)
}

func TestClientSendValidatesBeforeWriting(t *testing.T) {
	ledger := &memLedger{}
	notifier := &memNotifier{}
	svc := newTestRelay(ledger, notifier)

	assert.ErrorIs(t, svc.ClientSend(context.Background(), 0, 42, "hi"), ErrInvalidInput)
	assert.ErrorIs(t, svc.ClientSend(context.Background(), 2, 0, "hi"), ErrInvalidInput)
	assert.ErrorIs(t, svc.ClientSend(context.Background(), 2, 42, "  "), ErrInvalidInput)
	assert.Empty(t, ledger.rows)
	assert.Empty(t, notifier.events)
}

func TestClientSendSurvivesNotifierFailure(t *testing.T) {
	ledger := &memLedger{}
	notifier := &memNotifier{err: assert.AnError}
	svc := newTestRelay(ledger, notifier)

	err := svc.ClientSend(context.Background(), 2, 42, "still delivered")
	require.NoError(t, err)
	assert.Len(t, ledger.rows, 2)
}

func TestEmployeeReplyAppendsSingleRow(t *testing.T) {
	ledger := &memLedger{}
	svc := newTestRelay(ledger, &memNotifier{})

	err := svc.EmployeeReply(context.Background(), 2, 42, "on its way")
	require.NoError(t, err)

	require.Len(t, ledger.rows, 1)
	row := ledger.rows[0]
	assert.Equal(t, uint(2), row.SenderID)
	assert.Equal(t, uint(42), row.ReceiverID)
	assert.Equal(t, model.ChatTypeEmployeeClient, row.ChatType)
}

func TestAdminSendUsesConfiguredIdentity(t *testing.T) {
	ledger := &memLedger{}
	notifier := &memNotifier{}
	svc := newTestRelay(ledger, notifier)

	err := svc.AdminSend(context.Background(), 2, "please check the queue")
	require.NoError(t, err)

	require.Len(t, ledger.rows, 1)
	assert.Equal(t, testIdentities.AdminUserID, ledger.rows[0].SenderID)
	assert.Equal(t, uint(2), ledger.rows[0].ReceiverID)
	assert.Equal(t, model.ChatTypeAdminEmployee, ledger.rows[0].ChatType)
	require.Len(t, notifier.events, 1)
}

func TestEmployeeTranscriptInterleavedBothDirections(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ledger := &memLedger{rows: []model.ChatMessage{
		{SenderID: 42, ReceiverID: 2, Message: "third", ChatType: model.ChatTypeClientEmployee, CreatedAt: base.Add(2 * time.Minute)},
		{SenderID: 2, ReceiverID: 42, Message: "second", ChatType: model.ChatTypeEmployeeClient, CreatedAt: base.Add(time.Minute)},
		{SenderID: 42, ReceiverID: 2, Message: "first", ChatType: model.ChatTypeClientEmployee, CreatedAt: base},
		// Different pair, must not appear.
		{SenderID: 42, ReceiverID: 9, Message: "other", ChatType: model.ChatTypeClientEmployee, CreatedAt: base},
	}}
	svc := newTestRelay(ledger, &memNotifier{})

	transcript, err := svc.EmployeeTranscript(2, 42)
	require.NoError(t, err)
	require.Len(t, transcript, 3)
	assert.Equal(t, "first", transcript[0].Message)
	assert.Equal(t, "second", transcript[1].Message)
	assert.Equal(t, "third", transcript[2].Message)
}

func TestAdminTranscriptFiltersChannel(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ledger := &memLedger{rows: []model.ChatMessage{
		{SenderID: 3, ReceiverID: 2, Message: "admin to employee", ChatType: model.ChatTypeAdminEmployee, CreatedAt: base},
		{SenderID: 2, ReceiverID: 3, Message: "employee to admin", ChatType: model.ChatTypeAdminEmployee, CreatedAt: base.Add(time.Minute)},
		{SenderID: 3, ReceiverID: 2, Message: "system trace", ChatType: model.ChatTypeSystem, CreatedAt: base.Add(2 * time.Minute)},
	}}
	svc := newTestRelay(ledger, &memNotifier{})

	transcript, err := svc.AdminTranscript(2)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, "admin to employee", transcript[0].Message)
	assert.Equal(t, "employee to admin", transcript[1].Message)
}

func TestUnreadCountAndClear(t *testing.T) {
	unread := newMemUnread()
	unread.counts[2] = 5
	svc := NewRelayService(&memLedger{}, newMemAssignments(nil), &memNotifier{}, unread, testIdentities)

	count, err := svc.UnreadCount(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	require.NoError(t, svc.ClearUnread(context.Background(), 2))
	count, err = svc.UnreadCount(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, count)
}
