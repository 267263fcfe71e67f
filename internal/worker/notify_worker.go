package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/itseyans/ruric/internal/cache"
	"github.com/itseyans/ruric/internal/event"
)

// NotifyWorker consumes inbox notifications and bumps the employee's
// unread counter.
type NotifyWorker struct {
	conn      *amqp.Connection
	unread    *cache.UnreadCache
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotifyWorker(conn *amqp.Connection, unread *cache.UnreadCache, queueName string) *NotifyWorker {
	return &NotifyWorker{
		conn:      conn,
		unread:    unread,
		queueName: queueName,
	}
}

func (w *NotifyWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var notification event.InboxNotification
				if err := json.Unmarshal(d.Body, &notification); err != nil {
					log.Printf("worker decode notification failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.unread.Incr(workerCtx, notification.EmployeeID); err != nil {
					log.Printf("worker bump unread counter failed: %v", err)
					_ = d.Nack(false, true)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *NotifyWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
