package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/itseyans/ruric/internal/model"
)

type ChatLogRepository struct {
	db *gorm.DB
}

func NewChatLogRepository(db *gorm.DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// AppendAll writes the given ledger rows in a single transaction so a
// multi-row exchange is either fully recorded or not at all.
func (r *ChatLogRepository) AppendAll(messages ...*model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, msg := range messages {
			if err := tx.Create(msg).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("append chat messages failed: %w", err)
	}
	return nil
}

// ListBetween returns the full transcript between two participants in either
// direction, oldest first. An optional tag set restricts the channels.
func (r *ChatLogRepository) ListBetween(a, b uint, types ...model.ChatType) ([]model.ChatMessage, error) {
	query := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		a, b, b, a,
	)
	if len(types) > 0 {
		query = query.Where("chat_type IN ?", types)
	}

	var messages []model.ChatMessage
	if err := query.Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list chat messages failed: %w", err)
	}
	return messages, nil
}
