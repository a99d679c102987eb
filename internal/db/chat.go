package db

import (
	"context"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func CreateMessage(ctx context.Context, m *models.Message) error {
	return DB.WithContext(ctx).Create(m).Error
}

// GetMessagesWith returns the full two-way thread between userID and
// partnerID, oldest first, and marks the partner's messages as read.
func GetMessagesWith(ctx context.Context, userID, partnerID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at, id").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	err = DB.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", partnerID, userID, false).
		Update("read", true).Error
	return msgs, err
}

func CountUnreadMessages(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := DB.WithContext(ctx).Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&n).Error
	return n, err
}

// GetConversations rolls up chat partners with last message and unread
// count, most recent first.
func GetConversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var msgs []models.Message
	err := DB.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}

	seen := map[uint]*models.Conversation{}
	order := []uint{}
	for _, m := range msgs {
		partner := m.SenderID
		if partner == userID {
			partner = m.ReceiverID
		}
		conv, ok := seen[partner]
		if !ok {
			last := m.Text
			if last == "" && m.ImageURL != "" {
				last = "[fotoğraf]"
			}
			conv = &models.Conversation{
				PartnerID:   partner,
				LastMessage: last,
				LastAt:      m.CreatedAt,
			}
			seen[partner] = conv
			order = append(order, partner)
		}
		if m.ReceiverID == userID && !m.Read {
			conv.UnreadCount++
		}
	}

	out := make([]models.Conversation, 0, len(order))
	for _, id := range order {
		conv := seen[id]
		if u, err := GetUserByID(ctx, id); err == nil {
			conv.PartnerName = u.Name
		}
		out = append(out, *conv)
	}
	return out, nil
}
