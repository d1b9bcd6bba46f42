package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/career/pkg/chat"
)

const chatColumns = `id, user_id, message, response, type, created_at`

func scanChat(row scanner) (chat.Message, error) {
	var m chat.Message
	err := row.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Type, &m.CreatedAt)
	return m, err
}

func (s *Store) CreateChatMessage(ctx context.Context, m chat.Message) (chat.Message, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	out, err := scanChat(s.pool.QueryRow(ctx, `
		INSERT INTO chat_messages (id, user_id, message, response, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+chatColumns,
		m.ID, m.UserID, m.Message, m.Response, string(m.Type)))
	return out, mapErr(err)
}

func (s *Store) ListChatMessages(ctx context.Context, userID uuid.UUID) ([]chat.Message, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+chatColumns+` FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanChat)
}
