package postgres

import (
	"context"

	"github.com/ekaspersen/isabellramsvik/internal/model"
)

func (s *Storage) CreateMessage(ctx context.Context, msg model.Message) (*model.Message, error) {
	var saved model.Message
	err := s.DB.QueryRow(ctx,
		`INSERT INTO messages (fullname, email, phone, wish)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, fullname, email, phone, wish, read, favorite, created_at`,
		msg.Fullname, msg.Email, msg.Phone, msg.Wish,
	).Scan(&saved.ID, &saved.Fullname, &saved.Email, &saved.Phone, &saved.Wish,
		&saved.Read, &saved.Favorite, &saved.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Storage) ListMessages(ctx context.Context, limit, offset int, read *bool) ([]model.Message, int, error) {
	var total int
	err := s.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE $1::boolean IS NULL OR read = $1`, read).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx,
		`SELECT id, fullname, email, phone, wish, read, favorite, created_at
		 FROM messages
		 WHERE $1::boolean IS NULL OR read = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`, read, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Fullname, &m.Email, &m.Phone, &m.Wish,
			&m.Read, &m.Favorite, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

// UpdateMessage переключает флаги read/favorite; nil оставляет флаг как есть
func (s *Storage) UpdateMessage(ctx context.Context, id int64, read, favorite *bool) (*model.Message, error) {
	var m model.Message
	err := s.DB.QueryRow(ctx,
		`UPDATE messages
		 SET read = COALESCE($1, read),
		     favorite = COALESCE($2, favorite)
		 WHERE id = $3
		 RETURNING id, fullname, email, phone, wish, read, favorite, created_at`,
		read, favorite, id,
	).Scan(&m.ID, &m.Fullname, &m.Email, &m.Phone, &m.Wish,
		&m.Read, &m.Favorite, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
