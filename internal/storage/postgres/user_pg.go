package postgres

import (
	"context"

	"github.com/ekaspersen/isabellramsvik/internal/model"
)

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, email, name, password, is_admin, refresh_token FROM users
		 WHERE email=$1`,
		email)

	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.IsAdmin, &u.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, email, name, password, is_admin, refresh_token FROM users
		 WHERE id=$1`,
		id)

	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.IsAdmin, &u.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) GetUserByRefresh(ctx context.Context, refreshToken string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT id, email, name, password, is_admin, refresh_token FROM users
		 WHERE refresh_token=$1`,
		refreshToken)

	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.IsAdmin, &u.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) UpdateRefreshToken(ctx context.Context, id int64, refreshToken string) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET refresh_token=$1
		 WHERE id=$2`,
		refreshToken, id)
	return err
}

// UpsertAdmin создаёт администратора при первом запуске; существующего не трогает
func (s *Storage) UpsertAdmin(ctx context.Context, email, name, passwordHash string) error {
	_, err := s.DB.Exec(ctx,
		`INSERT INTO users (email, name, password, is_admin)
		 VALUES ($1, $2, $3, true)
		 ON CONFLICT (email) DO NOTHING`,
		email, name, passwordHash)
	return err
}
