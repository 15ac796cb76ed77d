package store

import (
	"database/sql"
	"errors"
	"time"
)

// GetAuth retrieves the stored authentication tokens
func (s *Store) GetAuth() (*Auth, error) {
	row := s.db.QueryRow(`
		SELECT user_id, athlete_id, access_token, refresh_token, expires_at
		FROM auth
		WHERE id = 1
	`)

	var auth Auth
	var expiresAt int64
	err := row.Scan(&auth.UserID, &auth.AthleteID, &auth.AccessToken, &auth.RefreshToken, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAuth
	}
	if err != nil {
		return nil, err
	}

	auth.ExpiresAt = time.Unix(expiresAt, 0)
	return &auth, nil
}

// SaveAuth stores or updates the authentication tokens
func (s *Store) SaveAuth(auth *Auth) error {
	_, err := s.db.Exec(`
		INSERT INTO auth (id, user_id, athlete_id, access_token, refresh_token, expires_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			athlete_id = excluded.athlete_id,
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP
	`, auth.UserID, auth.AthleteID, auth.AccessToken, auth.RefreshToken, auth.ExpiresAt.Unix())
	return err
}

// UpdateTokens updates just the access and refresh tokens
func (s *Store) UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	result, err := s.db.Exec(`
		UPDATE auth
		SET access_token = ?, refresh_token = ?, expires_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`, accessToken, refreshToken, expiresAt.Unix())
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoAuth
	}
	return nil
}

// DeleteAuth removes the stored authentication
func (s *Store) DeleteAuth() error {
	_, err := s.db.Exec(`DELETE FROM auth WHERE id = 1`)
	return err
}
