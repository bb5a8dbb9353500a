package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/markbates/goth"
)

// User is a signed-in account, keyed by the identity provider pair.
type User struct {
	ID           int
	Provider     string
	IDByProvider string
	Name         string
	Email        string
	PictureLink  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Report is one saved report owned by a user.
type Report struct {
	ID        int
	UserID    int
	Title     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetOrCreateUser upserts the authenticated user and reports whether a
// new row was created, so the caller can distinguish a signup from a
// returning login.
func GetOrCreateUser(conn *pgx.Conn, authUser goth.User) (*User, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := GetUserByProviderID(ctx, conn, authUser.Provider, authUser.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			user, err = createUser(ctx, conn, authUser)
			if err != nil {
				return nil, false, fmt.Errorf("error creating user: %w", err)
			}
			log.Printf("New user created: %s (%s)", authUser.Name, authUser.Email)
			return user, true, nil
		}
		return nil, false, fmt.Errorf("error getting user: %w", err)
	}

	updated, err := updateUserIfChanged(ctx, conn, user.ID, authUser)
	if err != nil {
		return nil, false, fmt.Errorf("error updating user: %w", err)
	}
	if updated {
		user, err = getUserByID(ctx, conn, user.ID)
		if err != nil {
			return nil, false, fmt.Errorf("error getting updated user: %w", err)
		}
	}

	return user, false, nil
}

func GetUserByProviderID(ctx context.Context, conn *pgx.Conn, provider, idByProvider string) (*User, error) {
	var user User
	err := conn.QueryRow(ctx, `
		SELECT id, provider, id_by_provider, name, email, picture_link, created_at, updated_at
		FROM users
		WHERE provider = $1 AND id_by_provider = $2`,
		provider, idByProvider,
	).Scan(
		&user.ID, &user.Provider, &user.IDByProvider, &user.Name,
		&user.Email, &user.PictureLink, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func getUserByID(ctx context.Context, conn *pgx.Conn, userID int) (*User, error) {
	var user User
	err := conn.QueryRow(ctx, `
		SELECT id, provider, id_by_provider, name, email, picture_link, created_at, updated_at
		FROM users
		WHERE id = $1`,
		userID,
	).Scan(
		&user.ID, &user.Provider, &user.IDByProvider, &user.Name,
		&user.Email, &user.PictureLink, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func createUser(ctx context.Context, conn *pgx.Conn, authUser goth.User) (*User, error) {
	var user User
	err := conn.QueryRow(ctx, `
		INSERT INTO users (provider, id_by_provider, name, email, picture_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, provider, id_by_provider, name, email, picture_link, created_at, updated_at`,
		authUser.Provider,
		authUser.UserID,
		authUser.Name,
		authUser.Email,
		authUser.AvatarURL,
	).Scan(
		&user.ID, &user.Provider, &user.IDByProvider, &user.Name,
		&user.Email, &user.PictureLink, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return &user, nil
}

func updateUserIfChanged(ctx context.Context, conn *pgx.Conn, userID int, authUser goth.User) (bool, error) {
	result, err := conn.Exec(ctx, `
		UPDATE users SET
			name = $1,
			email = $2,
			picture_link = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND (
			name IS DISTINCT FROM $1 OR
			email IS DISTINCT FROM $2 OR
			picture_link IS DISTINCT FROM $3
		)`,
		authUser.Name,
		authUser.Email,
		authUser.AvatarURL,
		userID,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// ListReportsByUser returns the user's reports, newest first.
func ListReportsByUser(ctx context.Context, conn *pgx.Conn, userID int) ([]Report, error) {
	rows, err := conn.Query(ctx, `
		SELECT id, user_id, title, status, created_at, updated_at
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.Title, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning report: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
