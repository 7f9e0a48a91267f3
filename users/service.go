package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/dogadopt-go/apperror"
)

// Service resolves user identifiers to public user views. Dog records hold
// owner and adopter ids only; responses that need usernames go through here
// at response-construction time rather than joining in the dog queries.
type Service struct {
	db *pgxpool.Pool
}

// NewService creates a new user directory service.
func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// ByID returns the public view of a single user.
func (s *Service) ByID(ctx context.Context, id int) (*PublicUser, error) {
	var user PublicUser
	query := `SELECT id, username FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to look up user", err)
	}
	return &user, nil
}

// ByIDs batch-resolves public views for a set of user ids. Unknown ids are
// simply absent from the result map.
func (s *Service) ByIDs(ctx context.Context, ids []int) (map[int]PublicUser, error) {
	views := make(map[int]PublicUser, len(ids))
	if len(ids) == 0 {
		return views, nil
	}

	query := `SELECT id, username FROM users WHERE id = ANY($1)`
	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to look up users", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user PublicUser
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user row", err)
		}
		views[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read user rows", err)
	}

	return views, nil
}
