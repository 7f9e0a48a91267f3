package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/dogadopt-go/apperror"
	"github.com/user/dogadopt-go/config"
	"github.com/user/dogadopt-go/users"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Service provides registration, login, and token issuance.
type Service struct {
	db  *pgxpool.Pool
	cfg config.AuthConfig
}

// NewService creates a new auth service.
func NewService(db *pgxpool.Pool, cfg config.AuthConfig) *Service {
	return &Service{db: db, cfg: cfg}
}

// Claims is the JWT payload for issued tokens.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Register validates the request, hashes the password with bcrypt, and
// inserts the user. A duplicate username surfaces as a Conflict through the
// unique index, so concurrent registrations cannot both succeed.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.PublicUser, error) {
	if err := validateCredentials(req); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	var user users.PublicUser
	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, username`
	err = s.db.QueryRow(ctx, query, req.Username, string(hashedPassword)).Scan(&user.ID, &user.Username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "username") {
			return nil, apperror.NewConflictError("Username already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return &user, nil
}

// Login authenticates a user and returns a signed bearer token plus the
// public user view. An unknown username and a wrong password produce the
// same error so the response does not reveal which field was wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := validateCredentials(req); err != nil {
		return nil, err
	}

	var user User
	query := `SELECT id, username, password, created_at FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, req.Username).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("Invalid credentials", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("Invalid credentials", nil)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    users.PublicUser{ID: user.ID, Username: user.Username},
	}, nil
}

// IssueToken signs an HS256 token carrying the user id.
func (s *Service) IssueToken(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "dogadopt",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
