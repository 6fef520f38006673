package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=users

// MaxUsernameLength matches the app_user.username column, in characters.
const MaxUsernameLength = 100

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyCredentials   = errors.New("username and password must not be empty")
	ErrUsernameTooLong    = fmt.Errorf("username longer than %d characters", MaxUsernameLength)
	ErrPasswordTooLong    = fmt.Errorf("password longer than %d bytes", pkg.MaxPasswordBytes)
)

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type Service struct {
	repo     usersRepo
	hashCost int
	// dummyHash is compared against when the username is unknown, so both
	// failure paths of VerifyCredentials cost one bcrypt comparison.
	dummyHash string
}

func NewService(repo usersRepo, hashCost int) (*Service, error) {
	dummyHash, err := pkg.HashPasswordWithCost("fitlog-dummy-password", hashCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{
		repo:      repo,
		hashCost:  hashCost,
		dummyHash: dummyHash,
	}, nil
}

// CreateUser registers a new account. The username is used as given
// (callers trim it); uniqueness is case-sensitive.
func (s *Service) CreateUser(ctx context.Context, username, rawPassword string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	if strings.TrimSpace(username) == "" || rawPassword == "" {
		return nil, ErrEmptyCredentials
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}
	if len(rawPassword) > pkg.MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	passwordHash, err := pkg.HashPasswordWithCost(rawPassword, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// the unique index still guards a concurrent signup for the same name
	user, err := s.repo.Add(ctx, User{
		Username:     username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("add user: %w", err)
	}

	log.Debugf("new user created [%d]: %s", user.ID, user.Username)
	return user, nil
}

// VerifyCredentials returns the user for a matching username/password pair.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) VerifyCredentials(ctx context.Context, username, rawPassword string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.verify")
	defer func() {
		if errors.Is(err, ErrInvalidCredentials) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// bcrypt compares only the first 72 bytes, no stored password is longer
	if len(rawPassword) > pkg.MaxPasswordBytes {
		pkg.CheckPasswordHash(rawPassword, s.dummyHash)
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			pkg.CheckPasswordHash(rawPassword, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(rawPassword, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) Get(ctx context.Context, id int) (*User, error) {
	return s.repo.Get(ctx, id)
}

// Identity resolves a session's user id to the request identity.
func (s *Service) Identity(ctx context.Context, userID int) (*auth.Identity, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &auth.Identity{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
