package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/doclibhq/doclib-be/repository"
	"github.com/doclibhq/doclib-be/types"
	"github.com/doclibhq/doclib-be/utils"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const blacklistKeyPrefix = "session:blacklist:"

// AuthService wraps sign-in, sign-up and sign-out against the remote user
// store and fans session changes out to subscribers. Subscribers may receive
// duplicate events and must treat a repeat as a no-op; events are delivered
// in emission order per subscriber. Close tears the hub down.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*types.User, error)
	SignIn(ctx context.Context, email, password string) (string, *types.User, error)
	SignOut(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) bool
	Subscribe() (string, <-chan types.SessionEvent)
	Unsubscribe(id string)
	Close()
}

type authService struct {
	users     repository.UserRepo
	blacklist *redis.Client
	eventCap  int

	mu          sync.Mutex
	subscribers map[string]chan types.SessionEvent
	closed      bool
}

func NewAuthService(users repository.UserRepo, blacklist *redis.Client, eventCap int) AuthService {
	if eventCap <= 0 {
		eventCap = 16
	}
	return &authService{
		users:       users,
		blacklist:   blacklist,
		eventCap:    eventCap,
		subscribers: make(map[string]chan types.SessionEvent),
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (*types.User, error) {
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, types.ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &types.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().Unix(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.publish(types.SessionEvent{
		Type:  types.SessionEventSignedUp,
		Email: email,
		State: types.SessionUnauthenticated,
		At:    time.Now().Unix(),
	})
	return user, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, *types.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, types.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, types.ErrInvalidCredentials
	}

	token, err := utils.GenerateUserToken(user)
	if err != nil {
		return "", nil, err
	}

	s.publish(types.SessionEvent{
		Type:  types.SessionEventSignedIn,
		Email: user.Email,
		State: types.SessionAuthenticated,
		At:    time.Now().Unix(),
	})
	return token, user, nil
}

// SignOut revokes the token for the rest of its lifetime and notifies
// subscribers. A missing blacklist backend degrades to notification only.
func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := utils.ParseUserToken(token)
	if err != nil {
		return err
	}

	if s.blacklist != nil {
		if err := s.blacklist.Set(ctx, blacklistKeyPrefix+token, "1", utils.TokenLifetime).Err(); err != nil {
			log.Printf("blacklisting token failed: %v", err)
		}
	}

	s.publish(types.SessionEvent{
		Type:  types.SessionEventSignedOut,
		Email: claims.Email,
		State: types.SessionUnauthenticated,
		At:    time.Now().Unix(),
	})
	return nil
}

func (s *authService) IsRevoked(ctx context.Context, token string) bool {
	if s.blacklist == nil {
		return false
	}
	exists, err := s.blacklist.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

// Subscribe registers a session-event listener. The returned channel closes
// on Unsubscribe or Close.
func (s *authService) Subscribe() (string, <-chan types.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan types.SessionEvent, s.eventCap)
	if s.closed {
		close(ch)
		return "", ch
	}
	id := uuid.NewString()
	s.subscribers[id] = ch
	return id, ch
}

func (s *authService) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *authService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

// publish delivers the event to every subscriber in order. A subscriber that
// stopped draining loses the event rather than stalling the emitter.
func (s *authService) publish(event types.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
