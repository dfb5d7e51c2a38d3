package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclibhq/doclib-be/repository"
	"github.com/doclibhq/doclib-be/types"
	"github.com/doclibhq/doclib-be/utils"
)

type fakeUserRepo struct {
	users map[string]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*types.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *types.User) error {
	user.ID = "user-" + user.Email
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func TestSignUpThenSignIn(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()
	ctx := context.Background()

	user, err := auth.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	token, signedIn, err := auth.SignIn(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, signedIn.ID)

	claims, err := utils.ParseUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestSignUp_DuplicateEmailRejected(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = auth.SignUp(ctx, "alice@example.com", "other")
	assert.ErrorIs(t, err, types.ErrUserExists)
}

func TestSignIn_WrongPassword(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = auth.SignIn(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestSignIn_UnknownUser(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()

	_, _, err := auth.SignIn(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
}

func TestSignOut_WithoutBlacklistStillNotifies(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	token, _, err := auth.SignIn(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	id, events := auth.Subscribe()
	defer auth.Unsubscribe(id)

	require.NoError(t, auth.SignOut(ctx, token))
	assert.False(t, auth.IsRevoked(ctx, token))

	event := <-events
	assert.Equal(t, types.SessionEventSignedOut, event.Type)
	assert.Equal(t, "alice@example.com", event.Email)
	assert.Equal(t, types.SessionUnauthenticated, event.State)
}

func TestSubscribe_ReceivesSessionEventsInOrder(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()
	ctx := context.Background()

	id, events := auth.Subscribe()
	defer auth.Unsubscribe(id)

	_, err := auth.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	_, _, err = auth.SignIn(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	first := <-events
	assert.Equal(t, types.SessionEventSignedUp, first.Type)
	second := <-events
	assert.Equal(t, types.SessionEventSignedIn, second.Type)
	assert.Equal(t, types.SessionAuthenticated, second.State)
}

func TestPublish_DropsEventsForFullSubscriber(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 1)
	defer auth.Close()
	ctx := context.Background()

	id, events := auth.Subscribe()
	defer auth.Unsubscribe(id)

	// Two events against a capacity-one channel: the second is dropped
	// instead of blocking sign-up.
	_, err := auth.SignUp(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	_, err = auth.SignUp(ctx, "bob@example.com", "s3cret")
	require.NoError(t, err)

	event := <-events
	assert.Equal(t, "alice@example.com", event.Email)
	assert.Empty(t, events)
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)
	defer auth.Close()

	id, events := auth.Subscribe()
	auth.Unsubscribe(id)

	_, open := <-events
	assert.False(t, open)
}

func TestClose_ClosesAllSubscribers(t *testing.T) {
	auth := NewAuthService(newFakeUserRepo(), nil, 4)

	_, first := auth.Subscribe()
	_, second := auth.Subscribe()
	auth.Close()

	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)

	// Subscribing after Close hands back an already-closed channel.
	_, late := auth.Subscribe()
	_, open = <-late
	assert.False(t, open)
}
