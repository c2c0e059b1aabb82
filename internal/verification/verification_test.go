package verification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	lastCode string
	err      error
}

func (s *captureSender) SendCode(_ context.Context, _, _, code string) error {
	if s.err != nil {
		return s.err
	}
	s.lastCode = code
	return nil
}

func TestRequestAndVerify(t *testing.T) {
	ctx := context.Background()
	sender := &captureSender{}
	svc := NewService(NewMemoryStore(), sender)

	require.NoError(t, svc.RequestCode(ctx, "ada@example.com", "Ada"))
	require.Len(t, sender.lastCode, 6)

	ok, err := svc.Verify(ctx, "ada@example.com", sender.lastCode)
	require.NoError(t, err)
	assert.True(t, ok)

	// A consumed code cannot be replayed.
	ok, err = svc.Verify(ctx, "ada@example.com", sender.lastCode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyWrongCode(t *testing.T) {
	ctx := context.Background()
	sender := &captureSender{}
	svc := NewService(NewMemoryStore(), sender)

	require.NoError(t, svc.RequestCode(ctx, "ada@example.com", "Ada"))

	ok, err := svc.Verify(ctx, "ada@example.com", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	// The stored code survives a wrong guess.
	ok, err = svc.Verify(ctx, "ada@example.com", sender.lastCode)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryStore(), &captureSender{})

	ok, err := svc.Verify(context.Background(), "nobody@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCodeExpires(t *testing.T) {
	ctx := context.Background()
	current := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return current }

	sender := &captureSender{}
	svc := NewService(store, sender)

	require.NoError(t, svc.RequestCode(ctx, "ada@example.com", "Ada"))

	current = current.Add(DefaultTTL + time.Second)

	ok, err := svc.Verify(ctx, "ada@example.com", sender.lastCode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRequestOverwritesPendingCode(t *testing.T) {
	ctx := context.Background()
	sender := &captureSender{}
	svc := NewService(NewMemoryStore(), sender)

	require.NoError(t, svc.RequestCode(ctx, "ada@example.com", "Ada"))
	first := sender.lastCode
	require.NoError(t, svc.RequestCode(ctx, "ada@example.com", "Ada"))

	if first != sender.lastCode {
		ok, err := svc.Verify(ctx, "ada@example.com", first)
		require.NoError(t, err)
		assert.False(t, ok, "stale code should be dead after a new request")
	}

	ok, err := svc.Verify(ctx, "ada@example.com", sender.lastCode)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUndeliverableCodeIsDropped(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, &captureSender{err: errors.New("smtp down")})

	err := svc.RequestCode(ctx, "ada@example.com", "Ada")
	require.Error(t, err)

	_, err = store.Get(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestGenerateCodeFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q has non-digit %q", code, r)
		}
	}
}
