package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTTL is how long a verification code stays valid.
const DefaultTTL = 15 * time.Minute

// Sender delivers a verification code to a user. The templated-email
// provider behind it is an external service.
type Sender interface {
	SendCode(ctx context.Context, email, name, code string) error
}

// LogSender writes the code to the log instead of delivering it. Used in
// development and tests.
type LogSender struct{}

func (LogSender) SendCode(_ context.Context, email, _ string, code string) error {
	log.Info().Str("email", email).Str("code", code).Msg("Verification code issued (log sender)")
	return nil
}

// Service issues and checks single-use, expiring verification codes. The
// backing store is injected so the TTL state is an explicit capability, not
// ambient global state.
type Service struct {
	store  CodeStore
	sender Sender
	ttl    time.Duration
}

func NewService(store CodeStore, sender Sender) *Service {
	return &Service{store: store, sender: sender, ttl: DefaultTTL}
}

// RequestCode generates a fresh 6-digit code for the email, stores it with
// the service TTL and hands it to the sender. A new request overwrites any
// code still pending for the same email.
func (s *Service) RequestCode(ctx context.Context, email, name string) error {
	code, err := GenerateCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	if err := s.store.Put(ctx, email, code, s.ttl); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	if err := s.sender.SendCode(ctx, email, name, code); err != nil {
		// The code is stored but undeliverable; drop it so a stale secret
		// does not linger.
		if delErr := s.store.Delete(ctx, email); delErr != nil {
			log.Warn().Err(delErr).Str("email", email).Msg("Failed to clear undelivered verification code")
		}
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

// Verify checks a submitted code. A matching code is consumed immediately;
// expired or absent codes report false with no error.
func (s *Service) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.store.Get(ctx, email)
	if err == ErrCodeNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read verification code: %w", err)
	}
	if stored != code {
		return false, nil
	}
	if err := s.store.Delete(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Failed to consume verification code")
	}
	return true, nil
}

// GenerateCode returns a random 6-digit code, zero-padded.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
