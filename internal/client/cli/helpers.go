package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/carmarket/internal/client/session"
	"github.com/iudanet/carmarket/internal/client/storage"
)

// currentSession возвращает активную сессию или понятную ошибку,
// если пользователь не залогинен.
func (c *Cli) currentSession(ctx context.Context) (*session.Session, error) {
	sess, err := c.sessionStore.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not logged in. Please run 'carmarket login' first")
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return sess, nil
}

// parseValue parses a car price given on the command line or typed at
// the prompt.
func parseValue(s string) (int64, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: expected an integer", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid value %d: must not be negative", value)
	}
	return value, nil
}

// formatAnchor renders a sync anchor (epoch millis) for humans.
func formatAnchor(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(time.RFC3339)
}
