package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
)

// issueToken signs an access token with the configured secret and writes it
// to w. A zero expiry falls back to the configured lifetime.
func issueToken(ctx context.Context, w io.Writer, cfg config.JWTConfig, subject, email string, expiry time.Duration) error {
	if strings.TrimSpace(subject) == "" {
		return errors.New("subject is required")
	}
	if expiry == 0 {
		expiry = cfg.AccessTokenExpiry
	}
	if expiry <= 0 {
		return fmt.Errorf("invalid token expiry %s", expiry)
	}

	token, err := adapters.NewTokenService(cfg.Secret, expiry).GenerateAccessToken(ctx, subject, email)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}
