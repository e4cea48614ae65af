package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/kakao-token/services"
)

// adminFlags are one-shot maintenance commands run instead of the server
type adminFlags struct {
	block   int64
	unblock int64
}

func (f adminFlags) requested() bool {
	return f.block != 0 || f.unblock != 0
}

// runAdmin applies the requested block or unblock and reports what it did
func runAdmin(ctx context.Context, login services.LoginService, f adminFlags) (string, error) {
	switch {
	case f.block != 0 && f.unblock != 0:
		return "", errors.New("-block and -unblock are mutually exclusive")
	case f.block != 0:
		if err := login.SetBlocked(ctx, f.block, true); err != nil {
			return "", fmt.Errorf("failed to block user %d: %w", f.block, err)
		}
		return fmt.Sprintf("user %d blocked", f.block), nil
	case f.unblock != 0:
		if err := login.SetBlocked(ctx, f.unblock, false); err != nil {
			return "", fmt.Errorf("failed to unblock user %d: %w", f.unblock, err)
		}
		return fmt.Sprintf("user %d unblocked", f.unblock), nil
	}
	return "", errors.New("no admin command given")
}
