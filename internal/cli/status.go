// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/session"
)

// HandleStatus prints the current session: who is signed in, against which
// backend, and the account's target and credit balance.
func HandleStatus(args []string) error {
	_, client, store := Setup(args)

	token, err := store.Load()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}

	fmt.Printf("Backend: %s\n", client.BaseURL())
	if token == "" {
		fmt.Println("Session: not signed in")
		return nil
	}
	fmt.Printf("Token:   %s\n", session.Fingerprint(token))

	me, err := client.Me(context.Background(), token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Session: expired (run `pentest-tui login`)")
			return nil
		}
		if errors.Is(err, api.ErrUnreachable) {
			fmt.Println("Session: unknown (backend unreachable)")
			return nil
		}
		return err
	}

	fmt.Printf("User:    %s", me.User.Username)
	if me.User.Email != "" {
		fmt.Printf(" <%s>", me.User.Email)
	}
	fmt.Println()
	fmt.Printf("Target:  %s\n", me.Profile.TargetIP)
	fmt.Printf("Credits: %g\n", me.Profile.Credits)
	return nil
}
