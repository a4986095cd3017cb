// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/oEg8/pentest-tui/internal/api"
	"github.com/oEg8/pentest-tui/internal/session"
)

// HandleLogin signs in from the terminal and stores the session token where
// the TUI will find it. With MFA enabled the code is taken from --code, the
// configured TOTP secret, or an interactive prompt, in that order.
func HandleLogin(args []string) error {
	cfg, client, store := Setup(args)
	parsed := NewArgParser(args)

	username := parsed.Flag("username")
	if username == "" {
		username = parsed.Positional(0)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	var err error
	if username == "" {
		username, err = line.Prompt("Username: ")
		if err != nil {
			return err
		}
		username = strings.TrimSpace(username)
	}
	if username == "" {
		return fmt.Errorf("a username is required")
	}

	fmt.Print("Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	ctx := context.Background()
	resp, err := client.Login(ctx, api.Credentials{Username: username, Password: string(pw)})
	if err != nil {
		return fmt.Errorf("%s", api.Message(err, "Login failed."))
	}

	var token string
	var greeting string
	if resp.MfaRequired {
		code := parsed.Flag("code")
		if code == "" && cfg.Auth.TOTPSecret != "" {
			code, err = session.DevCode(cfg.Auth.TOTPSecret)
			if err != nil {
				return fmt.Errorf("generate code: %w", err)
			}
			fmt.Println("Using code from the configured TOTP secret.")
		}
		if code == "" {
			if resp.MfaCode != "" {
				fmt.Printf("Dev code: %s\n", resp.MfaCode)
			}
			code, err = line.Prompt("MFA code: ")
			if err != nil {
				return err
			}
			code = strings.TrimSpace(code)
		}
		if code == "" {
			return fmt.Errorf("a verification code is required")
		}

		auth, err := client.VerifyMFA(ctx, resp.Username, code)
		if err != nil {
			return fmt.Errorf("%s", api.Message(err, "MFA verification failed."))
		}
		token = auth.Token
		greeting = auth.User.Username
	} else {
		token = resp.Token
		greeting = username
		if resp.User != nil {
			greeting = resp.User.Username
		}
	}

	if err := store.Save(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	fmt.Printf("Signed in as %s (token %s)\n", greeting, session.Fingerprint(token))
	return nil
}
