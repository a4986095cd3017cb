// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"
)

// DevCode computes the current TOTP code for a configured dev secret. The
// demo backend echoes its expected code in the login response; when a
// deployment disables that echo, a secret shared out of band lets the client
// still prefill the MFA form. Verification always happens server-side.
func DevCode(secret string) (string, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", fmt.Errorf("no TOTP secret configured")
	}
	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		return "", fmt.Errorf("generate TOTP code: %w", err)
	}
	return code, nil
}
