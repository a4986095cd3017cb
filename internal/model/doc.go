// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package model defines the domain types shared by the API client, the UI
// state machine, and local persistence: sessions, scan results, routes, and
// the request-intake board records.
package model
