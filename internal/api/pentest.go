// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"

	"github.com/oEg8/pentest-tui/internal/model"
)

// Engines lists the scan engines the backend currently offers. The listing
// is anonymous and may be empty.
func (c *Client) Engines(ctx context.Context) ([]string, error) {
	var out struct {
		Engines []string `json:"engines"`
	}
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/pentest/engines/", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Engines, nil
}

// RunScan executes a scan with the chosen engine against the account's
// target IP. The call blocks until the engine finishes; the response may
// carry an updated credit balance.
func (c *Client) RunScan(ctx context.Context, token, engine string) (*model.ScanResult, error) {
	payload := struct {
		Engine string `json:"engine"`
	}{Engine: engine}

	var out model.ScanResult
	if err := c.do(ctx, c.scanClient, http.MethodPost, "/pentest/scan/", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Scans returns the account's full scan history, newest first as the backend
// orders it. The dashboard replaces its list wholesale with this.
func (c *Client) Scans(ctx context.Context, token string) ([]model.ScanResult, error) {
	var out struct {
		Scans []model.ScanResult `json:"scans"`
	}
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/pentest/scans/", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Scans, nil
}
