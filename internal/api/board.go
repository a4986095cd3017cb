// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oEg8/pentest-tui/internal/model"
)

// Offerings lists the pentest profiles the intake board advertises.
func (c *Client) Offerings(ctx context.Context) ([]model.Offering, error) {
	var out struct {
		Offerings []model.Offering `json:"offerings"`
	}
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/offerings/", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Offerings, nil
}

// Requests lists intake requests, newest first as the backend orders them.
func (c *Client) Requests(ctx context.Context) ([]model.PentestRequest, error) {
	var out struct {
		Requests []model.PentestRequest `json:"requests"`
	}
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/requests/", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

// CreateRequestInput is the intake form payload.
type CreateRequestInput struct {
	ClientName      string `json:"client_name"`
	ContactEmail    string `json:"contact_email"`
	Scope           string `json:"scope"`
	PreferredWindow string `json:"preferred_window,omitempty"`
}

// CreateRequest submits a new intake request. New requests start pending.
func (c *Client) CreateRequest(ctx context.Context, in CreateRequestInput) (*model.PentestRequest, error) {
	var out model.PentestRequest
	if err := c.do(ctx, c.httpClient, http.MethodPost, "/requests/", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRequestStatus moves a request to the given stage.
func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) (*model.PentestRequest, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid request status %q", status)
	}
	payload := struct {
		Status model.RequestStatus `json:"status"`
	}{Status: status}

	var out model.PentestRequest
	path := fmt.Sprintf("/requests/%d/", id)
	if err := c.do(ctx, c.httpClient, http.MethodPatch, path, "", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
