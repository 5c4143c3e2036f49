package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/georgemunganga/venuehub-backend/internal/modules/auth"
	"github.com/georgemunganga/venuehub-backend/internal/modules/donation"
	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/google/uuid"
)

// Page is one page of a list endpoint.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func list[T any](ctx context.Context, c *Client, path string, q url.Values) (*Page[T], error) {
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var items []T
	env, err := c.do(ctx, http.MethodGet, path, nil, &items)
	if err != nil {
		return nil, err
	}
	return &Page[T]{Items: items, Total: env.Total, Page: env.Page, Limit: env.Limit}, nil
}

// PageQuery selects a page; zero values use the server defaults.
type PageQuery struct {
	Page  int
	Limit int
}

func (p PageQuery) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	var s auth.Session
	err := c.Request(ctx, http.MethodPost, "/auth/login", auth.LoginRequest{Email: email, Password: password}, &s)
	if err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}

// VenueQuery filters ListVenues.
type VenueQuery struct {
	PageQuery
	Type   string
	Status venue.Status
	City   string
	Search string
}

func (c *Client) ListVenues(ctx context.Context, vq VenueQuery) (*Page[venue.Venue], error) {
	q := vq.values()
	setIf(q, "type", vq.Type)
	setIf(q, "status", string(vq.Status))
	setIf(q, "city", vq.City)
	setIf(q, "search", vq.Search)
	return list[venue.Venue](ctx, c, "/api/venues", q)
}

func (c *Client) GetVenue(ctx context.Context, id uuid.UUID) (*venue.Venue, error) {
	var v venue.Venue
	if err := c.Request(ctx, http.MethodGet, "/api/venues/"+id.String(), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) UpdateVenueStatus(ctx context.Context, id uuid.UUID, status venue.Status, reason string) (*venue.Venue, error) {
	var v venue.Venue
	body := venue.StatusRequest{Status: status, Reason: reason}
	if err := c.Request(ctx, http.MethodPatch, "/api/venues/"+id.String()+"/status", body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return c.Request(ctx, http.MethodDelete, "/api/venues/"+id.String(), nil, nil)
}

// DonationQuery filters ListDonations.
type DonationQuery struct {
	PageQuery
	Status donation.Status
	City   string
}

func (c *Client) ListDonations(ctx context.Context, dq DonationQuery) (*Page[donation.Donation], error) {
	q := dq.values()
	setIf(q, "status", string(dq.Status))
	setIf(q, "city", dq.City)
	return list[donation.Donation](ctx, c, "/api/donations", q)
}

func (c *Client) UpdateDonationStatus(ctx context.Context, id uuid.UUID, status donation.Status, note string) (*donation.Donation, error) {
	var d donation.Donation
	body := donation.UpdateStatusRequest{Status: status, Note: note}
	if err := c.Request(ctx, http.MethodPatch, "/api/donations/"+id.String()+"/status", body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Notifications lists the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context, unreadOnly bool, pq PageQuery) (*Page[notification.Notification], error) {
	q := pq.values()
	if unreadOnly {
		q.Set("unread", "true")
	}
	return list[notification.Notification](ctx, c, "/notifications", q)
}
