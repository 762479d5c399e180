// Package calendly is a minimal client for the two scheduling endpoints the
// reminder run needs: scheduled events in a time window and the invitees of
// each event.
package calendly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/romanibanez/booking-reminder-bot/internal/domain"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

const DefaultBaseURL = "https://api.calendly.com"

// pageSize is the maximum the API allows per page.
const pageSize = 100

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userURI    string
}

type Option func(*Client)

// WithBaseURL overrides the API host, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(token, userURI string, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		token:      token,
		userURI:    userURI,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type event struct {
	URI string `json:"uri"`
}

type invitee struct {
	Email string `json:"email"`
}

type pagination struct {
	NextPageToken string `json:"next_page_token"`
}

type eventsPage struct {
	Collection []event    `json:"collection"`
	Pagination pagination `json:"pagination"`
}

type inviteesPage struct {
	Collection []invitee  `json:"collection"`
	Pagination pagination `json:"pagination"`
}

// FetchScheduledEmails lists the acting user's events inside the window and
// collects every invitee email, lower-cased, into a set. A failure on the
// events request returns the empty set plus the error so the caller can
// treat the week as "nobody scheduled" and keep going. A failure on a
// single event's invitees skips that event only.
func (c *Client) FetchScheduledEmails(ctx context.Context, window entity.WeekWindow) (*entity.ScheduledEmails, error) {
	result := entity.NewScheduledEmails()

	events, err := c.listEvents(ctx, window, result)
	if err != nil {
		return result, err
	}

	for _, ev := range events {
		eventID := eventIDFromURI(ev.URI)
		if eventID == "" {
			log.Printf("Skipping event with malformed uri: %s", ev.URI)
			result.SkippedEvents++
			continue
		}

		if err := c.addInvitees(ctx, eventID, result); err != nil {
			log.Printf("Error fetching invitees for event %s: %v", eventID, err)
			result.SkippedEvents++
		}
	}

	return result, nil
}

func (c *Client) listEvents(ctx context.Context, window entity.WeekWindow, result *entity.ScheduledEmails) ([]event, error) {
	var events []event
	pageToken := ""

	for {
		query := url.Values{}
		query.Set("user", c.userURI)
		query.Set("min_start_time", window.MinStartTime())
		query.Set("max_start_time", window.MaxStartTime())
		query.Set("count", fmt.Sprintf("%d", pageSize))
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var page eventsPage
		result.APICalls++
		if err := c.get(ctx, "/scheduled_events", query, &page); err != nil {
			return nil, err
		}

		events = append(events, page.Collection...)
		pageToken = page.Pagination.NextPageToken
		if pageToken == "" {
			return events, nil
		}
	}
}

func (c *Client) addInvitees(ctx context.Context, eventID string, result *entity.ScheduledEmails) error {
	pageToken := ""

	for {
		query := url.Values{}
		query.Set("count", fmt.Sprintf("%d", pageSize))
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var page inviteesPage
		result.APICalls++
		if err := c.get(ctx, "/scheduled_events/"+eventID+"/invitees", query, &page); err != nil {
			return err
		}

		for _, inv := range page.Collection {
			result.Add(inv.Email)
		}

		pageToken = page.Pagination.NextPageToken
		if pageToken == "" {
			return nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Op: "GET " + path, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.UpstreamError{Op: "GET " + path, Status: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{Op: "GET " + path, Status: resp.StatusCode, Detail: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.UpstreamError{Op: "GET " + path, Status: resp.StatusCode, Detail: "invalid response body: " + err.Error()}
	}

	return nil
}

// eventIDFromURI extracts the event UUID, the last path segment of the
// event's resource URI.
func eventIDFromURI(uri string) string {
	uri = strings.TrimRight(uri, "/")
	if uri == "" {
		return ""
	}
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		return uri[idx+1:]
	}
	return uri
}
