package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"meetbot/models"
	"meetbot/utils"

	"go.uber.org/zap"
)

// Package-level HTTP client for scheduling-service calls.
var calHTTPClient = &http.Client{Timeout: 10 * time.Second}

// Client is the cal.com v1 API client. Authentication is an apiKey query
// parameter on every request.
type Client struct {
	BaseURL  string
	APIKey   string
	Username string
}

// NewClient returns a Client for the given cal.com account.
func NewClient(baseURL, apiKey, username string) *Client {
	return &Client{BaseURL: baseURL, APIKey: apiKey, Username: username}
}

func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values, body any, out any) error {
	logger := utils.GetLogger()

	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.APIKey)

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s payload: %w", method, endpoint, err)
		}
		payload = bytes.NewReader(b)
	}

	reqURL := c.BaseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("Calling scheduling API", zap.String("method", method), zap.String("endpoint", endpoint))
	resp, err := calHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("scheduling API %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, endpoint, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Warn("Scheduling API returned non-OK status",
			zap.String("endpoint", endpoint), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("scheduling API %s %s: status %d: %s", method, endpoint, resp.StatusCode, truncate(data, 500))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
		}
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

// ListEventTypes returns the account's event types.
func (c *Client) ListEventTypes(ctx context.Context) ([]models.EventType, error) {
	params := url.Values{}
	params.Set("username", c.Username)
	var out struct {
		EventTypes []models.EventType `json:"event_types"`
	}
	if err := c.request(ctx, http.MethodGet, "event-types", params, nil, &out); err != nil {
		return nil, err
	}
	return out.EventTypes, nil
}

// CreateEventType creates a new event type and returns it.
func (c *Client) CreateEventType(ctx context.Context, title, slug string, length int, hidden bool) (*models.EventType, error) {
	body := map[string]any{
		"title":  title,
		"slug":   slug,
		"length": length,
		"hidden": hidden,
	}
	var out struct {
		EventType *models.EventType `json:"event_type"`
	}
	if err := c.request(ctx, http.MethodPost, "event-types", nil, body, &out); err != nil {
		return nil, err
	}
	if out.EventType == nil {
		return nil, fmt.Errorf("scheduling API: event type creation returned no event type")
	}
	return out.EventType, nil
}

// AvailableSlots returns the offered start times for the whole calendar day
// (00:00:00 through 23:59:59), keyed by date.
func (c *Client) AvailableSlots(ctx context.Context, date, timezone string, eventTypeID int) (map[string][]models.Slot, error) {
	params := url.Values{}
	params.Set("username", c.Username)
	params.Set("startTime", date+"T00:00:00")
	params.Set("endTime", date+"T23:59:59")
	params.Set("timeZone", timezone)
	if eventTypeID != 0 {
		params.Set("eventTypeId", fmt.Sprintf("%d", eventTypeID))
	}
	var out struct {
		Slots map[string][]models.Slot `json:"slots"`
	}
	if err := c.request(ctx, http.MethodGet, "slots", params, nil, &out); err != nil {
		return nil, err
	}
	return out.Slots, nil
}

// CreateBooking books a meeting. The API has returned both a bare booking
// object and a {"booking": {...}} wrapper across versions, so both are handled.
func (c *Client) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	body := map[string]any{
		"eventTypeId": in.EventTypeID,
		"start":       in.StartUTC,
		"end":         in.EndUTC,
		"responses": map[string]any{
			"name":  in.Name,
			"email": in.Email,
			"notes": in.Notes,
		},
		"timeZone": in.Timezone,
		"language": "en",
		"metadata": map[string]any{},
		"title":    in.Title,
		"status":   in.Status,
	}
	var out struct {
		Booking   *models.Booking `json:"booking"`
		ID        int             `json:"id"`
		Title     string          `json:"title"`
		Status    string          `json:"status"`
		StartTime string          `json:"startTime"`
		EndTime   string          `json:"endTime"`
	}
	if err := c.request(ctx, http.MethodPost, "bookings", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Booking != nil {
		return out.Booking, nil
	}
	return &models.Booking{
		ID:        out.ID,
		Title:     out.Title,
		Status:    out.Status,
		StartTime: out.StartTime,
		EndTime:   out.EndTime,
	}, nil
}

// ListBookings returns all bookings for the given attendee email.
func (c *Client) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	params := url.Values{}
	params.Set("email", email)
	var out struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.request(ctx, http.MethodGet, "bookings", params, nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

// CancelBooking deletes the booking with the given ID.
func (c *Client) CancelBooking(ctx context.Context, id int) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("bookings/%d", id), nil, nil, nil)
}
