// Package contact sends contact form messages to the remote portfolio api.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
)

const contactPath = "/api/contact"

var (
	ErrSubmit   = errors.New("failed to submit contact message")
	ErrStatus   = errors.New("unexpected response status")
	ErrBaseURL  = errors.New("invalid contact base url")
	ErrInFlight = errors.New("submission already in progress")

	ErrFieldRequired = errors.New("is required")
	ErrEmailInvalid  = errors.New("is not a valid email address")
)

// Form is the payload posted to the contact endpoint.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Empty reports whether all fields are blank.
func (f Form) Empty() bool {
	return strings.TrimSpace(f.Name) == "" && strings.TrimSpace(f.Email) == "" && strings.TrimSpace(f.Message) == ""
}

// Validate checks that every field is filled in and the email address parses.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name %w", ErrFieldRequired)
	}

	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("email %w", ErrFieldRequired)
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(f.Email)); err != nil {
		return fmt.Errorf("email %w", ErrEmailInvalid)
	}

	if strings.TrimSpace(f.Message) == "" {
		return fmt.Errorf("message %w", ErrFieldRequired)
	}

	return nil
}

// StatusError carries the http status of a rejected submission.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrStatus.Error(), e.Code, http.StatusText(e.Code))
}

func (e StatusError) Unwrap() error {
	return ErrStatus
}

type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a client posting to baseURL + /api/contact.
func NewClient(httpClient *http.Client, baseURL string) (*Client, error) {
	parsed, errParse := url.Parse(strings.TrimSpace(baseURL))
	if errParse != nil {
		return nil, errors.Join(errParse, ErrBaseURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURL, baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(parsed.String(), "/") + contactPath,
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts the form. Any 2xx status is a success; the response body is not interpreted.
func (c *Client) Submit(ctx context.Context, form Form) error {
	body, errBody := json.Marshal(form)
	if errBody != nil {
		return errors.Join(errBody, ErrSubmit)
	}

	req, errReq := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if errReq != nil {
		return errors.Join(errReq, ErrSubmit)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return errors.Join(errResp, ErrSubmit)
	}

	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Join(StatusError{Code: resp.StatusCode}, ErrSubmit)
	}

	return nil
}
