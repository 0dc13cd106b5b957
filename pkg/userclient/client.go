// Package userclient is the Go counterpart of the registration frontend: an
// API client for the user-directory service plus the form validation and
// list-state logic the page needs.
package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/lucasSouza225/cadastroUsuario/internal/common/errors"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
)

// Client calls the user-directory HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL (e.g. "http://localhost:8080/api/v1").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates a client using a caller-provided http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// CreateUser creates a user and returns the record as stored, id included.
func (c *Client) CreateUser(ctx context.Context, input models.CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/users", input, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches users matching the filter; an empty filter fetches all.
func (c *Client) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	path := "/users"
	if q := filterQuery(filter); q != "" {
		path += "?" + q
	}

	var users []models.User
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser replaces all three mutable fields of the user with the given id.
func (c *Client) UpdateUser(ctx context.Context, id int64, input models.UpdateUserRequest) (*models.User, error) {
	var user models.User
	// The API replies 201 on update, a compatibility quirk of the service.
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), input, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user with the given id and returns the server's
// confirmation message.
func (c *Client) DeleteUser(ctx context.Context, id int64) (string, error) {
	var resp models.DeleteResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, http.StatusOK, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func filterQuery(filter models.UserFilter) string {
	values := url.Values{}
	if filter.Name != nil {
		values.Set("name", *filter.Name)
	}
	if filter.Email != nil {
		values.Set("email", *filter.Email)
	}
	if filter.Age != nil {
		values.Set("age", strconv.Itoa(*filter.Age))
	}
	return values.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewTransportError(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorFromResponse maps a non-success response onto the error taxonomy,
// preserving the server's error code when the envelope decodes.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var envelope struct {
		Error *apperrors.AppError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != nil {
		return envelope.Error
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.New(apperrors.ErrCodeNotFound, "resource not found")
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("request rejected with status %d", resp.StatusCode))
	default:
		return apperrors.New(apperrors.ErrCodeInternal, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}
}
