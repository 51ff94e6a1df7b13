// Package apiclient is the typed HTTP client for the farmlog server.
// Every call carries a bounded timeout; a slow server surfaces as an
// error rather than a hang.
package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"farmlog/pkg/taskrecord"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInvalidData  = errors.New("invalid data")
)

type Client struct {
	base  string
	token string
	http  *http.Client
}

func New(base, token string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Register(username, password string) error {
	return c.do("POST", "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, nil)
}

func (c *Client) Login(username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do("POST", "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) ListTasks() ([]taskrecord.Record, error) {
	var out []taskrecord.Record
	if err := c.do("GET", "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(rec taskrecord.Record) (taskrecord.Record, error) {
	var out taskrecord.Record
	if err := c.do("POST", "/api/tasks", rec, &out); err != nil {
		return taskrecord.Record{}, err
	}
	return out, nil
}

func (c *Client) UpdateTask(id string, patch map[string]string) (taskrecord.Record, error) {
	var out taskrecord.Record
	if err := c.do("PUT", "/api/tasks/"+id, patch, &out); err != nil {
		return taskrecord.Record{}, err
	}
	return out, nil
}

func (c *Client) DeleteTask(id string) error {
	return c.do("DELETE", "/api/tasks/"+id, nil, nil)
}

func (c *Client) do(method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		base := statusErr(resp.StatusCode)
		if e.Error != "" {
			return fmt.Errorf("%w: %s", base, e.Error)
		}
		return base
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func statusErr(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest:
		return ErrInvalidData
	}
	return fmt.Errorf("server error (status %d)", code)
}
