package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIKeyHeader заголовок, которым сервер защищает /api.
const APIKeyHeader = "x-api-key"

// Client — HTTP-клиент админского CLI к серверу каталога.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient создаёт клиента для baseURL (со схемой). Пустой apiKey — заголовок не отправляется.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Error — ответ сервера со статусом вне 2xx.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Status)
	}
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// errorBody тело ошибок сервера: {"error": "..."} либо {"message": "...", "error": "..."}.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do отправляет запрос с JSON-телом payload (nil — без тела) и возвращает статус и тело ответа.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var rdr io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rdr)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set(APIKeyHeader, c.APIKey)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// DoJSON как Do, но декодирует успешный ответ в out, а неуспешный возвращает как *Error.
func (c *Client) DoJSON(ctx context.Context, method, path string, payload, out any) error {
	status, body, err := c.Do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return newError(status, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func newError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return &Error{Status: status, Message: strings.TrimSpace(string(body))}
	}
	switch {
	case eb.Message != "" && eb.Error != "":
		return &Error{Status: status, Message: eb.Message + " (" + eb.Error + ")"}
	case eb.Error != "":
		return &Error{Status: status, Message: eb.Error}
	default:
		return &Error{Status: status, Message: eb.Message}
	}
}
