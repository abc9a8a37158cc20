package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// StatusError возвращается для любого ответа сервера вне диапазона 2xx.
// Body содержит обрезанное тело ответа для диагностики.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server status %d: %s", e.Code, e.Body)
}

// IsNotFound reports whether err is a StatusError with code 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client — тонкая обёртка над net/http для REST-ресурсов админки.
// Token, если задан, передаётся как auth cookie в каждом запросе.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New создаёт клиента для указанного base URL.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) endpoint(path string) string {
	return c.BaseURL + path
}

// do выполняет запрос, читает тело и отображает не-2xx статусы в *StatusError.
// Возвращённый *http.Response уже закрыт; тело доступно через второй результат.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	if c.Token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: c.Token})
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, body, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, body, nil
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// GetJSON выполняет GET и декодирует JSON-ответ в out (out может быть nil).
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return err
	}
	_, body, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// PostJSON выполняет POST с JSON-телом.
func (c *Client) PostJSON(ctx context.Context, path string, payload, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, out)
}

// PutJSON выполняет PUT с JSON-телом.
func (c *Client) PutJSON(ctx context.Context, path string, payload, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, payload, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	_, body, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Delete выполняет DELETE по указанному пути.
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(path), nil)
	if err != nil {
		return err
	}
	_, _, err = c.do(req)
	return err
}

// PostForm отправляет данные как application/x-www-form-urlencoded (логин).
// Возвращает *http.Response, чтобы вызывающий мог извлечь cookies; тело уже закрыто.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body, err := c.do(req)
	if err != nil {
		return resp, err
	}
	return resp, decode(body, out)
}

// PostMultipart отправляет поля формы и опциональный файл как multipart/form-data.
// Числовые поля конвертируются в строки вызывающей стороной (strconv) —
// в form-data каждое поле сериализуется отдельно.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	return c.sendMultipart(ctx, http.MethodPost, path, fields, fileField, fileName, file, out)
}

// PutMultipart — то же, что PostMultipart, но методом PUT (обновление ресурса).
func (c *Client) PutMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	return c.sendMultipart(ctx, http.MethodPut, path, fields, fileField, fileName, file, out)
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(fw, file); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, body, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}
