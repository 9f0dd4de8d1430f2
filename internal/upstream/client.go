// Package upstream is the typed client for the external opportunities API.
// The portal never stores offers, applications or users itself; every
// collection is a per-request snapshot fetched through this client, and every
// write is forwarded as-is with the caller's bearer token.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/config"
	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

// APIError is a non-2xx response from the upstream API, carrying the status
// code and the server's {"error": ...} message when one was sent.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream: unexpected status %d", e.Status)
}

// NotFound reports whether err is an upstream 404.
func NotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// File is one multipart file attachment of an offer or application
// submission. Field doubles as the multipart field name.
type File struct {
	Field    string
	Filename string
	Content  io.Reader
}

// Client talks to the upstream opportunities API.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a client for the configured upstream base URL.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, readAPIError(resp)
	}
	return resp, nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}

func (c *Client) getJSON(ctx context.Context, path, token string, target interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Offers fetches the full offer collection. The endpoint is public.
func (c *Client) Offers(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	if err := c.getJSON(ctx, "/offers", "", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Offer fetches a single offer by id. An unknown id surfaces as a 404
// *APIError, which callers render as a not-found view rather than an error.
func (c *Client) Offer(ctx context.Context, id int) (*model.Offer, error) {
	var offer model.Offer
	if err := c.getJSON(ctx, "/offers/"+strconv.Itoa(id), "", &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func offerFields(in model.OfferInput) map[string]string {
	return map[string]string{
		"type":        string(in.Type),
		"title":       in.Title,
		"description": in.Description,
		"country":     in.Country,
		"projet":      in.Projet,
		"department":  in.Department,
		"reference":   in.Reference,
		"deadline":    in.Deadline,
	}
}

// CreateOffer submits a new offer as multipart form data, with the optional
// TDR document attached under the "tdr" field.
func (c *Client) CreateOffer(ctx context.Context, token string, in model.OfferInput, tdr *File) (*model.Offer, error) {
	return c.sendOffer(ctx, http.MethodPost, "/offers", token, in, tdr)
}

// UpdateOffer updates an existing offer, same shape as CreateOffer.
func (c *Client) UpdateOffer(ctx context.Context, token string, id int, in model.OfferInput, tdr *File) (*model.Offer, error) {
	return c.sendOffer(ctx, http.MethodPut, "/offers/"+strconv.Itoa(id), token, in, tdr)
}

func (c *Client) sendOffer(ctx context.Context, method, path, token string, in model.OfferInput, tdr *File) (*model.Offer, error) {
	var files []File
	if tdr != nil {
		files = append(files, *tdr)
	}
	body, contentType, err := encodeMultipart(offerFields(in), files)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var offer model.Offer
	if err := json.NewDecoder(resp.Body).Decode(&offer); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &offer, nil
}

// DeleteOffer deletes an offer.
func (c *Client) DeleteOffer(ctx context.Context, token string, id int) error {
	return c.delete(ctx, "/offers/"+strconv.Itoa(id), token)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Login exchanges credentials for a server-issued token and user object.
func (c *Client) Login(ctx context.Context, creds model.LoginRequest) (*model.LoginResponse, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/login", "", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var login model.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &login, nil
}

// Apply submits an application as multipart form data: applicant fields plus
// one file part per provided document. The endpoint is public.
func (c *Client) Apply(ctx context.Context, in model.ApplicantInput, docs []File) error {
	fields := map[string]string{
		"offer_id":          strconv.Itoa(in.OfferID),
		"full_name":         in.FullName,
		"email":             in.Email,
		"tel_number":        in.TelNumber,
		"applicant_country": in.ApplicantCountry,
	}
	body, contentType, err := encodeMultipart(fields, docs)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/apply", "", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Applications fetches the full application collection.
func (c *Client) Applications(ctx context.Context, token string) ([]model.Application, error) {
	var apps []model.Application
	if err := c.getJSON(ctx, "/applications", token, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// DeleteApplication deletes an application.
func (c *Client) DeleteApplication(ctx context.Context, token string, id int) error {
	return c.delete(ctx, "/applications/"+strconv.Itoa(id), token)
}

// Users fetches the user collection.
func (c *Client) Users(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, "/users", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, token string, in model.UserInput) (*model.User, error) {
	return c.sendUser(ctx, http.MethodPost, "/users", token, in)
}

// UpdateUser updates a user. A Password of model.PasswordUnchanged tells the
// backend to keep the current one.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, in model.UserInput) (*model.User, error) {
	return c.sendUser(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), token, in)
}

func (c *Client) sendUser(ctx context.Context, method, path, token string, in model.UserInput) (*model.User, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, token, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user model.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &user, nil
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.delete(ctx, "/users/"+strconv.Itoa(id), token)
}

// Logs fetches the activity log.
func (c *Client) Logs(ctx context.Context, token string) ([]model.LogEntry, error) {
	var logs []model.LogEntry
	if err := c.getJSON(ctx, "/logs", token, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Download streams a stored document (a TDR or an application upload). The
// caller owns the returned body. The token may be empty for public TDR
// downloads.
func (c *Client) Download(ctx context.Context, token, path string) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.do(req)
	if err != nil {
		return nil, "", err
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// encodeMultipart renders form fields and file parts into a multipart body.
func encodeMultipart(fields map[string]string, files []File) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to copy file part %q: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
