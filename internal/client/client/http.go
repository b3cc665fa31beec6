package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/netx"
	"github.com/google/uuid"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type notesEnvelope struct {
	Notes []models.Note `json:"notes"`
}

type foldersEnvelope struct {
	Folders []models.Folder `json:"folders"`
}

type tagsEnvelope struct {
	Tags []models.Tag `json:"tags"`
}

// HTTPClient talks to the notes REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// NewHTTPClient returns a client for baseURL. Every request is bounded by
// timeout; tokens is consulted per request for the bearer header and may be
// nil for unauthenticated use.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/auth/login/", username, password)
}

func (c *HTTPClient) Signup(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/auth/signup/", username, password)
}

func (c *HTTPClient) authenticate(ctx context.Context, path, username, password string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, path, false, credentials{username, password}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	var out notesEnvelope
	if err := c.do(ctx, http.MethodGet, "/notes/", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, n models.NewNote) (models.Note, error) {
	if n.Tags == nil {
		n.Tags = []models.ID{}
	}
	var out models.Note
	if err := c.do(ctx, http.MethodPost, "/notes/", true, n, &out); err != nil {
		return models.Note{}, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id models.ID, u models.NoteUpdate) (models.Note, error) {
	var out models.Note
	if err := c.do(ctx, http.MethodPut, notePath(id), true, u, &out); err != nil {
		return models.Note{}, err
	}
	return out, nil
}

// DeleteNote ignores the response body.
func (c *HTTPClient) DeleteNote(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, notePath(id), true, nil, nil)
}

func (c *HTTPClient) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var out foldersEnvelope
	if err := c.do(ctx, http.MethodGet, "/folders/", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Folders, nil
}

func (c *HTTPClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var out tagsEnvelope
	if err := c.do(ctx, http.MethodGet, "/tags/", true, nil, &out); err != nil {
		return nil, err
	}
	return out.Tags, nil
}

func notePath(id models.ID) string {
	return "/notes/" + url.PathEscape(id.String()) + "/"
}

func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, body any, out any) error {
	req, err := netx.NewJSONRequest(ctx, method, netx.JoinURL(c.baseURL, path), body)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, requestID)
	if auth && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+tok)
		}
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response", "status", resp.StatusCode)

	if err := netx.CheckStatus(resp); err != nil {
		return mapStatus(err)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func mapStatus(err error) error {
	var se *netx.StatusError
	if !errors.As(err, &se) {
		return err
	}

	switch {
	case se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case se.Code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case se.Code >= 500:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}
