package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jungle-app/jungle-booking/apperr"
	"github.com/jungle-app/jungle-booking/config"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

type remoteUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Username string `json:"username"`
	} `json:"user_metadata"`
}

func (u remoteUser) toUser() User {
	return User{ID: u.ID, Email: u.Email, Username: u.UserMetadata.Username}
}

type remoteSession struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type"`
	ExpiresIn    int        `json:"expires_in"`
	RefreshToken string     `json:"refresh_token"`
	User         remoteUser `json:"user"`
}

func (s remoteSession) toSession() *Session {
	return &Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		TokenType:    s.TokenType,
		User:         s.User.toUser(),
	}
}

type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
}

type Client struct {
	baseURL   string
	anonKey   string
	jwtSecret []byte
	client    *http.Client
	cache     *cache.Cache
	limiter   *rate.Limiter
}

var _ SupabaseClient = (*Client)(nil)

func NewClient(cfg config.SupabaseConfig) (*Client, error) {
	if !cfg.Configured() {
		return nil, apperr.ErrNotConfigured
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		anonKey: cfg.AnonKey,
		client:  &http.Client{Timeout: timeout},
		cache:   cache.New(1*time.Minute, 5*time.Minute),
	}

	if cfg.JWTSecret != "" {
		c.jwtSecret = []byte(cfg.JWTSecret)
	}

	if cfg.RequestsPerSecond > 0 {
		burst := max(1, int(cfg.RequestsPerSecond))
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return c, nil
}

// New returns a working client, or Unconfigured when cfg lacks a URL or key.
func New(cfg config.SupabaseConfig) SupabaseClient {
	c, err := NewClient(cfg)
	if err != nil {
		return Unconfigured{}
	}
	return c
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	tokenURL, err := c.getURL("auth", "v1", "token")
	if err != nil {
		return nil, err
	}

	tokenURL += "?" + url.Values{"grant_type": {"password"}}.Encode()

	var session remoteSession
	err = c.doJSON(ctx, http.MethodPost, tokenURL, "", map[string]string{
		"email":    email,
		"password": password,
	}, &session)

	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	return session.toSession(), nil
}

func (c *Client) SignUp(ctx context.Context, email, password, username string) (*Session, error) {
	signUpURL, err := c.getURL("auth", "v1", "signup")
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"username": username},
	}

	// With email confirmation enabled the answer is a bare user, without tokens.
	var res struct {
		remoteSession
		remoteUser
	}

	if err := c.doJSON(ctx, http.MethodPost, signUpURL, "", body, &res); err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	session := res.remoteSession.toSession()
	if session.User.ID == "" {
		session.User = res.remoteUser.toUser()
	}

	return session, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	logoutURL, err := c.getURL("auth", "v1", "logout")
	if err != nil {
		return err
	}

	c.cache.Delete(accessToken)

	if err := c.doJSON(ctx, http.MethodPost, logoutURL, accessToken, nil, nil); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	return nil
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	recoverURL, err := c.getURL("auth", "v1", "recover")
	if err != nil {
		return err
	}

	if err := c.doJSON(ctx, http.MethodPost, recoverURL, "", map[string]string{"email": email}, nil); err != nil {
		return fmt.Errorf("failed to request password reset: %w", err)
	}

	return nil
}

// GetUser resolves the owner of accessToken. Results are cached for a minute
// and, when a JWT secret is configured, verified locally without a round trip.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrInvalidToken
	}

	cachedUser, found := c.cache.Get(accessToken)

	if found {
		return cachedUser.(*User), nil
	}

	if c.jwtSecret != nil {
		user, err := c.VerifyToken(accessToken)
		if err != nil {
			return nil, err
		}
		c.cache.Set(accessToken, user, cache.DefaultExpiration)
		return user, nil
	}

	userURL, err := c.getURL("auth", "v1", "user")
	if err != nil {
		return nil, err
	}

	var remote remoteUser
	if err := c.doJSON(ctx, http.MethodGet, userURL, accessToken, nil, &remote); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	user := remote.toUser()
	c.cache.Set(accessToken, &user, cache.DefaultExpiration)

	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, accessToken string, update UserUpdate) (*User, error) {
	userURL, err := c.getURL("auth", "v1", "user")
	if err != nil {
		return nil, err
	}

	body := map[string]any{}
	if update.Email != nil {
		body["email"] = *update.Email
	}
	if update.Password != nil {
		body["password"] = *update.Password
	}
	if update.Username != nil {
		body["data"] = map[string]string{"username": *update.Username}
	}

	var remote remoteUser
	if err := c.doJSON(ctx, http.MethodPut, userURL, accessToken, body, &remote); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	c.cache.Delete(accessToken)
	user := remote.toUser()

	return &user, nil
}

func (c *Client) UploadObject(ctx context.Context, accessToken, bucket, objectPath string, data []byte, contentType string) error {
	objectURL, err := c.getURL("storage", "v1", "object", bucket, objectPath)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, objectURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req, accessToken)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	if err := c.send(req, nil); err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, objectPath, err)
	}

	return nil
}

func (c *Client) PublicURL(bucket, objectPath string) string {
	publicURL, err := c.getURL("storage", "v1", "object", "public", bucket, objectPath)
	if err != nil {
		return ""
	}
	return publicURL
}

func (c *Client) doJSON(ctx context.Context, method, target, accessToken string, in, out any) error {
	var body io.Reader = http.NoBody

	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req, accessToken)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return parseAPIError(res.StatusCode, bodyBytes)
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed reading body: %w", err)
	}

	return nil
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	apiErr.Code = parsed.ErrorCode
	if apiErr.Code == "" {
		apiErr.Code = parsed.Error
	}

	for _, msg := range []string{parsed.ErrorDescription, parsed.Msg, parsed.Message, parsed.Error} {
		if msg != "" {
			apiErr.Message = msg
			break
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.anonKey)

	if accessToken == "" {
		accessToken = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
