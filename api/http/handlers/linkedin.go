package handlers

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/career/api/http/presenter"
	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/auth"
	"github.com/artem13815/career/pkg/linkedin"
)

const stateCookie = "li_state"

// OAuthClient is the LinkedIn client surface used by the handlers.
type OAuthClient interface {
	ProfileSource
	AuthorizationURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (linkedin.Tokens, error)
}

type LinkedinHandler struct {
	client OAuthClient
	states linkedin.StateStore
	posts  *linkedin.PostService
	users  auth.AuthUseCase
	strict bool
}

// NewLinkedinHandler wires OAuth and post endpoints. production enforces the
// state check on callback and marks the state cookie Secure.
func NewLinkedinHandler(client OAuthClient, states linkedin.StateStore, posts *linkedin.PostService, users auth.AuthUseCase, production bool) *LinkedinHandler {
	return &LinkedinHandler{
		client: client,
		states: states,
		posts:  posts,
		users:  users,
		strict: production,
	}
}

type generatePostRequest struct {
	Topic   string `json:"topic" validate:"required"`
	Details string `json:"details"`
}

// GeneratePost drafts a post and stores it.
// @Summary Generate LinkedIn post
// @Tags    linkedin
// @Accept  json
// @Produce json
// @Param   input body generatePostRequest true "topic and optional details"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /linkedin/generate [post]
func (h *LinkedinHandler) GeneratePost(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req generatePostRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	var profile *ai.UserProfile
	if u, err := h.users.Get(c.Context(), uid); err == nil {
		profile = &ai.UserProfile{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Headline:  u.Title,
			Location:  u.Location,
		}
	}
	d, err := h.posts.Generate(c.Context(), uid, req.Topic, req.Details, profile)
	if err != nil {
		return presenter.Fail(c, err, "Failed to generate LinkedIn post")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"post":    d.Post,
		"content": d.Content,
		"source":  d.Source,
	})
}

// @Summary List LinkedIn posts
// @Tags    linkedin
// @Produce json
// @Param   limit query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Success 200 {array} linkedin.Post
// @Router  /linkedin/posts [get]
func (h *LinkedinHandler) Posts(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.posts.List(c.Context(), uid)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch posts")
	}
	return presenter.JSON(c, http.StatusOK, page(c, items))
}

type updatePostRequest struct {
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// @Summary Edit or publish a post
// @Tags    linkedin
// @Accept  json
// @Produce json
// @Param   id path string true "Post ID (UUID)"
// @Param   input body updatePostRequest true "content and/or status"
// @Success 200 {object} linkedin.Post
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /linkedin/posts/{id} [patch]
func (h *LinkedinHandler) UpdatePost(c *fiber.Ctx) error {
	uid, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return presenter.Fail(c, err, "invalid id")
	}
	var req updatePostRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	p, err := h.posts.Update(c.Context(), uid, id, req.Content, req.Status)
	if err != nil {
		return presenter.Fail(c, err, "Failed to update post")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// authorize issues a state, remembers it in the cookie and returns the consent URL.
func (h *LinkedinHandler) authorize(c *fiber.Ctx) (string, string, error) {
	if !h.client.IsConfigured() {
		return "", "", linkedin.ErrNotConfigured
	}
	state, err := h.states.Issue(c.Context())
	if err != nil {
		return "", "", err
	}
	url, err := h.client.AuthorizationURL(state)
	if err != nil {
		return "", "", err
	}
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(linkedin.StateTTL),
		HTTPOnly: true,
		Secure:   h.strict,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return url, state, nil
}

// AuthURL returns the consent URL and its state.
// @Summary LinkedIn authorization URL
// @Tags    linkedin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /linkedin/auth-url [get]
func (h *LinkedinHandler) AuthURL(c *fiber.Ctx) error {
	url, state, err := h.authorize(c)
	if err != nil {
		return presenter.Fail(c, err, "Failed to generate auth URL")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"authUrl": url, "state": state})
}

// Redirect sends the browser to LinkedIn.
func (h *LinkedinHandler) Redirect(c *fiber.Ctx) error {
	url, _, err := h.authorize(c)
	if err != nil {
		return presenter.Fail(c, err, "Failed to start LinkedIn authorization")
	}
	return c.Redirect(url, http.StatusFound)
}

var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><title>LinkedIn Authorization</title></head>
<body>
<p>{{if .Error}}LinkedIn authorization failed: {{.Error}}{{else}}LinkedIn connected. You can close this window.{{end}}</p>
<script>
  (function () {
    var payload = {{.Payload}};
    if (window.opener) {
      window.opener.postMessage(payload, window.location.origin);
      window.close();
    }
  })();
</script>
</body>
</html>
`))

type callbackView struct {
	Error   string
	Payload map[string]any
}

func renderCallback(c *fiber.Ctx, status int, v callbackView) error {
	if v.Payload == nil {
		v.Payload = map[string]any{"type": "LINKEDIN_AUTH_ERROR", "error": v.Error}
	}
	var buf bytes.Buffer
	if err := callbackPage.Execute(&buf, v); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// Callback completes the authorization-code flow and hands the tokens to the opener window.
func (h *LinkedinHandler) Callback(c *fiber.Ctx) error {
	if e := c.Query("error"); e != "" {
		desc := c.Query("error_description", e)
		return renderCallback(c, http.StatusBadRequest, callbackView{Error: desc})
	}
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		return presenter.Error(c, http.StatusBadRequest, "Authorization code not provided")
	}

	state := c.Query("state")
	stored := c.Cookies(stateCookie)
	c.ClearCookie(stateCookie)
	valid := state != "" && state == stored
	if state != "" {
		consumed, err := h.states.Consume(c.Context(), state)
		if err != nil {
			slog.Warn("consume oauth state", "err", err)
		}
		valid = valid && consumed
	}
	if !valid {
		if h.strict {
			return presenter.Error(c, http.StatusBadRequest, "Invalid state parameter")
		}
		slog.Warn("oauth state mismatch ignored outside production", "path", c.Path())
	}

	tokens, err := h.client.Exchange(c.Context(), code)
	if err != nil {
		slog.Error("linkedin token exchange", "err", err)
		return renderCallback(c, http.StatusInternalServerError, callbackView{Error: "Failed to exchange authorization code"})
	}
	return renderCallback(c, http.StatusOK, callbackView{Payload: map[string]any{
		"type":   "LINKEDIN_AUTH_SUCCESS",
		"tokens": tokens,
	}})
}

type tokenRequest struct {
	Code string `json:"code" validate:"required"`
}

// Token exchanges an authorization code.
// @Summary Exchange authorization code
// @Tags    linkedin
// @Accept  json
// @Produce json
// @Param   input body tokenRequest true "authorization code"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /linkedin/token [post]
func (h *LinkedinHandler) Token(c *fiber.Ctx) error {
	if !h.client.IsConfigured() {
		return presenter.Fail(c, linkedin.ErrNotConfigured, "")
	}
	var req tokenRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	tokens, err := h.client.Exchange(c.Context(), req.Code)
	if err != nil {
		return presenter.Fail(c, err, "Failed to exchange code for token")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"tokens": tokens})
}

type profileRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// Profile fetches the member profile for an access token.
// @Summary LinkedIn profile
// @Tags    linkedin
// @Accept  json
// @Produce json
// @Param   input body profileRequest true "access token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /linkedin/profile [post]
func (h *LinkedinHandler) Profile(c *fiber.Ctx) error {
	if !h.client.IsConfigured() {
		return presenter.Fail(c, linkedin.ErrNotConfigured, "")
	}
	var req profileRequest
	if err := bind(c, &req); err != nil {
		return presenter.Fail(c, err, "invalid payload")
	}
	p, err := h.client.Profile(c.Context(), req.AccessToken)
	if err != nil {
		return presenter.Fail(c, err, "Failed to fetch LinkedIn profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"profile": p})
}
