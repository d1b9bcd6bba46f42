// Package linkedin wraps the LinkedIn OAuth2 flow, profile API and post drafts.
package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/artem13815/career/pkg/ai"
	"github.com/artem13815/career/pkg/apperr"
)

const (
	authURL  = "https://www.linkedin.com/oauth/v2/authorization"
	tokenURL = "https://www.linkedin.com/oauth/v2/accessToken"
	apiURL   = "https://api.linkedin.com/v2"
)

// ErrNotConfigured is returned when client id or secret is missing.
var ErrNotConfigured = &apperr.ConfigurationError{
	Msg: "LinkedIn API not configured. Please set LINKEDIN_CLIENT_ID and LINKEDIN_CLIENT_SECRET",
}

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Timeout      time.Duration
	// APIBase and TokenURL override LinkedIn endpoints, for tests.
	APIBase  string
	TokenURL string
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
}

type Position struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	IsCurrent   bool   `json:"isCurrent"`
}

type Education struct {
	SchoolName string `json:"schoolName"`
	Degree     string `json:"degree,omitempty"`
}

// Profile is a LinkedIn member profile. Verified is false for placeholder
// data that did not come from the API.
type Profile struct {
	ID               string      `json:"id"`
	FirstName        string      `json:"firstName"`
	LastName         string      `json:"lastName"`
	Headline         string      `json:"headline,omitempty"`
	ProfilePicture   string      `json:"profilePicture,omitempty"`
	PublicProfileURL string      `json:"publicProfileUrl,omitempty"`
	Email            string      `json:"email,omitempty"`
	Positions        []Position  `json:"positions"`
	Educations       []Education `json:"educations"`
	Skills           []string    `json:"skills"`
	Verified         bool        `json:"verified"`
}

// AsAIProfile converts the profile into generator input.
func (p Profile) AsAIProfile() *ai.UserProfile {
	return &ai.UserProfile{
		ProfileID: p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Headline:  p.Headline,
		Email:     p.Email,
		Verified:  p.Verified,
	}
}

type Client struct {
	oauth   oauth2.Config
	http    *http.Client
	apiBase string
	log     *slog.Logger
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	tURL := tokenURL
	if cfg.TokenURL != "" {
		tURL = cfg.TokenURL
	}
	base := apiURL
	if cfg.APIBase != "" {
		base = strings.TrimRight(cfg.APIBase, "/")
	}
	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"profile", "w_member_social"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		http:    &http.Client{Timeout: timeout},
		apiBase: base,
		log:     slog.Default().With("component", "linkedin"),
	}
}

func (c *Client) IsConfigured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}

// AuthorizationURL builds the consent URL carrying state.
func (c *Client) AuthorizationURL(state string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}
	return c.oauth.AuthCodeURL(state), nil
}

// Exchange trades an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code string) (Tokens, error) {
	if !c.IsConfigured() {
		return Tokens{}, ErrNotConfigured
	}
	if strings.TrimSpace(code) == "" {
		return Tokens{}, apperr.Validation("code", "Authorization code not provided")
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		c.log.Error("token exchange", "err", err)
		return Tokens{}, fmt.Errorf("%w: %v", apperr.ErrTokenExchange, err)
	}
	out := Tokens{AccessToken: tok.AccessToken, RefreshToken: tok.RefreshToken}
	if !tok.Expiry.IsZero() {
		out.ExpiresIn = int(time.Until(tok.Expiry).Round(time.Second).Seconds())
	}
	if s, ok := tok.Extra("scope").(string); ok {
		out.Scope = s
	}
	return out, nil
}

type meResponse struct {
	ID                 string `json:"id"`
	LocalizedFirstName string `json:"localizedFirstName"`
	LocalizedLastName  string `json:"localizedLastName"`
	LocalizedHeadline  string `json:"localizedHeadline"`
	ProfilePicture     struct {
		DisplayImage struct {
			Elements []struct {
				Identifiers []struct {
					Identifier string `json:"identifier"`
				} `json:"identifiers"`
			} `json:"elements"`
		} `json:"displayImage~"`
	} `json:"profilePicture"`
}

type emailResponse struct {
	Elements []struct {
		Handle struct {
			EmailAddress string `json:"emailAddress"`
		} `json:"handle~"`
	} `json:"elements"`
}

// Profile fetches the member behind accessToken. Email lookup is best effort.
func (c *Client) Profile(ctx context.Context, accessToken string) (Profile, error) {
	if strings.TrimSpace(accessToken) == "" {
		return Profile{}, apperr.Validation("access_token", "Access token is required")
	}
	var me meResponse
	if err := c.get(ctx, accessToken, "/me", true, &me); err != nil {
		return Profile{}, apperr.Upstream("linkedin", fmt.Errorf("fetch profile: %w", err))
	}
	p := Profile{
		ID:         me.ID,
		FirstName:  me.LocalizedFirstName,
		LastName:   me.LocalizedLastName,
		Headline:   me.LocalizedHeadline,
		Positions:  []Position{},
		Educations: []Education{},
		Skills:     []string{},
		Verified:   true,
	}
	if els := me.ProfilePicture.DisplayImage.Elements; len(els) > 0 && len(els[0].Identifiers) > 0 {
		p.ProfilePicture = els[0].Identifiers[0].Identifier
	}

	var em emailResponse
	if err := c.get(ctx, accessToken, "/emailAddress?q=members&projection=(elements*(handle~))", false, &em); err != nil {
		c.log.Warn("could not fetch email address", "err", err)
	} else if len(em.Elements) > 0 {
		p.Email = em.Elements[0].Handle.EmailAddress
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, token, path string, restli bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Cache-Control", "no-cache")
	if restli {
		req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("linkedin http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var profileURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`linkedin\.com/in/([^/?]+)`),
	regexp.MustCompile(`linkedin\.com/pub/[^/]+/[^/]+/[^/]+/([^/?]+)`),
}

// ProfileIDFromURL extracts the member slug of a public profile URL.
func ProfileIDFromURL(u string) (string, bool) {
	for _, re := range profileURLPatterns {
		if m := re.FindStringSubmatch(u); m != nil {
			return m[1], true
		}
	}
	return "", false
}

var errNoProfileID = errors.New("could not extract profile id from LinkedIn URL")

// ScrapePublicProfile returns an unverified placeholder profile for a public URL.
// No page is fetched.
func (c *Client) ScrapePublicProfile(linkedinURL string) (Profile, error) {
	id, ok := ProfileIDFromURL(linkedinURL)
	if !ok {
		return Profile{}, errNoProfileID
	}
	return Profile{
		ID:               id,
		FirstName:        "LinkedIn",
		LastName:         "User",
		Headline:         "Professional extracted from LinkedIn profile",
		PublicProfileURL: linkedinURL,
		Positions:        []Position{},
		Educations:       []Education{},
		Skills:           []string{},
		Verified:         false,
	}, nil
}
