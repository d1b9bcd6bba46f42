package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/career/pkg/apperr"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/accessToken", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600,"scope":"profile,w_member_social"}`))
	})
	mux.HandleFunc("/v2/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2.0.0", r.Header.Get("X-Restli-Protocol-Version"))
		_, _ = w.Write([]byte(`{"id":"abc","localizedFirstName":"Chenkai","localizedLastName":"Xie","localizedHeadline":"Engineer",
			"profilePicture":{"displayImage~":{"elements":[{"identifiers":[{"identifier":"https://img/1.jpg"}]}]}}}`))
	})
	mux.HandleFunc("/v2/emailAddress", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:5000/auth/linkedin/callback",
		Timeout:      time.Second,
		APIBase:      srv.URL + "/v2",
		TokenURL:     srv.URL + "/oauth/v2/accessToken",
	})
}

func TestAuthorizationURL(t *testing.T) {
	c := NewClient(Config{ClientID: "id", ClientSecret: "secret", RedirectURI: "http://localhost/cb"})
	raw, err := c.AuthorizationURL("st4te")
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.linkedin.com", u.Host)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "id", q.Get("client_id"))
	assert.Equal(t, "http://localhost/cb", q.Get("redirect_uri"))
	assert.Equal(t, "profile w_member_social", q.Get("scope"))
	assert.Equal(t, "st4te", q.Get("state"))

	_, err = NewClient(Config{}).AuthorizationURL("x")
	var cfgErr *apperr.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestExchange(t *testing.T) {
	c := newTestClient(testServer(t))

	tok, err := c.Exchange(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.InDelta(t, 3600, tok.ExpiresIn, 5)
	assert.Equal(t, "profile,w_member_social", tok.Scope)

	_, err = c.Exchange(context.Background(), "bad")
	assert.ErrorIs(t, err, apperr.ErrTokenExchange)

	_, err = c.Exchange(context.Background(), "")
	assert.True(t, apperr.IsValidation(err))
}

func TestProfileToleratesEmailFailure(t *testing.T) {
	c := newTestClient(testServer(t))

	p, err := c.Profile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "abc", p.ID)
	assert.Equal(t, "Chenkai", p.FirstName)
	assert.Equal(t, "Engineer", p.Headline)
	assert.Equal(t, "https://img/1.jpg", p.ProfilePicture)
	assert.Empty(t, p.Email)
	assert.True(t, p.Verified)
	assert.NotNil(t, p.Positions)

	_, err = c.Profile(context.Background(), "wrong")
	assert.True(t, apperr.IsUpstream(err))
}

func TestScrapePublicProfile(t *testing.T) {
	c := NewClient(Config{})
	tests := []struct {
		url    string
		wantID string
		ok     bool
	}{
		{url: "https://www.linkedin.com/in/chenkai-xie/", wantID: "chenkai-xie", ok: true},
		{url: "https://linkedin.com/in/test?trk=1", wantID: "test", ok: true},
		{url: "https://www.linkedin.com/pub/jane/1/2/3/janedoe", wantID: "janedoe", ok: true},
		{url: "https://example.com/in/nobody", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			p, err := c.ScrapePublicProfile(tt.url)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, p.ID)
			assert.False(t, p.Verified)
			assert.False(t, p.AsAIProfile().Verified)
		})
	}
}
