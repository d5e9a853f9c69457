package services

import (
	"net/url"
	"sync"
	"testing"

	"golang.org/x/oauth2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubService_LoginURL(t *testing.T) {
	redirectURI := "http://redirect-url.com"
	clientID := "client_id"

	service := &GithubService{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: "",
			RedirectURL:  redirectURI,
			Scopes:       githubScopes,
			Endpoint:     githubEndpoint,
		},

		stateMutex: &sync.RWMutex{},
		state:      make(map[string]struct{}),
	}

	loginURLString := service.LoginURL()
	loginURL, err := url.Parse(loginURLString)
	require.NoError(t, err, "url should be valid")

	assert.Equal(t, "https", loginURL.Scheme, "scheme should be https")
	assert.Equal(t, "github.com", loginURL.Host, "host should be github")

	query := loginURL.Query()
	assert.Equal(t, githubScopes, query["scope"], "invalid scope")
	assert.Equal(t, redirectURI, query.Get("redirect_uri"), "invalid redirect uri")
	assert.Equal(t, clientID, query.Get("client_id"), "invalid client id")
	assert.NotEqual(t, "", query.Get("state"), "state should not be empty")
	assert.Contains(t, service.state, query.Get("state"), "state be stored in service")
}

func TestBestEmail(t *testing.T) {
	tts := map[string]struct {
		emails   []githubEmail
		expected string
	}{
		"no email": {
			emails:   nil,
			expected: "",
		},
		"primary and verified wins": {
			emails: []githubEmail{
				{Email: "old@noted.ly", Verified: true},
				{Email: "main@noted.ly", Primary: true, Verified: true},
			},
			expected: "main@noted.ly",
		},
		"verified over unverified": {
			emails: []githubEmail{
				{Email: "spam@noted.ly"},
				{Email: "real@noted.ly", Verified: true},
			},
			expected: "real@noted.ly",
		},
		"anything over nothing": {
			emails: []githubEmail{
				{Email: "only@noted.ly"},
			},
			expected: "only@noted.ly",
		},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bestEmail(tt.emails))
		})
	}
}
