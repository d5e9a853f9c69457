package services

import (
	"encoding/json"
	"io/ioutil"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/token"
	"github.com/dowlandaiello/notedly/users"

	"github.com/dowlandaiello/notedly/oauth"
)

var (
	googleEndpoint    = google.Endpoint
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	googleScopes      = []string{
		"https://www.googleapis.com/auth/userinfo.email",
	}
)

type googleUser struct {
	GoogleID string `json:"sub"`
	Email    string `json:"email"`
}

type GoogleService struct {
	service oauth.UserUpserter
	config  oauth2.Config

	stateMutex sync.Locker
	state      map[string]struct{}
}

func NewGoogleService(service oauth.UserUpserter, configPath string) (*GoogleService, error) {
	c, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var creds struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectURL  string `json:"redirect_url"`
	}
	err = json.Unmarshal(c, &creds)
	if err != nil {
		return nil, err
	}

	return &GoogleService{
		service: service,
		config: oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       googleScopes,
			Endpoint:     googleEndpoint,
		},

		stateMutex: &sync.RWMutex{},
		state:      make(map[string]struct{}),
	}, nil
}

func (s *GoogleService) LoginURL() string {
	state := randToken(32)
	s.stateMutex.Lock()
	s.state[state] = struct{}{}
	s.stateMutex.Unlock()

	return s.config.AuthCodeURL(state)
}

// Login exchanges the authorization code, retrieves the google
// identity, and upserts the user. The provider access token becomes
// the session credential: only its hash is stored, and the raw token
// is returned to the client once.
func (s *GoogleService) Login(state, code string) (string, error) {
	s.stateMutex.Lock()
	_, ok := s.state[state]
	s.stateMutex.Unlock() // no defer because the token exchange could be long

	if !ok {
		return "", errors.New("invalid state", errors.BadRequest())
	}

	s.stateMutex.Lock()
	delete(s.state, state)
	s.stateMutex.Unlock()

	tok, err := s.config.Exchange(oauth2.NoContext, code)
	if err != nil {
		return "", err
	}

	gUser, err := s.retrieveGoogleUser(tok)
	if err != nil {
		return "", err
	}

	_, err = s.service.Upsert(users.User{
		ProviderID:     "google:" + gUser.GoogleID,
		Email:          gUser.Email,
		CredentialHash: token.Hash(tok.AccessToken),
	})
	if err != nil {
		return "", err
	}

	return tok.AccessToken, nil
}

func (s *GoogleService) retrieveGoogleUser(tok *oauth2.Token) (googleUser, error) {
	client := s.config.Client(oauth2.NoContext, tok)
	res, err := client.Get(googleUserInfoURL)
	if err != nil {
		return googleUser{}, err
	}

	defer res.Body.Close()

	var user googleUser
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return googleUser{}, err
	}

	return user, nil
}
