package services

import (
	"encoding/json"
	"io/ioutil"
	"strconv"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/token"
	"github.com/dowlandaiello/notedly/users"

	"github.com/dowlandaiello/notedly/oauth"
)

var (
	githubEndpoint  = github.Endpoint
	githubUserURL   = "https://api.github.com/user"
	githubEmailsURL = "https://api.github.com/user/emails"
	githubScopes    = []string{
		"user:email",
	}
)

type githubUser struct {
	GithubID int    `json:"id"`
	Email    string `json:"email"`
}

// githubEmail is one entry of the /user/emails listing. The profile
// email can be absent when the user keeps it private, the listing is
// the fallback.
type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type GithubService struct {
	service oauth.UserUpserter
	config  oauth2.Config

	stateMutex sync.Locker
	state      map[string]struct{}
}

func NewGithubService(service oauth.UserUpserter, configPath string) (*GithubService, error) {
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

	return &GithubService{
		service: service,
		config: oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       githubScopes,
			Endpoint:     githubEndpoint,
		},

		stateMutex: &sync.RWMutex{},
		state:      make(map[string]struct{}),
	}, nil
}

func (s *GithubService) LoginURL() string {
	state := randToken(32)
	s.stateMutex.Lock()
	s.state[state] = struct{}{}
	s.stateMutex.Unlock()

	return s.config.AuthCodeURL(state)
}

// Login exchanges the authorization code, retrieves the github
// identity, and upserts the user. The provider access token becomes
// the session credential: only its hash is stored, and the raw token
// is returned to the client once.
func (s *GithubService) Login(state, code string) (string, error) {
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

	ghUser, err := s.retrieveGithubUser(tok)
	if err != nil {
		return "", err
	}

	_, err = s.service.Upsert(users.User{
		ProviderID:     "github:" + strconv.Itoa(ghUser.GithubID),
		Email:          ghUser.Email,
		CredentialHash: token.Hash(tok.AccessToken),
	})
	if err != nil {
		return "", err
	}

	return tok.AccessToken, nil
}

func (s *GithubService) retrieveGithubUser(tok *oauth2.Token) (githubUser, error) {
	client := s.config.Client(oauth2.NoContext, tok)
	res, err := client.Get(githubUserURL)
	if err != nil {
		return githubUser{}, err
	}

	defer res.Body.Close()

	var user githubUser
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return githubUser{}, err
	}

	if user.Email != "" {
		return user, nil
	}

	// The profile email is private, list the account's emails instead.
	emailRes, err := client.Get(githubEmailsURL)
	if err != nil {
		return githubUser{}, err
	}

	defer emailRes.Body.Close()

	var emails []githubEmail
	if err := json.NewDecoder(emailRes.Body).Decode(&emails); err != nil {
		return githubUser{}, err
	}

	user.Email = bestEmail(emails)
	return user, nil
}

// bestEmail prefers a verified primary address, then a verified one,
// then anything.
func bestEmail(emails []githubEmail) string {
	best := ""
	for _, email := range emails {
		if email.Primary && email.Verified {
			return email.Email
		}

		if best == "" || email.Verified {
			best = email.Email
		}
	}
	return best
}
