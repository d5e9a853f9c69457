package users_test

import (
	"context"
	"testing"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/token"
	"github.com/dowlandaiello/notedly/users"
	"github.com/dowlandaiello/notedly/users/inmem"
)

func TestResolver(t *testing.T) {
	repo := inmem.NewInMemUserRepository()
	resolver := users.NewResolver(repo)

	user := users.User{
		ProviderID:     "google:1234",
		Email:          "pizza@noted.ly",
		CredentialHash: token.Hash("session-token"),
	}
	require.NoError(t, repo.Upsert(&user))

	// No bearer token at all.
	_, err := resolver.Resolve("")
	if assert.Error(t, err, "resolving without a credential should fail") {
		errors.AssertCode(t, err, 401)
		errors.AssertKind(t, err, users.KindMissingCredential)
	}

	// A token whose digest matches no user.
	_, err = resolver.Resolve("some-other-token")
	if assert.Error(t, err, "resolving an unknown credential should fail") {
		errors.AssertCode(t, err, 401)
		errors.AssertKind(t, err, users.KindUnknownUser)
	}

	// The current session token.
	resolved, err := resolver.Resolve("session-token")
	if assert.NoError(t, err, "resolving the active credential should not fail") {
		assert.Equal(t, user.ID, resolved.ID)
		assert.Equal(t, user.Email, resolved.Email)
	}

	// Rotating the credential invalidates the previous token.
	user.CredentialHash = token.Hash("fresh-token")
	require.NoError(t, repo.Upsert(&user))

	_, err = resolver.Resolve("session-token")
	if assert.Error(t, err, "the previous credential should no longer resolve") {
		errors.AssertKind(t, err, users.KindUnknownUser)
	}

	resolved, err = resolver.Resolve("fresh-token")
	if assert.NoError(t, err, "the rotated credential should resolve") {
		assert.Equal(t, user.ID, resolved.ID)
	}
}

func TestAuthenticator(t *testing.T) {
	repo := inmem.NewInMemUserRepository()
	resolver := users.NewResolver(repo)
	authenticator := users.NewAuthenticator(resolver)

	user := users.User{
		ProviderID:     "github:42",
		Email:          "yolo@noted.ly",
		CredentialHash: token.Hash("gh-token"),
	}
	require.NoError(t, repo.Upsert(&user))

	ep := authenticator.Authenticate(func(ctx context.Context, _ interface{}) (interface{}, error) {
		return users.FromContext(ctx)
	})

	// Token placed in the context by the transport layer.
	ctx := context.WithValue(context.Background(), kitjwt.JWTContextKey, "gh-token")
	res, err := ep(ctx, nil)
	require.NoError(t, err, "authenticating with a valid token should not fail")
	assert.Equal(t, user.ID, res.(users.User).ID)

	// Context without a token.
	_, err = ep(context.Background(), nil)
	if assert.Error(t, err, "authenticating without a token should fail") {
		errors.AssertKind(t, err, users.KindMissingCredential)
	}
}
