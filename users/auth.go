package users

import (
	"context"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"

	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/token"
)

// Identity error kinds.
const (
	KindMissingCredential = "missing-credential"
	KindUnknownUser       = "unknown-user"
)

var contextKey = "user"

// Resolver maps a raw bearer credential to the user it belongs to. A user
// matches when the stored credential hash equals the digest of the
// presented token.
type Resolver struct {
	repository UserRepository
}

func NewResolver(repo UserRepository) *Resolver {
	return &Resolver{
		repository: repo,
	}
}

func (r *Resolver) Resolve(bearer string) (User, error) {
	if bearer == "" {
		return User{}, errors.New(
			"no credential provided",
			errors.Unauthorized(),
			errors.WithKind(KindMissingCredential),
		)
	}

	user, err := r.repository.GetByCredentialHash(token.Hash(bearer))
	if err != nil {
		return User{}, errors.New("could not look up user", errors.WithCause(err))
	}

	if user.ID == 0 {
		return User{}, errors.New(
			"unknown user",
			errors.Unauthorized(),
			errors.WithKind(KindUnknownUser),
		)
	}

	return user, nil
}

// Authenticator resolves the bearer credential stashed in the context by the
// transport layer and passes the resolved user down the endpoint chain. The
// business logic below never reads ambient request state.
type Authenticator struct {
	resolver *Resolver
}

func NewAuthenticator(r *Resolver) *Authenticator {
	return &Authenticator{
		resolver: r,
	}
}

func (a *Authenticator) Authenticate(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		bearer, _ := ctx.Value(kitjwt.JWTContextKey).(string)

		user, err := a.resolver.Resolve(bearer)
		if err != nil {
			return nil, err
		}

		return next(context.WithValue(ctx, contextKey, user), req)
	}
}

func FromContext(ctx context.Context) (User, error) {
	v := ctx.Value(contextKey)
	if v == nil {
		return User{}, errors.New("no user", errors.Unauthorized(), errors.WithKind(KindMissingCredential))
	}

	user, ok := v.(User)
	if !ok {
		return User{}, errors.New("invalid user", errors.Unauthorized())
	}

	return user, nil
}
