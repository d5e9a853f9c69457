// Package oauth bootstraps sessions: it exchanges provider
// authorization codes for an identity and hands the resulting
// credential to the user module. It never talks to the rest of the
// system directly.
package oauth

import (
	"github.com/dowlandaiello/notedly/users"
)

// UserUpserter is what a provider needs from the user module: create
// or refresh the account behind a provider identity. The upsert
// replaces the stored credential hash, which rotates the session.
type UserUpserter interface {
	Upsert(user users.User) (users.User, error)
}
