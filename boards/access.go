package boards

import (
	"fmt"

	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/users"
)

// Access error kinds. They name why a check failed, the http code alone
// does not: a board that does not exist and a board the caller was
// never invited to both come back as a 404 with the same message, so
// strangers cannot probe which board ids exist.
const (
	KindNotFound      = "not-found"
	KindNotInvited    = "not-invited"
	KindOwnerRequired = "owner-required"
	KindReadDenied    = "read-denied"
	KindWriteDenied   = "write-denied"
)

// Required is the capability set an operation needs on a board.
type Required struct {
	Owner bool
	Read  bool
	Write bool
}

// NoBoard returns the error served whenever a board cannot be shown to
// the caller because it does not exist.
func NoBoard(id int) error {
	return errors.New(
		fmt.Sprintf("No board for id %d", id),
		errors.NotFound(),
		errors.WithKind(KindNotFound),
	)
}

func errNotInvited(id int) error {
	// Same status and message as NoBoard on purpose.
	return errors.New(
		fmt.Sprintf("No board for id %d", id),
		errors.NotFound(),
		errors.WithKind(KindNotInvited),
	)
}

func errOwnerRequired() error {
	return errors.New(
		"only the board owner can do that",
		errors.Forbidden(),
		errors.WithKind(KindOwnerRequired),
	)
}

func errWriteDenied() error {
	return errors.New(
		"you cannot write on this board",
		errors.Forbidden(),
		errors.WithKind(KindWriteDenied),
	)
}

func errReadDenied() error {
	return errors.New(
		"you cannot read this board",
		errors.Forbidden(),
		errors.WithKind(KindReadDenied),
	)
}

// Authorize decides whether user may act on board with the required
// capabilities. It returns nil on allow and a kinded error otherwise.
//
// The rules, evaluated in order:
//  1. a board that does not exist is not found,
//  2. the owner is allowed unconditionally,
//  3. a user with no grant on the board is treated as if the board
//     did not exist,
//  4. no grant ever satisfies an owner requirement,
//  5. writing requires the grant's write flag,
//  6. reading requires the grant's read flag.
//
// An all-false Required still needs the caller to be invited: it is the
// "has any relationship to this board" check.
//
// The only lookup performed here is the grant row, the caller supplies
// the already resolved user and board.
func Authorize(user users.User, board Board, grants PermissionRepository, required Required) error {
	if board.ID == 0 {
		return NoBoard(board.ID)
	}

	if user.ID == board.OwnerID {
		return nil
	}

	grant, err := grants.Get(user.ID, board.ID)
	if err != nil {
		return errors.New("could not look up grant", errors.WithCause(err))
	}

	if grant.UserID == 0 {
		return errNotInvited(board.ID)
	}

	if required.Owner {
		return errOwnerRequired()
	}

	if required.Write && !grant.CanWrite {
		return errWriteDenied()
	}

	if required.Read && !grant.CanRead {
		return errReadDenied()
	}

	return nil
}
