package inmem

import (
	"sync"

	"github.com/dowlandaiello/notedly/boards"
)

type InMemPermissionRepository struct {
	mu     sync.Locker
	grants []boards.Permission
}

func NewInMemPermissionRepository() *InMemPermissionRepository {
	return &InMemPermissionRepository{
		mu:     &sync.Mutex{},
		grants: make([]boards.Permission, 0),
	}
}

func (r *InMemPermissionRepository) Get(userID, boardID int) (boards.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, grant := range r.grants {
		if grant.UserID == userID && grant.BoardID == boardID {
			return grant, nil
		}
	}
	return boards.Permission{}, nil
}

func (r *InMemPermissionRepository) ListForBoard(boardID int) ([]boards.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	grants := make([]boards.Permission, 0)
	for _, grant := range r.grants {
		if grant.BoardID == boardID {
			grants = append(grants, grant)
		}
	}
	return grants, nil
}

func (r *InMemPermissionRepository) ListForUser(userID int) ([]boards.Permission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	grants := make([]boards.Permission, 0)
	for _, grant := range r.grants {
		if grant.UserID == userID {
			grants = append(grants, grant)
		}
	}
	return grants, nil
}

func (r *InMemPermissionRepository) Upsert(grant *boards.Permission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.grants {
		if g.UserID == grant.UserID && g.BoardID == grant.BoardID {
			r.grants[i] = *grant
			return nil
		}
	}

	r.grants = append(r.grants, *grant)
	return nil
}

func (r *InMemPermissionRepository) Delete(userID, boardID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.grants {
		if g.UserID == userID && g.BoardID == boardID {
			r.grants = append(r.grants[:i], r.grants[i+1:]...)
			return nil
		}
	}
	return nil
}

// deleteForBoard removes every grant on a board. Used by the board
// repository's cascade.
func (r *InMemPermissionRepository) deleteForBoard(boardID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.BoardID != boardID {
			kept = append(kept, g)
		}
	}
	r.grants = kept
}
