package inmem

import (
	"sync"

	"github.com/dowlandaiello/notedly/boards"
)

// InMemBoardRepository holds the note and permission repositories so a
// board deletion can cascade to its dependents.
type InMemBoardRepository struct {
	mu     sync.Locker
	boards []boards.Board
	maxID  int

	notes       *InMemNoteRepository
	permissions *InMemPermissionRepository
}

func NewInMemBoardRepository(notes *InMemNoteRepository, permissions *InMemPermissionRepository) *InMemBoardRepository {
	return &InMemBoardRepository{
		mu:          &sync.Mutex{},
		boards:      make([]boards.Board, 0),
		maxID:       0,
		notes:       notes,
		permissions: permissions,
	}
}

func (r *InMemBoardRepository) Get(id int) (boards.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, board := range r.boards {
		if board.ID == id {
			return board, nil
		}
	}
	return boards.Board{}, nil
}

func (r *InMemBoardRepository) ListForOwner(ownerID int) ([]boards.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := make([]boards.Board, 0)
	for _, board := range r.boards {
		if board.OwnerID == ownerID {
			owned = append(owned, board)
		}
	}
	return owned, nil
}

func (r *InMemBoardRepository) Create(board *boards.Board, grant *boards.Permission) error {
	r.mu.Lock()

	if board.ID == 0 {
		r.maxID++
		board.ID = r.maxID
	} else if board.ID > r.maxID {
		r.maxID = board.ID
	}
	r.boards = append(r.boards, *board)
	r.mu.Unlock()

	grant.BoardID = board.ID
	return r.permissions.Upsert(grant)
}

func (r *InMemBoardRepository) Update(board *boards.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.boards {
		if b.ID == board.ID {
			r.boards[i] = *board
			return nil
		}
	}

	r.boards = append(r.boards, *board)
	return nil
}

func (r *InMemBoardRepository) DeleteCascade(id int) error {
	r.mu.Lock()
	kept := r.boards[:0]
	for _, b := range r.boards {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	r.boards = kept
	r.mu.Unlock()

	r.notes.deleteForBoard(id)
	r.permissions.deleteForBoard(id)
	return nil
}
