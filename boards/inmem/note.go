package inmem

import (
	"sync"

	"github.com/dowlandaiello/notedly/boards"
)

type InMemNoteRepository struct {
	mu    sync.Locker
	notes []boards.Note
	maxID int
}

func NewInMemNoteRepository() *InMemNoteRepository {
	return &InMemNoteRepository{
		mu:    &sync.Mutex{},
		notes: make([]boards.Note, 0),
		maxID: 0,
	}
}

func (r *InMemNoteRepository) Get(id int) (boards.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, note := range r.notes {
		if note.ID == id {
			return note, nil
		}
	}
	return boards.Note{}, nil
}

func (r *InMemNoteRepository) ListForBoard(boardID int) ([]boards.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]boards.Note, 0)
	for _, note := range r.notes {
		if note.BoardID == boardID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (r *InMemNoteRepository) ListForAuthor(authorID int) ([]boards.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]boards.Note, 0)
	for _, note := range r.notes {
		if note.AuthorID == authorID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (r *InMemNoteRepository) Upsert(note *boards.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.ID == 0 {
		r.maxID++
		note.ID = r.maxID
	} else if note.ID > r.maxID {
		r.maxID = note.ID
	}

	for i, n := range r.notes {
		if n.ID == note.ID {
			r.notes[i] = *note
			return nil
		}
	}

	r.notes = append(r.notes, *note)
	return nil
}

func (r *InMemNoteRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notes {
		if n.ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

// deleteForBoard removes every note of a board. Used by the board
// repository's cascade.
func (r *InMemNoteRepository) deleteForBoard(boardID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.notes[:0]
	for _, n := range r.notes {
		if n.BoardID != boardID {
			kept = append(kept, n)
		}
	}
	r.notes = kept
}
