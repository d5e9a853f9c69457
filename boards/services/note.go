package services

import (
	"fmt"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/users"
)

func errNoteNotFound(id int) error {
	return errors.New(fmt.Sprintf("No note for id %d", id), errors.NotFound())
}

// NoteService orchestrates note operations. Notes carry no rights of
// their own: every check is made against the owning board.
type NoteService struct {
	notes       boards.NoteRepository
	boards      boards.BoardRepository
	permissions boards.PermissionRepository
}

func NewNoteService(
	noteRepo boards.NoteRepository,
	boardRepo boards.BoardRepository,
	permissionRepo boards.PermissionRepository,
) *NoteService {
	return &NoteService{
		notes:       noteRepo,
		boards:      boardRepo,
		permissions: permissionRepo,
	}
}

// resolve fetches a note, its board, and checks the caller's
// capabilities on the board.
func (s *NoteService) resolve(caller users.User, id int, required boards.Required) (boards.Note, error) {
	note, err := s.notes.Get(id)
	if err != nil {
		return boards.Note{}, err
	}

	if note.ID == 0 {
		return boards.Note{}, errNoteNotFound(id)
	}

	board, err := s.boards.Get(note.BoardID)
	if err != nil {
		return boards.Note{}, err
	}

	if err := boards.Authorize(caller, board, s.permissions, required); err != nil {
		return boards.Note{}, err
	}

	return note, nil
}

func (s *NoteService) Get(caller users.User, id int) (boards.Note, error) {
	return s.resolve(caller, id, boards.Required{Read: true})
}

// Create inserts a note on a board the caller can write on.
func (s *NoteService) Create(caller users.User, note boards.Note) (boards.Note, error) {
	if note.Title == "" {
		return boards.Note{}, errors.New("a note needs a title", errors.BadRequest())
	}

	board, err := s.boards.Get(note.BoardID)
	if err != nil {
		return boards.Note{}, err
	}
	if board.ID == 0 {
		return boards.Note{}, boards.NoBoard(note.BoardID)
	}

	if err := boards.Authorize(caller, board, s.permissions, boards.Required{Write: true}); err != nil {
		return boards.Note{}, err
	}

	note.ID = 0
	note.AuthorID = caller.ID
	if err := s.notes.Upsert(&note); err != nil {
		return boards.Note{}, err
	}

	return note, nil
}

// NoteUpdate carries the fields of a partial note update. Nil fields
// keep their current value.
type NoteUpdate struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// Update edits a note. Editing is gated by board write capability, the
// same right note creation needs. Authorship is informational only.
func (s *NoteService) Update(caller users.User, id int, update NoteUpdate) (boards.Note, error) {
	note, err := s.resolve(caller, id, boards.Required{Write: true})
	if err != nil {
		return boards.Note{}, err
	}

	if update.Title != nil {
		if *update.Title == "" {
			return boards.Note{}, errors.New("a note needs a title", errors.BadRequest())
		}
		note.Title = *update.Title
	}
	if update.Body != nil {
		note.Body = *update.Body
	}

	if err := s.notes.Upsert(&note); err != nil {
		return boards.Note{}, err
	}

	return note, nil
}

// Delete removes a note from a board the caller can write on.
func (s *NoteService) Delete(caller users.User, id int) error {
	if _, err := s.resolve(caller, id, boards.Required{Write: true}); err != nil {
		return err
	}

	return s.notes.Delete(id)
}

// NotesOf lists the notes written by a user, for that user only.
func (s *NoteService) NotesOf(caller users.User, userID int) ([]boards.Note, error) {
	if caller.ID != userID {
		return nil, errNotYourself()
	}

	return s.notes.ListForAuthor(userID)
}
