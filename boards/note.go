package boards

// Note is a piece of content scoped to a board. Notes have no
// permission table of their own, access always goes through the board.
type Note struct {
	ID       int    `json:"id"`
	AuthorID int    `json:"authorID"`
	BoardID  int    `json:"boardID"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

type NoteRepository interface {
	// Get retrieves a note by id. The zero value is returned when the
	// note does not exist.
	Get(id int) (Note, error)
	// ListForBoard retrieves every note of a board.
	ListForBoard(boardID int) ([]Note, error)
	// ListForAuthor retrieves every note written by a user.
	ListForAuthor(authorID int) ([]Note, error)
	// Upsert inserts or updates a note, setting its id on insert.
	Upsert(note *Note) error
	// Delete removes a note.
	Delete(id int) error
}
