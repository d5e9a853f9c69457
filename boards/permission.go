package boards

// Permission is an invitation: a grant of read/write rights on a board
// to a user who is not its owner. At most one grant exists per
// (user, board) pair. Read and write are independent, neither implies
// the other.
type Permission struct {
	UserID   int  `json:"userID"`
	BoardID  int  `json:"boardID"`
	CanRead  bool `json:"canRead"`
	CanWrite bool `json:"canWrite"`
}

type PermissionRepository interface {
	// Get retrieves the grant for a (user, board) pair. The zero value
	// is returned when the user was never invited.
	Get(userID, boardID int) (Permission, error)
	// ListForBoard retrieves every grant on a board.
	ListForBoard(boardID int) ([]Permission, error)
	// ListForUser retrieves every grant held by a user.
	ListForUser(userID int) ([]Permission, error)
	// Upsert inserts or replaces the grant for its (user, board) pair.
	Upsert(grant *Permission) error
	// Delete removes the grant for a (user, board) pair.
	Delete(userID, boardID int) error
}
