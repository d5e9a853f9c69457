package boards

// Board visibility. Private boards are only reachable through grants,
// link boards can be shared by URL. Visibility never influences the
// authorization decision, it is informational for clients.
const (
	VisibilityPrivate = 0
	VisibilityLink    = 1
)

type Board struct {
	ID         int    `json:"id"`
	OwnerID    int    `json:"ownerID"`
	Title      string `json:"title"`
	Visibility int    `json:"visibility"`
}

type BoardRepository interface {
	// Get retrieves a board by id. The zero value is returned when the
	// board does not exist.
	Get(id int) (Board, error)
	// ListForOwner retrieves every board owned by a user.
	ListForOwner(ownerID int) ([]Board, error)
	// Create inserts a board and the owner's grant in one transaction.
	// The board id is set on the way.
	Create(board *Board, grant *Permission) error
	// Update saves an existing board.
	Update(board *Board) error
	// DeleteCascade removes a board with all its notes and grants. No
	// partial cascade is ever visible to readers.
	DeleteCascade(id int) error
}
