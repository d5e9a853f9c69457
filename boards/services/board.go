package services

import (
	"fmt"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/errors"
	"github.com/dowlandaiello/notedly/users"
)

func errUserNotFound(id int) error {
	return errors.New(fmt.Sprintf("No user for id %d", id), errors.NotFound())
}

func errNotYourself() error {
	return errors.New("you can only view your own account", errors.Forbidden())
}

// BoardService orchestrates every board operation: resolve the board,
// check the caller's capabilities, then act on storage.
type BoardService struct {
	boards      boards.BoardRepository
	notes       boards.NoteRepository
	permissions boards.PermissionRepository
	users       users.UserRepository
}

func NewBoardService(
	boardRepo boards.BoardRepository,
	noteRepo boards.NoteRepository,
	permissionRepo boards.PermissionRepository,
	userRepo users.UserRepository,
) *BoardService {
	return &BoardService{
		boards:      boardRepo,
		notes:       noteRepo,
		permissions: permissionRepo,
		users:       userRepo,
	}
}

// resolve fetches a board and checks the caller's capabilities on it in
// one go. Every operation below goes through here.
func (s *BoardService) resolve(caller users.User, id int, required boards.Required) (boards.Board, error) {
	board, err := s.boards.Get(id)
	if err != nil {
		return boards.Board{}, err
	}

	if board.ID == 0 {
		return boards.Board{}, boards.NoBoard(id)
	}

	if err := boards.Authorize(caller, board, s.permissions, required); err != nil {
		return boards.Board{}, err
	}

	return board, nil
}

// ListVisible returns every board the caller owns or holds a grant on.
func (s *BoardService) ListVisible(caller users.User) ([]boards.Board, error) {
	owned, err := s.boards.ListForOwner(caller.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(owned))
	visible := make([]boards.Board, 0, len(owned))
	for _, board := range owned {
		seen[board.ID] = struct{}{}
		visible = append(visible, board)
	}

	grants, err := s.permissions.ListForUser(caller.ID)
	if err != nil {
		return nil, err
	}

	for _, grant := range grants {
		if _, ok := seen[grant.BoardID]; ok {
			continue
		}

		board, err := s.boards.Get(grant.BoardID)
		if err != nil {
			return nil, err
		}
		if board.ID == 0 {
			continue
		}

		seen[board.ID] = struct{}{}
		visible = append(visible, board)
	}

	return visible, nil
}

func (s *BoardService) Get(caller users.User, id int) (boards.Board, error) {
	return s.resolve(caller, id, boards.Required{Read: true})
}

// Create inserts a board owned by the caller. The owner's full grant is
// written in the same transaction so the board is never half created.
func (s *BoardService) Create(caller users.User, board boards.Board) (boards.Board, error) {
	if board.Title == "" {
		return boards.Board{}, errors.New("a board needs a title", errors.BadRequest())
	}

	board.ID = 0
	board.OwnerID = caller.ID
	grant := boards.Permission{
		UserID:   caller.ID,
		CanRead:  true,
		CanWrite: true,
	}

	if err := s.boards.Create(&board, &grant); err != nil {
		return boards.Board{}, err
	}

	return board, nil
}

// BoardUpdate carries the fields of a partial board update. Nil fields
// keep their current value.
type BoardUpdate struct {
	Title      *string `json:"title"`
	Visibility *int    `json:"visibility"`
}

func (s *BoardService) Update(caller users.User, id int, update BoardUpdate) (boards.Board, error) {
	board, err := s.resolve(caller, id, boards.Required{Owner: true})
	if err != nil {
		return boards.Board{}, err
	}

	if update.Title != nil {
		if *update.Title == "" {
			return boards.Board{}, errors.New("a board needs a title", errors.BadRequest())
		}
		board.Title = *update.Title
	}
	if update.Visibility != nil {
		board.Visibility = *update.Visibility
	}

	if err := s.boards.Update(&board); err != nil {
		return boards.Board{}, err
	}

	return board, nil
}

// Delete removes a board with all its notes and grants.
func (s *BoardService) Delete(caller users.User, id int) error {
	if _, err := s.resolve(caller, id, boards.Required{Owner: true}); err != nil {
		return err
	}

	return s.boards.DeleteCascade(id)
}

// Permissions lists the grants on a board.
func (s *BoardService) Permissions(caller users.User, id int) ([]boards.Permission, error) {
	if _, err := s.resolve(caller, id, boards.Required{Read: true}); err != nil {
		return nil, err
	}

	return s.permissions.ListForBoard(id)
}

// Notes lists the notes of a board.
func (s *BoardService) Notes(caller users.User, id int) ([]boards.Note, error) {
	if _, err := s.resolve(caller, id, boards.Required{Read: true}); err != nil {
		return nil, err
	}

	return s.notes.ListForBoard(id)
}

// Users lists the owner and the invited users of a board.
func (s *BoardService) Users(caller users.User, id int) ([]users.User, error) {
	board, err := s.resolve(caller, id, boards.Required{Read: true})
	if err != nil {
		return nil, err
	}

	grants, err := s.permissions.ListForBoard(id)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(grants)+1)
	seen := map[int]struct{}{board.OwnerID: {}}
	ids = append(ids, board.OwnerID)
	for _, grant := range grants {
		if _, ok := seen[grant.UserID]; ok {
			continue
		}
		seen[grant.UserID] = struct{}{}
		ids = append(ids, grant.UserID)
	}

	members := make([]users.User, 0, len(ids))
	for _, userID := range ids {
		user, err := s.users.Get(userID)
		if err != nil {
			return nil, err
		}
		if user.ID == 0 {
			continue
		}
		members = append(members, user)
	}

	return members, nil
}

// Invite grants a user read/write rights on a board. Only the owner
// invites, and inviting again replaces the previous grant.
func (s *BoardService) Invite(caller users.User, boardID int, grant boards.Permission) (boards.Permission, error) {
	board, err := s.resolve(caller, boardID, boards.Required{Owner: true})
	if err != nil {
		return boards.Permission{}, err
	}

	if grant.UserID == board.OwnerID {
		return boards.Permission{}, errors.New("the owner already has full access", errors.BadRequest())
	}

	invitee, err := s.users.Get(grant.UserID)
	if err != nil {
		return boards.Permission{}, err
	}
	if invitee.ID == 0 {
		return boards.Permission{}, errUserNotFound(grant.UserID)
	}

	grant.BoardID = boardID
	if err := s.permissions.Upsert(&grant); err != nil {
		return boards.Permission{}, err
	}

	return grant, nil
}

// Revoke removes a user's grant on a board.
func (s *BoardService) Revoke(caller users.User, boardID, userID int) error {
	if _, err := s.resolve(caller, boardID, boards.Required{Owner: true}); err != nil {
		return err
	}

	grant, err := s.permissions.Get(userID, boardID)
	if err != nil {
		return err
	}
	if grant.UserID == 0 {
		return errors.New(
			fmt.Sprintf("No grant for user %d on board %d", userID, boardID),
			errors.NotFound(),
		)
	}

	return s.permissions.Delete(userID, boardID)
}

// BoardsOf lists the boards owned by a user, for that user only.
func (s *BoardService) BoardsOf(caller users.User, userID int) ([]boards.Board, error) {
	if caller.ID != userID {
		return nil, errNotYourself()
	}

	return s.boards.ListForOwner(userID)
}

// GrantsOf lists the grants held by a user, for that user only.
func (s *BoardService) GrantsOf(caller users.User, userID int) ([]boards.Permission, error) {
	if caller.ID != userID {
		return nil, errNotYourself()
	}

	return s.permissions.ListForUser(userID)
}

// GrantOf returns a user's grant on one board, for that user only.
func (s *BoardService) GrantOf(caller users.User, userID, boardID int) (boards.Permission, error) {
	if caller.ID != userID {
		return boards.Permission{}, errNotYourself()
	}

	grant, err := s.permissions.Get(userID, boardID)
	if err != nil {
		return boards.Permission{}, err
	}
	if grant.UserID == 0 {
		return boards.Permission{}, errors.New(
			fmt.Sprintf("No grant for user %d on board %d", userID, boardID),
			errors.NotFound(),
		)
	}

	return grant, nil
}
