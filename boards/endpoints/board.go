package endpoints

import (
	"context"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/boards/services"
	"github.com/dowlandaiello/notedly/users"
)

type BoardEndpoint struct {
	service *services.BoardService
}

func NewBoardEndpoint(s *services.BoardService) BoardEndpoint {
	return BoardEndpoint{
		service: s,
	}
}

func (ep BoardEndpoint) List(ctx context.Context, _ interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return ep.service.ListVisible(caller)
}

func (ep BoardEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	boardID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Get(caller, boardID)
}

func (ep BoardEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	board, ok := r.(boards.Board)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Create(caller, board)
}

type BoardUpdateRequest struct {
	BoardID int
	Update  services.BoardUpdate
}

func (ep BoardEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(BoardUpdateRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Update(caller, req.BoardID, req.Update)
}

func (ep BoardEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	boardID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(caller, boardID); err != nil {
		return nil, err
	}

	return map[string]string{"message": "board deleted"}, nil
}

func (ep BoardEndpoint) Permissions(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	boardID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Permissions(caller, boardID)
}

func (ep BoardEndpoint) Notes(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	boardID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Notes(caller, boardID)
}

func (ep BoardEndpoint) Users(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	boardID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Users(caller, boardID)
}

type InviteRequest struct {
	BoardID int
	Grant   boards.Permission
}

func (ep BoardEndpoint) Invite(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(InviteRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Invite(caller, req.BoardID, req.Grant)
}

type RevokeRequest struct {
	BoardID int
	UserID  int
}

func (ep BoardEndpoint) Revoke(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(RevokeRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Revoke(caller, req.BoardID, req.UserID); err != nil {
		return nil, err
	}

	return map[string]string{"message": "grant revoked"}, nil
}

func (ep BoardEndpoint) BoardsOf(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	userID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.BoardsOf(caller, userID)
}

func (ep BoardEndpoint) GrantsOf(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	userID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.GrantsOf(caller, userID)
}

type GrantOfRequest struct {
	UserID  int
	BoardID int
}

func (ep BoardEndpoint) GrantOf(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(GrantOfRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.GrantOf(caller, req.UserID, req.BoardID)
}
