package endpoints

import (
	"context"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/boards/services"
	"github.com/dowlandaiello/notedly/users"
)

type NoteEndpoint struct {
	service *services.NoteService
}

func NewNoteEndpoint(s *services.NoteService) NoteEndpoint {
	return NoteEndpoint{
		service: s,
	}
}

func (ep NoteEndpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	noteID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Get(caller, noteID)
}

func (ep NoteEndpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	note, ok := r.(boards.Note)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Create(caller, note)
}

type NoteUpdateRequest struct {
	NoteID int
	Update services.NoteUpdate
}

func (ep NoteEndpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(NoteUpdateRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Update(caller, req.NoteID, req.Update)
}

func (ep NoteEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	noteID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(caller, noteID); err != nil {
		return nil, err
	}

	return map[string]string{"message": "note deleted"}, nil
}

func (ep NoteEndpoint) NotesOf(ctx context.Context, r interface{}) (interface{}, error) {
	caller, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	userID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.NotesOf(caller, userID)
}
