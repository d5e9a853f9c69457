package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/boards/endpoints"
	"github.com/dowlandaiello/notedly/boards/services"
	"github.com/dowlandaiello/notedly/users"
)

func RegisterNoteEndpoints(srv Server, service *services.NoteService, auth *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	// Create endpoint
	ep := endpoints.NewNoteEndpoint(service)

	getHandler := kithttp.NewServer(
		auth.Authenticate(ep.Get),
		decodeNoteIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createHandler := kithttp.NewServer(
		auth.Authenticate(ep.Create),
		decodeNoteCreateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		auth.Authenticate(ep.Update),
		decodeNoteUpdateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		auth.Authenticate(ep.Delete),
		decodeNoteIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	notesOfHandler := kithttp.NewServer(
		auth.Authenticate(ep.NotesOf),
		decodeUserIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/notedly/notes", "POST", createHandler)
	srv.RegisterHandler("/notedly/notes/:id", "GET", getHandler)
	srv.RegisterHandler("/notedly/notes/:id", "PATCH", updateHandler)
	srv.RegisterHandler("/notedly/notes/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/notedly/users/:id/notes", "GET", notesOfHandler)
}

func decodeNoteIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close() // Close body
	return pathID(ctx, "id")
}

func decodeNoteCreateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var note boards.Note
	err := json.NewDecoder(r.Body).Decode(&note)
	if err != nil {
		return nil, err
	}

	return note, nil
}

func decodeNoteUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := pathID(ctx, "id")
	if err != nil {
		return nil, err
	}

	var update services.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		return nil, err
	}

	return endpoints.NoteUpdateRequest{
		NoteID: noteID,
		Update: update,
	}, nil
}
