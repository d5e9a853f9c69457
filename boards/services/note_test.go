package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowlandaiello/notedly/boards"
	"github.com/dowlandaiello/notedly/errors"
)

func TestNoteService_CreateGet(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@noted.ly")
	bob := f.user(t, "bob@noted.ly")

	board, err := f.boards.Create(alice, boards.Board{Title: "Trip Plans"})
	require.NoError(t, err)

	// A note needs a title.
	_, err = f.notes.Create(alice, boards.Note{BoardID: board.ID})
	require.Error(t, err)
	errors.AssertCode(t, err, 400)

	// And an existing board.
	_, err = f.notes.Create(alice, boards.Note{BoardID: 999, Title: "Lost"})
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
	errors.AssertKind(t, err, boards.KindNotFound)

	// The caller authors the note no matter what the payload says.
	note, err := f.notes.Create(alice, boards.Note{BoardID: board.ID, AuthorID: 999, Title: "Packing list", Body: "socks"})
	require.NoError(t, err)
	require.NotEqual(t, 0, note.ID)
	assert.Equal(t, alice.ID, note.AuthorID)

	// Reading needs read capability on the board.
	_, err = f.notes.Get(bob, note.ID)
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
	errors.AssertKind(t, err, boards.KindNotInvited)

	_, err = f.boards.Invite(alice, board.ID, boards.Permission{UserID: bob.ID, CanRead: true})
	require.NoError(t, err)

	retrieved, err := f.notes.Get(bob, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, retrieved)

	// A board's notes are listed with the same read capability.
	notes, err := f.boards.Notes(bob, board.ID)
	require.NoError(t, err)
	assert.Equal(t, []boards.Note{note}, notes)
}

func TestNoteService_Update(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@noted.ly")
	bob := f.user(t, "bob@noted.ly")
	carol := f.user(t, "carol@noted.ly")

	board, err := f.boards.Create(alice, boards.Board{Title: "Trip Plans"})
	require.NoError(t, err)
	_, err = f.boards.Invite(alice, board.ID, boards.Permission{UserID: bob.ID, CanRead: true, CanWrite: true})
	require.NoError(t, err)
	_, err = f.boards.Invite(alice, board.ID, boards.Permission{UserID: carol.ID, CanRead: true})
	require.NoError(t, err)

	note, err := f.notes.Create(alice, boards.Note{BoardID: board.ID, Title: "Packing list", Body: "socks"})
	require.NoError(t, err)

	// Editing goes by board write capability, not authorship: Bob can
	// edit Alice's note.
	body := "socks, sunscreen"
	updated, err := f.notes.Update(bob, note.ID, NoteUpdate{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, "Packing list", updated.Title)
	assert.Equal(t, "socks, sunscreen", updated.Body)
	assert.Equal(t, alice.ID, updated.AuthorID, "authorship does not move on edit")

	// Carol only reads.
	_, err = f.notes.Update(carol, note.ID, NoteUpdate{Body: &body})
	require.Error(t, err)
	errors.AssertKind(t, err, boards.KindWriteDenied)
	errors.AssertCode(t, err, 403)

	empty := ""
	_, err = f.notes.Update(bob, note.ID, NoteUpdate{Title: &empty})
	require.Error(t, err, "a note cannot lose its title")
	errors.AssertCode(t, err, 400)

	_, err = f.notes.Update(bob, 999, NoteUpdate{Body: &body})
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestNoteService_Delete(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@noted.ly")
	carol := f.user(t, "carol@noted.ly")

	board, err := f.boards.Create(alice, boards.Board{Title: "Trip Plans"})
	require.NoError(t, err)
	_, err = f.boards.Invite(alice, board.ID, boards.Permission{UserID: carol.ID, CanRead: true})
	require.NoError(t, err)

	note, err := f.notes.Create(alice, boards.Note{BoardID: board.ID, Title: "Packing list"})
	require.NoError(t, err)

	err = f.notes.Delete(carol, note.ID)
	require.Error(t, err)
	errors.AssertKind(t, err, boards.KindWriteDenied)

	require.NoError(t, f.notes.Delete(alice, note.ID))

	_, err = f.notes.Get(alice, note.ID)
	require.Error(t, err)
	errors.AssertCode(t, err, 404)
}

func TestNoteService_NotesOf(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice@noted.ly")
	bob := f.user(t, "bob@noted.ly")

	board, err := f.boards.Create(alice, boards.Board{Title: "Trip Plans"})
	require.NoError(t, err)
	note, err := f.notes.Create(alice, boards.Note{BoardID: board.ID, Title: "Packing list"})
	require.NoError(t, err)

	mine, err := f.notes.NotesOf(alice, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []boards.Note{note}, mine)

	_, err = f.notes.NotesOf(bob, alice.ID)
	require.Error(t, err)
	errors.AssertCode(t, err, 403)
}
