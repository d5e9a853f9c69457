package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowlandaiello/notedly/boards"
)

// TestPermissionRepository runs the conformance suite shared by every
// boards.PermissionRepository implementation.
func TestPermissionRepository(t *testing.T, repo boards.PermissionRepository) {
	grants := []*boards.Permission{
		{UserID: 1, BoardID: 10, CanRead: true, CanWrite: true},
		{UserID: 2, BoardID: 10, CanRead: true, CanWrite: false},
		{UserID: 2, BoardID: 20, CanRead: false, CanWrite: true},
	}
	for _, grant := range grants {
		require.NoError(t, repo.Upsert(grant), "inserting a grant must not fail")
	}

	// Get a grant by its pair
	grant, err := repo.Get(2, 10)
	require.NoError(t, err)
	assert.Equal(t, *grants[1], grant, "the (user, board) pair keys the grant")

	// An unknown pair comes back as the zero value
	grant, err = repo.Get(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, grant.UserID, "unknown pair should give the zero value")

	// Upserting the same pair replaces the grant
	err = repo.Upsert(&boards.Permission{UserID: 2, BoardID: 10, CanRead: true, CanWrite: true})
	require.NoError(t, err)
	grant, err = repo.Get(2, 10)
	require.NoError(t, err)
	assert.True(t, grant.CanWrite, "upsert should replace the grant")

	// Listings
	forBoard, err := repo.ListForBoard(10)
	require.NoError(t, err)
	assert.Len(t, forBoard, 2)

	forUser, err := repo.ListForUser(2)
	require.NoError(t, err)
	assert.Len(t, forUser, 2)

	// Delete
	require.NoError(t, repo.Delete(2, 10))
	grant, err = repo.Get(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, grant.UserID, "a deleted grant should be gone")

	forBoard, err = repo.ListForBoard(10)
	require.NoError(t, err)
	assert.Len(t, forBoard, 1)
}

// TestNoteRepository runs the conformance suite shared by every
// boards.NoteRepository implementation.
func TestNoteRepository(t *testing.T, repo boards.NoteRepository) {
	notes := []*boards.Note{
		{AuthorID: 1, BoardID: 10, Title: "Packing list", Body: "socks"},
		{AuthorID: 1, BoardID: 20, Title: "Groceries", Body: "pizza"},
		{AuthorID: 2, BoardID: 10, Title: "Ideas"},
	}
	for _, note := range notes {
		require.NoError(t, repo.Upsert(note), "inserting a note must not fail")
		require.NotEqual(t, 0, note.ID, "id must be set by insert")
	}
	require.NotEqual(t, notes[0].ID, notes[1].ID, "ids must be different")

	// Get by id
	note, err := repo.Get(notes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, *notes[0], note)

	// Unknown id comes back as the zero value
	note, err = repo.Get(notes[2].ID + 100)
	require.NoError(t, err)
	assert.Equal(t, 0, note.ID, "unknown note should give the zero value")

	// Update
	notes[0].Body = "socks, sunscreen"
	require.NoError(t, repo.Upsert(notes[0]))
	note, err = repo.Get(notes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "socks, sunscreen", note.Body)

	// Listings
	forBoard, err := repo.ListForBoard(10)
	require.NoError(t, err)
	assert.Len(t, forBoard, 2)

	forAuthor, err := repo.ListForAuthor(1)
	require.NoError(t, err)
	assert.Len(t, forAuthor, 2)

	// Delete
	require.NoError(t, repo.Delete(notes[2].ID))
	note, err = repo.Get(notes[2].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, note.ID, "a deleted note should be gone")
}

// TestBoardRepository runs the conformance suite shared by every
// boards.BoardRepository implementation. The note and permission
// repositories must be backed by the same store so the cascade can be
// observed.
func TestBoardRepository(
	t *testing.T,
	repo boards.BoardRepository,
	notes boards.NoteRepository,
	permissions boards.PermissionRepository,
) {
	// Creating a board writes the owner's grant with it
	board := boards.Board{OwnerID: 1, Title: "Trip Plans"}
	grant := boards.Permission{UserID: 1, CanRead: true, CanWrite: true}
	require.NoError(t, repo.Create(&board, &grant), "creating a board must not fail")
	require.NotEqual(t, 0, board.ID, "id must be set by create")
	assert.Equal(t, board.ID, grant.BoardID, "the owner grant must point at the new board")

	stored, err := permissions.Get(1, board.ID)
	require.NoError(t, err)
	assert.Equal(t, grant, stored, "the owner grant must be persisted with the board")

	// Get
	retrieved, err := repo.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, board, retrieved)

	// Unknown id comes back as the zero value
	retrieved, err = repo.Get(board.ID + 100)
	require.NoError(t, err)
	assert.Equal(t, 0, retrieved.ID, "unknown board should give the zero value")

	// Update
	board.Title = "Trip Plans 2026"
	board.Visibility = boards.VisibilityLink
	require.NoError(t, repo.Update(&board))
	retrieved, err = repo.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, board, retrieved)

	// ListForOwner
	other := boards.Board{OwnerID: 1, Title: "Groceries"}
	require.NoError(t, repo.Create(&other, &boards.Permission{UserID: 1, CanRead: true, CanWrite: true}))
	owned, err := repo.ListForOwner(1)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	// Cascade: deleting a board removes its notes and grants, and
	// nothing else.
	require.NoError(t, notes.Upsert(&boards.Note{AuthorID: 1, BoardID: board.ID, Title: "Packing list"}))
	require.NoError(t, notes.Upsert(&boards.Note{AuthorID: 2, BoardID: board.ID, Title: "Museums"}))
	surviving := boards.Note{AuthorID: 1, BoardID: other.ID, Title: "Milk"}
	require.NoError(t, notes.Upsert(&surviving))
	require.NoError(t, permissions.Upsert(&boards.Permission{UserID: 2, BoardID: board.ID, CanRead: true}))

	require.NoError(t, repo.DeleteCascade(board.ID))

	retrieved, err = repo.Get(board.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, retrieved.ID, "the board should be gone")

	orphanNotes, err := notes.ListForBoard(board.ID)
	require.NoError(t, err)
	assert.Empty(t, orphanNotes, "no note may survive its board")

	orphanGrants, err := permissions.ListForBoard(board.ID)
	require.NoError(t, err)
	assert.Empty(t, orphanGrants, "no grant may survive its board")

	kept, err := notes.ListForBoard(other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "other boards keep their notes")
	assert.Equal(t, surviving, kept[0])
}
