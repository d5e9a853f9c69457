package inmem

import (
	"testing"

	"github.com/dowlandaiello/notedly/boards/testutil"
)

func TestInMemPermissionRepository(t *testing.T) {
	testutil.TestPermissionRepository(t, NewInMemPermissionRepository())
}

func TestInMemNoteRepository(t *testing.T) {
	testutil.TestNoteRepository(t, NewInMemNoteRepository())
}

func TestInMemBoardRepository(t *testing.T) {
	notes := NewInMemNoteRepository()
	permissions := NewInMemPermissionRepository()
	repo := NewInMemBoardRepository(notes, permissions)

	testutil.TestBoardRepository(t, repo, notes, permissions)
}
