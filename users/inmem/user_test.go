package inmem

import (
	"testing"

	"github.com/dowlandaiello/notedly/users/testutil"
)

func TestInMemUserRepository(t *testing.T) {
	repo := NewInMemUserRepository()
	testutil.TestUserRepository(t, repo)
}
