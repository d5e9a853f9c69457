package testutil

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dowlandaiello/notedly/token"
	"github.com/dowlandaiello/notedly/users"
)

// TestUserRepository runs the conformance suite shared by every
// users.UserRepository implementation.
func TestUserRepository(t *testing.T, repo users.UserRepository) {
	us := []*users.User{
		{
			ProviderID:     "google:1234",
			Email:          "pizza@noted.ly",
			CredentialHash: token.Hash("pizza-token"),
		},
		{
			ProviderID:     "github:5678",
			Email:          "yolo@noted.ly",
			CredentialHash: token.Hash("yolo-token"),
		},
	}

	// Insert users
	testInsertUsers(t, repo, us)

	// Get users by id
	for i, user := range us {
		testGetUser(t, repo, user.ID, *user, fmt.Sprintf("get user %d", i))
	}

	// Get users by provider id
	testGetUserByProviderID(t, repo, us[1].ProviderID, *us[1], "get by provider id")

	// Get users by credential hash
	testGetUserByCredentialHash(t, repo, us[0].CredentialHash, *us[0], "get by credential hash")

	// Unknown lookups come back as zero values, not errors
	user, err := repo.Get(us[1].ID + 100)
	require.NoError(t, err, "getting a non existing user must not fail")
	assert.Equal(t, 0, user.ID, "non existing user should be the zero value")

	user, err = repo.GetByCredentialHash(token.Hash("never-issued"))
	require.NoError(t, err, "getting by an unknown hash must not fail")
	assert.Equal(t, 0, user.ID, "unknown hash should give the zero value")

	// Rotate a credential
	us[0].CredentialHash = token.Hash("fresh-pizza-token")
	err = repo.Upsert(us[0])
	require.NoError(t, err, "rotating a credential must not fail")

	user, err = repo.GetByCredentialHash(token.Hash("pizza-token"))
	require.NoError(t, err)
	assert.Equal(t, 0, user.ID, "old credential should not match anymore")
	testGetUserByCredentialHash(t, repo, us[0].CredentialHash, *us[0], "get by rotated hash")

	// List
	all, err := repo.List()
	require.NoError(t, err, "listing must not fail")
	assert.Len(t, all, len(us))
}

func testInsertUsers(t *testing.T, repo users.UserRepository, us []*users.User) {
	ids := make([]int, len(us))
	for i, user := range us {
		err := repo.Upsert(user)
		require.NoError(t, err, "insert %s must not fail", user.Email)
		require.NotEqual(t, 0, user.ID, "id must be set by insert")
		ids[i] = user.ID
	}

	// Test that all the ids are different
	sort.Ints(ids)
	for i := 0; i < len(ids)-1; i++ {
		require.NotEqual(t, ids[i], ids[i+1], "all ids must be different")
	}
}

func testGetUser(t *testing.T, repo users.UserRepository, id int, expected users.User, name string) {
	user, err := repo.Get(id)
	if assert.NoError(t, err, "%s - getting user should not fail", name) {
		assert.Equal(t, expected, user, name)
	}
}

func testGetUserByProviderID(t *testing.T, repo users.UserRepository, providerID string, expected users.User, name string) {
	user, err := repo.GetByProviderID(providerID)
	if assert.NoError(t, err, "%s - getting user by provider id should not fail", name) {
		assert.Equal(t, expected, user, name)
	}
}

func testGetUserByCredentialHash(t *testing.T, repo users.UserRepository, hash string, expected users.User, name string) {
	user, err := repo.GetByCredentialHash(hash)
	if assert.NoError(t, err, "%s - getting user by credential hash should not fail", name) {
		assert.Equal(t, expected, user, name)
	}
}
