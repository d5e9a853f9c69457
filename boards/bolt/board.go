package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/dowlandaiello/notedly/boards"
)

type BoardRepository struct {
	driver *Driver
}

func NewBoardRepository(driver *Driver) *BoardRepository {
	return &BoardRepository{
		driver: driver,
	}
}

func (r *BoardRepository) Get(id int) (boards.Board, error) {
	var board boards.Board
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boardBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &board)
	})
	if err != nil {
		return boards.Board{}, err
	}

	return board, nil
}

func (r *BoardRepository) ListForOwner(ownerID int) ([]boards.Board, error) {
	owned := make([]boards.Board, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(boardBucket).Cursor()

		for k, data := c.First(); k != nil; k, data = c.Next() {
			var board boards.Board
			if err := json.Unmarshal(data, &board); err != nil {
				return err
			}

			if board.OwnerID == ownerID {
				owned = append(owned, board)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return owned, nil
}

// Create writes the board and the owner's grant in one transaction.
func (r *BoardRepository) Create(board *boards.Board, grant *boards.Permission) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(boardBucket)

		if board.ID == 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			board.ID = int(id)
		}

		data, err := json.Marshal(board)
		if err != nil {
			return err
		}

		if err := bucket.Put(itob(board.ID), data); err != nil {
			return err
		}

		grant.BoardID = board.ID
		return putGrant(tx, grant)
	})
}

func (r *BoardRepository) Update(board *boards.Board) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(board)
		if err != nil {
			return err
		}

		return tx.Bucket(boardBucket).Put(itob(board.ID), data)
	})
}

// DeleteCascade removes the board, its notes and its grants in one
// transaction. Readers never observe a partial cascade.
func (r *BoardRepository) DeleteCascade(id int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(boardBucket).Delete(itob(id)); err != nil {
			return err
		}

		// Grants sit under the board prefix.
		grants := tx.Bucket(permissionBucket)
		c := grants.Cursor()
		prefix := boardPrefix(id)
		for k, _ := c.Seek(prefix); k != nil && hasPrefix(k, prefix); k, _ = c.Next() {
			if err := grants.Delete(k); err != nil {
				return err
			}
		}

		// Notes are keyed by their own id, scan for the board's.
		notes := tx.Bucket(noteBucket)
		nc := notes.Cursor()
		doomed := make([][]byte, 0)
		for k, data := nc.First(); k != nil; k, data = nc.Next() {
			var note boards.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}

			if note.BoardID == id {
				key := make([]byte, len(k))
				copy(key, k)
				doomed = append(doomed, key)
			}
		}
		for _, key := range doomed {
			if err := notes.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})
}
