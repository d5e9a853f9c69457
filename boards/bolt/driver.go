package bolt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"

	"github.com/boltdb/bolt"
)

var (
	boardBucket      = []byte("boards")
	noteBucket       = []byte("notes")
	permissionBucket = []byte("permissions")
)

type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			boardBucket,
			noteBucket,
			permissionBucket,
		}
		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

// itob returns an 8-byte big endian representation of v.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// grantKey keys a grant by board first so a board's grants sit under a
// common prefix.
func grantKey(boardID, userID int) []byte {
	return append(itob(boardID), itob(userID)...)
}

func boardPrefix(boardID int) []byte {
	return itob(boardID)
}

func hasPrefix(key, prefix []byte) bool {
	return bytes.HasPrefix(key, prefix)
}
