package bolt

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/dowlandaiello/notedly/boards/testutil"
)

func createDriver(t *testing.T) (*Driver, func()) {
	tmpFile, err := ioutil.TempFile("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	return driver, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestPermissionRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	testutil.TestPermissionRepository(t, NewPermissionRepository(driver))
}

func TestNoteRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	testutil.TestNoteRepository(t, NewNoteRepository(driver))
}

func TestBoardRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()

	testutil.TestBoardRepository(
		t,
		NewBoardRepository(driver),
		NewNoteRepository(driver),
		NewPermissionRepository(driver),
	)
}
