package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"checkers/internal/testutil"
)

func TestManagePIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")

	cleanup, err := managePIDFile(path, true)
	testutil.AssertNoError(t, err)

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, strings.TrimSpace(string(data)), strconv.Itoa(os.Getpid()))

	// our own PID is alive, so a second locked instance is refused
	_, err = managePIDFile(path, true)
	if err == nil {
		t.Fatal("second locked instance should fail")
	}

	cleanup()
	_, err = os.Stat(path)
	testutil.AssertTrue(t, os.IsNotExist(err), "PID file removed on cleanup")
}

func TestStalePIDFileIsReused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")
	// PIDs above the kernel maximum never exist
	testutil.AssertNoError(t, os.WriteFile(path, []byte("99999999\n"), 0644))

	cleanup, err := managePIDFile(path, true)
	testutil.AssertNoError(t, err)
	defer cleanup()
}

func TestCorruptPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pid")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	if _, err := managePIDFile(path, true); err == nil {
		t.Fatal("corrupt PID file should be rejected")
	}
}
