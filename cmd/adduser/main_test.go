package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetnatin/internal/services"
	"budgetnatin/internal/testutil"
)

func openTestService(t *testing.T) openFunc {
	t.Helper()
	db := testutil.OpenTestDB(t, fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	svc := services.NewUserService(db)
	return func() (services.UserServicer, func(), error) {
		return svc, func() {}, nil
	}
}

func TestRun_Success(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret"}
	err := run(args, stdin, stdout, stderr, openTestService(t))
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User testuser created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	open := openTestService(t)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret"}
	require.NoError(t, run(args, stdin, stdout, stderr, open), "first run should succeed")

	err := run(args, stdin, stdout, stderr, open)
	require.Error(t, err, "expected error on duplicate user")
	assert.Contains(t, err.Error(), "already exists")
}

func TestRun_MissingFlags(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := new(bytes.Buffer)

	opened := false
	open := func() (services.UserServicer, func(), error) {
		opened = true
		return nil, func() {}, nil
	}

	err := run([]string{"-password", "secret"}, stdin, stdout, stderr, open)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags")
	assert.Contains(t, stdout.String(), "Usage:")
	assert.False(t, opened, "database should not be opened on usage errors")
}

func TestRun_InteractivePassword(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := bytes.NewBufferString("interactive_secret\n")

	args := []string{"-user", "interactive_user", "-email", "interactive@example.com"}
	err := run(args, stdin, stdout, stderr, openTestService(t))
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "Password: ")
	assert.Contains(t, output, "User interactive_user created successfully")
}

func TestRun_EmptyPassword(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	stdin := bytes.NewBufferString("   \n")

	args := []string{"-user", "blank", "-email", "blank@example.com"}
	err := run(args, stdin, stdout, stderr, openTestService(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}
