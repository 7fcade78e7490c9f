package checkout

import (
	"os"
	"path/filepath"
	"testing"

	"taste-heaven/internal/localstore"
	"taste-heaven/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	session := NewSession(store)

	user, err := session.Current()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, session.SignIn(model.UserProfile{Name: "Alice", Email: "a@x.com"}))
	user, err = session.Current()
	require.NoError(t, err)
	assert.Equal(t, &model.UserProfile{Name: "Alice", Email: "a@x.com"}, user)

	// a second handle on the same directory sees the session
	again, err := localstore.Open(filepath.Dir(store.Path()))
	require.NoError(t, err)
	user, err = NewSession(again).Current()
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NoError(t, session.SignOut())
	user, err = session.Current()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSession_UnreadableProfile(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"restaurant_user":"not an object"}`), 0o600))

	user, err := NewSession(store).Current()

	require.NoError(t, err)
	assert.Nil(t, user)
}
