package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/credsvc/internal/config"
)

func TestNewContainer_BootstrapsRootAdmin(t *testing.T) {
	cfg := &config.Config{
		DSN:               filepath.Join(t.TempDir(), "users.db"),
		SessionMaxAgeDays: 30,
		TokenTTLSeconds:   3600,
		RootAdminEmail:    "root",
		RootAdminPassword: "root",
	}
	ctx := context.Background()

	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NotZero(t, c.RootAdminID)

	cred, err := c.Users.GetByEmail(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, c.RootAdminID, cred.ID)
	assert.True(t, cred.IsAdmin)

	// A second container over the same database reuses the account.
	c2, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer c2.Close()
	assert.Equal(t, c.RootAdminID, c2.RootAdminID)
}

func TestContainer_SessionRoundTrip(t *testing.T) {
	cfg := &config.Config{
		DSN:               filepath.Join(t.TempDir(), "users.db"),
		RootAdminEmail:    "root",
		RootAdminPassword: "root",
	}
	ctx := context.Background()

	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer c.Close()

	token, err := c.Sessions.Create(ctx, c.RootAdminID, 30)
	require.NoError(t, err)

	user, err := c.Sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, c.RootAdminID, user.ID)

	require.NoError(t, c.Sessions.Delete(ctx, token))
	_, err = c.Sessions.Resolve(ctx, token)
	assert.Error(t, err)
}
