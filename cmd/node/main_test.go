package main

import (
	"os"
	"testing"

	"github.com/dialogs/dialog-node-lib/node"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {

	v, err := loadConfig(nil)
	require.NoError(t, err)

	cfg, err := node.NewConfig(v)
	require.NoError(t, err)
	require.Equal(t,
		node.Config{
			Address:  "127.0.0.1",
			Port:     8080,
			PoolSize: node.DefaultPoolSize,
		},
		cfg)

	require.Equal(t, node.DefaultReadBuffer, v.GetInt("read_buffer"))
	require.Equal(t, "127.0.0.1:8081", v.GetString("admin_address"))
	require.Equal(t, "info", v.GetString("log_level"))
}

func TestLoadConfigEnvAndFlags(t *testing.T) {

	require.NoError(t, os.Setenv("NODE_POOL_SIZE", "16"))
	require.NoError(t, os.Setenv("NODE_PORT", "9000"))
	defer func() {
		require.NoError(t, os.Unsetenv("NODE_POOL_SIZE"))
		require.NoError(t, os.Unsetenv("NODE_PORT"))
	}()

	v, err := loadConfig([]string{"--port", "7000", "--admin-address", ""})
	require.NoError(t, err)

	cfg, err := node.NewConfig(v)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.PoolSize)
	require.Equal(t, 7000, cfg.Port)
	require.Equal(t, "", v.GetString("admin_address"))
}

func TestLoadConfigUnknownFlag(t *testing.T) {

	_, err := loadConfig([]string{"--unknown"})
	require.Error(t, err)
}

func TestStartFailure(t *testing.T) {

	require.Equal(t, 1, start([]string{"--unknown"}))
	require.Equal(t, 1, start([]string{"--log-level", "loud"}))
	require.Equal(t, 1, start([]string{
		"--pool-size", "0",
		"--log-level", "fatal",
		"--admin-address", "",
	}))
}
