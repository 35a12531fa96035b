package node

import (
	"os"
	"testing"

	"github.com/dialogs/dialog-node-lib/config"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {

	os.Setenv("TEST_NODE_ADDRESS", "0.0.0.0")
	os.Setenv("TEST_NODE_PORT", "9000")
	os.Setenv("TEST_NODE_POOL_SIZE", "8")

	cfg, err := NewConfig(config.New("test_node", true))
	require.NoError(t, err)
	require.Equal(t,
		Config{
			Address:  "0.0.0.0",
			Port:     9000,
			PoolSize: 8,
		},
		cfg)
	require.NoError(t, cfg.Check())
	require.Equal(t, "0.0.0.0:9000", cfg.Addr())
}

func TestNewConfigInvalid(t *testing.T) {

	os.Setenv("TEST_NODE_BAD_PORT", "port")

	_, err := NewConfig(config.New("test_node_bad", true))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse node config")
}
