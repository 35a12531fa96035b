package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetString(t *testing.T) {

	// create environment
	os.Setenv("TEST_STRING_KEY1", "val1")
	os.Setenv("TEST_STRING_KEY2", "")

	v := New("test_string", true)

	{
		val, err := GetString(v, "key1")
		require.NoError(t, err)
		require.Equal(t, "val1", val)
	}

	{
		val, err := GetString(v, "key2")
		require.NoError(t, err)
		require.Equal(t, "", val)
	}

	{
		val, err := GetString(v, "key3")
		require.EqualError(t, err, "not found config value: 'key3'")
		require.Equal(t, "", val)
		require.Equal(t, &NotFoundError{Key: "key3"}, err)
	}
}

func TestGetDuration(t *testing.T) {

	// create environment
	os.Setenv("TEST_DURATION_KEY1", "1s")

	v := New("test_duration", true)

	{
		val, err := GetDuration(v, "key1")
		require.NoError(t, err)
		require.Equal(t, time.Second, val)
	}

	{
		val, err := GetDuration(v, "key2")
		require.EqualError(t, err, "not found config value: 'key2'")
		require.Equal(t, time.Duration(0), val)
	}
}

func TestGetBool(t *testing.T) {

	// create environment
	os.Setenv("TEST_BOOL_KEY1", "1")
	os.Setenv("TEST_BOOL_KEY2", "false")

	v := New("test_bool", true)

	{
		val, err := GetBool(v, "key1")
		require.NoError(t, err)
		require.True(t, val)
	}

	{
		val, err := GetBool(v, "key2")
		require.NoError(t, err)
		require.False(t, val)
	}

	{
		val, err := GetBool(v, "key3")
		require.EqualError(t, err, "not found config value: 'key3'")
		require.False(t, val)
	}
}

func TestGetInt(t *testing.T) {

	// create environment
	os.Setenv("TEST_INT_KEY1", "4")

	v := New("test_int", true)

	{
		val, err := GetInt(v, "key1")
		require.NoError(t, err)
		require.Equal(t, 4, val)
	}

	{
		val, err := GetInt(v, "key2")
		require.EqualError(t, err, "not found config value: 'key2'")
		require.Equal(t, 0, val)
	}
}
