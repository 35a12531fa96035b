package config

import (
	"time"

	"github.com/spf13/viper"
)

// NotFoundError is returned by the getters for a missing key
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return "not found config value: '" + e.Key + "'"
}

// GetString returns string value. Returns error if value is not set
func GetString(src *viper.Viper, key string) (string, error) {

	if src.IsSet(key) {
		return src.GetString(key), nil
	}

	return "", newError(key)
}

// GetDuration returns duration value. Returns error if value is not set
func GetDuration(src *viper.Viper, key string) (time.Duration, error) {

	if src.IsSet(key) {
		return src.GetDuration(key), nil
	}

	return 0, newError(key)
}

// GetBool returns boolean value. Returns error if value is not set
func GetBool(src *viper.Viper, key string) (bool, error) {

	if src.IsSet(key) {
		return src.GetBool(key), nil
	}

	return false, newError(key)
}

// GetInt returns integer value. Returns error if value is not set
func GetInt(src *viper.Viper, key string) (int, error) {

	if src.IsSet(key) {
		return src.GetInt(key), nil
	}

	return 0, newError(key)
}

func newError(key string) error {
	return &NotFoundError{Key: key}
}
