package node

import (
	"crypto/tls"
	"net"
	"strconv"

	"github.com/dialogs/dialog-node-lib/cert"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultPoolSize is the number of workers of the reference setup
	DefaultPoolSize = 4
	// DefaultReadBuffer is the size of the single read done by LogHandler
	DefaultReadBuffer = 1024
)

// Config of the connection listener
type Config struct {
	Address  string `mapstructure:"address"`
	Port     int    `mapstructure:"port"`
	PoolSize int    `mapstructure:"pool_size"`

	// optional tls: a pem key pair or a p12(pfx) file
	TLSCert        string `mapstructure:"tls_cert"`
	TLSKey         string `mapstructure:"tls_key"`
	TLSP12         string `mapstructure:"tls_p12"`
	TLSP12Password string `mapstructure:"tls_p12_password"`
}

// NewConfig reads the listener config from src
func NewConfig(src *viper.Viper) (conf Config, err error) {

	if err = src.Unmarshal(&conf); err != nil {
		err = errors.Wrap(err, "failed to parse node config")
	}

	return
}

// Check validates the config values. Port 0 means an ephemeral port.
func (c Config) Check() error {

	if c.Port < 0 || c.Port > 65535 {
		return errors.New("node.port: invalid value")
	}

	if c.PoolSize <= 0 {
		return errors.New("node.pool-size: invalid value")
	}

	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("node.tls-cert, node.tls-key: both must be set")
	}

	if c.TLSP12 != "" && c.TLSCert != "" {
		return errors.New("node.tls-p12: conflicts with node.tls-cert")
	}

	return nil
}

// TLS returns the server tls config or nil if tls is not configured
func (c Config) TLS() (*tls.Config, error) {

	switch {
	case c.TLSP12 != "":
		return cert.NewServerTLSFromP12(c.TLSP12, c.TLSP12Password)
	case c.TLSCert != "":
		return cert.NewServerTLS(c.TLSCert, c.TLSKey)
	}

	return nil, nil
}

// Addr returns the listen address in host:port form
func (c Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}
