package cert

import (
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"
	"time"

	pkgerr "github.com/pkg/errors"
)

// NewServerTLS returns a server tls config with the pem encoded key pair
func NewServerTLS(certFile, keyFile string) (*tls.Config, error) {

	c, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, pkgerr.Wrap(err, "load x509 key pair failed")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{c},
	}, nil
}

// NewServerTLSFromP12 returns a server tls config with the p12(pfx) file
func NewServerTLSFromP12(p12File, password string) (*tls.Config, error) {

	data, err := ioutil.ReadFile(p12File)
	if err != nil {
		return nil, pkgerr.Wrap(err, "load p12 failed")
	}

	c, err := P12ToTLS(data, password)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{*c},
	}, nil
}

// NewSelfSigned returns a self signed certificate for the hosts and
// the x509 form of it for a client certificate pool
func NewSelfSigned(keySize int, validFor time.Duration, hosts ...string) (*tls.Certificate, *x509.Certificate, error) {

	key, err := NewRSA(keySize)
	if err != nil {
		return nil, nil, err
	}

	serial, err := NewSerial()
	if err != nil {
		return nil, nil, err
	}

	var commonName string
	if len(hosts) > 0 {
		commonName = hosts[0]
	}

	now := time.Now()
	template := NewX509(serial, commonName, now.Add(-time.Minute), now.Add(validFor), hosts)
	template.IsCA = true
	template.KeyUsage |= x509.KeyUsageCertSign

	der, err := X509ToDerBytes(template, template, key)
	if err != nil {
		return nil, nil, err
	}

	tlsCert, err := tls.X509KeyPair(DerToPem(der), RsaToPem(key))
	if err != nil {
		return nil, nil, pkgerr.Wrap(err, "self signed: key pair")
	}

	x509Cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, nil, pkgerr.Wrap(err, "self signed: parse certificate")
	}

	return &tlsCert, x509Cert, nil
}
