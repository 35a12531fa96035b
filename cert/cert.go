package cert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"time"

	pkgerr "github.com/pkg/errors"
)

// NewX509 returns a x509 certificate template. Hosts are split into
// ip and dns subject alternative names.
func NewX509(number *big.Int, commonName string, start, end time.Time, hosts []string) *x509.Certificate {

	c := &x509.Certificate{
		SerialNumber: number,
		Subject: pkix.Name{
			CommonName: commonName,
		},
		NotBefore: start,
		NotAfter:  end,
		ExtKeyUsage: []x509.ExtKeyUsage{
			x509.ExtKeyUsageClientAuth,
			x509.ExtKeyUsageServerAuth,
		},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		BasicConstraintsValid: true,
	}

	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			c.IPAddresses = append(c.IPAddresses, ip)
		} else {
			c.DNSNames = append(c.DNSNames, h)
		}
	}

	return c
}

// NewRSA returns private rsa key
func NewRSA(size int) (*rsa.PrivateKey, error) {

	privateKey, err := rsa.GenerateKey(rand.Reader, size)
	if err != nil {
		return nil, pkgerr.Wrap(err, "new rsa")
	}

	return privateKey, nil
}

// NewSerial returns a random certificate serial number
func NewSerial() (*big.Int, error) {

	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, pkgerr.Wrap(err, "new serial number")
	}

	return serial, nil
}

// X509ToDerBytes signs the template by parent and returns it in der format
func X509ToDerBytes(template, parent *x509.Certificate, privateKey *rsa.PrivateKey) ([]byte, error) {

	derBytes, err := x509.CreateCertificate(
		rand.Reader,
		template, parent,
		&privateKey.PublicKey, privateKey)
	if err != nil {
		return nil, pkgerr.Wrap(err, "x509 to der format")
	}

	return derBytes, nil
}

// DerToPem returns x509 certificate in pem format
func DerToPem(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: der,
	})
}

// PemToX509 returns x509 certificate from pem
func PemToX509(certPEM []byte) (*x509.Certificate, error) {

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, errors.New("pem to x509: decode pem")
	}

	c, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, pkgerr.Wrap(err, "pem to x509: parse der")
	}

	return c, nil
}

// RsaToPem converts private rsa key to pem format
func RsaToPem(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}
