package cert

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"

	pkgerr "github.com/pkg/errors"
	"golang.org/x/crypto/pkcs12"
	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

// X509ToP12 converts x509 certificate to p12(pfx) format
func X509ToP12(der []byte, privateKey *rsa.PrivateKey, pass string) ([]byte, error) {

	domainCert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, pkgerr.Wrap(err, "x509 to p12: parse certificate")
	}

	pfxData, err := gopkcs12.Encode(rand.Reader, privateKey, domainCert, nil, pass)
	if err != nil {
		return nil, pkgerr.Wrap(err, "x509 to p12: encode to pfx")
	}

	return pfxData, nil
}

// P12ToTLS converts p12(pfx) to TLS certificate
func P12ToTLS(p12 []byte, password string) (*tls.Certificate, error) {

	blocks, err := pkcs12.ToPEM(p12, password)
	if err != nil {
		return nil, pkgerr.Wrap(err, "p12 to TLS: p12 to pem")
	}

	pemData := bytes.NewBuffer(nil)
	for _, b := range blocks {
		pemData.Write(pem.EncodeToMemory(b))
	}

	tlsKey, err := tls.X509KeyPair(pemData.Bytes(), pemData.Bytes())
	if err != nil {
		return nil, pkgerr.Wrap(err, "p12 to TLS: failed to create TLS certificate")
	}

	return &tlsKey, nil
}
