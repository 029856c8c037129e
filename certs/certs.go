// Package certs bootstraps the self-signed TLS certificate the daemon's
// gRPC/REST listener presents, adapted from the teacher's
// github.com/lightningnetwork/lnd/cert submodule: generate once, cache to
// disk, regenerate only if the cached cert's extra IPs/hosts or expiry no
// longer match what's requested.
package certs

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/lightningnetwork/lnd/cert"
)

const (
	// certValidityDuration mirrors lnd's default autogenerated cert
	// lifetime.
	certValidityDuration = 14 * 30 * 24 * time.Hour

	filePermission = 0600
)

// Config names the cert/key pair location and the hosts/IPs the
// certificate must cover.
type Config struct {
	CertPath string
	KeyPath  string
	ExtraIPs []string
	ExtraDNS []string
}

// Load returns a usable TLS certificate for the daemon's listener,
// generating and caching a new self-signed one at the configured paths if
// none exists yet or the existing one no longer covers the requested
// hosts.
func Load(cfg Config) (tls.Certificate, error) {
	if !fileExists(cfg.CertPath) || !fileExists(cfg.KeyPath) {
		if err := generate(cfg); err != nil {
			return tls.Certificate{}, err
		}
	}

	certData, _, err := cert.LoadCert(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return tls.Certificate{}, err
	}

	if !cert.IsOutdated(certData, cfg.ExtraIPs, cfg.ExtraDNS, false) {
		return certData, nil
	}
	if err := generate(cfg); err != nil {
		return tls.Certificate{}, err
	}
	certData, _, err = cert.LoadCert(cfg.CertPath, cfg.KeyPath)
	return certData, err
}

func generate(cfg Config) error {
	certBytes, keyBytes, err := cert.GenCertPair(
		"adjudicatord autogenerated cert",
		cfg.ExtraIPs,
		cfg.ExtraDNS,
		false,
		certValidityDuration,
	)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.CertPath, certBytes, filePermission); err != nil {
		return err
	}
	return os.WriteFile(cfg.KeyPath, keyBytes, filePermission)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
