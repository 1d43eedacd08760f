// Package circl provides a pure-Go stand-in for liboqs built on
// github.com/cloudflare/circl. It covers the lattice schemes circl
// implements; every other algorithm reports disabled.
//
// The provider copies circl's freshly allocated outputs into the caller's
// buffers and wipes the intermediate secret copies.
package circl

import (
	"fmt"
	"runtime/debug"

	"github.com/cloudflare/circl/kem"
	kemschemes "github.com/cloudflare/circl/kem/schemes"
	"github.com/cloudflare/circl/sign"
	signschemes "github.com/cloudflare/circl/sign/schemes"

	"github.com/hsiuhsiu/oqs-safe-go/internal/backend"
)

// Name is the registry name of this provider.
const Name = "circl"

// liboqs name -> circl scheme name.
var (
	kemNames = map[string]string{
		"Kyber512":           "Kyber512",
		"Kyber768":           "Kyber768",
		"Kyber1024":          "Kyber1024",
		"ML-KEM-512":         "ML-KEM-512",
		"ML-KEM-768":         "ML-KEM-768",
		"ML-KEM-1024":        "ML-KEM-1024",
		"FrodoKEM-640-SHAKE": "FrodoKEM-640-SHAKE",
	}
	sigNames = map[string]string{
		"ML-DSA-44": "ML-DSA-44",
		"ML-DSA-65": "ML-DSA-65",
		"ML-DSA-87": "ML-DSA-87",
	}
)

func init() {
	backend.Register(Provider{})
}

// Provider implements backend.Provider.
type Provider struct{}

var _ backend.Provider = Provider{}

func (Provider) Name() string { return Name }

// Version reports the circl module version linked into the binary.
func (Provider) Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "circl"
	}
	for _, dep := range info.Deps {
		if dep.Path == "github.com/cloudflare/circl" {
			if dep.Replace != nil {
				return "circl " + dep.Replace.Version
			}
			return "circl " + dep.Version
		}
	}
	return "circl"
}

func (Provider) KEMEnabled(alg string) bool { return kemScheme(alg) != nil }

func (Provider) SigEnabled(alg string) bool { return sigScheme(alg) != nil }

func (Provider) NewKEM(alg string) (backend.KEMMethod, error) {
	s := kemScheme(alg)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", backend.ErrDisabled, alg)
	}
	return &kemMethod{scheme: s}, nil
}

func (Provider) NewSig(alg string) (backend.SigMethod, error) {
	s := sigScheme(alg)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", backend.ErrDisabled, alg)
	}
	return &sigMethod{scheme: s}, nil
}

func kemScheme(alg string) kem.Scheme {
	name, ok := kemNames[alg]
	if !ok {
		return nil
	}
	return kemschemes.ByName(name)
}

func sigScheme(alg string) sign.Scheme {
	name, ok := sigNames[alg]
	if !ok {
		return nil
	}
	return signschemes.ByName(name)
}
