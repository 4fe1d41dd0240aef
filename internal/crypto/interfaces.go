package crypto

import "github.com/MKhiriev/go-master-password/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/algorithm_mock.go -package=mock

// Algorithm is the Master Password derivation pipeline. It stores nothing
// and performs no I/O; every call is a pure function of its arguments.
//
// Data flows strictly in this order:
//
//	key      = DeriveMasterKey(userName, masterPassword)   (expensive, scrypt)
//	seed     = DeriveTemplateSeed(key, siteName, counter)  (HMAC-SHA256)
//	password = RenderPassword(seed, passwordType)          (template lookup)
//
// Callers own the returned secrets and should Wipe them once done.
type Algorithm interface {
	// DeriveMasterKey stretches the master password into a 64-byte key,
	// salted with the user name. This is the only CPU- and memory-heavy step.
	DeriveMasterKey(userName, masterPassword string) (*MasterKey, error)

	// DeriveTemplateSeed computes the 32-byte seed for one site and counter.
	DeriveTemplateSeed(masterKey *MasterKey, siteName string, counter uint32) (*Seed, error)

	// RenderPassword turns a seed into a printable password of the given type.
	RenderPassword(seed *Seed, passwordType models.PasswordType) (string, error)
}
