package ports

// PasswordHasher abstracts the password hashing scheme so the service layer
// never depends on a concrete algorithm.
type PasswordHasher interface {
	Hash(senha string) (string, error)
	Compare(hash, senha string) error
}
