package core

// TokenGenerator produces fixed-length numeric one-time codes.
type TokenGenerator interface {
	Generate(length int) (string, error)
}
