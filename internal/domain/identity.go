package domain

// Identity describes the caller as reported by the authentication collaborator
// fronting this API. Guest identities are anonymous sessions; records they
// create or update expire after the configured guest TTL.
type Identity struct {
	// Owner is the opaque account identifier all record queries are scoped by.
	Owner string
	// Guest is true when the session is anonymous.
	Guest bool
}
