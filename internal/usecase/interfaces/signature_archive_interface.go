package interfaces

import "context"

// ISignatureArchive stores the exported signature image after a successful
// signed submission and returns the object key it was archived under.
// PresignedURL turns a stored key into a temporary read URL for the decision
// trail.
type ISignatureArchive interface {
	Store(ctx context.Context, proposalID string, png []byte) (string, error)
	PresignedURL(ctx context.Context, key string) (string, error)
}
