package kernel

import (
	"time"

	"autoshop/internal/pkg/errs"
)

// Signature is a value object recording a single party's approval on a record.
// It generalizes the signed/signedBy/signedAt triple used wherever multi-party
// sign-off is required: parts issuance, quality checks, and the gatepass.
//
// The zero value is an unsigned slot. A signed Signature is immutable; signing
// an already-signed slot is rejected by the owning aggregate.
type Signature struct {
	signed   bool
	signedBy UUID
	signedAt time.Time
}

// NewSignature creates a signed Signature for the given signer at the given time.
// The signer must be a valid UUID and the time must not be zero.
func NewSignature(signedBy UUID, signedAt time.Time) (Signature, error) {
	if err := signedBy.Validate(); err != nil {
		return Signature{}, err
	}
	if signedAt.IsZero() {
		return Signature{}, errs.NewValueIsRequiredError("signedAt")
	}

	return Signature{
		signed:   true,
		signedBy: signedBy,
		signedAt: signedAt,
	}, nil
}

// RestoreSignature reconstructs a Signature from persistence. An unsigned slot
// round-trips as the zero value.
func RestoreSignature(signed bool, signedBy UUID, signedAt time.Time) Signature {
	if !signed {
		return Signature{}
	}
	return Signature{signed: true, signedBy: signedBy, signedAt: signedAt}
}

// IsSigned reports whether the slot holds a signature.
func (s Signature) IsSigned() bool {
	return s.signed
}

// SignedBy returns the signer's identifier. Zero UUID when unsigned.
func (s Signature) SignedBy() UUID {
	return s.signedBy
}

// SignedAt returns the signing time. Zero time when unsigned.
func (s Signature) SignedAt() time.Time {
	return s.signedAt
}
