package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
)

// RequestIDGenerator issues the IDs carried in X-Request-ID.
//
// IDs are random v4 UUIDs. If the random source fails, it falls back to a
// time-based v1 UUID, and to the nil UUID as a last resort, so a request
// always gets an ID.
type RequestIDGenerator struct {
	random func() (uuid.UUID, error)
}

var _ contract.IUUIDGenerator = (*RequestIDGenerator)(nil)

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{random: uuid.NewRandom}
}

func (g *RequestIDGenerator) NewUUID() string {
	if id, err := g.random(); err == nil {
		return id.String()
	}
	if id, err := uuid.NewUUID(); err == nil {
		return id.String()
	}
	return uuid.Nil.String()
}
