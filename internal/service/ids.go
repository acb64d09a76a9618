package service

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const trackingPrefix = "PF-"

type IDGenerator interface {
	OrderID() string
	TrackingID() string
	Reference() string
}

type uuidGenerator struct {
	namespace string
}

// NewIDGenerator returns a generator whose provider references start with namespace.
func NewIDGenerator(namespace string) *uuidGenerator {
	return &uuidGenerator{namespace: namespace}
}

func (g *uuidGenerator) OrderID() string {
	return uuid.NewString()
}

func (g *uuidGenerator) TrackingID() string {
	return trackingPrefix + token(10)
}

func (g *uuidGenerator) Reference() string {
	return g.namespace + token(12)
}

// token returns n upper-case hex characters from the random part of a v4 UUID.
func token(n int) string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))[:n]
}
