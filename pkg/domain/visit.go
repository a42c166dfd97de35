package domain

import (
	"time"

	"github.com/google/uuid"
)

// VisitID uniquely identifies a recorded visit.
// It wraps uuid.UUID to provide type safety at the domain layer.
type VisitID uuid.UUID

// VisitType classifies how a visit record came into existence.
type VisitType string

const (
	// VisitTypeNormal is a visit recorded by the redirect path at request time.
	VisitTypeNormal VisitType = "NORMAL"
	// VisitTypeImported is a visit carried over from an external system during
	// an import; its date reflects the original system, not our clock.
	VisitTypeImported VisitType = "IMPORTED"
)

// Visit is a single recorded access to a short URL. Visits are owned by the
// persistence layer; the aggregate only ever reads them for counting and
// classification.
type Visit struct {
	// ID is the unique identifier of the visit.
	ID VisitID `json:"id"`
	// ShortURLID is the short URL this visit belongs to.
	ShortURLID ShortURLID `json:"shortUrlId"`

	// Date is when the visit happened.
	Date time.Time `json:"date"`
	// PotentialBot marks visits whose user agent looked like a crawler.
	PotentialBot bool `json:"potentialBot"`
	// Type classifies the visit (normal vs imported).
	Type VisitType `json:"type"`

	// RemoteAddr is the client address observed at redirect time, if any.
	RemoteAddr string `json:"-"`
	// UserAgent is the client user agent observed at redirect time, if any.
	UserAgent string `json:"userAgent,omitempty"`
	// Referer is the Referer header observed at redirect time, if any.
	Referer string `json:"referer,omitempty"`

	// OrderKey is a monotonically increasing insertion key assigned by the
	// persistence layer. It defines "most recent" for imported visits, whose
	// Date comes from the source system and may be arbitrarily old.
	OrderKey int64 `json:"-"`
}
