package trip_models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var tripIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tripwise/trips"))

// SavedTrip is a persisted (request, itinerary) pair owned by one user.
type SavedTrip struct {
	ID          string        `json:"id" bson:"_id" firestore:"-"`
	OwnerID     string        `json:"ownerId" bson:"ownerId" firestore:"ownerId"`
	Name        string        `json:"name" bson:"name" firestore:"name"`
	Destination string        `json:"destination" bson:"destination" firestore:"destination"`
	RequestID   string        `json:"requestId,omitempty" bson:"requestId,omitempty" firestore:"requestId,omitempty"`
	Request     TripRequest   `json:"request" bson:"request" firestore:"request"`
	Itinerary   TripItinerary `json:"itinerary" bson:"itinerary" firestore:"itinerary"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// DeriveTripID maps a client request id to a stable trip id, so replaying
// the same save lands on the same record. The owner is length-prefixed so no
// two (owner, request) pairs share a name.
func DeriveTripID(ownerID, requestID string) string {
	name := fmt.Sprintf("%d:%s/%s", len(ownerID), ownerID, requestID)
	return uuid.NewSHA1(tripIDNamespace, []byte(name)).String()
}

// Clone returns a deep copy so stores never share slices with callers.
func (t SavedTrip) Clone() SavedTrip {
	out := t
	if t.Request.Interests != nil {
		out.Request.Interests = append([]string(nil), t.Request.Interests...)
	}
	out.Itinerary = t.Itinerary.clone()
	return out
}

// MatchesQuery does a case-insensitive substring match on name and destination.
func (t SavedTrip) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Destination), q)
}
