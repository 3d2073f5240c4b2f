package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses. Only "resolved" is reachable through the API surface;
// "in progress" is kept for forward compatibility with stored data.
const (
	StatusOpen       = "open"
	StatusInProgress = "in progress"
	StatusResolved   = "resolved"
)

// DefaultUrgency is applied when a submission omits urgency.
const DefaultUrgency = "normal"

// Categories is the closed set of accepted report categories.
var Categories = []string{
	"Crime", "Water", "Electricity", "Sanitation", "Road & Traffic",
	"Fire", "Traffic", "Pothole", "Streetlight", "Other",
}

// ValidCategory reports whether c is a recognized category.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Location is a GeoJSON Point plus a free-text address.
// Coordinates are [lng, lat], omitted entirely when unknown.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
}

// Comment is an embedded, append-only report comment.
type Comment struct {
	User      string    `bson:"user" json:"user"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Urgency     string             `bson:"urgency,omitempty" json:"urgency,omitempty"`
	Location    Location           `bson:"location" json:"location"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`

	// User is the owner's id; empty for anonymous submissions.
	User string `bson:"user,omitempty" json:"user,omitempty"`

	Status string `bson:"status" json:"status"`

	// Invariant: Upvotes == len(UpvotedBy), and the owner never appears
	// in UpvotedBy.
	Upvotes   int      `bson:"upvotes" json:"upvotes"`
	UpvotedBy []string `bson:"upvotedBy" json:"upvotedBy"`

	Comments []Comment `bson:"comments" json:"comments"`
}

// HasUpvoted reports whether userID is in the upvoter set.
func (r *Report) HasUpvoted(userID string) bool {
	for _, id := range r.UpvotedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleUpvoter flips membership of userID in the upvoter set and returns
// the new set plus whether the user is now an upvoter. The returned slice
// is never nil so it marshals as [] rather than null.
func ToggleUpvoter(set []string, userID string) ([]string, bool) {
	out := make([]string, 0, len(set)+1)
	found := false
	for _, id := range set {
		if id == userID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if found {
		return out, false
	}
	return append(out, userID), true
}
