package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lehari1/citypulse/database"
	"github.com/Lehari1/citypulse/models"
)

// ErrNotFound is returned when no report matches the given id,
// including malformed ids that can never match.
var ErrNotFound = errors.New("report not found")

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	City string // case-insensitive substring of location.address
	User string // exact owner id
}

// Patch carries the editable fields of an update. Empty fields are
// left untouched; clearing a field to empty is not expressible.
type Patch struct {
	Title       string
	Description string
	Category    string
	Urgency     string
}

// Apply writes the non-empty fields of p onto r. updateSet must follow
// the same policy.
func (p Patch) Apply(r *models.Report) {
	if p.Title != "" {
		r.Title = p.Title
	}
	if p.Description != "" {
		r.Description = p.Description
	}
	if p.Category != "" {
		r.Category = p.Category
	}
	if p.Urgency != "" {
		r.Urgency = p.Urgency
	}
}

// Reports persists report documents in the "reports" collection.
type Reports struct {
	col *mongo.Collection
}

func NewReports() *Reports {
	return &Reports{col: database.Col("reports")}
}

// Insert persists r and returns it with its assigned id.
func (s *Reports) Insert(ctx context.Context, r *models.Report) (*models.Report, error) {
	res, err := s.col.InsertOne(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return r, nil
}

// List returns every report matching f, in store order. An empty match
// is an empty slice, not an error.
func (s *Reports) List(ctx context.Context, f Filter) ([]models.Report, error) {
	cur, err := s.col.Find(ctx, listFilter(f))
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	reports := []models.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

func (s *Reports) Get(ctx context.Context, id string) (*models.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var r models.Report
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &r, nil
}

// Update applies the non-empty fields of p and returns the updated report.
func (s *Reports) Update(ctx context.Context, id string, p Patch) (*models.Report, error) {
	set := updateSet(p)
	if len(set) == 0 {
		return s.Get(ctx, id)
	}
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

// Resolve sets the status to resolved unconditionally; resolving an
// already-resolved report is a no-op.
func (s *Reports) Resolve(ctx context.Context, id string) (*models.Report, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"status": models.StatusResolved}})
}

// ToggleUpvote flips userID's membership in upvotedBy and re-derives the
// upvotes counter, all in one atomic document update, and returns the
// post-update report. Concurrent toggles cannot desynchronize the counter
// from the set.
func (s *Reports) ToggleUpvote(ctx context.Context, id, userID string) (*models.Report, error) {
	return s.findOneAndUpdate(ctx, id, togglePipeline(userID))
}

func (s *Reports) findOneAndUpdate(ctx context.Context, id string, update interface{}) (*models.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.Report
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	return &r, nil
}

// --- document builders ---

func listFilter(f Filter) bson.M {
	filter := bson.M{}
	if f.City != "" {
		filter["location.address"] = bson.M{"$regex": f.City, "$options": "i"}
	}
	if f.User != "" {
		filter["user"] = f.User
	}
	return filter
}

func updateSet(p Patch) bson.M {
	set := bson.M{}
	if p.Title != "" {
		set["title"] = p.Title
	}
	if p.Description != "" {
		set["description"] = p.Description
	}
	if p.Category != "" {
		set["category"] = p.Category
	}
	if p.Urgency != "" {
		set["urgency"] = p.Urgency
	}
	return set
}

// togglePipeline builds an aggregation-pipeline update that removes userID
// from upvotedBy when present and appends it when absent, then recomputes
// upvotes as the size of the resulting set. Two stages so the second sees
// the rewritten array.
func togglePipeline(userID string) mongo.Pipeline {
	upvoters := bson.M{"$ifNull": bson.A{"$upvotedBy", bson.A{}}}
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"upvotedBy": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, upvoters}},
				bson.M{"$setDifference": bson.A{upvoters, bson.A{userID}}},
				bson.M{"$concatArrays": bson.A{upvoters, bson.A{userID}}},
			}},
		}}},
		{{Key: "$set", Value: bson.M{
			"upvotes": bson.M{"$size": bson.M{"$ifNull": bson.A{"$upvotedBy", bson.A{}}}},
		}}},
	}
}
