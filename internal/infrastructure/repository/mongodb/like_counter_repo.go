package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// likeCounterDocumentID is the _id of the single counter document.
const likeCounterDocumentID = "likes"

// LikeCounterRepository represents the MongoDB implementation of ILikeCounterRepository.
type LikeCounterRepository struct {
	collection *mongo.Collection
}

var _ contract.ILikeCounterRepository = (*LikeCounterRepository)(nil)

// NewLikeCounterRepository creates and returns a new LikeCounterRepository instance.
func NewLikeCounterRepository(db *mongo.Database, collection string) *LikeCounterRepository {
	if collection == "" {
		collection = "likes"
	}
	return &LikeCounterRepository{
		collection: db.Collection(collection),
	}
}

type likeCounterDocument struct {
	ID         string `bson:"_id"`
	TotalLikes int64  `bson:"totalLikes"`
}

// EnsureInitialized inserts the counter document with totalLikes 0 unless it exists.
func (r *LikeCounterRepository) EnsureInitialized(ctx context.Context) error {
	filter := bson.M{"_id": likeCounterDocumentID}
	update := bson.M{"$setOnInsert": bson.M{"totalLikes": int64(0)}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to initialize like counter: %w", err)
	}
	return nil
}

// GetTotalLikes reads the counter document, creating it if it has gone missing.
func (r *LikeCounterRepository) GetTotalLikes(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": likeCounterDocumentID}

	res := r.collection.FindOne(ctx, filter)
	if errors.Is(res.Err(), mongo.ErrNoDocuments) {
		if err := r.EnsureInitialized(ctx); err != nil {
			return 0, err
		}
		res = r.collection.FindOne(ctx, filter)
	}
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("failed to read like counter: %w", err)
	}
	return decodeCounter(res)
}

// IncrementTotalLikes atomically adds one with $inc and returns the updated total.
// The filter only matches a numeric, non-negative total. Any other existing
// document makes the upsert collide on _id, and nothing is written.
func (r *LikeCounterRepository) IncrementTotalLikes(ctx context.Context) (int64, error) {
	filter := bson.M{
		"_id":        likeCounterDocumentID,
		"totalLikes": bson.M{"$gte": 0},
	}
	update := bson.M{"$inc": bson.M{"totalLikes": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	res := r.collection.FindOneAndUpdate(ctx, filter, update, opts)
	if err := res.Err(); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("%w: counter document rejected the increment", entity.ErrMalformedState)
		}
		return 0, fmt.Errorf("failed to increment like counter: %w", err)
	}
	return decodeCounter(res)
}

func decodeCounter(res *mongo.SingleResult) (int64, error) {
	var doc likeCounterDocument
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("%w: %v", entity.ErrMalformedState, err)
	}
	counter := entity.LikeCounter{TotalLikes: doc.TotalLikes}
	if err := counter.Validate(); err != nil {
		return 0, err
	}
	return counter.TotalLikes, nil
}
