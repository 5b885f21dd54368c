package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/losdealla/members-api/internal/core/domain"
)

const postCollection = "posts"

// MongoPostRepository persists blog posts with their sections embedded.
type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postCollection)}
}

type mongoSection struct {
	Image    string `bson:"image,omitempty"`
	Subtitle string `bson:"subtitle,omitempty"`
	Text     string `bson:"text"`
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	CreatedAt int64              `bson:"created_at"`
	Sections  []mongoSection     `bson:"sections"`
}

func (mp *mongoPost) toDomain() *domain.Post {
	sections := make([]domain.Section, len(mp.Sections))
	for i, s := range mp.Sections {
		sections[i] = domain.Section{Image: s.Image, Subtitle: s.Subtitle, Text: s.Text}
	}
	return &domain.Post{
		ID:        mp.ID.Hex(),
		Title:     mp.Title,
		Author:    mp.Author,
		CreatedAt: unixToTime(mp.CreatedAt),
		Sections:  sections,
	}
}

func toMongoSections(sections []domain.Section) []mongoSection {
	out := make([]mongoSection, len(sections))
	for i, s := range sections {
		out[i] = mongoSection{Image: s.Image, Subtitle: s.Subtitle, Text: s.Text}
	}
	return out
}

func (r *MongoPostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, storeErr("list posts", err)
	}
	defer cur.Close(ctx)

	posts := make([]*domain.Post, 0)
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, storeErr("decode post", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list posts", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, storeErr("find post", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := mongoPost{
		Title:     post.Title,
		Author:    post.Author,
		CreatedAt: post.CreatedAt.Unix(),
		Sections:  toMongoSections(post.Sections),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, storeErr("insert post", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoPostRepository) Update(ctx context.Context, post *domain.Post) error {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return domain.ErrPostNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":    post.Title,
		"author":   post.Author,
		"sections": toMongoSections(post.Sections),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return storeErr("update post", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr("delete post", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
