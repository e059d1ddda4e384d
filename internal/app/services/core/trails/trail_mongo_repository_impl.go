package trails

import (
	"context"
	"trekora-service/internal/app/contracts"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TrailMongoRepository struct {
	Collection *mongo.Collection
}

func NewTrailMongoRepository(db *mongo.Client, dbName string) contracts.TrailRepository {
	return &TrailMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTrails),
	}
}

func (r *TrailMongoRepository) CreateTrail(ctx context.Context, trail *models.Trail) (string, error) {
	_, err := r.Collection.InsertOne(ctx, trail)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return trail.ID, nil
}

func (r *TrailMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Trail, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var trails []models.Trail
	if err := cursor.All(ctx, &trails); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return trails, nil
}

func (r *TrailMongoRepository) FindByID(ctx context.Context, trailID string) (*models.Trail, error) {
	var trail models.Trail
	err := r.Collection.FindOne(ctx, bson.M{"_id": trailID}).Decode(&trail)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &trail, nil
}

func (r *TrailMongoRepository) UpdateTrail(ctx context.Context, trail *models.Trail) error {
	filter := bson.M{"_id": trail.ID}
	update := bson.M{"$set": bson.M{
		"name":          trail.Name,
		"region":        trail.Region,
		"distanceKm":    trail.DistanceKm,
		"elevationGain": trail.ElevationGain,
		"difficulty":    trail.Difficulty,
		"description":   trail.Description,
		"guideIds":      trail.GuideIDs,
		"updatedAt":     trail.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TrailMongoRepository) DeleteTrail(ctx context.Context, trailID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": trailID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *TrailMongoRepository) CountTrails(ctx context.Context) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}
