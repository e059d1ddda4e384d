package availability

import (
	"context"
	"time"
	"trekora-service/internal/app/contracts"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilityRanges),
	}
}

func (r *AvailabilityMongoRepository) UpsertRange(ctx context.Context, availabilityRange *models.AvailabilityRange) error {
	filter := bson.M{
		"guideId":   availabilityRange.GuideID,
		"startDate": availabilityRange.StartDate,
		"endDate":   availabilityRange.EndDate,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    availabilityRange.Status,
			"note":      availabilityRange.Note,
			"updatedAt": availabilityRange.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       availabilityRange.ID,
			"createdAt": availabilityRange.CreatedAt,
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

func (r *AvailabilityMongoRepository) FindOverlapping(ctx context.Context, guideID string, from, to time.Time) ([]models.AvailabilityRange, error) {
	filter := bson.M{
		"guideId":   guideID,
		"startDate": bson.M{"$lte": to},
		"endDate":   bson.M{"$gte": from},
	}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "updatedAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var ranges []models.AvailabilityRange
	if err := cursor.All(ctx, &ranges); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return ranges, nil
}

func (r *AvailabilityMongoRepository) DeleteByGuideID(ctx context.Context, guideID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"guideId": guideID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
