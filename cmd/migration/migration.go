package main

import (
	"context"
	"time"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/drivers/database"
	"trekora-service/internal/app/drivers/logger"
	"trekora-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, log, db.Collection(constvars.MongoCollectionAvailabilityRanges), []mongo.IndexModel{
		{
			// Upsert identity for availability spans.
			Keys: bson.D{
				{Key: "guideId", Value: 1},
				{Key: "startDate", Value: 1},
				{Key: "endDate", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			// Overlap queries filter on guideId plus date bounds.
			Keys: bson.D{
				{Key: "guideId", Value: 1},
				{Key: "endDate", Value: 1},
			},
		},
	})

	createIndexes(ctx, log, db.Collection(constvars.MongoCollectionGuides), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, log, db.Collection(constvars.MongoCollectionUsers), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, log, db.Collection(constvars.MongoCollectionTrails), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "region", Value: 1}},
		},
	})

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}

	log.Println("Migration finished")
}

func createIndexes(ctx context.Context, log *logrus.Logger, collection *mongo.Collection, indexes []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Error creating indexes on %s: %v", collection.Name(), err)
	}
	log.Printf("Created indexes on %s: %v", collection.Name(), names)
}
