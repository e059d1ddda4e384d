package guides

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

type GuideMongoRepository struct {
	Collection *mongo.Collection
}

func NewGuideMongoRepository(db *mongo.Client, dbName string) contracts.GuideRepository {
	return &GuideMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionGuides),
	}
}

func (r *GuideMongoRepository) CreateGuide(ctx context.Context, guide *models.Guide) (string, error) {
	_, err := r.Collection.InsertOne(ctx, guide)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return guide.ID, nil
}

func (r *GuideMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Guide, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var guides []models.Guide
	if err := cursor.All(ctx, &guides); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return guides, nil
}

func (r *GuideMongoRepository) FindByID(ctx context.Context, guideID string) (*models.Guide, error) {
	var guide models.Guide
	err := r.Collection.FindOne(ctx, bson.M{"_id": guideID}).Decode(&guide)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &guide, nil
}

func (r *GuideMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Guide, error) {
	var guide models.Guide
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&guide)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &guide, nil
}

func (r *GuideMongoRepository) UpdateGuide(ctx context.Context, guide *models.Guide) error {
	filter := bson.M{"_id": guide.ID}
	update := bson.M{"$set": bson.M{
		"fullname":     guide.Fullname,
		"email":        guide.Email,
		"bio":          guide.Bio,
		"region":       guide.Region,
		"languages":    guide.Languages,
		"pricePerDay":  guide.PricePerDay,
		"photoUrl":     guide.PhotoURL,
		"trailIds":     guide.TrailIDs,
		"yearsGuiding": guide.YearsGuiding,
		"updatedAt":    guide.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *GuideMongoRepository) DeleteGuide(ctx context.Context, guideID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": guideID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *GuideMongoRepository) CountGuides(ctx context.Context) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}
