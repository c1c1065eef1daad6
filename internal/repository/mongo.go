package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/authflow/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDatabase              = "authflow"
	mongoPreferencesCollection = "preferences"
)

type mongoPreferenceRepository struct {
	client *mongo.Client
}

func NewMongoPreferenceRepository(client *mongo.Client) PreferenceRepository {
	return &mongoPreferenceRepository{client: client}
}

func (r *mongoPreferenceRepository) Find(ctx context.Context, profile string) (*model.Preference, error) {
	var p model.Preference
	if err := r.collection().FindOne(ctx, bson.M{"_id": profile}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoPreferenceRepository) Save(ctx context.Context, p *model.Preference) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection().ReplaceOne(ctx, bson.M{"_id": p.Profile}, p, opts); err != nil {
		return err
	}
	return nil
}

func (r *mongoPreferenceRepository) Delete(ctx context.Context, profile string) error {
	if _, err := r.collection().DeleteOne(ctx, bson.M{"_id": profile}); err != nil {
		return err
	}
	return nil
}

func (r *mongoPreferenceRepository) collection() *mongo.Collection {
	return r.client.Database(mongoDatabase).Collection(mongoPreferencesCollection)
}
