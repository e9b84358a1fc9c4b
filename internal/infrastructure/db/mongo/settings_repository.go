package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

const collectionSettings = "settings"

// SettingsRepository implements ports.SettingsRepository using MongoDB.
// The whole collection holds exactly one document under the logical id
// "default".
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

type settingsDoc struct {
	ID           string `bson:"_id"`
	HeroTitle    string `bson:"hero_title"`
	HeroSubtitle string `bson:"hero_subtitle"`
	HeroImage    string `bson:"hero_image"`
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": domain.SettingsID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &domain.SiteSettings{
		HeroTitle:    doc.HeroTitle,
		HeroSubtitle: doc.HeroSubtitle,
		HeroImage:    doc.HeroImage,
	}, nil
}

// Upsert writes the singleton row, creating it on first write.
func (r *SettingsRepository) Upsert(ctx context.Context, s *domain.SiteSettings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := settingsDoc{
		ID:           domain.SettingsID,
		HeroTitle:    s.HeroTitle,
		HeroSubtitle: s.HeroSubtitle,
		HeroImage:    s.HeroImage,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": domain.SettingsID}, doc, opts)
	return err
}
