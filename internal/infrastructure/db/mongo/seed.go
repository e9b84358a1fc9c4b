package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
)

// Seed provisions the default settings row and the admin account. Both
// writes use $setOnInsert so re-running at every startup never overwrites
// data an operator has already changed.
func Seed(ctx context.Context, db *mongo.Database, adminEmail, adminPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	defaults := domain.DefaultSettings()
	_, err := db.Collection(collectionSettings).UpdateOne(ctx,
		bson.M{"_id": domain.SettingsID},
		bson.M{"$setOnInsert": bson.M{
			"hero_title":    defaults.HeroTitle,
			"hero_subtitle": defaults.HeroSubtitle,
			"hero_image":    defaults.HeroImage,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = db.Collection(collectionUsers).UpdateOne(ctx,
		bson.M{"email": adminEmail},
		bson.M{"$setOnInsert": bson.M{
			"_id":           "admin",
			"email":         adminEmail,
			"password_hash": string(hash),
			"role":          domain.RoleAdmin,
			"created_at":    time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
