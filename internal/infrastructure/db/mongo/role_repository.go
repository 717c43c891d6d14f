package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const roleCollection = "roles"

type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(roleCollection)}
}

func (r *MongoRoleRepository) ExistsByID(ctx context.Context, roleID int64) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": roleID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count roles by id: %w", err)
	}
	return n > 0, nil
}

// Seed inserts the built-in roles when the collection is empty.
func (r *MongoRoleRepository) Seed(ctx context.Context, roles map[int64]string) error {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if n > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(roles))
	for id, name := range roles {
		docs = append(docs, bson.M{"_id": id, "name": name})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
