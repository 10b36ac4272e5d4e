package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mbodj/frigo/internal/domain/models"
)

const (
	collectionName = "inventory"

	// documentID is the fixed key the whole item collection lives under,
	// unchanged from the legacy single-record layout.
	documentID = "fridge_items"
)

// Repository defines the interface for item collection storage.
type Repository interface {
	LoadItems(ctx context.Context) ([]models.Item, error)
	SaveItems(ctx context.Context, items []models.Item) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// fridgeDocument is the persisted shape: one document holding the full item
// sequence in insertion order.
type fridgeDocument struct {
	ID    string        `bson:"_id"`
	Items []models.Item `bson:"items"`
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: collectionName,
	}, nil
}

// LoadItems reads the persisted collection. A missing document means nothing
// was ever saved and yields an empty sequence, not an error.
func (r *MongoDBRepository) LoadItems(ctx context.Context) ([]models.Item, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	var doc fridgeDocument
	err := collection.FindOne(ctx, bson.M{"_id": documentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fridge document: %w", err)
	}

	return doc.Items, nil
}

// SaveItems replaces the persisted collection with the provided sequence.
func (r *MongoDBRepository) SaveItems(ctx context.Context, items []models.Item) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	doc := fridgeDocument{ID: documentID, Items: items}
	opts := options.Replace().SetUpsert(true)

	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": documentID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save fridge document: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
