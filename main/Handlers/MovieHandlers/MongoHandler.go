package MovieHandlers

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoHandler struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoHandler(mongoHost string) (*MongoHandler, error) {
	// Connect to MongoDB
	clientOptions := options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:27017", mongoHost))
	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, err
	}

	// Set up collection
	collection := client.Database("cc-cache").Collection("titles")

	// Create and return MongoHandler instance
	handler := &MongoHandler{
		client:     client,
		collection: collection,
	}
	return handler, nil
}

func (m *MongoHandler) FetchFromCache(tmdbId int, mediaType string) (MovieDetails, error) {
	filter := bson.M{"id": tmdbId, "mediatype": mediaType}
	result := m.collection.FindOne(context.Background(), filter)
	if err := result.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return MovieDetails{}, nil // Document not found in cache
		}
		return MovieDetails{}, err // Error occurred while fetching from cache
	}

	var details MovieDetails
	if err := result.Decode(&details); err != nil {
		return MovieDetails{}, err // Error decoding cache value
	}

	return details, nil
}

func (m *MongoHandler) SaveInCache(details MovieDetails) {
	// Check if this title is already cached
	filter := bson.M{"id": details.Id, "mediatype": details.MediaType}
	existing := m.collection.FindOne(context.Background(), filter)
	if existing.Err() == nil {
		// Already cached, skip saving
		return
	}

	if _, err := m.collection.InsertOne(context.Background(), details); err != nil {
		log.Println("Failed to save cache:", err)
	}
}
