package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes every collection relies on. The
// ip/created_at compound index backs the per-IP sliding-window count and the
// created_at index backs the newest-first stats read.
type MongoDBIndexer struct {
	Client   *mongo.Client
	Database string
}

func NewMongoDBIndexer(connectionString, database string) *MongoDBIndexer {
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		log.WithError(err).Panic("create mongo client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		log.WithError(err).Panic("connect to mongo")
	}

	return &MongoDBIndexer{
		Client:   client,
		Database: database,
	}
}

func (m *MongoDBIndexer) IndexAll() error {
	return m.IndexSurveyResponseCollection()
}

func (m *MongoDBIndexer) IndexSurveyResponseCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.Client.Database(m.Database).Collection(SurveyResponseCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				bson.E{Key: "ip", Value: 1},
				bson.E{Key: "created_at", Value: -1},
			},
		},
		{
			Keys: bson.D{
				bson.E{Key: "created_at", Value: -1},
			},
		},
	})

	return err
}
