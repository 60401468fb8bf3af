package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hirelens/internal/question"
)

// Seeds the question bank into Mongo so ops can inspect and extend it
// without a rebuild. The server itself serves questions from memory.
func main() {
	mongoURI := os.Getenv("HIRELENS_MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("HIRELENS_MONGO_DB")
	if dbName == "" {
		dbName = "hirelens"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	coll := client.Database(dbName).Collection("questions")

	bank := question.NewBank()
	seeded := 0
	for _, q := range bank.All() {
		opts := options.Replace().SetUpsert(true)
		if _, err := coll.ReplaceOne(ctx, bson.M{"_id": q.ID}, q, opts); err != nil {
			log.Fatalf("Failed to seed question %d: %v", q.ID, err)
		}
		seeded++
	}

	log.Printf("Seeded %d questions into %s.questions", seeded, dbName)
}
