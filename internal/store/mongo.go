package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mediconnect-bot/pkg"
)

const (
	patientsCollection    = "patients"
	assignmentsCollection = "doctor_assignments"
	messagesCollection    = "messages"
)

// MongoStore persists to a MongoDB database.  Profiles are upserted by
// patient key; assignments and messages are append-only.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string, log zerolog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		db:     client.Database(database),
		log:    log,
	}, nil
}

func (s *MongoStore) SaveProfile(ctx context.Context, sessionID string, p *pkg.PatientProfile) (string, error) {
	key := PatientKey(sessionID, p)
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"profile":         p,
			"last_session_id": sessionID,
			"updated_at":      now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	_, err := s.db.Collection(patientsCollection).UpdateOne(
		ctx,
		bson.M{"_id": key},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", fmt.Errorf("upsert profile %s: %w", key, err)
	}
	return key, nil
}

func (s *MongoStore) SaveDoctorAssignment(ctx context.Context, sessionID string, p *pkg.PatientProfile, d pkg.Doctor) error {
	doc := bson.M{
		"patient_key": PatientKey(sessionID, p),
		"session_id":  sessionID,
		"doctor":      d,
		"assigned_at": time.Now().UTC(),
	}
	if _, err := s.db.Collection(assignmentsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert doctor assignment: %w", err)
	}
	return nil
}

func (s *MongoStore) AppendMessage(ctx context.Context, sessionID string, m pkg.Message) error {
	doc := bson.M{
		"session_id": sessionID,
		"role":       m.Role,
		"content":    m.Content,
		"created_at": m.CreatedAt,
	}
	if _, err := s.db.Collection(messagesCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
