package session

import (
	"context"
	"time"

	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sessionDocument is the stored shape of a session.
type sessionDocument struct {
	ID        string              `bson:"_id"`
	UserID    string              `bson:"userId,omitempty"`
	Flashes   map[string][]string `bson:"flashes,omitempty"`
	ReturnTo  string              `bson:"returnTo,omitempty"`
	ExpiresAt time.Time           `bson:"expiresAt"`
	TouchedAt time.Time           `bson:"touchedAt"`
}

// mongoStore keeps sessions in a collection with a TTL index on expiresAt.
type mongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoStore creates a session store on top of a collection.
func NewMongoStore(collection *mongo.Collection) repository.SessionStore {
	return &mongoStore{
		collection: collection,
		now:        time.Now,
	}
}

// EnsureIndexes creates the TTL index that lets the server drop expired sessions.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})

	return errors.Wrap(err, "create sessions TTL index")
}

// Get loads a live session.
func (s *mongoStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	filter := bson.M{
		"_id":       id,
		"expiresAt": bson.M{"$gt": s.now()},
	}

	var doc sessionDocument
	if err := s.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "mongo find session")
	}

	return fromDocument(&doc)
}

// Save upserts the session document.
func (s *mongoStore) Save(ctx context.Context, session *entity.Session) error {
	doc := toDocument(session)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(err, "mongo save session")
	}

	return nil
}

// Delete removes the session.
func (s *mongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(err, "mongo delete session")
	}

	return nil
}

func toDocument(sess *entity.Session) *sessionDocument {
	doc := &sessionDocument{
		ID:        sess.ID,
		Flashes:   sess.Flashes,
		ReturnTo:  sess.ReturnTo,
		ExpiresAt: sess.ExpiresAt.UTC(),
		TouchedAt: sess.TouchedAt.UTC(),
	}
	if sess.UserID != nil {
		doc.UserID = sess.UserID.String()
	}

	return doc
}

func fromDocument(doc *sessionDocument) (*entity.Session, error) {
	sess := &entity.Session{
		ID:        doc.ID,
		Flashes:   doc.Flashes,
		ReturnTo:  doc.ReturnTo,
		ExpiresAt: doc.ExpiresAt,
		TouchedAt: doc.TouchedAt,
	}
	if sess.Flashes == nil {
		sess.Flashes = map[string][]string{}
	}
	if doc.UserID != "" {
		userID, err := uuid.Parse(doc.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid session user id")
		}
		sess.UserID = &userID
	}

	return sess, nil
}
