// Package publish pushes computed free-room snapshots to external consumers.
package publish

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// FreeRoomsRoot is the database node under which snapshots are stored, one child per date
const FreeRoomsRoot = "free_rooms"

// Slot is one free interval of a room
type Slot struct {
	Room      string `json:"room"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

// FreeRoomsSnapshot is the document written for one date
type FreeRoomsSnapshot struct {
	Date       string            `json:"date"`
	TimeStart  string            `json:"time_start"`
	TimeEnd    string            `json:"time_end"`
	Corps      map[string][]Slot `json:"corps"`
	LastUpdate string            `json:"last_update"`
}

// Publisher stores a snapshot and returns the path it was written to
type Publisher interface {
	PublishFreeRooms(ctx context.Context, snapshot FreeRoomsSnapshot) (string, error)
}

// setter is the part of the realtime database client the publisher needs
type setter interface {
	Set(ctx context.Context, path string, v interface{}) error
}

type rtdbSetter struct {
	client *db.Client
}

func (s rtdbSetter) Set(ctx context.Context, path string, v interface{}) error {
	return s.client.NewRef(path).Set(ctx, v)
}

// FirebasePublisher writes snapshots to a Firebase Realtime Database
type FirebasePublisher struct {
	db     setter
	logger zerolog.Logger
}

// NewFirebasePublisher connects to the realtime database with a service account file
func NewFirebasePublisher(ctx context.Context, credentialsFile, databaseURL string, logger zerolog.Logger) (*FirebasePublisher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase database: %w", err)
	}

	return &FirebasePublisher{db: rtdbSetter{client: client}, logger: logger}, nil
}

// PublishFreeRooms replaces the snapshot of snapshot.Date
func (p *FirebasePublisher) PublishFreeRooms(ctx context.Context, snapshot FreeRoomsSnapshot) (string, error) {
	doc := snapshot
	doc.Corps = make(map[string][]Slot, len(snapshot.Corps))
	for corps, slots := range snapshot.Corps {
		doc.Corps[Key(corps)] = slots
	}

	path := FreeRoomsRoot + "/" + Key(snapshot.Date)
	if err := p.db.Set(ctx, path, doc); err != nil {
		return "", fmt.Errorf("failed to save free rooms to %s: %w", path, err)
	}
	if err := p.db.Set(ctx, FreeRoomsRoot+"/last_update", snapshot.LastUpdate); err != nil {
		return "", fmt.Errorf("failed to save last update: %w", err)
	}

	p.logger.Info().Str("path", path).Int("corps", len(doc.Corps)).Msg("Free rooms published to Firebase")
	return path, nil
}

// Disabled is used when no publishing backend is configured
type Disabled struct{}

// PublishFreeRooms always fails with apperrors.ErrServiceUnavailable
func (Disabled) PublishFreeRooms(context.Context, FreeRoomsSnapshot) (string, error) {
	return "", apperrors.NewCustomError(apperrors.ErrServiceUnavailable, "free room publishing is disabled")
}

var keyReplacer = strings.NewReplacer(".", "_", "$", "_", "#", "_", "[", "_", "]", "_", "/", "_")

// Key makes s usable as a realtime database key
func Key(s string) string {
	s = keyReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return "_"
	}
	return s
}
