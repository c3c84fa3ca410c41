package repositories

import (
	"context"

	"github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	"github.com/Dermofet/MephiApp-sub000/internal/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityRepository gives the free-room computation a consistent view of
// rooms, lessons and the semester start.
type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

// NewAvailabilityRepository creates a new AvailabilityRepository
func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

// snapshotStore serves the three availability reads from one transaction
type snapshotStore struct {
	*RoomRepository
	*LessonRepository
	*SemesterRepository
}

// ReadSnapshot runs fn against a read-only REPEATABLE READ transaction
func (r *AvailabilityRepository) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, store availability.Store) error) error {
	return db.RunInTx(ctx, r.pool, db.SnapshotTxOptions, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, snapshotStore{
			RoomRepository:     NewRoomRepository(tx),
			LessonRepository:   NewLessonRepository(tx),
			SemesterRepository: NewSemesterRepository(tx),
		})
	})
}
