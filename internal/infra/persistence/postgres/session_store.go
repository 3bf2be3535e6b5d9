package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"
	"kampina/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionStore keeps sessions in the 'sessions' table.
type sessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionStore creates a GORM backed session store.
func NewSessionStore(db *gorm.DB) repository.SessionStore {
	return &sessionStore{db: db, now: time.Now}
}

// Get loads a live session.
func (s *sessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	var m model.SessionModel
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, s.now().UTC()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	sess := &entity.Session{}
	if err := json.Unmarshal(m.Data, sess); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}
	sess.ID = m.ID

	return sess, nil
}

// Save upserts the session.
func (s *sessionStore) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	m := &model.SessionModel{
		ID:        session.ID,
		Data:      datatypes.JSON(data),
		ExpiresAt: session.ExpiresAt.UTC(),
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Delete removes the session.
func (s *sessionStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// PurgeExpired removes sessions past their expiry and reports how many were removed.
func (s *sessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", s.now().UTC()).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge sessions")
	}

	return result.RowsAffected, nil
}

// RunPurger calls PurgeExpired every interval until ctx is done.
func (s *sessionStore) RunPurger(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Session purge failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				logger.DebugContext(ctx, "Expired sessions purged", slog.Int64("count", n))
			}
		}
	}
}
