package replay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kasuganosora/pkmnsim/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no archived battle has the requested id.
var ErrNotFound = errors.New("replay not found")

const (
	queueSize     = 1024
	batchSize     = 100
	flushInterval = 2 * time.Second
)

// Service archives finished battles asynchronously in batches and reads
// them back for verification.
type Service struct {
	db       *gorm.DB
	ch       chan *model.BattleRecord
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *zap.Logger
}

// New creates a new archive Service and starts its background worker.
func New(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &Service{
		db:     db,
		ch:     make(chan *model.BattleRecord, queueSize),
		stopCh: make(chan struct{}),
		logger: logger,
	}
	svc.wg.Add(1)
	go svc.worker()
	return svc
}

// Archive enqueues a finished battle for an async DB write. It reports
// false if the log could not be encoded or the queue is full.
func (svc *Service) Archive(l *Log) bool {
	rec, err := l.ToRecord()
	if err != nil {
		svc.logger.Error("replay encode failed", zap.String("battle", l.BattleID), zap.Error(err))
		return false
	}
	select {
	case <-svc.stopCh:
		svc.logger.Warn("replay archive stopped, dropping battle", zap.String("battle", l.BattleID))
		return false
	default:
	}
	select {
	case svc.ch <- rec:
		return true
	default:
		svc.logger.Warn("replay queue full, dropping battle",
			zap.String("battle", l.BattleID))
		return false
	}
}

// Stop flushes remaining records and shuts down the worker.
// It blocks until the worker goroutine has finished.
func (svc *Service) Stop(_ context.Context) {
	svc.stopOnce.Do(func() { close(svc.stopCh) })
	svc.wg.Wait()
}

func (svc *Service) worker() {
	defer svc.wg.Done()
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]*model.BattleRecord, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := svc.db.Create(&batch).Error; err != nil {
			svc.logger.Error("replay batch write failed", zap.Int("battles", len(batch)), zap.Error(err))
		} else {
			svc.logger.Debug("replays archived", zap.Int("battles", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case rec := <-svc.ch:
			batch = append(batch, rec)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-svc.stopCh:
			for {
				select {
				case rec := <-svc.ch:
					batch = append(batch, rec)
					if len(batch) >= batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

// Get loads an archived battle.
func (svc *Service) Get(ctx context.Context, battleID string) (*Log, error) {
	var rec model.BattleRecord
	err := svc.db.WithContext(ctx).Where("battle_id = ?", battleID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", battleID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return FromRecord(&rec)
}

// Recent returns the ids of the n most recently archived battles, newest
// first.
func (svc *Service) Recent(ctx context.Context, n int) ([]string, error) {
	var ids []string
	err := svc.db.WithContext(ctx).Model(&model.BattleRecord{}).
		Order("id DESC").Limit(n).Pluck("battle_id", &ids).Error
	return ids, err
}

// Tally counts archived battles by outcome.
func (svc *Service) Tally(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Outcome string
		N       int64
	}
	err := svc.db.WithContext(ctx).Model(&model.BattleRecord{}).
		Select("outcome, COUNT(*) AS n").Group("outcome").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Outcome] = r.N
	}
	return out, nil
}

// Verify replays an archived battle and marks it verified if it reproduces
// its recorded result.
func (svc *Service) Verify(ctx context.Context, battleID string) error {
	l, err := svc.Get(ctx, battleID)
	if err != nil {
		return err
	}
	if err := l.Verify(); err != nil {
		svc.logger.Warn("replay verification failed", zap.String("battle", battleID), zap.Error(err))
		return err
	}
	return svc.db.WithContext(ctx).Model(&model.BattleRecord{}).
		Where("battle_id = ?", battleID).Update("verified", true).Error
}

// VerifyAll verifies up to limit unverified battles, oldest first, and
// returns how many passed. The first failure stops the run.
func (svc *Service) VerifyAll(ctx context.Context, limit int) (int, error) {
	var ids []string
	err := svc.db.WithContext(ctx).Model(&model.BattleRecord{}).
		Where("verified = ?", false).Order("id").Limit(limit).Pluck("battle_id", &ids).Error
	if err != nil {
		return 0, err
	}
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := svc.Verify(ctx, id); err != nil {
			return i, err
		}
	}
	return len(ids), nil
}
