package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/healthsync/internal/storage"
	"github.com/jackc/pgx/v5"
)

// ErrNoMetricData is returned when a submission carries no field
// classifiable into any metric kind.
var ErrNoMetricData = errors.New("no classifiable metric data in payload")

// SyncPayload is the bulk sync request body sent by the mobile and
// desktop clients: user identity plus a batch of loose measurement
// records.
type SyncPayload struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	DeviceID string           `json:"device_id"`
	Records  []map[string]any `json:"records"`
}

// StepError reports which sync step failed, so a client knows whether to
// retry user creation or just the records.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Provider classifies incoming payloads and persists the fan-out.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// NewProvider creates a new sync ingest provider.
func NewProvider(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Sync processes a bulk sync payload: get-or-create the owning user,
// then classify and persist every record. All sub-records from the whole
// batch are written in one transaction, so a failure never leaves a
// partially-applied submission behind.
func (p *Provider) Sync(ctx context.Context, payload *SyncPayload) (*Result, error) {
	if payload.Email == "" {
		return nil, &StepError{Step: "user", Err: fmt.Errorf("email is required")}
	}

	result := &Result{}

	user, err := storage.GetOrCreateUser(ctx, p.db.Pool, payload.Email, payload.Name, payload.Phone)
	if err != nil {
		return nil, &StepError{Step: "user", Err: err}
	}
	result.UserID = user.ID

	err = p.db.WithTx(ctx, func(tx pgx.Tx) error {
		for _, raw := range payload.Records {
			result.RecordsReceived++

			sub := Resolve(raw, payload.DeviceID, time.Now())
			recs := Classify(sub, user.ID)
			if recs.Empty() {
				result.RecordsSkipped++
				continue
			}
			if err := p.persist(ctx, tx, recs, result); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &StepError{Step: "records", Err: err}
	}

	if result.RecordsSkipped > 0 {
		result.Message = fmt.Sprintf("%d record(s) carried no classifiable metric data and were skipped", result.RecordsSkipped)
	}

	p.log.Info("sync complete",
		"user_id", user.ID,
		"received", result.RecordsReceived,
		"skipped", result.RecordsSkipped,
		"created", len(result.Created),
	)
	return result, nil
}

// IngestOne processes a single submission for an existing user (the web
// PWA add-record path). The fan-out is transactional like Sync.
func (p *Provider) IngestOne(ctx context.Context, userID int, raw map[string]any, origin string) (*Result, error) {
	result := &Result{UserID: userID, RecordsReceived: 1}

	sub := Resolve(raw, origin, time.Now())
	recs := Classify(sub, userID)
	if recs.Empty() {
		return nil, &StepError{Step: "records", Err: ErrNoMetricData}
	}

	err := p.db.WithTx(ctx, func(tx pgx.Tx) error {
		return p.persist(ctx, tx, recs, result)
	})
	if err != nil {
		return nil, &StepError{Step: "records", Err: err}
	}
	return result, nil
}

func (p *Provider) persist(ctx context.Context, tx pgx.Tx, recs Records, result *Result) error {
	if recs.Weight != nil {
		if err := storage.InsertWeight(ctx, tx, recs.Weight); err != nil {
			return err
		}
		result.WeightInserted++
	}
	if recs.BloodPressure != nil {
		if err := storage.InsertBloodPressure(ctx, tx, recs.BloodPressure); err != nil {
			return err
		}
		result.BloodPressureInserted++
	}
	if recs.Glucose != nil {
		if err := storage.InsertGlucose(ctx, tx, recs.Glucose); err != nil {
			return err
		}
		result.GlucoseInserted++
	}
	if recs.Food != nil {
		if err := storage.InsertFood(ctx, tx, recs.Food); err != nil {
			return err
		}
		result.FoodInserted++
	}
	if recs.Exercise != nil {
		if err := storage.InsertExercise(ctx, tx, recs.Exercise); err != nil {
			return err
		}
		result.ExerciseInserted++
	}
	result.Created = append(result.Created, recs.Created()...)
	return nil
}
