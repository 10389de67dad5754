package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "embed"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"mediconnect-bot/pkg"
)

//go:embed schema.sql
var schemaSQL string

// PostgresStore persists to Postgres.  Profiles are stored as JSONB and
// upserted by patient key.
type PostgresStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewPostgresStore opens a connection, verifies it and applies the embedded
// schema.
func NewPostgresStore(ctx context.Context, databaseURL string, log zerolog.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &PostgresStore{db: db, log: log}, nil
}

// NewPostgresStoreFromDB wraps an existing connection without touching the
// schema.  Used by tests.
func NewPostgresStoreFromDB(db *sql.DB, log zerolog.Logger) *PostgresStore {
	return &PostgresStore{db: db, log: log}
}

func (s *PostgresStore) SaveProfile(ctx context.Context, sessionID string, p *pkg.PatientProfile) (string, error) {
	key := PatientKey(sessionID, p)
	payload, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO patients (patient_key, profile, last_session_id)
         VALUES ($1, $2, $3)
         ON CONFLICT (patient_key)
         DO UPDATE SET profile = EXCLUDED.profile,
                       last_session_id = EXCLUDED.last_session_id,
                       updated_at = NOW()`,
		key, payload, sessionID,
	)
	if err != nil {
		return "", fmt.Errorf("upsert profile %s: %w", key, err)
	}
	return key, nil
}

func (s *PostgresStore) SaveDoctorAssignment(ctx context.Context, sessionID string, p *pkg.PatientProfile, d pkg.Doctor) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO doctor_assignments (patient_key, session_id, doctor_id, doctor_name)
         VALUES ($1, $2, $3, $4)`,
		PatientKey(sessionID, p), sessionID, d.ID, d.Name,
	)
	if err != nil {
		return fmt.Errorf("insert doctor assignment: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendMessage(ctx context.Context, sessionID string, m pkg.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, created_at)
         VALUES ($1, $2, $3, $4)`,
		sessionID, string(m.Role), m.Content, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	return s.db.Close()
}
