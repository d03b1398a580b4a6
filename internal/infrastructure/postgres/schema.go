package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente. Se ejecuta en el arranque, como hacía el
// create_all del sistema anterior; no hay tooling de migraciones porque el
// esquema es estable.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	company    TEXT NOT NULL,
	role       TEXT NOT NULL CHECK (role IN ('manager', 'employee'))
);
CREATE INDEX IF NOT EXISTS idx_users_name ON users (name);
CREATE INDEX IF NOT EXISTS idx_users_company_role ON users (company, role);

CREATE TABLE IF NOT EXISTS feedbacks (
	id           BIGSERIAL PRIMARY KEY,
	member       TEXT NOT NULL,
	strengths    TEXT NOT NULL,
	improvement  TEXT NOT NULL,
	sentiment    TEXT NOT NULL,
	tags         JSONB NOT NULL DEFAULT '[]'::jsonb,
	given_by     BIGINT NOT NULL REFERENCES users (id),
	acknowledged BOOLEAN NOT NULL DEFAULT FALSE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_feedbacks_member ON feedbacks (member);
CREATE INDEX IF NOT EXISTS idx_feedbacks_given_by ON feedbacks (given_by);

CREATE TABLE IF NOT EXISTS feedback_requests (
	id          BIGSERIAL PRIMARY KEY,
	employee_id BIGINT NOT NULL REFERENCES users (id),
	manager_id  BIGINT NOT NULL REFERENCES users (id),
	status      TEXT NOT NULL DEFAULT 'pending'
);
CREATE INDEX IF NOT EXISTS idx_feedback_requests_pair ON feedback_requests (employee_id, manager_id, status);

CREATE TABLE IF NOT EXISTS activity_logs (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users (id),
	manager_id BIGINT REFERENCES users (id),
	action     TEXT NOT NULL,
	target     TEXT,
	details    JSONB,
	timestamp  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_activity_logs_manager ON activity_logs (manager_id, timestamp DESC);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
