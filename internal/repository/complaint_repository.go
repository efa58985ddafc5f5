package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/civiclens/report-service/internal/domain"
)

// ErrAlreadySupported signals an idempotent upvote: the user is already a
// supporter, nothing changed, the caller should report success.
var ErrAlreadySupported = errors.New("user already supports complaint")

// ErrUpvoteConflict signals the transactional upvote could not commit; the
// caller may retry.
var ErrUpvoteConflict = errors.New("upvote transaction conflict")

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) error
	ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error)
	ListFeed(ctx context.Context, status *domain.ComplaintStatus) ([]domain.Complaint, error)
	CountByStatus(ctx context.Context) (map[domain.ComplaintStatus]int, error)
	Upvote(ctx context.Context, id, userID string) (*domain.Complaint, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates the Postgres-backed repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, owner_user_id, image_url, description, category, department,
       urgency, status, lat, lng, created_at, support_count, supporters,
       analysis_reason, risk_level, risk_reason, risk_score, risk_zone_name, risk_zone_type`

func (r *complaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (owner_user_id, image_url, description, category, department,
            urgency, status, lat, lng, created_at, support_count, supporters,
            analysis_reason, risk_level, risk_reason, risk_score, risk_zone_name, risk_zone_type)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		c.OwnerID,
		c.ImageURL,
		c.Description,
		c.Category,
		c.Department,
		c.Urgency,
		c.Status,
		c.Location.Lat,
		c.Location.Lng,
		c.CreatedAt,
		c.SupportCount,
		c.Supporters,
		c.Analysis,
		c.Risk.Level,
		c.Risk.Reason,
		c.Risk.Score,
		nullable(c.Risk.ZoneName),
		nullable(string(c.Risk.ZoneType)),
	).Scan(&c.ID)
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanComplaint(row)
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE complaints SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE status=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE owner_user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

// ListFeed returns the triage priority view: most supported first, newest
// first among equals.
func (r *complaintRepository) ListFeed(ctx context.Context, status *domain.ComplaintStatus) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints`
	args := []any{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY support_count DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) CountByStatus(ctx context.Context) (map[domain.ComplaintStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM complaints GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.ComplaintStatus]int{}
	for rows.Next() {
		var status domain.ComplaintStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// Upvote appends userID to the supporter set and bumps support_count inside a
// single transaction holding a row lock, so concurrent upvotes from different
// users never lose an update. Returns ErrAlreadySupported when the user has
// already voted (the complaint is returned unchanged).
func (r *complaintRepository) Upvote(ctx context.Context, id, userID string) (*domain.Complaint, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var supportCount int
	var supporters []string
	err = tx.QueryRow(ctx,
		`SELECT support_count, supporters FROM complaints WHERE id=$1 FOR UPDATE`,
		id,
	).Scan(&supportCount, &supporters)
	if err != nil {
		return nil, err
	}

	already := false
	for _, s := range supporters {
		if s == userID {
			already = true
			break
		}
	}

	if !already {
		supporters = append(supporters, userID)
		supportCount++
		if _, err := tx.Exec(ctx,
			`UPDATE complaints SET support_count=$1, supporters=$2 WHERE id=$3`,
			supportCount, supporters, id,
		); err != nil {
			return nil, classifyTxError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classifyTxError(err)
	}

	complaint, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if already {
		return complaint, ErrAlreadySupported
	}
	return complaint, nil
}

// classifyTxError maps Postgres serialization and deadlock failures onto
// ErrUpvoteConflict so the service layer can retry.
func classifyTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return ErrUpvoteConflict
		}
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (*domain.Complaint, error) {
	var c domain.Complaint
	var zoneName, zoneType *string
	if err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.ImageURL,
		&c.Description,
		&c.Category,
		&c.Department,
		&c.Urgency,
		&c.Status,
		&c.Location.Lat,
		&c.Location.Lng,
		&c.CreatedAt,
		&c.SupportCount,
		&c.Supporters,
		&c.Analysis,
		&c.Risk.Level,
		&c.Risk.Reason,
		&c.Risk.Score,
		&zoneName,
		&zoneType,
	); err != nil {
		return nil, err
	}
	if zoneName != nil {
		c.Risk.ZoneName = *zoneName
	}
	if zoneType != nil {
		c.Risk.ZoneType = domain.ZoneType(*zoneType)
	}
	return &c, nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
