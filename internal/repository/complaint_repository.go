package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/samadhan-service/internal/domain"
)

// ErrAlreadyUpvoted is returned when an identity attempts a repeat upvote.
var ErrAlreadyUpvoted = errors.New("identity already upvoted complaint")

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error)
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	ListByCategory(ctx context.Context, category domain.ComplaintCategory) ([]domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) error
	// Upvote atomically appends identity to upvoted_by and increments the
	// counter in one conditional statement, so concurrent upvotes on the
	// same complaint serialize at the storage layer. Returns the new count
	// on success, pgx.ErrNoRows when the complaint does not exist and
	// ErrAlreadyUpvoted on repeats.
	Upvote(ctx context.Context, id, identity string) (int, error)
	// AllocateDepartment sets assigned_department and forces status to
	// in_progress regardless of the prior status.
	AllocateDepartment(ctx context.Context, id, department string) error
	Delete(ctx context.Context, id string) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, title, description, category, priority, status, owner_id,
       lat, lng, address, upvotes, upvoted_by, assigned_department,
       estimated_years_min, estimated_years_max, estimated_resolution_from, estimated_resolution_to,
       created_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (title, description, category, priority, status, owner_id,
            lat, lng, address, upvotes, upvoted_by, assigned_department,
            estimated_years_min, estimated_years_max, estimated_resolution_from, estimated_resolution_to,
            created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING id`

	var lat, lng *float64
	var address *string
	if complaint.Location != nil {
		lat = &complaint.Location.Lat
		lng = &complaint.Location.Lng
		if complaint.Location.Address != "" {
			address = &complaint.Location.Address
		}
	}
	upvotedBy := complaint.UpvotedBy
	if upvotedBy == nil {
		upvotedBy = []string{}
	}

	return r.pool.QueryRow(ctx, query,
		complaint.Title,
		complaint.Description,
		complaint.Category,
		complaint.Priority,
		complaint.Status,
		complaint.OwnerID,
		lat,
		lng,
		address,
		complaint.Upvotes,
		upvotedBy,
		complaint.AssignedDepartment,
		complaint.EstimatedYearsMin,
		complaint.EstimatedYearsMax,
		complaint.EstimatedResolutionFrom,
		complaint.EstimatedResolutionTo,
		complaint.CreatedAt,
	).Scan(&complaint.ID)
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanComplaintRow(row)
}

func (r *complaintRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE owner_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) ListByCategory(ctx context.Context, category domain.ComplaintCategory) ([]domain.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE category=$1`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) error {
	const query = `UPDATE complaints SET status=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) Upvote(ctx context.Context, id, identity string) (int, error) {
	const query = `
        UPDATE complaints
        SET upvoted_by = array_append(upvoted_by, $2), upvotes = upvotes + 1
        WHERE id=$1 AND NOT ($2 = ANY(upvoted_by))
        RETURNING upvotes`

	var upvotes int
	err := r.pool.QueryRow(ctx, query, id, identity).Scan(&upvotes)
	if err == nil {
		return upvotes, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	// Zero rows means either a missing complaint or a repeat upvote.
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM complaints WHERE id=$1)`, id).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, pgx.ErrNoRows
	}
	return 0, ErrAlreadyUpvoted
}

func (r *complaintRepository) AllocateDepartment(ctx context.Context, id, department string) error {
	const query = `UPDATE complaints SET assigned_department=$1, status=$2 WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, department, domain.ComplaintStatusInProgress, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM complaints WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaintRow(row rowScanner) (*domain.Complaint, error) {
	var complaint domain.Complaint
	var lat, lng *float64
	var address *string

	if err := row.Scan(
		&complaint.ID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Category,
		&complaint.Priority,
		&complaint.Status,
		&complaint.OwnerID,
		&lat,
		&lng,
		&address,
		&complaint.Upvotes,
		&complaint.UpvotedBy,
		&complaint.AssignedDepartment,
		&complaint.EstimatedYearsMin,
		&complaint.EstimatedYearsMax,
		&complaint.EstimatedResolutionFrom,
		&complaint.EstimatedResolutionTo,
		&complaint.CreatedAt,
	); err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		loc := &domain.Location{Lat: *lat, Lng: *lng}
		if address != nil {
			loc.Address = *address
		}
		complaint.Location = loc
	}
	return &complaint, nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		complaint, err := scanComplaintRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *complaint)
	}
	return result, rows.Err()
}
