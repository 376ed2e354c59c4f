package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hostbot/internal/domain"
	"hostbot/internal/domain/entities"
	"hostbot/internal/ports/output"
)

var _ output.HostingRequestRepository = (*HostingRequestRepository)(nil)

// HostingRequestRepository implements output.HostingRequestRepository (and
// therefore the request ledger) with pgx. Event and host are read through the
// referenced hosting.
type HostingRequestRepository struct {
	db *pgxpool.Pool
}

func NewHostingRequestRepository(db *pgxpool.Pool) *HostingRequestRepository {
	return &HostingRequestRepository{db: db}
}

const requestSelect = `SELECT r.id, r.hosting_id, h.event_id, h.host_id, r.requester_id, r.requester_name,
		r.status, r.message, r.host_message, r.created_at, r.updated_at
	FROM hosting_requests r
	JOIN hostings h ON h.id = r.hosting_id`

func scanRequest(row pgx.Row) (entities.HostingRequest, error) {
	var (
		req                     entities.HostingRequest
		id, hostingID, eventID int64
		status                  string
	)
	err := row.Scan(&id, &hostingID, &eventID, &req.HostID, &req.RequesterID, &req.Requester,
		&status, &req.Message, &req.HostMessage, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return entities.HostingRequest{}, err
	}
	st, err := domain.ParseRequestStatus(status)
	if err != nil {
		return entities.HostingRequest{}, err
	}
	req.ID = uint(id)
	req.HostingID = uint(hostingID)
	req.EventID = uint(eventID)
	req.Status = st
	return req, nil
}

func (r *HostingRequestRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.HostingRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateErr(op, err, nil)
	}
	defer rows.Close()

	out := make([]entities.HostingRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hosting request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(op, err, nil)
	}
	return out, nil
}

// ListMine returns every request of requesterID, newest first.
func (r *HostingRequestRepository) ListMine(ctx context.Context, requesterID string) ([]entities.HostingRequest, error) {
	return r.list(ctx, "list my requests",
		requestSelect+` WHERE r.requester_id = $1 ORDER BY r.created_at DESC, r.id DESC`,
		requesterID,
	)
}

// FindByHostID returns the requests made on hostings of hostID, newest first.
func (r *HostingRequestRepository) FindByHostID(ctx context.Context, hostID string) ([]entities.HostingRequest, error) {
	return r.list(ctx, "list received requests",
		requestSelect+` WHERE h.host_id = $1 ORDER BY r.created_at DESC, r.id DESC`,
		hostID,
	)
}

func (r *HostingRequestRepository) FindByID(ctx context.Context, id uint) (*entities.HostingRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, int64(id)))
	if err != nil {
		return nil, translateErr("get hosting request by id", err, domain.ErrRequestNotFound)
	}
	return &req, nil
}

func (r *HostingRequestRepository) AcceptedHostingIDs(ctx context.Context, requesterID string, eventID uint) ([]uint, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT r.hosting_id
		 FROM hosting_requests r
		 JOIN hostings h ON h.id = r.hosting_id
		 WHERE r.requester_id = $1 AND h.event_id = $2 AND r.status = $3
		 ORDER BY r.hosting_id`,
		requesterID, int64(eventID), string(domain.StatusAccepted),
	)
	if err != nil {
		return nil, translateErr("list accepted hosting ids", err, nil)
	}
	defer rows.Close()

	var ids []uint
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan hosting id: %w", err)
		}
		ids = append(ids, uint(id))
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("list accepted hosting ids", err, nil)
	}
	return ids, nil
}

// Create inserts a PENDING request. The hosting row is locked with
// SELECT … FOR UPDATE so that two concurrent submissions for the same hosting
// run the guards one after the other.
func (r *HostingRequestRepository) Create(ctx context.Context, req *entities.HostingRequest) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translateErr("begin transaction", err, nil)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var eventID int64
	var hostID string
	err = tx.QueryRow(ctx,
		`SELECT event_id, host_id FROM hostings WHERE id = $1 AND is_active FOR UPDATE`,
		int64(req.HostingID),
	).Scan(&eventID, &hostID)
	if err != nil {
		return translateErr("lock hosting", err, domain.ErrHostingNotFound)
	}
	if hostID == req.RequesterID {
		return domain.ErrOwnHosting
	}

	var acceptedForEvent, activeOnHosting bool
	err = tx.QueryRow(ctx,
		`SELECT
			EXISTS (SELECT 1 FROM hosting_requests r JOIN hostings h ON h.id = r.hosting_id
			        WHERE r.requester_id = $1 AND h.event_id = $2 AND r.status = 'ACCEPTED'),
			EXISTS (SELECT 1 FROM hosting_requests r
			        WHERE r.requester_id = $1 AND r.hosting_id = $3 AND r.status NOT IN ('CANCELLED', 'REJECTED'))`,
		req.RequesterID, eventID, int64(req.HostingID),
	).Scan(&acceptedForEvent, &activeOnHosting)
	if err != nil {
		return translateErr("check existing requests", err, nil)
	}
	if acceptedForEvent {
		return domain.ErrAcceptedForEvent
	}
	if activeOnHosting {
		return domain.ErrActiveRequestExists
	}

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO hosting_requests (hosting_id, requester_id, requester_name, status, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		int64(req.HostingID), req.RequesterID, req.Requester, string(domain.StatusPending), req.Message,
	).Scan(&id, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return translateErr("insert hosting request", err, nil)
	}

	if err = tx.Commit(ctx); err != nil {
		return translateErr("commit transaction", err, nil)
	}
	req.ID = uint(id)
	req.EventID = uint(eventID)
	req.HostID = hostID
	req.Status = domain.StatusPending
	return nil
}

// UpdateStatus is a compare-and-set on the status column. Accepting goes
// through accept.
func (r *HostingRequestRepository) UpdateStatus(ctx context.Context, req *entities.HostingRequest, from domain.RequestStatus) error {
	if req.Status == domain.StatusAccepted {
		return r.accept(ctx, req, from)
	}
	return r.compareAndSet(ctx, r.db, req, from)
}

// accept locks the event and hosting rows so that accepts of one event run
// one after the other, then checks the requester is not accepted elsewhere
// for the event and the hosting still has a free bed.
func (r *HostingRequestRepository) accept(ctx context.Context, req *entities.HostingRequest, from domain.RequestStatus) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translateErr("begin transaction", err, nil)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var eventID int64
	var beds int
	err = tx.QueryRow(ctx,
		`SELECT h.event_id, h.available_beds
		 FROM hostings h JOIN events e ON e.id = h.event_id
		 WHERE h.id = $1
		 FOR UPDATE`,
		int64(req.HostingID),
	).Scan(&eventID, &beds)
	if err != nil {
		return translateErr("lock hosting", err, domain.ErrHostingNotFound)
	}

	var acceptedForEvent bool
	var acceptedGuests int64
	err = tx.QueryRow(ctx,
		`SELECT
			EXISTS (SELECT 1 FROM hosting_requests r JOIN hostings h ON h.id = r.hosting_id
			        WHERE r.requester_id = $1 AND h.event_id = $2 AND r.status = 'ACCEPTED' AND r.id <> $4),
			(SELECT COUNT(*) FROM hosting_requests WHERE hosting_id = $3 AND status = 'ACCEPTED')`,
		req.RequesterID, eventID, int64(req.HostingID), int64(req.ID),
	).Scan(&acceptedForEvent, &acceptedGuests)
	if err != nil {
		return translateErr("check accepted requests", err, nil)
	}
	if acceptedForEvent {
		return domain.ErrAcceptedForEvent
	}
	if acceptedGuests >= int64(beds) {
		return domain.ErrNoPlacesAvailable
	}

	if err = r.compareAndSet(ctx, tx, req, from); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return translateErr("commit transaction", err, nil)
	}
	return nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *HostingRequestRepository) compareAndSet(ctx context.Context, q queryRower, req *entities.HostingRequest, from domain.RequestStatus) error {
	err := q.QueryRow(ctx,
		`UPDATE hosting_requests
		 SET status = $2, host_message = $3, updated_at = NOW()
		 WHERE id = $1 AND status = $4
		 RETURNING updated_at`,
		int64(req.ID), string(req.Status), req.HostMessage, string(from),
	).Scan(&req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, findErr := r.FindByID(ctx, req.ID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("request %d is no longer %s: %w", req.ID, from, domain.ErrInvalidTransition)
	}
	return translateErr("update hosting request status", err, nil)
}

func (r *HostingRequestRepository) CountByHostingIDAndStatus(ctx context.Context, hostingID uint, status domain.RequestStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM hosting_requests WHERE hosting_id = $1 AND status = $2`,
		int64(hostingID), string(status),
	).Scan(&count)
	if err != nil {
		return 0, translateErr("count hosting requests", err, nil)
	}
	return count, nil
}
