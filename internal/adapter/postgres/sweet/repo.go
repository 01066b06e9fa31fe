// Package sweet implements the catalog repository using PostgreSQL and squirrel.
package sweet

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sweetshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

const table = "sweets"

var columns = []string{"id", "name", "category", "price", "quantity", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides sweet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sweet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a sweet and returns the stored row.
func (r *Repo) Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	query := psql.Insert(table).
		Columns("name", "category", "price", "quantity").
		Values(s.Name, s.Category, s.Price, s.Quantity).
		Suffix("RETURNING " + returning())

	created, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "sweet", s.Name)
	}
	return created, nil
}

// GetByID returns a sweet by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Sweet, error) {
	s, err := r.queryOne(ctx, selectSweets().Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "sweet", id)
	}
	return s, nil
}

// GetByIDForUpdate returns a sweet and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Sweet, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("sweet %d: row lock requested outside a transaction", id)
	}

	s, err := r.queryOne(ctx, selectSweets().Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
	if err != nil {
		return nil, postgres.MapError(err, "sweet", id)
	}
	return s, nil
}

// GetByName returns a sweet by exact name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Sweet, error) {
	s, err := r.queryOne(ctx, selectSweets().Where(sq.Eq{"name": name}))
	if err != nil {
		return nil, postgres.MapError(err, "sweet", name)
	}
	return s, nil
}

// List returns a page of sweets ordered by id.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.Sweet, error) {
	query := selectSweets().
		OrderBy("id ASC").
		Offset(uint64(page.Offset)).
		Limit(uint64(page.Limit))

	return r.queryMany(ctx, query)
}

// Search returns every sweet matching all set criteria of f, ordered by id.
func (r *Repo) Search(ctx context.Context, f domain.SweetFilter) ([]domain.Sweet, error) {
	query := selectSweets().OrderBy("id ASC")
	if !f.IsEmpty() {
		query = query.Where(filterConditions(f))
	}

	return r.queryMany(ctx, query)
}

// Update replaces name, category, price and quantity of an existing sweet.
func (r *Repo) Update(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	query := psql.Update(table).
		Set("name", s.Name).
		Set("category", s.Category).
		Set("price", s.Price).
		Set("quantity", s.Quantity).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING " + returning())

	updated, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "sweet", s.ID)
	}
	return updated, nil
}

// UpdateQuantity sets the stock of a sweet.
func (r *Repo) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.Sweet, error) {
	query := psql.Update(table).
		Set("quantity", quantity).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning())

	updated, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "sweet", id)
	}
	return updated, nil
}

// Delete removes a sweet. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "sweet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sweet %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectSweets() sq.SelectBuilder {
	return psql.Select(columns...).From(table)
}

func returning() string {
	return strings.Join(columns, ", ")
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer) (*domain.Sweet, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return scanSweet(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
}

func (r *Repo) queryMany(ctx context.Context, query sq.Sqlizer) ([]domain.Sweet, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "sweet", "list")
	}
	defer rows.Close()

	result := make([]domain.Sweet, 0)
	for rows.Next() {
		s, err := scanSweet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "sweet", "list")
	}

	return result, nil
}

func scanSweet(row pgx.Row) (*domain.Sweet, error) {
	var s domain.Sweet
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
