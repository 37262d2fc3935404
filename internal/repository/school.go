package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/shenikar/school_locator/internal/service"
)

// DB - подмножество методов *pgxpool.Pool, которое использует репозиторий
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schoolColumns = `id, name, address, latitude, longitude, created_at, updated_at`

type SchoolRepository struct {
	db DB
}

func NewSchoolRepository(db DB) service.SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// Create создает новую запись о школе в бд
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		school.Name,
		school.Address,
		school.Latitude,
		school.Longitude,
	).Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	return nil
}

// GetByID возвращает школу по её UUID
func (r *SchoolRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE id = $1;`

	school, err := scanSchool(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("school with id %s: %w", id, service.ErrSchoolNotFound)
		}
		return nil, fmt.Errorf("failed to get school by id: %w", err)
	}
	return school, nil
}

// FindByLocation ищет школу, координаты которой отличаются меньше чем на tolerance градусов
func (r *SchoolRepository) FindByLocation(ctx context.Context, lat, lng, tolerance float64) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools
		WHERE ABS(latitude - $1) < $3 AND ABS(longitude - $2) < $3
		LIMIT 1;`

	school, err := scanSchool(r.db.QueryRow(ctx, query, lat, lng, tolerance))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find school by location: %w", err)
	}
	return school, nil
}

// ListAll возвращает все школы. Порядок не важен, сортировку по расстоянию делает geo.Rank
func (r *SchoolRepository) ListAll(ctx context.Context) ([]*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return collectSchools(rows)
}

// ListWithinBox возвращает школы, попадающие в прямоугольник box
func (r *SchoolRepository) ListWithinBox(ctx context.Context, box geo.Box) ([]*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools
		WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4;`

	rows, err := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools within box: %w", err)
	}
	return collectSchools(rows)
}

// Count возвращает общее количество школ
func (r *SchoolRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM schools;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count schools: %w", err)
	}
	return count, nil
}

// SaveSearch сохраняет запись о поиске ближайших школ
func (r *SchoolRepository) SaveSearch(ctx context.Context, search *models.SchoolSearch) error {
	query := `
		INSERT INTO school_searches (latitude, longitude, radius_km, result_count)
		VALUES ($1, $2, $3, $4) RETURNING id, searched_at;
	`
	err := r.db.QueryRow(ctx, query,
		search.Latitude,
		search.Longitude,
		search.RadiusKm,
		search.ResultCount,
	).Scan(&search.ID, &search.SearchedAt)
	if err != nil {
		return fmt.Errorf("failed to save school search: %w", err)
	}
	return nil
}

// CountSearches возвращает количество поисков за последние minutes минут
func (r *SchoolRepository) CountSearches(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM school_searches
		WHERE searched_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count school searches: %w", err)
	}
	return count, nil
}

func scanSchool(row pgx.Row) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(
		&school.ID,
		&school.Name,
		&school.Address,
		&school.Latitude,
		&school.Longitude,
		&school.CreatedAt,
		&school.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

func collectSchools(rows pgx.Rows) ([]*models.School, error) {
	defer rows.Close()

	schools := make([]*models.School, 0)
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan school row: %w", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return schools, nil
}
