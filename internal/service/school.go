package service

//go:generate mockgen -source=school.go -destination=mocks/mock_school.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shenikar/school_locator/internal/config"
	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/shenikar/school_locator/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDuplicateLocation - школа с такими координатами (в пределах допуска) уже существует
	ErrDuplicateLocation = errors.New("a school already exists at this location")
	// ErrSchoolNotFound - школа не найдена
	ErrSchoolNotFound = errors.New("school not found")
	// ErrCorruptLocation - в бд хранится школа с недопустимыми координатами
	ErrCorruptLocation = errors.New("stored school has invalid location")
)

// SchoolNamePattern - допустимые символы названия школы
var SchoolNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-.,'()&]+$`)

// validateSchoolText проверяет название и адрес так же, как HTTP слой
func validateSchoolText(name, address string) error {
	if n := utf8.RuneCountInString(name); n < 2 || n > 255 {
		return fmt.Errorf("%w: name must be between 2 and 255 characters", geo.ErrInvalidArgument)
	}
	if !SchoolNamePattern.MatchString(name) {
		return fmt.Errorf("%w: name contains invalid characters", geo.ErrInvalidArgument)
	}
	if n := utf8.RuneCountInString(address); n < 5 || n > 500 {
		return fmt.Errorf("%w: address must be between 5 and 500 characters", geo.ErrInvalidArgument)
	}
	return nil
}

// SchoolRepository определяет контракт для работы с бд школ
type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.School, error)
	FindByLocation(ctx context.Context, lat, lng, tolerance float64) (*models.School, error)
	ListAll(ctx context.Context) ([]*models.School, error)
	ListWithinBox(ctx context.Context, box geo.Box) ([]*models.School, error)
	Count(ctx context.Context) (int, error)
	SaveSearch(ctx context.Context, search *models.SchoolSearch) error
	CountSearches(ctx context.Context, minutes int) (int, error)
}

// SchoolService определяет контракт для бизнес-логики работы со школами
type SchoolService interface {
	AddSchool(ctx context.Context, school *models.School) error
	ListSchoolsByDistance(ctx context.Context, reference models.GeoPoint, radiusKm float64) ([]models.RankedSchool, error)
	GetSchool(ctx context.Context, id uuid.UUID) (*models.School, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type schoolService struct {
	repo      SchoolRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
}

func NewSchoolService(repo SchoolRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) SchoolService {
	return &schoolService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// AddSchool проверяет координаты и уникальность местоположения, затем сохраняет школу
func (s *schoolService) AddSchool(ctx context.Context, school *models.School) error {
	school.Name = strings.TrimSpace(school.Name)
	school.Address = strings.TrimSpace(school.Address)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "school",
		"method":    "AddSchool",
		"name":      school.Name,
		"latitude":  school.Latitude,
		"longitude": school.Longitude,
	})
	log.Info("Attempting to add a new school")

	if err := validateSchoolText(school.Name, school.Address); err != nil {
		log.WithError(err).Warn("Rejected school with invalid name or address")
		return fmt.Errorf("service: %w", err)
	}
	if err := geo.ValidatePoint(school.Location()); err != nil {
		log.WithError(err).Warn("Rejected school with invalid coordinates")
		return fmt.Errorf("service: %w", err)
	}

	existing, err := s.repo.FindByLocation(ctx, school.Latitude, school.Longitude, s.cfg.DuplicateTolerance)
	if err != nil {
		log.WithError(err).Error("Failed to check school location in repository")
		return fmt.Errorf("service: could not check school location: %w", err)
	}
	if existing != nil {
		log.WithField("existing_id", existing.ID).Warn("School already exists at this location")
		return fmt.Errorf("service: %w (id %s)", ErrDuplicateLocation, existing.ID)
	}

	if err := s.repo.Create(ctx, school); err != nil {
		log.WithError(err).Error("Failed to create school in repository")
		return fmt.Errorf("service: could not create school: %w", err)
	}
	log = log.WithField("school_id", school.ID)
	log.Info("School created successfully")

	event := webhook.WebhookEvent{
		Type:      webhook.EventSchoolCreated,
		School:    school,
		Timestamp: time.Now().UTC(),
	}
	// Ошибка публикации не отменяет создание школы
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish school created event")
	}
	return nil
}

// ListSchoolsByDistance возвращает школы, отсортированные по расстоянию от reference.
// При radiusKm > 0 выборка из бд ограничивается прямоугольником вокруг точки,
// а в ответ попадают только школы не дальше radiusKm.
func (s *schoolService) ListSchoolsByDistance(ctx context.Context, reference models.GeoPoint, radiusKm float64) ([]models.RankedSchool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "school",
		"method":    "ListSchoolsByDistance",
		"latitude":  reference.Latitude,
		"longitude": reference.Longitude,
		"radius_km": radiusKm,
	})
	log.Info("Listing schools by distance")

	if err := geo.ValidatePoint(reference); err != nil {
		log.WithError(err).Warn("Invalid reference point")
		return nil, fmt.Errorf("service: %w", err)
	}
	if radiusKm < 0 {
		return nil, fmt.Errorf("service: %w: radius must not be negative", geo.ErrInvalidArgument)
	}

	var (
		schools []*models.School
		err     error
	)
	if radiusKm > 0 {
		schools, err = s.repo.ListWithinBox(ctx, geo.BoundingBox(reference, radiusKm))
	} else {
		schools, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list schools from repository")
		return nil, fmt.Errorf("service: could not list schools: %w", err)
	}

	// Точка запроса уже проверена, ошибка ранжирования означает испорченную запись в бд
	ranked, err := geo.Rank(reference, schools)
	if err != nil {
		log.WithError(err).Error("Failed to rank schools")
		return nil, fmt.Errorf("service: could not rank schools: %w: %v", ErrCorruptLocation, err)
	}
	if radiusKm > 0 {
		ranked = geo.WithinRadius(ranked, radiusKm)
	}

	search := &models.SchoolSearch{
		Latitude:    reference.Latitude,
		Longitude:   reference.Longitude,
		RadiusKm:    radiusKm,
		ResultCount: len(ranked),
	}
	if err := s.repo.SaveSearch(ctx, search); err != nil {
		log.WithError(err).Warn("Failed to save school search")
	}

	log.WithField("count", len(ranked)).Info("Schools listed successfully")
	return ranked, nil
}

// GetSchool получает школу по ID
func (s *schoolService) GetSchool(ctx context.Context, id uuid.UUID) (*models.School, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "school",
		"method":    "GetSchool",
		"school_id": id,
	})
	log.Info("Fetching school by ID")

	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get school from repository")
		return nil, fmt.Errorf("service: could not get school: %w", err)
	}
	return school, nil
}

// GetStats возвращает количество школ и поисков за окно STATS_TIME_WINDOW_MINUTES
func (s *schoolService) GetStats(ctx context.Context) (*models.Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "school",
		"method":  "GetStats",
	})

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count schools")
		return nil, fmt.Errorf("service: could not count schools: %w", err)
	}

	searches, err := s.repo.CountSearches(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count school searches")
		return nil, fmt.Errorf("service: could not count searches: %w", err)
	}

	return &models.Stats{
		TotalSchools:  total,
		SearchCount:   searches,
		WindowMinutes: s.cfg.StatsTimeWindowMinutes,
	}, nil
}
