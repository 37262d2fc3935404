package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/school_locator/internal/config"
	"github.com/shenikar/school_locator/internal/geo"
	"github.com/shenikar/school_locator/internal/models"
	"github.com/shenikar/school_locator/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	schoolService service.SchoolService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(schoolService service.SchoolService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		schoolService: schoolService,
		logger:        logger,
		validate:      newValidator(),
		cfg:           cfg,
	}
}

// @Summary Add a new school
// @Description Register a school. Fails with 409 if a school already exists at (almost) the same coordinates.
// @Tags Schools
// @Accept json
// @Produce json
// @Param school body AddSchoolRequest true "School to add"
// @Success 201 {object} SchoolEnvelope
// @Failure 400 {object} APIResponse "Invalid request body or validation error"
// @Failure 409 {object} APIResponse "School already exists at this location"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /addSchool [post]
func (h *Handler) addSchool(c *gin.Context) {
	var input AddSchoolRequest
	log := h.logger.WithField("method", "addSchool")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "invalid request body"})
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Validation failed", Errors: toFieldErrors(err)})
		return
	}

	model := DTOToSchoolModel(input)
	if err := h.schoolService.AddSchool(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to add school")
		return
	}

	c.JSON(http.StatusCreated, SchoolEnvelope{
		Success: true,
		Message: "School added successfully",
		Data:    ModelToSchoolResponse(model),
	})
}

// @Summary List schools by proximity
// @Description List all schools ordered by great-circle distance (km) from the given point. Optional radius (km) limits the result.
// @Tags Schools
// @Produce json
// @Param latitude query number true "Latitude of the reference point"
// @Param longitude query number true "Longitude of the reference point"
// @Param radius query number false "Search radius in kilometers"
// @Success 200 {object} ListSchoolsResponse
// @Failure 400 {object} APIResponse "Missing or invalid coordinates"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /listSchools [get]
func (h *Handler) listSchools(c *gin.Context) {
	var query ListSchoolsQuery
	log := h.logger.WithField("method", "listSchools")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  []FieldError{{Field: "query", Message: "latitude, longitude and radius must be valid numbers"}},
		})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Validation failed", Errors: toFieldErrors(err)})
		return
	}

	reference := models.GeoPoint{Latitude: *query.Latitude, Longitude: *query.Longitude}
	ranked, err := h.schoolService.ListSchoolsByDistance(c.Request.Context(), reference, query.Radius)
	if err != nil {
		h.respondError(c, log, err, "Failed to retrieve schools")
		return
	}

	c.JSON(http.StatusOK, ListSchoolsResponse{
		Success: true,
		Message: "Schools retrieved successfully",
		Data:    RankedToResponses(reference, ranked),
		Count:   len(ranked),
	})
}

// @Summary Get school by ID
// @Description Get a single school by its ID.
// @Tags Schools
// @Produce json
// @Param id path string true "School ID"
// @Success 200 {object} SchoolEnvelope
// @Failure 400 {object} APIResponse "Invalid school ID"
// @Failure 404 {object} APIResponse "School not found"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /schools/{id} [get]
func (h *Handler) getSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "invalid school ID"})
		return
	}
	log := h.logger.WithField("method", "getSchool").WithField("id", id)

	school, err := h.schoolService.GetSchool(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to get school")
		return
	}
	c.JSON(http.StatusOK, SchoolEnvelope{
		Success: true,
		Message: "School retrieved successfully",
		Data:    ModelToSchoolResponse(school),
	})
}

// @Summary Get service statistics
// @Description Total number of schools and number of proximity searches in the configured time window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.schoolService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Success:       true,
		Message:       "Stats retrieved successfully",
		TotalSchools:  stats.TotalSchools,
		SearchCount:   stats.SearchCount,
		WindowMinutes: stats.WindowMinutes,
	})
}

// @Summary Get application health status
// @Description Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Success:     true,
		Message:     "Server is running",
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.AppEnv,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, NotFoundResponse{
		Success: false,
		Message: "Endpoint not found",
		AvailableEndpoints: []string{
			"POST /addSchool",
			"GET /listSchools?latitude=<lat>&longitude=<lng>[&radius=<km>]",
			"GET /schools/:id",
			"GET /stats",
			"GET /health",
		},
	})
}

// respondError выбирает HTTP статус по ошибке сервиса.
// Текст внутренней ошибки попадает в ответ только в режиме development.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, message string) {
	switch {
	case errors.Is(err, geo.ErrInvalidArgument):
		log.WithError(err).Warn("Rejected invalid argument")
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  []FieldError{{Field: "coordinates", Message: err.Error()}},
		})
	case errors.Is(err, service.ErrDuplicateLocation):
		log.WithError(err).Warn("Duplicate school location")
		c.JSON(http.StatusConflict, APIResponse{Success: false, Message: "A school with similar details already exists"})
	case errors.Is(err, service.ErrSchoolNotFound):
		log.WithError(err).Warn("School not found")
		c.JSON(http.StatusNotFound, APIResponse{Success: false, Message: "school not found"})
	default:
		log.WithError(err).Error(message)
		resp := APIResponse{Success: false, Message: message, Error: "Internal server error"}
		if h.cfg.IsDevelopment() {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
