package v1

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.POST("/addSchool", h.addSchool)
	api.GET("/listSchools", h.listSchools)
	api.GET("/schools/:id", h.getSchool)

	// Маршруты администратора
	admin := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/stats", h.getStats)
	}

	// Маршрут Health-check
	api.GET("/health", h.healthCheck)
}

// NewRouter создает gin.Engine с middleware, маршрутами API и Swagger UI
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(h.logger), RequestLogger(h.logger), SecureHeaders())

	h.RegisterRoutes(&router.RouterGroup)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(h.notFound)

	return router
}
