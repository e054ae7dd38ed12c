package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gestionformation/formation-api/docs"
	v1 "github.com/gestionformation/formation-api/internal/api/handler/v1"
	"github.com/gestionformation/formation-api/internal/api/middleware"
	"github.com/gestionformation/formation-api/internal/config"
	"github.com/gestionformation/formation-api/internal/repository"
	"github.com/gestionformation/formation-api/internal/repository/dao"
	"github.com/gestionformation/formation-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	formationHandler := s.initFormationHandler(db)
	participantHandler := s.initParticipantHandler(db)
	s.MountHandlers(authHandler, userHandler, formationHandler, participantHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initFormationHandler(db *gorm.DB) *v1.FormationHandler {
	formationDAO := dao.NewFormationDAO(db)
	enrollmentDAO := dao.NewEnrollmentDAO(db)
	repo := repository.NewFormationRepository(formationDAO)
	enrollmentRepo := repository.NewEnrollmentRepository(enrollmentDAO)
	svc := service.NewFormationService(repo, enrollmentRepo)
	handler := v1.NewFormationHandler(svc)

	return handler
}

func (s *Server) initParticipantHandler(db *gorm.DB) *v1.ParticipantHandler {
	participantDAO := dao.NewParticipantDAO(db)
	enrollmentDAO := dao.NewEnrollmentDAO(db)
	repo := repository.NewParticipantRepository(participantDAO)
	enrollmentRepo := repository.NewEnrollmentRepository(enrollmentDAO)
	svc := service.NewParticipantService(repo, enrollmentRepo)
	handler := v1.NewParticipantHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, formationHandler *v1.FormationHandler, participantHandler *v1.ParticipantHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users", userHandler.HandleGetUsers)
		users.GET("/users/me", userHandler.HandleGetMe)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.PUT("/users/:userID", userHandler.HandleUpdateUser)
		users.DELETE("/users/:userID", userHandler.HandleDeleteUser)
		users.POST("/users/:userID/change-password", userHandler.HandleChangePassword)
	}

	formations := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		formations.GET("/formations", formationHandler.HandleGetFormations)
		formations.POST("/formations", formationHandler.HandleCreateFormation)
		formations.GET("/formations/stats", formationHandler.HandleGetFormationStats)
		formations.GET("/formations/stats/monthly", formationHandler.HandleGetMonthlyStats)
		formations.GET("/formations/stats/completed", formationHandler.HandleCountCompletedFormations)
		formations.GET("/formations/stats/current", formationHandler.HandleCountCurrentFormations)
		formations.GET("/formations/stats/upcoming", formationHandler.HandleCountUpcomingFormations)
		formations.GET("/stats", formationHandler.HandleGetStatsOverview)
		formations.GET("/formations/:formationID", formationHandler.HandleGetFormation)
		formations.PUT("/formations/:formationID", formationHandler.HandleUpdateFormation)
		formations.DELETE("/formations/:formationID", formationHandler.HandleDeleteFormation)
		formations.GET("/formations/:formationID/participants", formationHandler.HandleGetFormationParticipants)
		formations.POST("/formations/:formationID/participants/:participantID", formationHandler.HandleEnrollParticipant)
		formations.DELETE("/formations/:formationID/participants/:participantID", formationHandler.HandleWithdrawParticipant)
	}

	participants := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		participants.GET("/participants", participantHandler.HandleGetParticipants)
		participants.POST("/participants", participantHandler.HandleCreateParticipant)
		participants.GET("/participants/profile/:profile", participantHandler.HandleGetParticipantsByProfile)
		participants.GET("/participants/profile/:profile/count", participantHandler.HandleCountParticipantsByProfile)
		participants.GET("/participants/:participantID", participantHandler.HandleGetParticipant)
		participants.PUT("/participants/:participantID", participantHandler.HandleUpdateParticipant)
		participants.DELETE("/participants/:participantID", participantHandler.HandleDeleteParticipant)
		participants.GET("/participants/:participantID/formations", participantHandler.HandleGetParticipantFormations)
		participants.POST("/participants/:participantID/formations/:formationID", participantHandler.HandleEnrollInFormation)
		participants.DELETE("/participants/:participantID/formations/:formationID", participantHandler.HandleWithdrawFromFormation)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Formation Management API"
	docs.SwaggerInfo.Description = "Training course catalog, participants and enrollments."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
