package http

import (
	"context"
	"net/http"
	"time"

	"github.com/elysia-api/parking-service/internal/config"
	"github.com/elysia-api/parking-service/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	motoHandler *MotoHandler,
	vagaHandler *VagaHandler,
	usuarioHandler *UsuarioHandler,
	dbPing func(ctx context.Context) error,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(RequestIDMiddleware())
	if cfg.RateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location", requestIDHeader},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		db := "ok"
		if dbPing != nil {
			if err := dbPing(ctx); err != nil {
				db = "down"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": db})
	})

	// Motos routes
	moto := router.Group("/moto")
	{
		moto.GET("", motoHandler.ListMotos)
		moto.GET("/search", motoHandler.SearchMotos)
		moto.GET("/:id", motoHandler.GetMoto)
		moto.POST("", motoHandler.CreateMoto)
		moto.PUT("/:id", motoHandler.UpdateMoto)
		moto.DELETE("/:id", motoHandler.DeleteMoto)
	}

	// Vagas routes
	vaga := router.Group("/vaga")
	{
		vaga.GET("", vagaHandler.ListVagas)
		vaga.GET("/patio", vagaHandler.ListVagasByPatio)
		vaga.GET("/:id", vagaHandler.GetVaga)
		vaga.POST("", vagaHandler.CreateVaga)
		vaga.PUT("/:id", vagaHandler.UpdateVaga)
		vaga.DELETE("/:id", vagaHandler.DeleteVaga)
	}

	// Usuarios routes
	usuario := router.Group("/usuario")
	{
		usuario.GET("", usuarioHandler.ListUsuarios)
		usuario.GET("/me", AuthMiddleware(tokenService), usuarioHandler.Me)
		usuario.GET("/:id", usuarioHandler.GetUsuario)
		usuario.POST("", usuarioHandler.CreateUsuario)
		usuario.POST("/login", usuarioHandler.Login)
		usuario.PUT("/:id", usuarioHandler.UpdateUsuario)
		usuario.DELETE("/:id", usuarioHandler.DeleteUsuario)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
