package routes

import (
	"github.com/diario-carioca/app-feed-leitura/internal/api/handlers"
	middlewares "github.com/diario-carioca/app-feed-leitura/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(artigoHandler *handlers.ArtigoHandler, feedHandler *handlers.FeedHandler) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())
	r.Use(middlewares.ExtractLeitorContext())

	api := r.Group("/api/v1")
	{
		api.GET("/artigos/:slug", artigoHandler.BuscarPorSlug)
		api.GET("/recomendacoes", artigoHandler.Recomendar)

		feed := api.Group("/feed")
		{
			feed.POST("/sessoes", feedHandler.CriarSessao)
			feed.GET("/sessoes/:id", feedHandler.BuscarSessao)
			feed.POST("/sessoes/:id/avancar", feedHandler.Avancar)
			feed.POST("/sessoes/:id/viewport", feedHandler.Viewport)
			feed.DELETE("/sessoes/:id", feedHandler.Encerrar)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Leitor-ID, X-Leitor-Origem")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
