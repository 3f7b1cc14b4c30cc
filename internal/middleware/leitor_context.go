package middlewares

import (
	"github.com/gin-gonic/gin"
)

const (
	LeitorIDKey     = "leitor_id"
	LeitorOrigemKey = "leitor_origem"
)

// ExtractLeitorContext extrai a identificação anônima do leitor dos
// headers injetados pela borda:
// - X-Leitor-ID: identificador anônimo do dispositivo/cookie do leitor
// - X-Leitor-Origem: canal de entrada (site, app, newsletter)
func ExtractLeitorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		leitorID := c.GetHeader("X-Leitor-ID")
		if leitorID != "" {
			c.Set(LeitorIDKey, leitorID)
		}

		origem := c.GetHeader("X-Leitor-Origem")
		if origem != "" {
			c.Set(LeitorOrigemKey, origem)
		}

		c.Next()
	}
}

// GetLeitorID retorna o identificador anônimo do leitor, se presente
func GetLeitorID(c *gin.Context) string {
	if leitorID, exists := c.Get(LeitorIDKey); exists {
		if leitorIDStr, ok := leitorID.(string); ok {
			return leitorIDStr
		}
	}
	return ""
}

// GetLeitorOrigem retorna o canal de entrada do leitor, se presente
func GetLeitorOrigem(c *gin.Context) string {
	if origem, exists := c.Get(LeitorOrigemKey); exists {
		if origemStr, ok := origem.(string); ok {
			return origemStr
		}
	}
	return ""
}
