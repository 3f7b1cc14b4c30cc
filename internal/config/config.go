// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP do serviço (default: 8080)
//
// ## Banco de dados
//   - DB_PATH: Caminho do arquivo sqlite (default: data/leitura.db)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
//
// ## Feed de leitura contínua
//   - FEED_TAMANHO_LOTE: Artigos pedidos ao resolver por sessão (default: 4)
//   - FEED_MAX_AUTO_CARREGADOS: Teto de artigos anexados automaticamente (default: 4)
//   - FEED_MULTIPLICADOR_CANDIDATOS: Candidatos buscados por vaga na camada pontuada (default: 3)
//   - FEED_JANELA_RECENCIA_DIAS: Dias em que um artigo ainda pontua como recente (default: 7)
//   - FEED_RESUMO_MAX_RUNAS: Tamanho máximo do resumo derivado do conteúdo (default: 280)
//
// ## Sessões
//   - SESSAO_TTL_MINUTOS: TTL de uma sessão de leitura inativa (default: 30)
//   - SESSAO_CAPACIDADE: Máximo de sessões simultâneas no store (default: 10000)
//   - SESSAO_LIMPEZA_MINUTOS: Intervalo da rotina de limpeza (default: 5)
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBPath string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	// Feed configuration
	Feed FeedConfig

	// Session store configuration
	Sessao SessaoConfig
}

// FeedConfig contém os parâmetros do motor de recomendação e do feed
type FeedConfig struct {
	// Tamanho do lote único pedido ao resolver por sessão
	TamanhoLote int

	// Teto de artigos anexados automaticamente em uma sessão
	MaxAutoCarregados int

	// Candidatos buscados por vaga restante na camada pontuada
	MultiplicadorCandidatos int

	// Dias em que um artigo ainda recebe bônus de recência
	JanelaRecenciaDias int

	// Tamanho máximo, em runas, do resumo derivado do conteúdo
	ResumoMaxRunas int
}

// SessaoConfig contém os parâmetros do store de sessões de leitura
type SessaoConfig struct {
	// TTL de uma sessão inativa, em minutos
	TTLMinutos int

	// Máximo de sessões simultâneas no store
	Capacidade int

	// Intervalo da rotina de limpeza, em minutos
	LimpezaMinutos int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBPath: getEnv("DB_PATH", "data/leitura.db"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		Feed: FeedConfig{
			TamanhoLote:             getEnvInt("FEED_TAMANHO_LOTE", 4),
			MaxAutoCarregados:       getEnvInt("FEED_MAX_AUTO_CARREGADOS", 4),
			MultiplicadorCandidatos: getEnvInt("FEED_MULTIPLICADOR_CANDIDATOS", 3),
			JanelaRecenciaDias:      getEnvInt("FEED_JANELA_RECENCIA_DIAS", 7),
			ResumoMaxRunas:          getEnvInt("FEED_RESUMO_MAX_RUNAS", 280),
		},

		Sessao: SessaoConfig{
			TTLMinutos:     getEnvInt("SESSAO_TTL_MINUTOS", 30),
			Capacidade:     getEnvInt("SESSAO_CAPACIDADE", 10000),
			LimpezaMinutos: getEnvInt("SESSAO_LIMPEZA_MINUTOS", 5),
		},
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
