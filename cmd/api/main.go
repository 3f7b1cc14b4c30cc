package main

import (
	"log"
	"time"

	_ "github.com/diario-carioca/app-feed-leitura/docs"
	"github.com/diario-carioca/app-feed-leitura/internal/api/handlers"
	"github.com/diario-carioca/app-feed-leitura/internal/api/routes"
	"github.com/diario-carioca/app-feed-leitura/internal/config"
	"github.com/diario-carioca/app-feed-leitura/internal/feed"
	"github.com/diario-carioca/app-feed-leitura/internal/observability"
	"github.com/diario-carioca/app-feed-leitura/internal/recommend"
	"github.com/diario-carioca/app-feed-leitura/internal/repository"
	"github.com/diario-carioca/app-feed-leitura/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// @title           API Feed de Leitura Contínua
// @version         1.0
// @description     API de recomendação de artigos de continuação e sessões de leitura contínua do Diário Carioca: resolve os próximos artigos em camadas (série, pontuados por categoria/tags, recentes) e sincroniza o endereço canônico com o artigo em vista.

// @contact.name   Diário Carioca
// @contact.url    https://diariocarioca.com.br
// @contact.email  plataforma@diariocarioca.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Falha ao conectar ao banco: %v", err)
	}

	repo := repository.NewArtigoRepository(db)
	if err := repo.Migrate(); err != nil {
		log.Fatalf("Falha ao migrar o banco: %v", err)
	}

	scorer := recommend.NewScorer(time.Duration(cfg.Feed.JanelaRecenciaDias) * 24 * time.Hour)
	resolver := recommend.NewResolver(repo, scorer, cfg.Feed.MultiplicadorCandidatos)

	store := feed.NewSessaoStore(cfg.Sessao.Capacidade, time.Duration(cfg.Sessao.TTLMinutos)*time.Minute)
	cleanupTicker := store.StartCleanupRoutine(time.Duration(cfg.Sessao.LimpezaMinutos) * time.Minute)
	defer cleanupTicker.Stop()

	feedService := services.NewFeedService(repo, resolver, store, cfg.Feed.TamanhoLote, cfg.Feed.MaxAutoCarregados)
	artigoService := services.NewArtigoService(repo, cfg.Feed.ResumoMaxRunas)

	artigoHandler := handlers.NewArtigoHandler(artigoService, resolver)
	feedHandler := handlers.NewFeedHandler(feedService)

	r := routes.SetupRouter(artigoHandler, feedHandler)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
