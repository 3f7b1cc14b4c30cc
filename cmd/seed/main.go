// Comando seed popula o banco local com artigos, tags e coleções de
// exemplo para desenvolvimento do feed de leitura contínua.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/diario-carioca/app-feed-leitura/internal/config"
	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"github.com/diario-carioca/app-feed-leitura/internal/repository"
	"github.com/diario-carioca/app-feed-leitura/internal/utils"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	limpar     = flag.Bool("limpar", false, "Remove os dados existentes antes de popular")
	quantidade = flag.Int("quantidade", 24, "Quantidade de artigos avulsos a criar")
)

// artigoSemente descreve um artigo de exemplo
type artigoSemente struct {
	titulo    string
	categoria string
	tags      []string
	conteudo  string
	idadeDias int
	colecao   string
	ordem     int
}

func main() {
	flag.Parse()

	cfg := config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Falha ao conectar ao banco: %v", err)
	}

	repo := repository.NewArtigoRepository(db)
	if err := repo.Migrate(); err != nil {
		log.Fatalf("Falha ao migrar o banco: %v", err)
	}

	if *limpar {
		log.Println("Removendo dados existentes...")
		db.Where("1 = 1").Delete(&models.ColecaoArtigo{})
		db.Where("1 = 1").Delete(&models.Artigo{})
	}

	sementes := sementesBase()
	sementes = append(sementes, sementesAvulsas(*quantidade)...)

	colecoes := make(map[string]string)
	criados := 0

	for _, semente := range sementes {
		id := uuid.NewString()
		publicadoEm := time.Now().AddDate(0, 0, -semente.idadeDias)

		artigo := models.Artigo{
			ID:          id,
			Slug:        utils.GerarSlug(semente.titulo, id),
			Titulo:      semente.titulo,
			Conteudo:    semente.conteudo,
			Categoria:   semente.categoria,
			Tags:        utils.NormalizarTags(semente.tags),
			Status:      models.StatusPublicado,
			PublicadoEm: &publicadoEm,
			CriadoEm:    time.Now(),
		}

		if err := db.Create(&artigo).Error; err != nil {
			log.Printf("Falha ao criar artigo %q: %v", semente.titulo, err)
			continue
		}
		criados++

		if semente.colecao != "" {
			colecaoID, ok := colecoes[semente.colecao]
			if !ok {
				colecaoID = uuid.NewString()
				colecoes[semente.colecao] = colecaoID
			}

			entrada := models.ColecaoArtigo{
				ColecaoID: colecaoID,
				ArtigoID:  artigo.ID,
				Ordem:     semente.ordem,
			}
			if err := db.Create(&entrada).Error; err != nil {
				log.Printf("Falha ao associar artigo %q à coleção %q: %v", semente.titulo, semente.colecao, err)
			}
		}
	}

	total, err := repo.ContarPublicados(context.Background())
	if err != nil {
		log.Printf("Falha ao contar artigos publicados: %v", err)
	}
	log.Printf("Seed concluído: %d artigos criados, %d coleções, %d publicados no total", criados, len(colecoes), total)
}

// sementesBase retorna os artigos fixos, incluindo uma série ordenada
func sementesBase() []artigoSemente {
	return []artigoSemente{
		{
			titulo:    "Especial transporte: o metrô que o Rio planejou",
			categoria: "Cidade",
			tags:      []string{"transporte", "metrô", "especial"},
			conteudo:  "# Parte 1\n\nO primeiro traçado do metrô carioca previa...",
			idadeDias: 21,
			colecao:   "especial-transporte",
			ordem:     1,
		},
		{
			titulo:    "Especial transporte: as linhas que ficaram no papel",
			categoria: "Cidade",
			tags:      []string{"transporte", "metrô", "especial"},
			conteudo:  "# Parte 2\n\nDas seis linhas projetadas nos anos 1970...",
			idadeDias: 14,
			colecao:   "especial-transporte",
			ordem:     2,
		},
		{
			titulo:    "Especial transporte: o futuro sobre trilhos",
			categoria: "Cidade",
			tags:      []string{"transporte", "metrô", "especial"},
			conteudo:  "# Parte 3\n\nOs estudos mais recentes apontam...",
			idadeDias: 7,
			colecao:   "especial-transporte",
			ordem:     3,
		},
		{
			titulo:    "Orla do Leme ganha novo calçadão",
			categoria: "Cidade",
			tags:      []string{"obras", "zona-sul"},
			conteudo:  "A prefeitura entregou neste sábado o novo trecho...",
			idadeDias: 2,
		},
		{
			titulo:    "Tecnologia nas escolas municipais avança",
			categoria: "Educação",
			tags:      []string{"tecnologia", "escolas"},
			conteudo:  "O programa de laboratórios digitais chegou a...",
			idadeDias: 5,
		},
	}
}

// sementesAvulsas gera artigos variados para encher o fallback de recência
func sementesAvulsas(quantidade int) []artigoSemente {
	categorias := []string{"Cidade", "Cultura", "Esportes", "Economia", "Educação"}
	tags := [][]string{
		{"cotidiano"},
		{"agenda", "fim-de-semana"},
		{"futebol", "campeonato"},
		{"emprego", "renda"},
		{"escolas"},
	}

	sementes := make([]artigoSemente, 0, quantidade)
	for i := 0; i < quantidade; i++ {
		indice := i % len(categorias)
		sementes = append(sementes, artigoSemente{
			titulo:    fmt.Sprintf("Boletim %s nº %d", categorias[indice], i+1),
			categoria: categorias[indice],
			tags:      tags[indice],
			conteudo:  fmt.Sprintf("Resumo diário número %d da editoria de %s.", i+1, categorias[indice]),
			idadeDias: i + 1,
		})
	}
	return sementes
}
