// Package repository implementa a superfície de consulta somente-leitura
// sobre artigos publicados usada pelo motor de recomendação.
package repository

import (
	"context"
	"errors"

	"github.com/diario-carioca/app-feed-leitura/internal/models"
	"gorm.io/gorm"
)

// ArtigoRepository acessa artigos e coleções no banco relacional
type ArtigoRepository struct {
	db *gorm.DB
}

// NewArtigoRepository cria um novo repositório de artigos
func NewArtigoRepository(db *gorm.DB) *ArtigoRepository {
	return &ArtigoRepository{db: db}
}

// Migrate cria as tabelas de artigos e coleções
func (r *ArtigoRepository) Migrate() error {
	return r.db.AutoMigrate(&models.Artigo{}, &models.ColecaoArtigo{})
}

// publicados restringe a consulta a artigos elegíveis para recomendação
func (r *ArtigoRepository) publicados(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublicado).
		Where("publicado_em IS NOT NULL")
}

// BuscarPorSlug retorna o artigo publicado com o slug informado
func (r *ArtigoRepository) BuscarPorSlug(ctx context.Context, slug string) (*models.Artigo, error) {
	var artigo models.Artigo
	err := r.publicados(ctx).Where("slug = ?", slug).First(&artigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrArtigoNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &artigo, nil
}

// BuscarPorID retorna o artigo publicado com o id informado
func (r *ArtigoRepository) BuscarPorID(ctx context.Context, id string) (*models.Artigo, error) {
	var artigo models.Artigo
	err := r.publicados(ctx).Where("id = ?", id).First(&artigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrArtigoNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &artigo, nil
}

// BuscarEntradaColecao retorna a associação de coleção do artigo, se houver
func (r *ArtigoRepository) BuscarEntradaColecao(ctx context.Context, artigoID string) (*models.ColecaoArtigo, error) {
	var entrada models.ColecaoArtigo
	err := r.db.WithContext(ctx).Where("artigo_id = ?", artigoID).First(&entrada).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entrada, nil
}

// BuscarProximoNaColecao retorna o artigo publicado de menor ordem
// estritamente maior que a informada, dentro da mesma coleção
func (r *ArtigoRepository) BuscarProximoNaColecao(ctx context.Context, colecaoID string, ordem int) (*models.Artigo, error) {
	var artigo models.Artigo
	err := r.publicados(ctx).
		Joins("JOIN colecao_artigos ON colecao_artigos.artigo_id = artigos.id").
		Where("colecao_artigos.colecao_id = ?", colecaoID).
		Where("colecao_artigos.ordem > ?", ordem).
		Order("colecao_artigos.ordem ASC").
		Limit(1).
		First(&artigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artigo, nil
}

// BuscarCandidatos retorna artigos publicados que satisfazem o filtro
// (categoria igual OU interseção de tags), ordenados por data de publicação
// descendente, excluindo os ids informados
func (r *ArtigoRepository) BuscarCandidatos(ctx context.Context, filtro models.FiltroCandidatos, excluirIDs []string, limite int) ([]models.Artigo, error) {
	if filtro.Vazio() || limite <= 0 {
		return nil, nil
	}

	cond := r.db.Session(&gorm.Session{NewDB: true})
	primeiro := true
	if filtro.Categoria != "" {
		cond = cond.Where("categoria = ?", filtro.Categoria)
		primeiro = false
	}
	for _, tag := range filtro.Tags {
		// Tags são persistidas como JSON; a associação usa o literal citado
		padrao := "%" + `"` + tag + `"` + "%"
		if primeiro {
			cond = cond.Where("tags LIKE ?", padrao)
			primeiro = false
		} else {
			cond = cond.Or("tags LIKE ?", padrao)
		}
	}

	q := r.publicados(ctx).Where(cond)
	if len(excluirIDs) > 0 {
		q = q.Where("id NOT IN ?", excluirIDs)
	}

	var artigos []models.Artigo
	err := q.Order("publicado_em DESC").Limit(limite).Find(&artigos).Error
	if err != nil {
		return nil, err
	}
	return artigos, nil
}

// BuscarRecentes retorna os artigos publicados mais recentes,
// excluindo os ids informados
func (r *ArtigoRepository) BuscarRecentes(ctx context.Context, excluirIDs []string, limite int) ([]models.Artigo, error) {
	if limite <= 0 {
		return nil, nil
	}

	q := r.publicados(ctx)
	if len(excluirIDs) > 0 {
		q = q.Where("id NOT IN ?", excluirIDs)
	}

	var artigos []models.Artigo
	err := q.Order("publicado_em DESC").Limit(limite).Find(&artigos).Error
	if err != nil {
		return nil, err
	}
	return artigos, nil
}

// ContarPublicados retorna o total de artigos elegíveis
func (r *ArtigoRepository) ContarPublicados(ctx context.Context) (int64, error) {
	var total int64
	err := r.publicados(ctx).Model(&models.Artigo{}).Count(&total).Error
	return total, err
}
