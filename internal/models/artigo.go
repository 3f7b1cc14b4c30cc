package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StatusArtigo define o estado editorial de um artigo
type StatusArtigo string

const (
	StatusRascunho  StatusArtigo = "rascunho"
	StatusPublicado StatusArtigo = "publicado"
	StatusArquivado StatusArtigo = "arquivado"
)

// IsValid verifica se o status é válido
func (s StatusArtigo) IsValid() bool {
	switch s {
	case StatusRascunho, StatusPublicado, StatusArquivado:
		return true
	}
	return false
}

// ListaTags armazena o conjunto de tags de um artigo como JSON na coluna
type ListaTags []string

// Value serializa as tags para persistência
func (t ListaTags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan desserializa as tags vindas do banco
func (t *ListaTags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return errors.New("models: tipo inválido para ListaTags")
	}

	return json.Unmarshal(data, (*[]string)(t))
}

// Contem verifica se a tag está presente no conjunto
func (t ListaTags) Contem(tag string) bool {
	for _, existente := range t {
		if existente == tag {
			return true
		}
	}
	return false
}

// Artigo representa a projeção de leitura de um artigo publicado
type Artigo struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Slug        string       `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Titulo      string       `gorm:"size:500;not null" json:"titulo"`
	Resumo      string       `gorm:"type:text" json:"resumo"`
	Conteudo    string       `gorm:"type:text" json:"-"`
	Categoria   string       `gorm:"size:100;index" json:"categoria"`
	Tags        ListaTags    `gorm:"type:text" json:"tags"`
	Status      StatusArtigo `gorm:"size:20;index;default:rascunho" json:"status"`
	PublicadoEm *time.Time   `gorm:"index" json:"publicado_em,omitempty"`
	CriadoEm    time.Time    `json:"criado_em"`
}

// Publicado indica se o artigo é elegível para recomendação
func (a *Artigo) Publicado() bool {
	return a.Status == StatusPublicado && a.PublicadoEm != nil
}

// ColecaoArtigo representa a associação de um artigo a uma coleção (série),
// com ordem estrita dentro da coleção
type ColecaoArtigo struct {
	ColecaoID string `gorm:"primaryKey;size:36;uniqueIndex:idx_colecao_ordem" json:"colecao_id"`
	ArtigoID  string `gorm:"primaryKey;size:36;index" json:"artigo_id"`
	Ordem     int    `gorm:"uniqueIndex:idx_colecao_ordem;not null" json:"ordem"`
}
