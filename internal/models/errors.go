package models

import "errors"

var (
	ErrArtigoNaoEncontrado = errors.New("artigo não encontrado")
	ErrSessaoNaoEncontrada = errors.New("sessão de leitura não encontrada")
	ErrSlugObrigatorio     = errors.New("slug é obrigatório")
)
