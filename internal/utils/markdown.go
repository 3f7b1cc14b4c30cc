package utils

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown remove toda formatação markdown do texto e retorna texto puro
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")

	return result
}

// GerarResumo deriva um resumo em texto puro do conteúdo markdown do
// artigo, truncado em limite de runas sem cortar palavra
func GerarResumo(conteudo string, limite int) string {
	texto := StripMarkdown(conteudo)

	// Resumo é um único parágrafo
	texto = strings.ReplaceAll(texto, "\n\n", " ")
	texto = strings.ReplaceAll(texto, "\n", " ")
	texto = strings.Join(strings.Fields(texto), " ")

	if limite <= 0 || utf8.RuneCountInString(texto) <= limite {
		return texto
	}

	runas := []rune(texto)
	cortado := string(runas[:limite])
	if ultimoEspaco := strings.LastIndex(cortado, " "); ultimoEspaco > 0 {
		cortado = cortado[:ultimoEspaco]
	}

	return cortado + "…"
}

// extractText percorre a AST e extrai o conteúdo textual
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock:
		return

	case *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	switch node.(type) {
	case *ast.ListItem:
		buf.WriteString("• ")
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
