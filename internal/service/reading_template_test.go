package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readingInputFor(name string, year int, month time.Month, day int) ReadingInput {
	return ReadingInput{
		Name:      name,
		Sex:       "feminino",
		Email:     "maria@example.com",
		BirthDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func dominantElement(t *testing.T, reading string) string {
	t.Helper()
	const marker = "guiada pelo elemento **"
	start := strings.Index(reading, marker)
	require.NotEqual(t, -1, start)
	rest := reading[start+len(marker):]
	end := strings.Index(rest, "**")
	require.NotEqual(t, -1, end)
	return rest[:end]
}

func TestElementIndexDependsOnlyOnYearModFive(t *testing.T) {
	for year := 1900; year < 2100; year++ {
		require.Equal(t, ElementIndex(year), ElementIndex(year+5))
		require.Equal(t, year%5, ElementIndex(year))
	}
	require.Equal(t, "Madeira", ElementForYear(1990).Name)
	require.Equal(t, "Fogo", ElementForYear(1991).Name)
	require.Equal(t, "Água", ElementForYear(1994).Name)
	require.Len(t, ElementNames(), 5)
}

func TestTemplateReadingForMariaSilva(t *testing.T) {
	text, err := NewTemplateReadingGenerator().Generate(context.Background(), readingInputFor("Maria Silva", 1990, time.May, 15))
	require.NoError(t, err)

	require.NotEmpty(t, text)
	require.Contains(t, text, "Maria Silva")
	require.Contains(t, text, "(15/5/1990)")
	require.Equal(t, ElementNames()[0], dominantElement(t, text))
	require.Contains(t, text, "verde e azul")
	require.NotContains(t, text, "Sobre Sua Pergunta")
	require.True(t, strings.HasSuffix(text, "_Mestra Aurora_"))
}

func TestTemplateElementIgnoresEverythingButYear(t *testing.T) {
	base := readingInputFor("Ana", 1987, time.January, 1)
	variant := readingInputFor("Carlos Souza", 1987, time.December, 31)
	variant.Sex = "masculino"
	variant.MaritalStatus = "casado"
	variant.Question = "Vou mudar de carreira?"

	a := renderTemplateReading(base)
	b := renderTemplateReading(variant)
	require.Equal(t, dominantElement(t, a), dominantElement(t, b))

	later := renderTemplateReading(readingInputFor("Ana", 1992, time.January, 1))
	require.Equal(t, dominantElement(t, a), dominantElement(t, later))
}

func TestTemplateReadingOptionalSections(t *testing.T) {
	in := readingInputFor("Maria Silva", 1991, time.March, 2)
	in.BirthTime = "14:30"
	in.MaritalStatus = "namorando"
	in.RelationshipDuration = "2 anos"
	in.Question = "Como está minha saúde?"

	text := renderTemplateReading(in)
	require.Contains(t, text, "às 14:30 horas")
	require.Contains(t, text, "No seu atual estágio de relacionamento, há 2 anos")
	require.Contains(t, text, "## ❓ Sobre Sua Pergunta")
	require.Contains(t, text, "\"Como está minha saúde?\"")
	require.Contains(t, text, "equilíbrio característico do elemento Fogo")
}

func TestTemplateReadingUnknownMaritalStatusUsesGenericStage(t *testing.T) {
	in := readingInputFor("Maria Silva", 1990, time.May, 15)
	in.MaritalStatus = "complicado"
	require.Contains(t, renderTemplateReading(in), "No seu atual estágio relacional,")
}

func TestAnswerQuestionRulesFirstMatchWins(t *testing.T) {
	water := ElementForYear(1994)

	require.Contains(t, answerQuestion("Quando terei mais DINHEIRO e amor?", water), "situação financeira")
	require.Contains(t, answerQuestion("Meu relacionamento vai durar?", water), "natureza compassiva")
	require.Contains(t, answerQuestion("Minha Saúde vai melhorar?", water), "Sua saúde depende")
	require.Contains(t, answerQuestion("Qual é o meu propósito de vida?", water), "intuição profunda")
}
