package service

import (
	"fmt"
	"strings"
)

type questionRule struct {
	matches func(question string) bool
	answer  func(e Element) string
}

func containsAny(keywords ...string) func(string) bool {
	return func(question string) bool {
		for _, keyword := range keywords {
			if strings.Contains(question, keyword) {
				return true
			}
		}
		return false
	}
}

// questionRules are evaluated in order against the lower-cased question; the last rule always matches.
var questionRules = []questionRule{
	{
		matches: containsAny("dinheiro", "carreira"),
		answer: func(e Element) string {
			return fmt.Sprintf("Sua situação financeira melhorará significativamente nos próximos meses, especialmente quando você se alinhar com as energias do elemento %s. Foque em oportunidades práticas e evite investimentos de alto risco.", e.Name)
		},
	},
	{
		matches: containsAny("amor", "relacionamento"),
		answer: func(e Element) string {
			return fmt.Sprintf("No amor, é essencial manter sua natureza %s. Comunicação honesta será fundamental.", e.LoveNature)
		},
	},
	{
		matches: containsAny("saúde"),
		answer: func(e Element) string {
			return fmt.Sprintf("Sua saúde depende de manter o equilíbrio característico do elemento %s. Preste atenção especial aos órgãos associados e pratique atividades que harmonizem sua energia.", e.Name)
		},
	},
	{
		matches: func(string) bool { return true },
		answer: func(e Element) string {
			return fmt.Sprintf("Os céus indicam que você deve seguir sua intuição %s neste assunto. O momento pede paciência e alinhamento com seus valores.", e.Intuition)
		},
	},
}

func answerQuestion(question string, e Element) string {
	normalized := strings.ToLower(question)
	for _, rule := range questionRules {
		if rule.matches(normalized) {
			return rule.answer(e)
		}
	}
	return ""
}
