package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mestraaurora/aurora-api/internal/observability"
)

// StrategyTemplate names the offline lookup-table strategy.
const StrategyTemplate = "template"

// TemplateReadingGenerator assembles a reading from the element tables. It performs no I/O.
type TemplateReadingGenerator struct{}

// NewTemplateReadingGenerator constructs the template strategy.
func NewTemplateReadingGenerator() *TemplateReadingGenerator {
	return &TemplateReadingGenerator{}
}

// Strategy implements ReadingGenerator.
func (g *TemplateReadingGenerator) Strategy() string {
	return StrategyTemplate
}

// Generate implements ReadingGenerator; it never fails.
func (g *TemplateReadingGenerator) Generate(_ context.Context, input ReadingInput) (string, error) {
	observability.Readings().WithLabelValues(StrategyTemplate).Inc()
	return renderTemplateReading(input), nil
}

func renderTemplateReading(in ReadingInput) string {
	year, month, day := in.BirthDate.Date()
	e := ElementForYear(year)

	var b strings.Builder

	b.WriteString("🔮 Leitura Completa de SaJu – Mestra Aurora\n\n")
	fmt.Fprintf(&b, "Querido(a) **%s**, com base nos Quatro Pilares do Destino Coreano calculados a partir da sua data de nascimento (%d/%d/%d)", in.Name, day, int(month), year)
	if in.BirthTime != "" {
		fmt.Fprintf(&b, ", às %s horas", in.BirthTime)
	}
	fmt.Fprintf(&b, ", identifiquei que você é uma pessoa guiada pelo elemento **%s**.\n\n", e.Name)

	b.WriteString("## 🌟 Identidade Energética\n")
	fmt.Fprintf(&b, "Sua essência é como %s. Isso indica alguém %s, mas que precisa %s.\n\n", e.Metaphor, e.Traits, e.Challenge)

	b.WriteString("## 🔮 Distribuição dos 5 Elementos\n")
	fmt.Fprintf(&b, "No seu mapa energético, o elemento dominante é **%s**, seguido por:\n", e.Name)
	for _, s := range elementSummaries {
		fmt.Fprintf(&b, "- **%s**: %s\n", s.name, s.summary)
	}
	b.WriteString("\nEssa combinação única cria o seu perfil energético exclusivo.\n\n")

	b.WriteString("## 🧠 Personalidade e Estilo de Vida\n")
	b.WriteString("Sua personalidade é marcada por qualidades como determinação e empatia. Você tem talento para compreender os outros e encontrar soluções práticas para problemas complexos. ")
	b.WriteString("Evite a tendência de assumir todas as responsabilidades sozinho, pois isso pode gerar estresse desnecessário. ")
	fmt.Fprintf(&b, "Seu estilo de vida tende a ser %s.\n\n", e.Lifestyle)

	b.WriteString("## 💼 Carreira, Dinheiro e Oportunidades\n")
	fmt.Fprintf(&b, "Sua carreira prosperará em ambientes que valorizam a %s. ", e.CareerValues)
	fmt.Fprintf(&b, "Profissões relacionadas a %s têm grande potencial para você. ", e.Professions)
	fmt.Fprintf(&b, "Períodos de maior sorte financeira ocorrerão principalmente nos meses de %s.\n\n", e.FavorableMonths)

	b.WriteString("## 💘 Amor e Relacionamentos\n")
	if in.MaritalStatus != "" {
		fmt.Fprintf(&b, "No seu atual estágio %s", relationshipStage(in.MaritalStatus))
		if in.RelationshipDuration != "" {
			fmt.Fprintf(&b, ", há %s", in.RelationshipDuration)
		}
		b.WriteString(", é importante manter um equilíbrio entre independência e conexão emocional.\n")
	} else {
		b.WriteString("Você busca relações profundas e significativas. ")
		fmt.Fprintf(&b, "Seu parceiro ideal será alguém que valorize a %s.\n", e.PartnerValues)
	}
	fmt.Fprintf(&b, "Evite %s, pois isso pode afastar pessoas importantes.\n\n", e.LoveAvoid)

	b.WriteString("## 🩺 Saúde Energética\n")
	fmt.Fprintf(&b, "Cuide especialmente de %s. ", e.HealthFocus)
	b.WriteString("Pratique atividades regulares, mantenha uma alimentação equilibrada e reserve momentos para descanso. ")
	b.WriteString("Evite excesso de trabalho e estresse acumulado. ")
	b.WriteString("A meditação e práticas de mindfulness são especialmente benéficas para o seu tipo energético.\n\n")

	b.WriteString("## 📅 Previsão do Próximo Ano\n")
	fmt.Fprintf(&b, "Nos próximos 12 meses, você terá oportunidades especiais nos meses de %s. ", e.LuckyPeriod)
	fmt.Fprintf(&b, "Fique atento a novas conexões que podem surgir entre %s. ", e.ConnectionPeriod)
	fmt.Fprintf(&b, "Evite grandes decisões nos meses de %s.\n\n", e.CautionPeriod)

	b.WriteString("## ⏳ Tendências dos Próximos 5 Anos\n")
	fmt.Fprintf(&b, "Nos próximos cinco anos, você passará por ciclos de %s. ", e.Cycle)
	fmt.Fprintf(&b, "Será um período propício para %s.\n\n", e.CycleFocus)

	b.WriteString("## 🎨 Cores, Direções e Ambientes Favoráveis\n")
	b.WriteString("Para harmonizar sua energia:\n")
	fmt.Fprintf(&b, "- **Cores**: %s\n", e.Colors)
	fmt.Fprintf(&b, "- **Números da sorte**: %s\n", e.Numbers)
	fmt.Fprintf(&b, "- **Direções favoráveis**: %s\n", e.Directions)
	fmt.Fprintf(&b, "- **Ambientes**: Espaços %s\n\n", e.Environment)

	if in.Question != "" {
		b.WriteString("## ❓ Sobre Sua Pergunta\n")
		fmt.Fprintf(&b, "\"%s\"\n", in.Question)
		fmt.Fprintf(&b, "%s\n\n", answerQuestion(in.Question, e))
	}

	b.WriteString("## 💫 Conclusão\n")
	fmt.Fprintf(&b, "Querido(a) %s, esta leitura é um convite para que você se conecte com sua essência mais profunda. ", in.Name)
	b.WriteString("Os ciclos energéticos que descrevi são oportunidades para seu crescimento, não sentenças imutáveis. ")
	b.WriteString("Lembre-se de que você tem livre-arbítrio para criar a vida que deseja. ")
	fmt.Fprintf(&b, "O elemento %s em você carrega a sabedoria de %s. ", e.Name, e.Wisdom)
	b.WriteString("Confie em sua jornada e continue cultivando sua luz interior.\n\n")
	b.WriteString("_Que os ventos do destino soprem a seu favor._\n")
	b.WriteString("_Mestra Aurora_")

	return b.String()
}
