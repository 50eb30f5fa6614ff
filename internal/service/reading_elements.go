package service

// Element is one of the five symbolic categories a reading is built around.
type Element struct {
	Name string

	Metaphor        string
	Traits          string
	Challenge       string
	FavorableMonths string
	HealthFocus     string
	LuckyPeriod     string
	CautionPeriod   string
	Colors          string
	Numbers         string
	Directions      string

	Lifestyle        string
	CareerValues     string
	Professions      string
	PartnerValues    string
	LoveAvoid        string
	LoveNature       string
	ConnectionPeriod string
	Cycle            string
	CycleFocus       string
	Environment      string
	Intuition        string
	Wisdom           string
}

// elements is indexed by year mod 5.
var elements = [5]Element{
	{
		Name:             "Madeira",
		Metaphor:         "a árvore que cresce em direção ao céu",
		Traits:           "criativo, compassivo, com forte capacidade de crescimento",
		Challenge:        "aprender a ser mais paciente",
		FavorableMonths:  "março, abril, maio e junho",
		HealthFocus:      "fígado e sistema nervoso",
		LuckyPeriod:      "primavera (setembro a novembro)",
		CautionPeriod:    "agosto e setembro",
		Colors:           "verde e azul",
		Numbers:          "3, 8",
		Directions:       "leste e sudeste",
		Lifestyle:        "criativo e empreendedor",
		CareerValues:     "crescimento e inovação",
		Professions:      "educação, design, saúde ou meio ambiente",
		PartnerValues:    "crescimento mútuo e liberdade",
		LoveAvoid:        "impaciência e rigidez",
		LoveNature:       "cuidadora",
		ConnectionPeriod: "abril a junho",
		Cycle:            "crescimento e expansão",
		CycleFocus:       "iniciar novos projetos e cultivar relacionamentos",
		Environment:      "verdes e naturais",
		Intuition:        "criativa",
		Wisdom:           "crescimento contínuo e renovação",
	},
	{
		Name:             "Fogo",
		Metaphor:         "a chama que ilumina a escuridão",
		Traits:           "entusiasta, carismático e energético",
		Challenge:        "controlar impulsos",
		FavorableMonths:  "junho, julho, agosto e setembro",
		HealthFocus:      "coração e circulação",
		LuckyPeriod:      "verão (dezembro a fevereiro)",
		CautionPeriod:    "novembro e dezembro",
		Colors:           "vermelho, laranja e roxo",
		Numbers:          "2, 7",
		Directions:       "sul",
		Lifestyle:        "dinâmico e apaixonado",
		CareerValues:     "criatividade e liderança",
		Professions:      "arte, entretenimento, vendas ou empreendedorismo",
		PartnerValues:    "paixão e a aventura",
		LoveAvoid:        "impulsividade e dramatizações",
		LoveNature:       "apaixonada",
		ConnectionPeriod: "julho a setembro",
		Cycle:            "manifestação e expressão",
		CycleFocus:       "lançar iniciativas ousadas e expressar sua autenticidade",
		Environment:      "iluminados e inspiradores",
		Intuition:        "ardente",
		Wisdom:           "transformação através da paixão",
	},
	{
		Name:             "Terra",
		Metaphor:         "o solo fértil que nutre todas as sementes",
		Traits:           "confiável, prática e estável",
		Challenge:        "aprender a relaxar mais",
		FavorableMonths:  "março, junho, setembro e dezembro",
		HealthFocus:      "baço e digestão",
		LuckyPeriod:      "finais de cada estação",
		CautionPeriod:    "junho e julho",
		Colors:           "amarelo, marrom e bege",
		Numbers:          "5, 10",
		Directions:       "centro e sudoeste",
		Lifestyle:        "equilibrado e organizado",
		CareerValues:     "estabilidade e organização",
		Professions:      "gestão, consultoria, educação ou áreas técnicas",
		PartnerValues:    "estabilidade e a comunicação honesta",
		LoveAvoid:        "ciúmes e controle excessivo",
		LoveNature:       "estável",
		ConnectionPeriod: "março, junho, setembro e dezembro",
		Cycle:            "consolidação e colheita",
		CycleFocus:       "construir bases sólidas para projetos de longo prazo",
		Environment:      "acolhedores e organizados",
		Intuition:        "prática",
		Wisdom:           "nutrição e estabilidade",
	},
	{
		Name:             "Metal",
		Metaphor:         "o metal precioso que brilha com pureza",
		Traits:           "disciplinado, decisivo e valorizador da verdade",
		Challenge:        "aprender a ser mais flexível",
		FavorableMonths:  "setembro, outubro, novembro e dezembro",
		HealthFocus:      "pulmões e pele",
		LuckyPeriod:      "outono (março a maio)",
		CautionPeriod:    "fevereiro e março",
		Colors:           "branco, cinza e dourado",
		Numbers:          "4, 9",
		Directions:       "oeste e noroeste",
		Lifestyle:        "metódico e justo",
		CareerValues:     "precisão e excelência",
		Professions:      "finanças, advocacia, engenharia ou consultoria",
		PartnerValues:    "clareza e o respeito",
		LoveAvoid:        "rigidez e frieza",
		LoveNature:       "justa",
		ConnectionPeriod: "outubro a dezembro",
		Cycle:            "refinamento e definição",
		CycleFocus:       "refinar habilidades e buscar excelência",
		Environment:      "claros e minimalistas",
		Intuition:        "clara",
		Wisdom:           "clareza e refinamento",
	},
	{
		Name:             "Água",
		Metaphor:         "a água que flui e adapta",
		Traits:           "intuitivo, sábio e adaptável",
		Challenge:        "aprender a confiar mais nos outros",
		FavorableMonths:  "dezembro, janeiro, fevereiro e março",
		HealthFocus:      "rins e sistema urinário",
		LuckyPeriod:      "inverno (junho a agosto)",
		CautionPeriod:    "maio e junho",
		Colors:           "preto e azul escuro",
		Numbers:          "1, 6",
		Directions:       "norte",
		Lifestyle:        "reflexivo e adaptável",
		CareerValues:     "intuição e pesquisa",
		Professions:      "pesquisa, psicologia, tecnologia ou espiritualidade",
		PartnerValues:    "intimidade e a profundidade",
		LoveAvoid:        "desconfiança e isolamento emocional",
		LoveNature:       "compassiva",
		ConnectionPeriod: "janeiro a março",
		Cycle:            "introspecção e sabedoria",
		CycleFocus:       "aprofundar conhecimentos e desenvolver intuição",
		Environment:      "tranquilos e fluidos",
		Intuition:        "profunda",
		Wisdom:           "fluidez e sabedoria profunda",
	},
}

// elementSummaries is the fixed distribution list printed in every reading.
var elementSummaries = []struct{ name, summary string }{
	{"Fogo", "Paixão e transformação"},
	{"Terra", "Estabilidade e nutrição"},
	{"Metal", "Clareza e precisão"},
	{"Água", "Intuição e fluidez"},
	{"Madeira", "Crescimento e criatividade"},
}

var relationshipStages = map[string]string{
	"solteiro":  "de solteiro(a)",
	"namorando": "de relacionamento",
	"casado":    "de casado(a)",
	"separado":  "de separação",
	"viuvo":     "de viuvez",
}

// ElementIndex maps a birth year onto the element table. Only the year matters.
func ElementIndex(year int) int {
	return ((year % len(elements)) + len(elements)) % len(elements)
}

// ElementForYear returns the element of a birth year.
func ElementForYear(year int) Element {
	return elements[ElementIndex(year)]
}

// ElementNames lists the five element names in table order.
func ElementNames() []string {
	names := make([]string, len(elements))
	for i, e := range elements {
		names[i] = e.Name
	}
	return names
}

func relationshipStage(status string) string {
	if stage, ok := relationshipStages[status]; ok {
		return stage
	}
	return "relacional"
}
