package dto

// ReadingRequest is the payload accepted by the reading endpoint.
// Field order matters: validation errors are reported in declaration order.
type ReadingRequest struct {
	Nome                string      `json:"nome" validate:"notblank"`
	Sexo                string      `json:"sexo" validate:"required,oneof=masculino feminino"`
	DataNascimento      string      `json:"data_nascimento" validate:"notblank,birthdate"`
	Email               string      `json:"email" validate:"notblank,simple_email"`
	MarketingConsent    interface{} `json:"marketing_consent" validate:"required,consent"`
	Telefone            string      `json:"telefone"`
	TipoCalendario      string      `json:"tipo_calendario"`
	HoraNascimento      string      `json:"hora_nascimento"`
	EstadoCivil         string      `json:"estado_civil"`
	TempoRelacionamento string      `json:"tempo_relacionamento"`
	Pergunta            string      `json:"pergunta"`
}

// ReadingResponse is returned when a reading was generated.
type ReadingResponse struct {
	Success   bool   `json:"success"`
	Leitura   string `json:"leitura"`
	EmailSent bool   `json:"email_sent"`
}
