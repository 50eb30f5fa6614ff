package models

import "time"

// Lead stores one accepted reading request. Rows are append-only and email is not unique.
type Lead struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"column:nome;type:text;not null" json:"nome"`
	Email            string    `gorm:"type:text;not null;index" json:"email"`
	Phone            *string   `gorm:"column:telefone;type:text" json:"telefone,omitempty"`
	Sex              string    `gorm:"column:sexo;type:text;not null" json:"sexo"`
	BirthDate        time.Time `gorm:"column:data_nascimento;type:date;not null" json:"data_nascimento"`
	MaritalStatus    *string   `gorm:"column:estado_civil;type:text" json:"estado_civil,omitempty"`
	Question         *string   `gorm:"column:pergunta;type:text" json:"pergunta,omitempty"`
	MarketingConsent bool      `gorm:"not null" json:"marketing_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName keeps the table name used by the existing migrations.
func (Lead) TableName() string {
	return "leads"
}
