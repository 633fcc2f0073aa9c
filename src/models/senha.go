package models

import "time"

type SenhaStatus string

const (
	StatusAguardando    SenhaStatus = "AGUARDANDO"
	StatusChamando      SenhaStatus = "CHAMANDO"
	StatusAtendida      SenhaStatus = "ATENDIDA"
	StatusPausada       SenhaStatus = "PAUSADA"
	StatusCancelada     SenhaStatus = "CANCELADA"
	StatusReencaminhada SenhaStatus = "REENCAMINHADA"
)

// Senha is one queue entry. SenhaCompleta ("A-007") is immutable and unique
// for the lifetime of the ticket; NumeroSequencial is unique per service.
// Terminal rows (ATENDIDA, CANCELADA) are never deleted.
type Senha struct {
	ID               uint        `gorm:"primaryKey" json:"id_senha"`
	ServicoID        uint        `gorm:"not null;uniqueIndex:idx_senhas_servico_sequencial" json:"id_servico"`
	NumeroSequencial int         `gorm:"not null;uniqueIndex:idx_senhas_servico_sequencial" json:"numero_sequencial"`
	Prefixo          string      `gorm:"size:5;not null" json:"prefixo"`
	SenhaCompleta    string      `gorm:"size:20;not null;unique" json:"senha_completa"`
	Status           SenhaStatus `gorm:"type:varchar(20);not null;default:'AGUARDANDO';index" json:"status"`
	IsPrioritaria    bool        `gorm:"not null;default:false" json:"is_prioritaria"`

	DataHoraEmissao           time.Time  `gorm:"not null;index" json:"data_hora_emissao"`
	DataHoraChamada           *time.Time `json:"data_hora_chamada"`
	DataHoraInicioAtendimento *time.Time `json:"data_hora_inicio_atendimento"`
	DataHoraFimAtendimento    *time.Time `json:"data_hora_fim_atendimento"`

	GuicheAtendimentoID      *uint  `json:"id_guiche_atendimento"`
	AtendenteID              *uint  `json:"id_atendente"`
	Localizacao              string `gorm:"size:255" json:"localizacao"`
	Observacoes              string `gorm:"type:text" json:"observacoes"`
	OrigemReencaminhamentoID *uint  `json:"origem_reencaminhamento"`
	SenhaAnteriorID          *uint  `json:"id_senha_anterior"`

	Servico           Servico  `gorm:"foreignKey:ServicoID" json:"servico"`
	GuicheAtendimento *Guiche  `gorm:"foreignKey:GuicheAtendimentoID" json:"-"`
	Atendente         *Usuario `gorm:"foreignKey:AtendenteID" json:"-"`
	GuicheOrigem      *Guiche  `gorm:"foreignKey:OrigemReencaminhamentoID" json:"-"`
	SenhaAnterior     *Senha   `gorm:"foreignKey:SenhaAnteriorID" json:"-"`
}

func (Senha) TableName() string {
	return "senhas"
}
