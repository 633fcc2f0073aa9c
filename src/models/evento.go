package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AcaoGerada        = "GERADA"
	AcaoChamada       = "CHAMADA"
	AcaoFinalizada    = "FINALIZADA"
	AcaoReencaminhada = "REENCAMINHADA"
)

// EventoSenha records one lifecycle transition with JSON snapshots of the
// ticket before and after. Written in the same transaction as the transition.
type EventoSenha struct {
	ID          uint           `gorm:"primaryKey" json:"id_evento"`
	SenhaID     uint           `gorm:"not null;index" json:"id_senha"`
	Acao        string         `gorm:"size:30;not null" json:"acao"`
	DadosAntes  datatypes.JSON `json:"dados_antes"`
	DadosDepois datatypes.JSON `json:"dados_depois"`
	CriadoEm    time.Time      `gorm:"autoCreateTime;index" json:"criado_em"`
}

func (EventoSenha) TableName() string {
	return "eventos_senha"
}
