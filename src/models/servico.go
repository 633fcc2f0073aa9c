package models

// Servico is a service category offered at the branch. Each service numbers
// its own tickets under a dedicated prefix (e.g. "A" for Atendimento Geral).
type Servico struct {
	ID           uint   `gorm:"primaryKey" json:"id_servico"`
	Nome         string `gorm:"size:100;not null;unique" json:"nome"`
	PrefixoSenha string `gorm:"size:5;not null;unique" json:"prefixo_senha"`
	Ativo        bool   `gorm:"not null;default:true" json:"ativo"`
}

func (Servico) TableName() string {
	return "servicos"
}
