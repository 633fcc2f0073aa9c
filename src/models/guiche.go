package models

// Guiche is a service point (counter) where tickets are attended.
type Guiche struct {
	ID           uint   `gorm:"primaryKey" json:"id_guiche"`
	Nome         string `gorm:"size:100;not null" json:"nome"`
	Descricao    string `gorm:"size:255" json:"descricao"`
	IsDisponivel bool   `gorm:"not null;default:true" json:"is_disponivel"`
}

func (Guiche) TableName() string {
	return "guiches"
}
