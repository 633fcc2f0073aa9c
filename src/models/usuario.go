package models

import "golang.org/x/crypto/bcrypt"

const (
	TipoAtendente     = "ATENDENTE"
	TipoAdministrador = "ADMINISTRADOR"
)

// Usuario is an operator (atendente) or administrator. Only the identity
// reference matters to the queue engine; credential checks live elsewhere.
type Usuario struct {
	ID            uint   `gorm:"primaryKey" json:"id_usuario"`
	Nome          string `gorm:"size:100;not null" json:"nome"`
	Login         string `gorm:"size:50;not null;unique" json:"login"`
	SenhaHash     string `gorm:"size:255;not null" json:"-"`
	Tipo          string `gorm:"size:20;not null" json:"tipo"`
	Ativo         bool   `gorm:"not null;default:true" json:"ativo"`
	GuicheAtualID *uint  `json:"id_guiche_atual"`

	GuicheAtual *Guiche `gorm:"foreignKey:GuicheAtualID" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

func (u *Usuario) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.SenhaHash = string(hash)
	return nil
}

func (u *Usuario) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(password)) == nil
}
