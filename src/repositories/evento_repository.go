package repositories

import (
	"github.com/filadigital/painel-senhas/src/models"
	"gorm.io/gorm"
)

type EventoRepo interface {
	Create(evento *models.EventoSenha) error
	FindBySenhaID(senhaID uint) ([]models.EventoSenha, error)
}

type DBEventoRepo struct {
	db *gorm.DB
}

func (r *DBEventoRepo) Create(evento *models.EventoSenha) error {
	return r.db.Create(evento).Error
}

func (r *DBEventoRepo) FindBySenhaID(senhaID uint) ([]models.EventoSenha, error) {
	var eventos []models.EventoSenha
	err := r.db.Where("senha_id = ?", senhaID).Order("criado_em asc").Find(&eventos).Error
	return eventos, err
}
