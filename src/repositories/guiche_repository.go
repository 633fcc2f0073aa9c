package repositories

import (
	"github.com/filadigital/painel-senhas/src/models"
	"gorm.io/gorm"
)

type GuicheRepo interface {
	FindAll() ([]models.Guiche, error)
	FindDisponiveis() ([]models.Guiche, error)
}

type DBGuicheRepo struct {
	db *gorm.DB
}

func (r *DBGuicheRepo) FindAll() ([]models.Guiche, error) {
	var guiches []models.Guiche
	err := r.db.Order("id asc").Find(&guiches).Error
	return guiches, err
}

func (r *DBGuicheRepo) FindDisponiveis() ([]models.Guiche, error) {
	var guiches []models.Guiche
	err := r.db.Where("is_disponivel = ?", true).Order("id asc").Find(&guiches).Error
	return guiches, err
}
