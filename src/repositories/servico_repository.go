package repositories

import (
	"errors"

	"github.com/filadigital/painel-senhas/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServicoRepo interface {
	Create(servico *models.Servico) error
	// FindByNome returns nil when the service does not exist.
	FindByNome(nome string) (*models.Servico, error)
	// FindByNomeParaAtualizacao locks the service row; issuing inside a
	// transaction serializes concurrent sequence computation per service.
	FindByNomeParaAtualizacao(nome string) (*models.Servico, error)
	FindAtivos() ([]models.Servico, error)
}

type DBServicoRepo struct {
	db *gorm.DB
}

func (r *DBServicoRepo) Create(servico *models.Servico) error {
	return r.db.Create(servico).Error
}

func (r *DBServicoRepo) FindByNome(nome string) (*models.Servico, error) {
	return r.findByNome(r.db, nome)
}

func (r *DBServicoRepo) FindByNomeParaAtualizacao(nome string) (*models.Servico, error) {
	return r.findByNome(r.db.Clauses(clause.Locking{Strength: "UPDATE"}), nome)
}

func (r *DBServicoRepo) findByNome(tx *gorm.DB, nome string) (*models.Servico, error) {
	var servico models.Servico
	err := tx.Where("nome = ?", nome).First(&servico).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &servico, nil
}

func (r *DBServicoRepo) FindAtivos() ([]models.Servico, error) {
	var servicos []models.Servico
	err := r.db.Where("ativo = ?", true).Order("nome asc").Find(&servicos).Error
	return servicos, err
}
