package repositories

import (
	"errors"

	"github.com/filadigital/painel-senhas/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SenhaRepo interface {
	Create(senha *models.Senha) error
	Update(senha *models.Senha) error
	// FilaAguardando returns the waiting queue ordered by issuance time.
	FilaAguardando() ([]models.Senha, error)
	// UltimasChamadas returns the most recently called tickets (CHAMANDO or
	// ATENDIDA), called-time descending.
	UltimasChamadas(limit int) ([]models.Senha, error)
	// SenhaAtual returns the ticket currently being called, or nil.
	SenhaAtual() (*models.Senha, error)
	// SenhaAtualParaAtualizacao is SenhaAtual with a row lock, for use inside
	// a transaction that will mutate the ticket.
	SenhaAtualParaAtualizacao() (*models.Senha, error)
	// ProximaDaFila picks the next AGUARDANDO ticket (priority first, then
	// FIFO by issuance time) and locks it. Returns nil when the queue is empty.
	ProximaDaFila() (*models.Senha, error)
	// MaxSequencial returns the highest sequence number issued for a service,
	// 0 when the service never issued a ticket.
	MaxSequencial(servicoID uint) (int, error)
}

type DBSenhaRepo struct {
	db *gorm.DB
}

func (r *DBSenhaRepo) Create(senha *models.Senha) error {
	return r.db.Create(senha).Error
}

func (r *DBSenhaRepo) Update(senha *models.Senha) error {
	return r.db.Save(senha).Error
}

func (r *DBSenhaRepo) FilaAguardando() ([]models.Senha, error) {
	var senhas []models.Senha
	err := r.db.
		Where("status = ?", models.StatusAguardando).
		Preload("Servico").
		Order("data_hora_emissao asc").
		Find(&senhas).Error
	return senhas, err
}

func (r *DBSenhaRepo) UltimasChamadas(limit int) ([]models.Senha, error) {
	var senhas []models.Senha
	err := r.db.
		Where("status IN ?", []models.SenhaStatus{models.StatusChamando, models.StatusAtendida}).
		Preload("Servico").
		Order("data_hora_chamada desc").
		Limit(limit).
		Find(&senhas).Error
	return senhas, err
}

func (r *DBSenhaRepo) SenhaAtual() (*models.Senha, error) {
	return r.firstByStatus(r.db)
}

func (r *DBSenhaRepo) SenhaAtualParaAtualizacao() (*models.Senha, error) {
	return r.firstByStatus(r.db.Clauses(clause.Locking{Strength: "UPDATE"}))
}

func (r *DBSenhaRepo) firstByStatus(tx *gorm.DB) (*models.Senha, error) {
	var senha models.Senha
	err := tx.
		Where("status = ?", models.StatusChamando).
		Preload("Servico").
		First(&senha).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &senha, nil
}

func (r *DBSenhaRepo) ProximaDaFila() (*models.Senha, error) {
	var senha models.Senha
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ?", models.StatusAguardando).
		Preload("Servico").
		Order("is_prioritaria desc, data_hora_emissao asc").
		First(&senha).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &senha, nil
}

func (r *DBSenhaRepo) MaxSequencial(servicoID uint) (int, error) {
	var max *int
	err := r.db.Model(&models.Senha{}).
		Where("servico_id = ?", servicoID).
		Select("MAX(numero_sequencial)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
