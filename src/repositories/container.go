package repositories

import "gorm.io/gorm"

type Repos struct {
	Senha   SenhaRepo
	Servico ServicoRepo
	Guiche  GuicheRepo
	Evento  EventoRepo
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Senha:   &DBSenhaRepo{db: db},
		Servico: &DBServicoRepo{db: db},
		Guiche:  &DBGuicheRepo{db: db},
		Evento:  &DBEventoRepo{db: db},
	}
}

// TxRunner scopes a unit of work to one database transaction. Every mutating
// operation of the queue engine runs inside InTx; a returned error rolls the
// whole transaction back.
type TxRunner interface {
	InTx(fn func(r *Repos) error) error
}

type GormTxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{db: db}
}

func (t *GormTxRunner) InTx(fn func(r *Repos) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
