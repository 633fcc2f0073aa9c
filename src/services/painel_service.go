package services

import (
	"github.com/filadigital/painel-senhas/src/models"
	"github.com/filadigital/painel-senhas/src/repositories"
)

// PainelService serves the administrative reads used by panel frontends.
type PainelService struct {
	repos *repositories.Repos
}

func NewPainelService(repos *repositories.Repos) *PainelService {
	return &PainelService{repos: repos}
}

func (s *PainelService) ListarServicosAtivos() ([]models.Servico, error) {
	return s.repos.Servico.FindAtivos()
}

func (s *PainelService) ListarGuiches() ([]models.Guiche, error) {
	return s.repos.Guiche.FindAll()
}
