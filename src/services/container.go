package services

import "github.com/filadigital/painel-senhas/src/repositories"

type Services struct {
	Senha  *SenhaService
	Painel *PainelService
}

func New(repos *repositories.Repos, txr repositories.TxRunner, notif Notificador) *Services {
	return &Services{
		Senha:  NewSenhaService(repos, txr, notif),
		Painel: NewPainelService(repos),
	}
}
