package dto

import (
	"time"

	"github.com/filadigital/painel-senhas/src/models"
)

type GerarSenhaDTO struct {
	Servico     string `json:"servico"`
	Prioritaria bool   `json:"prioritaria"`
	Localizacao string `json:"localizacao"`
}

type ChamarProximaDTO struct {
	Guiche    *uint `json:"guiche"`
	Atendente *uint `json:"atendente"`
}

// SenhaDTO is the serialized ticket shape shared by /estado responses and the
// realtime channel, so both always carry identical fields.
type SenhaDTO struct {
	IDSenha         uint    `json:"id_senha"`
	NumeroSenha     string  `json:"numero_senha"`
	Servico         string  `json:"servico"`
	IsPrioritaria   bool    `json:"is_prioritaria"`
	Status          string  `json:"status"`
	DataHoraEmissao *string `json:"data_hora_emissao"`
	DataHoraChamada *string `json:"data_hora_chamada"`
	Guiche          *uint   `json:"guiche"`
	Localizacao     string  `json:"localizacao"`
}

type EstadoDTO struct {
	Fila           []SenhaDTO `json:"fila"`
	SenhaAtual     *SenhaDTO  `json:"senha_atual"`
	SenhasChamadas []SenhaDTO `json:"senhas_chamadas"`
}

func NewSenhaDTO(s models.Senha) SenhaDTO {
	emissao := s.DataHoraEmissao.UTC().Format(time.RFC3339)
	return SenhaDTO{
		IDSenha:         s.ID,
		NumeroSenha:     s.SenhaCompleta,
		Servico:         s.Servico.Nome,
		IsPrioritaria:   s.IsPrioritaria,
		Status:          string(s.Status),
		DataHoraEmissao: &emissao,
		DataHoraChamada: formatHora(s.DataHoraChamada),
		Guiche:          s.GuicheAtendimentoID,
		Localizacao:     s.Localizacao,
	}
}

// NewSenhaDTOs always returns a non-nil slice so empty queues serialize as [].
func NewSenhaDTOs(senhas []models.Senha) []SenhaDTO {
	out := make([]SenhaDTO, 0, len(senhas))
	for _, s := range senhas {
		out = append(out, NewSenhaDTO(s))
	}
	return out
}

func formatHora(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}
