package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/filadigital/painel-senhas/src/config"
	"github.com/filadigital/painel-senhas/src/dto"
	"github.com/filadigital/painel-senhas/src/models"
	"github.com/filadigital/painel-senhas/src/repositories"
)

const (
	EventoFilaAtualizada = "fila_atualizada"
	EventoSenhaChamada   = "senha_chamada"

	// How many recently called tickets the panel shows.
	limiteSenhasChamadas = 5

	localizacaoPadrao = "Não especificado"
)

// Notificador pushes queue snapshots to connected displays. Delivery is
// best-effort; a failed subscriber never fails the triggering operation.
type Notificador interface {
	Publicar(evento string, dados any)
}

// SenhaService is the ticket lifecycle engine. Each mutating operation runs
// inside one transaction and broadcasts the committed state afterwards, so
// subscribers never observe events out of order with commits.
type SenhaService struct {
	repos *repositories.Repos
	txr   repositories.TxRunner
	notif Notificador
	agora func() time.Time
}

func NewSenhaService(repos *repositories.Repos, txr repositories.TxRunner, notif Notificador) *SenhaService {
	return &SenhaService{
		repos: repos,
		txr:   txr,
		notif: notif,
		agora: time.Now,
	}
}

// GerarSenha issues a new ticket for the named service. An unknown service is
// created on the fly with a one-letter prefix derived from its name, matching
// the behavior kiosk clients rely on. The sequence number is computed inside
// the insertion transaction, with the service row locked, so concurrent
// issuance never duplicates a number.
func (s *SenhaService) GerarSenha(input dto.GerarSenhaDTO) (*models.Senha, error) {
	nome := strings.TrimSpace(input.Servico)
	if nome == "" {
		return nil, ErrServicoNaoInformado
	}

	localizacao := input.Localizacao
	if localizacao == "" {
		localizacao = localizacaoPadrao
	}

	var senha *models.Senha
	err := s.txr.InTx(func(r *repositories.Repos) error {
		servico, err := r.Servico.FindByNomeParaAtualizacao(nome)
		if err != nil {
			return fmt.Errorf("buscar serviço: %w", err)
		}
		if servico == nil {
			servico = &models.Servico{
				Nome:         nome,
				PrefixoSenha: prefixoPara(nome),
				Ativo:        true,
			}
			if err := r.Servico.Create(servico); err != nil {
				return fmt.Errorf("criar serviço: %w", err)
			}
			log.Printf("Serviço %q não encontrado, criado com prefixo %q", nome, servico.PrefixoSenha)
		}

		ultimo, err := r.Senha.MaxSequencial(servico.ID)
		if err != nil {
			return fmt.Errorf("buscar último sequencial: %w", err)
		}
		sequencial := ultimo + 1

		senha = &models.Senha{
			ServicoID:        servico.ID,
			NumeroSequencial: sequencial,
			Prefixo:          servico.PrefixoSenha,
			SenhaCompleta:    fmt.Sprintf("%s-%03d", servico.PrefixoSenha, sequencial),
			Status:           models.StatusAguardando,
			IsPrioritaria:    input.Prioritaria,
			DataHoraEmissao:  s.agora().UTC(),
			Localizacao:      localizacao,
		}
		if err := r.Senha.Create(senha); err != nil {
			return fmt.Errorf("inserir senha: %w", err)
		}
		senha.Servico = *servico

		return registrarEvento(r, senha.ID, models.AcaoGerada, nil, senha)
	})
	if err != nil {
		return nil, err
	}

	s.publicarFila()
	return senha, nil
}

// ChamarProxima moves the best-ranked waiting ticket to CHAMANDO. Priority
// tickets win over non-priority ones regardless of arrival; ties break FIFO
// by issuance time. A ticket still CHAMANDO from a previous call is closed as
// ATENDIDA first, keeping at most one active call in the store.
func (s *SenhaService) ChamarProxima(input dto.ChamarProximaDTO) (*models.Senha, error) {
	guiche := config.GuichePadraoID
	if input.Guiche != nil {
		guiche = *input.Guiche
	}
	atendente := config.AtendentePadraoID
	if input.Atendente != nil {
		atendente = *input.Atendente
	}

	var chamada *models.Senha
	err := s.txr.InTx(func(r *repositories.Repos) error {
		proxima, err := r.Senha.ProximaDaFila()
		if err != nil {
			return fmt.Errorf("selecionar próxima senha: %w", err)
		}
		if proxima == nil {
			return ErrFilaVazia
		}

		anterior, err := r.Senha.SenhaAtualParaAtualizacao()
		if err != nil {
			return fmt.Errorf("buscar senha em atendimento: %w", err)
		}
		if anterior != nil {
			antes := *anterior
			fim := s.agora().UTC()
			anterior.Status = models.StatusAtendida
			anterior.DataHoraFimAtendimento = &fim
			if err := r.Senha.Update(anterior); err != nil {
				return fmt.Errorf("finalizar atendimento anterior: %w", err)
			}
			if err := registrarEvento(r, anterior.ID, models.AcaoFinalizada, &antes, anterior); err != nil {
				return err
			}
		}

		antes := *proxima
		momento := s.agora().UTC()
		proxima.Status = models.StatusChamando
		proxima.DataHoraChamada = &momento
		proxima.GuicheAtendimentoID = &guiche
		proxima.AtendenteID = &atendente
		if err := r.Senha.Update(proxima); err != nil {
			return fmt.Errorf("chamar senha: %w", err)
		}
		if err := registrarEvento(r, proxima.ID, models.AcaoChamada, &antes, proxima); err != nil {
			return err
		}

		chamada = proxima
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publicarChamada()
	s.publicarFila()
	return chamada, nil
}

// FinalizarAtendimento closes the ticket currently being called.
func (s *SenhaService) FinalizarAtendimento() error {
	err := s.txr.InTx(func(r *repositories.Repos) error {
		atual, err := r.Senha.SenhaAtualParaAtualizacao()
		if err != nil {
			return fmt.Errorf("buscar senha em atendimento: %w", err)
		}
		if atual == nil {
			return ErrSemAtendimento
		}

		antes := *atual
		fim := s.agora().UTC()
		atual.Status = models.StatusAtendida
		atual.DataHoraFimAtendimento = &fim
		if err := r.Senha.Update(atual); err != nil {
			return fmt.Errorf("finalizar atendimento: %w", err)
		}
		return registrarEvento(r, atual.ID, models.AcaoFinalizada, &antes, atual)
	})
	if err != nil {
		return err
	}

	s.publicarChamada()
	s.publicarFila()
	return nil
}

// ReencaminharSenha sends the ticket being called back to the queue. The
// issuance timestamp is untouched, so the ticket resumes its original arrival
// position instead of moving to the tail; the counter it left is recorded as
// the requeue origin.
func (s *SenhaService) ReencaminharSenha() error {
	err := s.txr.InTx(func(r *repositories.Repos) error {
		atual, err := r.Senha.SenhaAtualParaAtualizacao()
		if err != nil {
			return fmt.Errorf("buscar senha em atendimento: %w", err)
		}
		if atual == nil {
			return ErrSemAtendimento
		}

		antes := *atual
		atual.Status = models.StatusAguardando
		atual.OrigemReencaminhamentoID = atual.GuicheAtendimentoID
		atual.DataHoraChamada = nil
		atual.GuicheAtendimentoID = nil
		atual.AtendenteID = nil
		if err := r.Senha.Update(atual); err != nil {
			return fmt.Errorf("reencaminhar senha: %w", err)
		}
		return registrarEvento(r, atual.ID, models.AcaoReencaminhada, &antes, atual)
	})
	if err != nil {
		return err
	}

	s.publicarChamada()
	s.publicarFila()
	return nil
}

// Estado returns the full queue snapshot served by GET /estado and pushed to
// websocket clients on connect. Reads are non-transactional; connected
// clients converge through the broadcasts.
func (s *SenhaService) Estado() (*dto.EstadoDTO, error) {
	fila, err := s.repos.Senha.FilaAguardando()
	if err != nil {
		return nil, fmt.Errorf("buscar fila: %w", err)
	}
	atual, err := s.repos.Senha.SenhaAtual()
	if err != nil {
		return nil, fmt.Errorf("buscar senha atual: %w", err)
	}
	chamadas, err := s.repos.Senha.UltimasChamadas(limiteSenhasChamadas)
	if err != nil {
		return nil, fmt.Errorf("buscar senhas chamadas: %w", err)
	}

	estado := &dto.EstadoDTO{
		Fila:           dto.NewSenhaDTOs(fila),
		SenhasChamadas: dto.NewSenhaDTOs(chamadas),
	}
	if atual != nil {
		d := dto.NewSenhaDTO(*atual)
		estado.SenhaAtual = &d
	}
	return estado, nil
}

// publicarFila broadcasts the committed waiting queue. Read back from the
// store after commit, never from pre-commit state.
func (s *SenhaService) publicarFila() {
	fila, err := s.repos.Senha.FilaAguardando()
	if err != nil {
		log.Printf("Erro ao montar evento %s: %v", EventoFilaAtualizada, err)
		return
	}
	s.notif.Publicar(EventoFilaAtualizada, map[string]any{
		"fila": dto.NewSenhaDTOs(fila),
	})
}

// publicarChamada broadcasts the now-serving ticket plus the last called ones.
func (s *SenhaService) publicarChamada() {
	atual, err := s.repos.Senha.SenhaAtual()
	if err != nil {
		log.Printf("Erro ao montar evento %s: %v", EventoSenhaChamada, err)
		return
	}
	chamadas, err := s.repos.Senha.UltimasChamadas(limiteSenhasChamadas)
	if err != nil {
		log.Printf("Erro ao montar evento %s: %v", EventoSenhaChamada, err)
		return
	}

	var atualDTO *dto.SenhaDTO
	if atual != nil {
		d := dto.NewSenhaDTO(*atual)
		atualDTO = &d
	}
	s.notif.Publicar(EventoSenhaChamada, map[string]any{
		"senha_atual":     atualDTO,
		"senhas_chamadas": dto.NewSenhaDTOs(chamadas),
	})
}

func registrarEvento(r *repositories.Repos, senhaID uint, acao string, antes, depois *models.Senha) error {
	evento := &models.EventoSenha{SenhaID: senhaID, Acao: acao}

	if antes != nil {
		dados, err := json.Marshal(antes)
		if err != nil {
			return fmt.Errorf("serializar estado anterior: %w", err)
		}
		evento.DadosAntes = dados
	}
	if depois != nil {
		dados, err := json.Marshal(depois)
		if err != nil {
			return fmt.Errorf("serializar estado novo: %w", err)
		}
		evento.DadosDepois = dados
	}

	if err := r.Evento.Create(evento); err != nil {
		return fmt.Errorf("registrar evento: %w", err)
	}
	return nil
}

// prefixoPara derives a one-letter prefix for services created on the fly.
func prefixoPara(nome string) string {
	runes := []rune(nome)
	return strings.ToUpper(string(runes[0]))
}
