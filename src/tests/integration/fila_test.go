package integration

import (
	"errors"
	"sync"
	"testing"

	"github.com/filadigital/painel-senhas/src/db"
	"github.com/filadigital/painel-senhas/src/dto"
	"github.com/filadigital/painel-senhas/src/internal/testutils"
	"github.com/filadigital/painel-senhas/src/models"
	"github.com/filadigital/painel-senhas/src/repositories"
	"github.com/filadigital/painel-senhas/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type nullNotificador struct{}

func (nullNotificador) Publicar(string, any) {}

func setupService(t *testing.T) (*services.SenhaService, *gorm.DB) {
	t.Helper()

	gormDB := testutils.SetupPostgres(t)
	require.NoError(t, db.Migrate(gormDB))
	require.NoError(t, db.Seed(gormDB))

	// Reset ticket state; seeds (servicos, guiches, usuarios) stay.
	require.NoError(t, gormDB.Exec("TRUNCATE senhas, eventos_senha RESTART IDENTITY").Error)

	repos := repositories.New(gormDB)
	txr := repositories.NewTxRunner(gormDB)
	return services.NewSenhaService(repos, txr, nullNotificador{}), gormDB
}

func contarPorStatus(t *testing.T, gormDB *gorm.DB, status models.SenhaStatus) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gormDB.Model(&models.Senha{}).Where("status = ?", status).Count(&count).Error)
	return count
}

func TestCicloCompletoDeAtendimento(t *testing.T) {
	svc, gormDB := setupService(t)

	// Two normal tickets, then a priority one issued later.
	s1, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
	require.NoError(t, err)
	assert.Equal(t, "A-001", s1.SenhaCompleta)

	s2, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
	require.NoError(t, err)
	assert.Equal(t, "A-002", s2.SenhaCompleta)

	prio, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Prioritário", Prioritaria: true})
	require.NoError(t, err)
	assert.Equal(t, "P-001", prio.SenhaCompleta)

	// Priority wins even though it arrived last.
	chamada, err := svc.ChamarProxima(dto.ChamarProximaDTO{})
	require.NoError(t, err)
	assert.Equal(t, "P-001", chamada.SenhaCompleta)
	assert.Equal(t, models.StatusChamando, chamada.Status)
	require.NotNil(t, chamada.DataHoraChamada)
	assert.False(t, chamada.DataHoraChamada.Before(chamada.DataHoraEmissao))

	// Calling again auto-closes the dangling call; FIFO picks A-001.
	chamada, err = svc.ChamarProxima(dto.ChamarProximaDTO{})
	require.NoError(t, err)
	assert.Equal(t, "A-001", chamada.SenhaCompleta)

	var fechada models.Senha
	require.NoError(t, gormDB.Where("senha_completa = ?", "P-001").First(&fechada).Error)
	assert.Equal(t, models.StatusAtendida, fechada.Status)
	require.NotNil(t, fechada.DataHoraFimAtendimento)
	assert.False(t, fechada.DataHoraFimAtendimento.Before(*fechada.DataHoraChamada))

	// Never more than one CHAMANDO row.
	assert.LessOrEqual(t, contarPorStatus(t, gormDB, models.StatusChamando), int64(1))

	require.NoError(t, svc.FinalizarAtendimento())
	assert.Equal(t, int64(0), contarPorStatus(t, gormDB, models.StatusChamando))

	err = svc.FinalizarAtendimento()
	assert.True(t, errors.Is(err, services.ErrSemAtendimento))

	estado, err := svc.Estado()
	require.NoError(t, err)
	assert.Len(t, estado.Fila, 1) // A-002 still waiting
	assert.Nil(t, estado.SenhaAtual)
	assert.Len(t, estado.SenhasChamadas, 2)

	// Audit trail recorded every transition.
	var eventos int64
	require.NoError(t, gormDB.Model(&models.EventoSenha{}).Count(&eventos).Error)
	assert.Equal(t, int64(7), eventos) // 3 issued + 2 called + 2 finished
}

func TestReencaminharMantemPosicaoNaFila(t *testing.T) {
	svc, gormDB := setupService(t)

	s1, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
	require.NoError(t, err)
	_, err = svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
	require.NoError(t, err)

	guiche := uint(2)
	_, err = svc.ChamarProxima(dto.ChamarProximaDTO{Guiche: &guiche})
	require.NoError(t, err)

	require.NoError(t, svc.ReencaminharSenha())

	var devolvida models.Senha
	require.NoError(t, gormDB.Where("senha_completa = ?", s1.SenhaCompleta).First(&devolvida).Error)
	assert.Equal(t, models.StatusAguardando, devolvida.Status)
	assert.Nil(t, devolvida.DataHoraChamada)
	assert.Nil(t, devolvida.GuicheAtendimentoID)
	require.NotNil(t, devolvida.OrigemReencaminhamentoID)
	assert.Equal(t, uint(2), *devolvida.OrigemReencaminhamentoID)

	// The ticket kept its issuance time, so it is re-selected before A-002.
	chamada, err := svc.ChamarProxima(dto.ChamarProximaDTO{})
	require.NoError(t, err)
	assert.Equal(t, s1.SenhaCompleta, chamada.SenhaCompleta)
}

func TestEmissaoConcorrenteNaoDuplicaSequenciais(t *testing.T) {
	svc, gormDB := setupService(t)

	const emissoes = 10

	var wg sync.WaitGroup
	errs := make(chan error, emissoes)
	for i := 0; i < emissoes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var sequenciais []int
	require.NoError(t, gormDB.Model(&models.Senha{}).
		Order("numero_sequencial asc").
		Pluck("numero_sequencial", &sequenciais).Error)

	require.Len(t, sequenciais, emissoes)
	for i, seq := range sequenciais {
		assert.Equal(t, i+1, seq, "sequence numbers must be strictly increasing with no duplicates")
	}
}

func TestChamadasConcorrentesNaoDuplicamSelecao(t *testing.T) {
	svc, gormDB := setupService(t)

	for i := 0; i < 4; i++ {
		_, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ChamarProxima(dto.ChamarProximaDTO{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			// Losing the race on the locked row is acceptable; selecting the
			// same ticket twice is not.
			require.ErrorIs(t, err, services.ErrFilaVazia)
		}
	}

	// Whatever the interleaving, at most one ticket is CHAMANDO.
	assert.Equal(t, int64(1), contarPorStatus(t, gormDB, models.StatusChamando))
	assert.LessOrEqual(t, contarPorStatus(t, gormDB, models.StatusAtendida), int64(1))
}

func TestEstadoIdempotente(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GerarSenha(dto.GerarSenhaDTO{Servico: "Atendimento Geral"})
	require.NoError(t, err)

	primeiro, err := svc.Estado()
	require.NoError(t, err)
	segundo, err := svc.Estado()
	require.NoError(t, err)
	assert.Equal(t, primeiro, segundo)
}
