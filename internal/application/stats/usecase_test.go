package stats

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users []*entity.User
}

func (r *stubUserRepo) Create(u *entity.User) error { r.users = append(r.users, u); return nil }

func (r *stubUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }

func (r *stubUserRepo) GetByName(name string) (*entity.User, error) { return nil, nil }

func (r *stubUserRepo) GetEmployeeByName(name string) (*entity.User, error) { return nil, nil }

func (r *stubUserRepo) GetManagerByCompany(company string) (*entity.User, error) { return nil, nil }

func (r *stubUserRepo) ListEmployeesByCompany(company string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Company == company && u.Role == entity.RoleEmployee {
			out = append(out, u)
		}
	}
	return out, nil
}

// stubStatsRepo devuelve valores fijos configurados por el test.
type stubStatsRepo struct {
	given        int64
	givenTo      map[string]int64
	forMember    map[string]int64
	ackForMember map[string]int64
	pendingReq   map[int64]int64
	totalReq     int64
	completedReq int64
	avg          decimal.Decimal
	monthly      []repository.MonthSentimentCount
}

func (r *stubStatsRepo) CountFeedbackGiven(_ context.Context, _ int64) (int64, error) {
	return r.given, nil
}

func (r *stubStatsRepo) CountFeedbackGivenTo(_ context.Context, _ int64, member string) (int64, error) {
	return r.givenTo[member], nil
}

func (r *stubStatsRepo) CountFeedbackForMember(_ context.Context, member string) (int64, error) {
	return r.forMember[member], nil
}

func (r *stubStatsRepo) CountAcknowledgedForMember(_ context.Context, member string) (int64, error) {
	return r.ackForMember[member], nil
}

func (r *stubStatsRepo) CountPendingAckByManager(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (r *stubStatsRepo) CountPendingAckForMember(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (r *stubStatsRepo) CountRequests(_ context.Context, _ int64) (total, completed int64, err error) {
	return r.totalReq, r.completedReq, nil
}

func (r *stubStatsRepo) CountPendingRequests(_ context.Context, employeeID, _ int64) (int64, error) {
	return r.pendingReq[employeeID], nil
}

func (r *stubStatsRepo) AverageSentimentByManager(_ context.Context, _ int64) (decimal.Decimal, error) {
	return r.avg, nil
}

func (r *stubStatsRepo) AverageSentimentForMember(_ context.Context, _ string) (decimal.Decimal, error) {
	return r.avg, nil
}

func (r *stubStatsRepo) MonthlySentimentCounts(_ context.Context, _ int64, _ string) ([]repository.MonthSentimentCount, error) {
	return r.monthly, nil
}

func newStatsFixture(statsRepo *stubStatsRepo) *UseCase {
	users := &stubUserRepo{users: []*entity.User{
		{ID: 1, Name: "Carlos Ruiz", Company: "Acme", Role: entity.RoleManager},
		{ID: 2, Name: "Ana Gómez", Company: "Acme", Role: entity.RoleEmployee},
		{ID: 3, Name: "Luis Pérez", Company: "Acme", Role: entity.RoleEmployee},
	}}
	uc := NewUseCase(users, statsRepo)
	// Julio 2024: los 12 pasos de 30 días caen todos en meses distintos,
	// así el test no depende del artefacto de etiquetas duplicadas.
	uc.now = func() time.Time { return time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// SentimentTrends
// ──────────────────────────────────────────────────────────────────────────────

func TestSentimentTrends_ManagerInexistente_Retorna404(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})
	_, err := uc.SentimentTrends(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrManagerNotFound)
}

func TestSentimentTrends_EmpleadoComoManager_Retorna404(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})
	_, err := uc.SentimentTrends(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrManagerNotFound, "un empleado no tiene tendencia de equipo")
}

func TestSentimentTrends_SinDatos_Devuelve12BucketsEnCero(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})

	out, err := uc.SentimentTrends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 12, "siempre 12 buckets aunque no haya feedbacks")

	assert.Equal(t, "2023-08", out[0].Month)
	assert.Equal(t, "2024-07", out[11].Month)
	for _, b := range out {
		assert.Zero(t, b.Positive)
		assert.Zero(t, b.Neutral)
		assert.Zero(t, b.Negative)
	}
}

func TestSentimentTrends_AgregaPorMesYEsCaseInsensitive(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{
		monthly: []repository.MonthSentimentCount{
			{Month: "2024-07", Sentiment: "Positive", Count: 2},
			{Month: "2024-07", Sentiment: "positive", Count: 1},
			{Month: "2024-06", Sentiment: "NEGATIVE", Count: 4},
			{Month: "2024-06", Sentiment: "Neutral", Count: 1},
			// Mes fuera de la ventana: se ignora sin error.
			{Month: "2022-01", Sentiment: "Positive", Count: 7},
		},
	})

	out, err := uc.SentimentTrends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 12)

	current := out[11]
	assert.Equal(t, "2024-07", current.Month)
	assert.Equal(t, int64(3), current.Positive, "la etiqueta del bucket se compara en minúsculas")

	prev := out[10]
	assert.Equal(t, "2024-06", prev.Month)
	assert.Equal(t, int64(4), prev.Negative)
	assert.Equal(t, int64(1), prev.Neutral)

	var totalPositive int64
	for _, b := range out {
		totalPositive += b.Positive
	}
	assert.Equal(t, int64(3), totalPositive, "los meses fuera de ventana no cuentan")
}

// Desde marzo 2024 el paso de 30 días produce "2024-01" dos veces (31-ene y
// 1-ene caen en el mismo mes). Los conteos de enero deben aparecer en AMBOS
// buckets, no solo en uno.
func TestSentimentTrends_EtiquetaDuplicadaRecibeLosConteosEnAmbosBuckets(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{
		monthly: []repository.MonthSentimentCount{
			{Month: "2024-01", Sentiment: "Positive", Count: 2},
			{Month: "2024-01", Sentiment: "Negative", Count: 1},
		},
	})
	uc.now = func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }

	out, err := uc.SentimentTrends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 12)

	require.Equal(t, "2024-01", out[9].Month)
	require.Equal(t, "2024-01", out[10].Month)
	for _, i := range []int{9, 10} {
		assert.Equal(t, int64(2), out[i].Positive, "bucket %d", i)
		assert.Equal(t, int64(1), out[i].Negative, "bucket %d", i)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Roster y métricas de manager
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeesOverview_RosterConContadores(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{
		givenTo:    map[string]int64{"Ana Gómez": 3},
		pendingReq: map[int64]int64{3: 2},
	})

	out, err := uc.EmployeesOverview(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Ana Gómez", out[0].Name)
	assert.Equal(t, int64(3), out[0].GivenFeedbacks)
	assert.Zero(t, out[0].PendingFeedbacks)

	assert.Equal(t, "Luis Pérez", out[1].Name)
	assert.Zero(t, out[1].GivenFeedbacks)
	assert.Equal(t, int64(2), out[1].PendingFeedbacks)
}

func TestEmployeesOverview_ManagerInexistente_Retorna404(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})
	_, err := uc.EmployeesOverview(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrManagerNotFound)
}

// TotalGiven NO valida que el manager exista: un id desconocido devuelve 0.
// Es la asimetría heredada del contrato original y se conserva.
func TestTotalGiven_ManagerDesconocido_DevuelveCero(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})

	out, err := uc.TotalGiven(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, out.TotalFeedbackGiven)
}

func TestTeamResponseRate_RedondeaA2Decimales(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{totalReq: 3, completedReq: 1})

	out, err := uc.TeamResponseRate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 33.33, out.ResponseRate)
}

func TestAverageSentimentByManager(t *testing.T) {
	// La base agrega (5+5+3)/3 y entrega el NUMERIC como decimal.
	uc := newStatsFixture(&stubStatsRepo{avg: decimal.NewFromInt(13).Div(decimal.NewFromInt(3))})

	out, err := uc.AverageSentimentByManager(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4.33, out.AverageSentiment)
}

func TestAverageSentimentByManager_SinFeedbacks_DevuelveCero(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})

	out, err := uc.AverageSentimentByManager(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, out.AverageSentiment)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas de empleado
// ──────────────────────────────────────────────────────────────────────────────

func TestFeedbackReceived_EmpleadoInexistente_Retorna404(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})
	_, err := uc.FeedbackReceived(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestAcknowledgmentRate(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{
		forMember:    map[string]int64{"Ana Gómez": 4},
		ackForMember: map[string]int64{"Ana Gómez": 3},
	})

	out, err := uc.AcknowledgmentRate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 75.0, out.AcknowledgmentRate)
}

func TestAcknowledgmentRate_SinFeedbacks_DevuelveCero(t *testing.T) {
	uc := newStatsFixture(&stubStatsRepo{})

	out, err := uc.AcknowledgmentRate(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, out.AcknowledgmentRate)
}
