package stats

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

// UseCase agregaciones de solo lectura sobre feedbacks y solicitudes.
//
// Asimetría heredada y conservada a propósito: TotalGiven, PendingAckByManager
// y TeamResponseRate NO validan que el manager exista (devuelven ceros para un
// id desconocido); la tendencia y todas las métricas de empleado sí validan.
type UseCase struct {
	users repository.UserRepository
	stats repository.StatsRepository
	now   func() time.Time
}

// NewUseCase construye el caso de uso de estadísticas.
func NewUseCase(users repository.UserRepository, stats repository.StatsRepository) *UseCase {
	return &UseCase{users: users, stats: stats, now: func() time.Time { return time.Now().UTC() }}
}

// EmployeesOverview roster del manager con contadores por empleado.
func (uc *UseCase) EmployeesOverview(ctx context.Context, managerID int64) ([]dto.EmployeeOverviewDTO, error) {
	mgr, err := uc.manager(managerID)
	if err != nil {
		return nil, err
	}
	employees, err := uc.users.ListEmployeesByCompany(mgr.Company)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeOverviewDTO, 0, len(employees))
	for _, emp := range employees {
		given, err := uc.stats.CountFeedbackGivenTo(ctx, managerID, emp.Name)
		if err != nil {
			return nil, err
		}
		pending, err := uc.stats.CountPendingRequests(ctx, emp.ID, managerID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.EmployeeOverviewDTO{
			ID:               emp.ID,
			Name:             emp.Name,
			PendingFeedbacks: pending,
			GivenFeedbacks:   given,
		})
	}
	return out, nil
}

// TotalGiven total de feedbacks dados por un manager.
func (uc *UseCase) TotalGiven(ctx context.Context, managerID int64) (*dto.TotalFeedbackGivenDTO, error) {
	n, err := uc.stats.CountFeedbackGiven(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return &dto.TotalFeedbackGivenDTO{TotalFeedbackGiven: n}, nil
}

// TeamResponseRate completadas/total de solicitudes hacia el manager, en
// porcentaje con 2 decimales. Sin solicitudes → 0.
func (uc *UseCase) TeamResponseRate(ctx context.Context, managerID int64) (*dto.ResponseRateDTO, error) {
	total, completed, err := uc.stats.CountRequests(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return &dto.ResponseRateDTO{ResponseRate: percentage(completed, total)}, nil
}

// AverageSentimentByManager promedio 1-5 de los feedbacks dados por el manager.
func (uc *UseCase) AverageSentimentByManager(ctx context.Context, managerID int64) (*dto.AverageSentimentDTO, error) {
	avg, err := uc.stats.AverageSentimentByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return &dto.AverageSentimentDTO{AverageSentiment: roundScore(avg)}, nil
}

// PendingAckByManager feedbacks del manager sin acuse de recibo.
func (uc *UseCase) PendingAckByManager(ctx context.Context, managerID int64) (*dto.PendingAckDTO, error) {
	n, err := uc.stats.CountPendingAckByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return &dto.PendingAckDTO{PendingAcknowledgments: n}, nil
}

// FeedbackReceived total de feedbacks recibidos por un empleado.
func (uc *UseCase) FeedbackReceived(ctx context.Context, employeeID int64) (*dto.FeedbackReceivedDTO, error) {
	emp, err := uc.employee(employeeID)
	if err != nil {
		return nil, err
	}
	n, err := uc.stats.CountFeedbackForMember(ctx, emp.Name)
	if err != nil {
		return nil, err
	}
	return &dto.FeedbackReceivedDTO{FeedbackReceived: n}, nil
}

// PendingAckByEmployee feedbacks recibidos sin acuse de recibo.
func (uc *UseCase) PendingAckByEmployee(ctx context.Context, employeeID int64) (*dto.PendingAckDTO, error) {
	emp, err := uc.employee(employeeID)
	if err != nil {
		return nil, err
	}
	n, err := uc.stats.CountPendingAckForMember(ctx, emp.Name)
	if err != nil {
		return nil, err
	}
	return &dto.PendingAckDTO{PendingAcknowledgments: n}, nil
}

// AcknowledgmentRate porcentaje de feedbacks del empleado con acuse, 2 decimales.
func (uc *UseCase) AcknowledgmentRate(ctx context.Context, employeeID int64) (*dto.AckRateDTO, error) {
	emp, err := uc.employee(employeeID)
	if err != nil {
		return nil, err
	}
	total, err := uc.stats.CountFeedbackForMember(ctx, emp.Name)
	if err != nil {
		return nil, err
	}
	acked, err := uc.stats.CountAcknowledgedForMember(ctx, emp.Name)
	if err != nil {
		return nil, err
	}
	return &dto.AckRateDTO{AcknowledgmentRate: percentage(acked, total)}, nil
}

// AverageSentimentByEmployee promedio 1-5 de los feedbacks recibidos.
func (uc *UseCase) AverageSentimentByEmployee(ctx context.Context, employeeID int64) (*dto.AverageSentimentDTO, error) {
	emp, err := uc.employee(employeeID)
	if err != nil {
		return nil, err
	}
	avg, err := uc.stats.AverageSentimentForMember(ctx, emp.Name)
	if err != nil {
		return nil, err
	}
	return &dto.AverageSentimentDTO{AverageSentiment: roundScore(avg)}, nil
}

// SentimentTrends tendencia de los últimos 12 meses del manager: siempre 12
// buckets ordenados del más antiguo al más reciente, con ceros donde no hay
// datos. La etiqueta del sentimiento se compara en minúsculas.
func (uc *UseCase) SentimentTrends(ctx context.Context, managerID int64) ([]dto.SentimentTrendDTO, error) {
	if _, err := uc.manager(managerID); err != nil {
		return nil, err
	}
	months := TrailingMonths(uc.now())
	rows, err := uc.stats.MonthlySentimentCounts(ctx, managerID, months[0])
	if err != nil {
		return nil, err
	}

	// El paso de 30 días puede producir la misma etiqueta en dos buckets
	// consecutivos; los conteos de ese mes se replican en todos los buckets
	// que comparten la etiqueta, igual que en el sistema original.
	buckets := make(map[string][]*dto.SentimentTrendDTO, len(months))
	out := make([]dto.SentimentTrendDTO, len(months))
	for i, m := range months {
		out[i] = dto.SentimentTrendDTO{Month: m}
		buckets[m] = append(buckets[m], &out[i])
	}
	for _, row := range rows {
		targets, ok := buckets[row.Month]
		if !ok {
			// Mes fuera de los 12 buckets por el paso de 30 días; se ignora.
			continue
		}
		for _, b := range targets {
			switch strings.ToLower(row.Sentiment) {
			case "positive":
				b.Positive += row.Count
			case "neutral":
				b.Neutral += row.Count
			case "negative":
				b.Negative += row.Count
			}
		}
	}
	return out, nil
}

func (uc *UseCase) manager(managerID int64) (*entity.User, error) {
	mgr, err := uc.users.GetByID(managerID)
	if err != nil {
		return nil, err
	}
	if mgr == nil || mgr.Role != entity.RoleManager {
		return nil, domain.ErrManagerNotFound
	}
	return mgr, nil
}

func (uc *UseCase) employee(employeeID int64) (*entity.User, error) {
	emp, err := uc.users.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return emp, nil
}
