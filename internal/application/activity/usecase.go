package activity

import (
	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

// recentLimit el panel del manager muestra las últimas 5 actividades.
const recentLimit = 5

// UseCase bitácora de actividad: alta directa y listado reciente por manager.
type UseCase struct {
	logs repository.ActivityLogRepository
}

// NewUseCase construye el caso de uso de bitácora.
func NewUseCase(logs repository.ActivityLogRepository) *UseCase {
	return &UseCase{logs: logs}
}

// Append agrega una entrada a la bitácora. Las entradas nunca se editan.
func (uc *UseCase) Append(in dto.ActivityLogCreateRequest) (*dto.ActivityLogResponse, error) {
	if in.UserID == 0 || in.Action == "" {
		return nil, domain.ErrInvalidInput
	}
	l := &entity.ActivityLog{
		UserID:    in.UserID,
		ManagerID: in.ManagerID,
		Action:    in.Action,
		Target:    in.Target,
		Details:   in.Details,
	}
	if err := uc.logs.Create(l); err != nil {
		return nil, err
	}
	return toResponse(l), nil
}

// RecentByManager últimas 5 entradas del manager, más recientes primero,
// con el nombre del actor resuelto.
func (uc *UseCase) RecentByManager(managerID int64) ([]dto.ManagerActivityResponse, error) {
	rows, err := uc.logs.ListRecentByManager(managerID, recentLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManagerActivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ManagerActivityResponse{
			ActivityLogResponse: *toResponse(&r.Log),
			UserName:            r.UserName,
		})
	}
	return out, nil
}

func toResponse(l *entity.ActivityLog) *dto.ActivityLogResponse {
	return &dto.ActivityLogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		ManagerID: l.ManagerID,
		Action:    l.Action,
		Target:    l.Target,
		Details:   l.Details,
		Timestamp: l.Timestamp,
	}
}
