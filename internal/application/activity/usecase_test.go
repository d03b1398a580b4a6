package activity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workvibe-api/internal/application/activity"
	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

type fakeLogRepo struct {
	rows   []*entity.ActivityLog
	nextID int64
}

func (r *fakeLogRepo) Create(l *entity.ActivityLog) error {
	r.nextID++
	l.ID = r.nextID
	l.Timestamp = time.Date(2024, time.June, 1, 0, 0, int(r.nextID), 0, time.UTC)
	cp := *l
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeLogRepo) ListRecentByManager(managerID int64, limit int) ([]repository.ActivityWithActor, error) {
	var out []repository.ActivityWithActor
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		l := r.rows[i]
		if l.ManagerID != nil && *l.ManagerID == managerID {
			out = append(out, repository.ActivityWithActor{Log: *l, UserName: "Ana Gómez"})
		}
	}
	return out, nil
}

func TestAppend_PersisteLaEntrada(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := activity.NewUseCase(repo)

	mgr := int64(1)
	out, err := uc.Append(dto.ActivityLogCreateRequest{
		UserID:    2,
		ManagerID: &mgr,
		Action:    entity.ActionSentFeedback,
		Target:    "Ana Gómez",
		Details:   map[string]any{"feedback_id": int64(7)},
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.False(t, out.Timestamp.IsZero(), "el timestamp lo asigna la persistencia")
	assert.Equal(t, entity.ActionSentFeedback, out.Action)
}

func TestAppend_SinUsuarioOAccion_RetornaError(t *testing.T) {
	uc := activity.NewUseCase(&fakeLogRepo{})

	_, err := uc.Append(dto.ActivityLogCreateRequest{Action: entity.ActionSentFeedback})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Append(dto.ActivityLogCreateRequest{UserID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El panel del manager muestra como máximo las últimas 5 actividades,
// más recientes primero.
func TestRecentByManager_LimitaA5MasRecientes(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := activity.NewUseCase(repo)

	mgr := int64(1)
	for i := 0; i < 8; i++ {
		_, err := uc.Append(dto.ActivityLogCreateRequest{
			UserID:    2,
			ManagerID: &mgr,
			Action:    entity.ActionRequestedFeedback,
		})
		require.NoError(t, err)
	}

	out, err := uc.RecentByManager(1)
	require.NoError(t, err)
	require.Len(t, out, 5)

	assert.Equal(t, int64(8), out[0].ID, "la más reciente va primero")
	assert.Equal(t, int64(4), out[4].ID)
	assert.Equal(t, "Ana Gómez", out[0].UserName)
}

func TestRecentByManager_OtroManager_NoVeLasEntradas(t *testing.T) {
	repo := &fakeLogRepo{}
	uc := activity.NewUseCase(repo)

	mgr := int64(1)
	_, err := uc.Append(dto.ActivityLogCreateRequest{UserID: 2, ManagerID: &mgr, Action: entity.ActionSentFeedback})
	require.NoError(t, err)

	out, err := uc.RecentByManager(99)
	require.NoError(t, err)
	assert.Empty(t, out)
}
