package service

import (
	"context"
	"testing"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallLifecycle(t *testing.T) {
	ctx := context.Background()
	calls := newStubCallRepo()
	svc := NewCallService(calls)

	created, err := svc.Create(ctx, dto.CreateCallRequest{
		FIO:      "Петров Пётр Петрович",
		Age:      67,
		Address:  "пр. Мира, 15",
		Type:     "Красный поток",
		Priority: "red",
		Date:     "2026-08-29",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CallStatusAccepted, created.Status)
	assert.Nil(t, created.CompletedAt)

	id := uuid.MustParse(created.ID)

	updated, err := svc.UpdateStatus(ctx, id, model.CallStatusEnRoute)
	require.NoError(t, err)
	assert.Equal(t, model.CallStatusEnRoute, updated.Status)
	assert.Nil(t, updated.CompletedAt)

	done, err := svc.UpdateStatus(ctx, id, model.CallStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.CallStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt, "completion must stamp the time")

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.NotFound))
}

func TestUpdateStatusUnknownCall(t *testing.T) {
	svc := NewCallService(newStubCallRepo())
	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.CallStatusCompleted)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.NotFound))
}
