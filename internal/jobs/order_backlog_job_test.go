package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBacklogHandler struct {
	mock.Mock
}

func (m *mockBacklogHandler) Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.OrderBacklog, error) {
	args := m.Called(ctx, query)
	backlog, _ := args.Get(0).(queries.OrderBacklog)
	return backlog, args.Error(1)
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestOrderBacklogJob_RunLogsCounts(t *testing.T) {
	var buf bytes.Buffer
	handler := new(mockBacklogHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(queries.OrderBacklog{
		order.Pending:    4,
		order.InProgress: 1,
		order.Completed:  9,
	}, nil).Once()

	job := NewOrderBacklogJob(handler, "", bufferLogger(&buf))
	job.Run(t.Context())

	out := buf.String()
	assert.Contains(t, out, `"msg":"Order backlog"`)
	assert.Contains(t, out, `"pending":4`)
	assert.Contains(t, out, `"in_progress":1`)
	assert.Contains(t, out, `"open":5`)
	assert.Contains(t, out, `"component":"order_backlog_job"`)
	handler.AssertExpectations(t)
}

func TestOrderBacklogJob_RunLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	handler := new(mockBacklogHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("database is down"))

	NewOrderBacklogJob(handler, "", bufferLogger(&buf)).Run(t.Context())

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "database is down")
}

func TestOrderBacklogJob_DefaultSchedule(t *testing.T) {
	job := NewOrderBacklogJob(new(mockBacklogHandler), "", bufferLogger(&bytes.Buffer{}))

	assert.Equal(t, DefaultBacklogSchedule, job.schedule)
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	manager := NewJobManager(new(mockBacklogHandler), "every minute please", bufferLogger(&bytes.Buffer{}))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order backlog job")
}

func TestJobManager_StartStop(t *testing.T) {
	var buf bytes.Buffer
	manager := NewJobManager(new(mockBacklogHandler), "0 0 0 1 1 *", bufferLogger(&buf))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Order backlog job started")
	assert.Contains(t, buf.String(), "Order backlog job stopped")
}
