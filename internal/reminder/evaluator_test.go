package reminder

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdo/internal/todo"
)

type memGateway struct {
	data map[string][]byte
}

func (g *memGateway) Get(key string) ([]byte, bool, error) {
	v, ok := g.data[key]
	return v, ok, nil
}

func (g *memGateway) Set(key string, value []byte) error {
	g.data[key] = value
	return nil
}

type recorder struct {
	calls []Event
}

func (r *recorder) notify(t todo.Task, status todo.DueStatus) {
	r.calls = append(r.calls, Event{Task: t, Status: status})
}

func dptr(v string) *string { return &v }

func setup(tasks ...todo.Task) (*Evaluator, *todo.App, *recorder) {
	g := &memGateway{data: map[string][]byte{}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := todo.NewApp(g, log)
	app.State().Tasks = tasks
	rec := &recorder{}
	return New(app, rec.notify, log), app, rec
}

func day(v string) time.Time {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestScan_OverdueTaskFiresOnce(t *testing.T) {
	ev, app, rec := setup(todo.Task{
		ID: 1, Title: "Buy milk", List: "Personal", DueDate: dptr("2024-01-01"),
	})

	fired := ev.Scan(day("2024-01-02"))

	require.Len(t, fired, 1)
	assert.Equal(t, int64(1), fired[0].Task.ID)
	assert.Equal(t, todo.DueOverdue, fired[0].Status)
	assert.True(t, app.State().Tasks[0].Reminded)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "Buy milk", rec.calls[0].Task.Title)
}

func TestScan_DueTodayStatus(t *testing.T) {
	ev, _, rec := setup(todo.Task{ID: 1, Title: "x", DueDate: dptr("2024-01-02")})

	fired := ev.Scan(day("2024-01-02"))

	require.Len(t, fired, 1)
	assert.Equal(t, todo.DueToday, fired[0].Status)
	assert.Len(t, rec.calls, 1)
}

func TestScan_SecondRunIsSilent(t *testing.T) {
	ev, _, rec := setup(todo.Task{ID: 1, Title: "x", DueDate: dptr("2024-01-01")})

	first := ev.Scan(day("2024-01-02"))
	second := ev.Scan(day("2024-01-02"))
	third := ev.Scan(day("2024-01-05"))

	assert.Len(t, first, 1)
	assert.Empty(t, second, "reminded flag suppresses repeat firing")
	assert.Empty(t, third, "the flag is sticky across days")
	assert.Len(t, rec.calls, 1)
}

func TestScan_SkipsIneligibleTasks(t *testing.T) {
	ev, app, rec := setup(
		todo.Task{ID: 1, Title: "future", DueDate: dptr("2024-02-01")},
		todo.Task{ID: 2, Title: "done", DueDate: dptr("2024-01-01"), Completed: true},
		todo.Task{ID: 3, Title: "already", DueDate: dptr("2024-01-01"), Reminded: true},
		todo.Task{ID: 4, Title: "no date"},
	)

	fired := ev.Scan(day("2024-01-02"))

	assert.Empty(t, fired)
	assert.Empty(t, rec.calls)
	assert.False(t, app.State().Tasks[0].Reminded)
	assert.False(t, app.State().Tasks[3].Reminded)
}

func TestScan_PersistsWhenAnythingFired(t *testing.T) {
	g := &memGateway{data: map[string][]byte{}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := todo.NewApp(g, log)
	app.State().Tasks = []todo.Task{{ID: 1, Title: "x", DueDate: dptr("2024-01-01")}}
	ev := New(app, func(todo.Task, todo.DueStatus) {}, log)

	ev.Scan(day("2024-01-02"))

	data, ok := g.data[todo.SnapshotKey]
	require.True(t, ok, "firing a reminder marks the aggregate dirty")
	assert.Contains(t, string(data), `"reminded":true`)
}

func TestScan_MixedBatchFiresEachOnce(t *testing.T) {
	ev, _, rec := setup(
		todo.Task{ID: 1, Title: "late", DueDate: dptr("2024-01-01")},
		todo.Task{ID: 2, Title: "today", DueDate: dptr("2024-01-02")},
	)

	fired := ev.Scan(day("2024-01-02"))

	require.Len(t, fired, 2)
	assert.Equal(t, todo.DueOverdue, fired[0].Status)
	assert.Equal(t, todo.DueToday, fired[1].Status)
	assert.Len(t, rec.calls, 2)
}
