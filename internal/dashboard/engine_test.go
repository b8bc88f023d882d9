package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"jobmate/recruit-service/internal/model"
	"jobmate/recruit-service/internal/store"
)

// stubAnalyzer is a controllable in-test analyzer. When gate is non-nil,
// Analyze blocks until the gate is closed.
type stubAnalyzer struct {
	data  model.AnalysisData
	err   error
	gate  chan struct{}
	calls atomic.Int32
}

func (a *stubAnalyzer) Analyze(ctx context.Context, order model.JobPostingOrder) (model.AnalysisData, error) {
	a.calls.Add(1)
	if a.gate != nil {
		<-a.gate
	}
	return a.data, a.err
}

func analysisResult() model.AnalysisData {
	return model.AnalysisData{
		PositionGuide: "guide",
		Keywords:      []string{"Go", "Backend"},
	}
}

// countingStore wraps a Store and counts order saves, so tests can assert
// that redundant writes are skipped.
type countingStore struct {
	store.Store
	orderSaves atomic.Int32
}

func (c *countingStore) SaveOrders(ctx context.Context, orders []model.JobPostingOrder) error {
	c.orderSaves.Add(1)
	return c.Store.SaveOrders(ctx, orders)
}

func newTestStore(t *testing.T) *store.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return store.NewRedisStore(rdb)
}

// newTestEngine builds an engine over a fresh miniredis, so it starts from
// the seed dataset.
func newTestEngine(t *testing.T, az *stubAnalyzer) (*Engine, *store.RedisStore) {
	t.Helper()
	st := newTestStore(t)
	e := NewEngine(context.Background(), st, az, nil)
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return e, st
}

func orderByID(t *testing.T, e *Engine, id string) model.JobPostingOrder {
	t.Helper()
	for _, o := range e.Orders() {
		if o.ID == id {
			return o
		}
	}
	t.Fatalf("order %s not found", id)
	return model.JobPostingOrder{}
}

// ── CRUD ───────────────────────────────────────────────────────────────────

func TestCreateOrder_Defaults(t *testing.T) {
	e, st := newTestEngine(t, &stubAnalyzer{})
	ctx := context.Background()

	order, err := e.CreateOrder(ctx, OrderFields{CompanyName: "Acme", PositionTitle: "Engineer"})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, model.StatusActive, order.Status)
	require.Equal(t, model.AnalysisNone, order.AnalysisStatus)
	require.Nil(t, order.AnalysisData)
	require.False(t, order.IsExpanded)
	require.Equal(t, "2025-06-01", order.CreatedAt)

	// Persisted alongside the seeds.
	persisted := st.LoadOrders(ctx)
	require.Len(t, persisted, 7)
	require.Equal(t, order.ID, persisted[6].ID)
}

func TestCreateOrder_UniqueIDs(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		order, err := e.CreateOrder(ctx, OrderFields{CompanyName: "Acme", PositionTitle: "Engineer"})
		require.NoError(t, err)
		require.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestCreateOrder_MissingRequiredFieldsIsNoOp(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	before := len(e.Orders())

	var verr *ValidationError
	_, err := e.CreateOrder(context.Background(), OrderFields{PositionTitle: "Engineer"})
	require.ErrorAs(t, err, &verr)
	_, err = e.CreateOrder(context.Background(), OrderFields{CompanyName: "Acme"})
	require.ErrorAs(t, err, &verr)

	require.Len(t, e.Orders(), before, "validation failure must not change state")
}

func TestUpdateOrder_ReplacesEditableFieldsOnly(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	before := orderByID(t, e, "JP-001")

	updated, err := e.UpdateOrder(context.Background(), "JP-001", OrderFields{
		CompanyName:   "TechCorp Europe",
		PositionTitle: "Staff Frontend Developer",
		Memo:          "renegotiated",
		Deadline:      "2025-12-31",
		IsUrgent:      false,
	})
	require.NoError(t, err)
	require.Equal(t, "TechCorp Europe", updated.CompanyName)
	require.Equal(t, "renegotiated", updated.Memo)
	require.Equal(t, "2025-12-31", updated.Deadline)
	require.False(t, updated.IsUrgent)

	require.Equal(t, before.ID, updated.ID)
	require.Equal(t, before.CreatedAt, updated.CreatedAt)
	require.Equal(t, before.Status, updated.Status)
	require.Equal(t, before.AnalysisStatus, updated.AnalysisStatus)
}

func TestUpdateOrder_Validation(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	before := orderByID(t, e, "JP-001")

	var verr *ValidationError
	_, err := e.UpdateOrder(context.Background(), "JP-001", OrderFields{CompanyName: "NoTitle"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, before, orderByID(t, e, "JP-001"))
}

func TestUpdateOrder_UnknownID(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	_, err := e.UpdateOrder(context.Background(), "JP-missing", OrderFields{CompanyName: "A", PositionTitle: "B"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder_CascadesAndClearsSelection(t *testing.T) {
	e, st := newTestEngine(t, &stubAnalyzer{})
	ctx := context.Background()

	e.SelectOrder(ctx, "JP-001")
	c, ok := e.FindCandidate(101)
	require.True(t, ok)
	e.SelectCandidate(c)

	require.NoError(t, e.DeleteOrder(ctx, "JP-001"))

	for _, o := range e.Orders() {
		require.NotEqual(t, "JP-001", o.ID)
	}
	require.Empty(t, e.CandidatesFor("JP-001"), "candidate entry must be removed with the order")

	_, ok = e.SelectedOrder()
	require.False(t, ok)
	_, ok = e.SelectedCandidate()
	require.False(t, ok)

	// Both collections persisted.
	require.Len(t, st.LoadOrders(ctx), 5)
	require.NotContains(t, st.LoadCandidates(ctx), "JP-001")
}

func TestDeleteOrder_UnknownID(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	require.ErrorIs(t, e.DeleteOrder(context.Background(), "JP-missing"), ErrNotFound)
}

func TestCloseOrder_Unconditional(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	ctx := context.Background()

	// JP-005 has no deadline; manual close works regardless.
	require.NoError(t, e.CloseOrder(ctx, "JP-005"))
	require.Equal(t, model.StatusClosed, orderByID(t, e, "JP-005").Status)

	require.ErrorIs(t, e.CloseOrder(ctx, "JP-missing"), ErrNotFound)
}

// ── Selection ──────────────────────────────────────────────────────────────

func TestSelectOrder_CollapsesEveryOrder(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	ctx := context.Background()

	require.NoError(t, e.ToggleExpand(ctx, "JP-001"))
	require.True(t, orderByID(t, e, "JP-001").IsExpanded)

	e.SelectOrder(ctx, "JP-002")

	for _, o := range e.Orders() {
		require.False(t, o.IsExpanded, "order %s must be collapsed after selection", o.ID)
	}
	selected, ok := e.SelectedOrder()
	require.True(t, ok)
	require.Equal(t, "JP-002", selected.ID)
}

func TestSelectOrder_ClearsCandidateSelection(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})

	c, ok := e.FindCandidate(101)
	require.True(t, ok)
	e.SelectCandidate(c)

	e.SelectOrder(context.Background(), "JP-002")
	_, ok = e.SelectedCandidate()
	require.False(t, ok)
}

func TestDeleteCandidate_RemovesEverywhereAndIsIdempotent(t *testing.T) {
	e, st := newTestEngine(t, &stubAnalyzer{})
	ctx := context.Background()

	c, ok := e.FindCandidate(101)
	require.True(t, ok)
	e.SelectCandidate(c)

	e.DeleteCandidate(ctx, 101)

	_, ok = e.FindCandidate(101)
	require.False(t, ok)
	_, ok = e.SelectedCandidate()
	require.False(t, ok, "deleting the selected candidate clears the selection")

	for _, list := range st.LoadCandidates(ctx) {
		for _, cand := range list {
			require.NotEqual(t, 101, cand.ID)
		}
	}

	// Absent id: silently a no-op.
	e.DeleteCandidate(ctx, 101)
	e.DeleteCandidate(ctx, 999999)
}

// ── Analysis workflow ──────────────────────────────────────────────────────

func TestAnalyze_Lifecycle(t *testing.T) {
	az := &stubAnalyzer{data: analysisResult(), gate: make(chan struct{})}
	e, _ := newTestEngine(t, az)
	ctx := context.Background()

	require.NoError(t, e.Analyze(ctx, "JP-001"))
	require.Equal(t, model.AnalysisRunning, orderByID(t, e, "JP-001").AnalysisStatus)
	require.Nil(t, orderByID(t, e, "JP-001").AnalysisData)

	close(az.gate)
	e.Close()

	got := orderByID(t, e, "JP-001")
	require.Equal(t, model.AnalysisCompleted, got.AnalysisStatus)
	require.NotNil(t, got.AnalysisData)
	require.NotEmpty(t, got.AnalysisData.Keywords)
}

func TestAnalyze_FailureReverts(t *testing.T) {
	az := &stubAnalyzer{err: errors.New("backend unavailable")}
	e, _ := newTestEngine(t, az)

	require.NoError(t, e.Analyze(context.Background(), "JP-001"))
	e.Close()

	got := orderByID(t, e, "JP-001")
	require.Equal(t, model.AnalysisNone, got.AnalysisStatus, "failed analysis must never stay stuck in analyzing")
	require.Nil(t, got.AnalysisData)
}

func TestAnalyze_UnknownOrder(t *testing.T) {
	e, _ := newTestEngine(t, &stubAnalyzer{})
	require.ErrorIs(t, e.Analyze(context.Background(), "JP-missing"), ErrNotFound)
}

func TestAnalyze_DuplicateTriggerIsNoOp(t *testing.T) {
	az := &stubAnalyzer{data: analysisResult(), gate: make(chan struct{})}
	e, _ := newTestEngine(t, az)
	ctx := context.Background()

	require.NoError(t, e.Analyze(ctx, "JP-001"))
	require.NoError(t, e.Analyze(ctx, "JP-001"), "re-trigger while analyzing is a recoverable no-op")

	close(az.gate)
	e.Close()
	require.Equal(t, int32(1), az.calls.Load())

	// Completed is terminal: a third trigger does not restart the analysis.
	require.NoError(t, e.Analyze(ctx, "JP-001"))
	e.Close()
	require.Equal(t, int32(1), az.calls.Load())
	require.Equal(t, model.AnalysisCompleted, orderByID(t, e, "JP-001").AnalysisStatus)
}

func TestAnalyze_ConcurrentEditSurvives(t *testing.T) {
	az := &stubAnalyzer{data: analysisResult(), gate: make(chan struct{})}
	e, _ := newTestEngine(t, az)
	ctx := context.Background()

	require.NoError(t, e.Analyze(ctx, "JP-001"))

	// Edit the order while the analyzer is suspended.
	_, err := e.UpdateOrder(ctx, "JP-001", OrderFields{
		CompanyName:   "TechCorp",
		PositionTitle: "Senior Frontend Developer",
		Memo:          "edited mid-analysis",
	})
	require.NoError(t, err)

	close(az.gate)
	e.Close()

	got := orderByID(t, e, "JP-001")
	require.Equal(t, "edited mid-analysis", got.Memo, "analysis completion must not clobber concurrent edits")
	require.Equal(t, model.AnalysisCompleted, got.AnalysisStatus)
	require.NotNil(t, got.AnalysisData)
}

func TestAnalyze_OrderDeletedMidAnalysis(t *testing.T) {
	az := &stubAnalyzer{data: analysisResult(), gate: make(chan struct{})}
	e, _ := newTestEngine(t, az)
	ctx := context.Background()

	require.NoError(t, e.Analyze(ctx, "JP-001"))
	require.NoError(t, e.DeleteOrder(ctx, "JP-001"))

	close(az.gate)
	e.Close()

	for _, o := range e.Orders() {
		require.NotEqual(t, "JP-001", o.ID, "deleted order must not be resurrected by analysis commit")
	}
}

// ── Deadline sweep ─────────────────────────────────────────────────────────

func sweepFixture() []model.JobPostingOrder {
	return []model.JobPostingOrder{
		{ID: "EXPIRED", Status: model.StatusActive, CreatedAt: "2020-01-01", Deadline: "2020-01-01", AnalysisStatus: model.AnalysisNone},
		{ID: "NO-DEADLINE", Status: model.StatusActive, CreatedAt: "2020-01-01", AnalysisStatus: model.AnalysisNone},
		{ID: "ALREADY-CLOSED", Status: model.StatusClosed, CreatedAt: "2020-01-01", Deadline: "2020-01-01", AnalysisStatus: model.AnalysisNone},
		{ID: "FUTURE", Status: model.StatusActive, CreatedAt: "2020-01-01", Deadline: "2099-01-01", AnalysisStatus: model.AnalysisNone},
	}
}

func TestSweepDeadlines(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.SaveOrders(ctx, sweepFixture()))

	counting := &countingStore{Store: st}
	e := NewEngine(ctx, counting, &stubAnalyzer{}, nil)
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	require.Equal(t, 1, e.SweepDeadlines(ctx))
	require.Equal(t, model.StatusClosed, orderByID(t, e, "EXPIRED").Status)
	require.Equal(t, model.StatusActive, orderByID(t, e, "NO-DEADLINE").Status)
	require.Equal(t, model.StatusActive, orderByID(t, e, "FUTURE").Status)
	require.Equal(t, int32(1), counting.orderSaves.Load())

	// Nothing left to close: no redundant write.
	require.Equal(t, 0, e.SweepDeadlines(ctx))
	require.Equal(t, int32(1), counting.orderSaves.Load())
}

func TestSweepDeadlines_DeadlineTodayStaysActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.SaveOrders(ctx, []model.JobPostingOrder{
		{ID: "TODAY", Status: model.StatusActive, CreatedAt: "2025-01-01", Deadline: "2025-06-01", AnalysisStatus: model.AnalysisNone},
	}))

	e := NewEngine(ctx, st, &stubAnalyzer{}, nil)
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	require.Equal(t, 0, e.SweepDeadlines(ctx), "deadline must be strictly before today to auto-close")
	require.Equal(t, model.StatusActive, orderByID(t, e, "TODAY").Status)
}
