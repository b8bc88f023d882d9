// Package dashboard implements the recruitment dashboard state engine.
//
// The Engine owns the authoritative in-memory order collection and candidate
// map. Every mutation goes through an Engine method, is applied under one
// lock, and is then flushed to the store best-effort: persistence failures
// are logged and swallowed, the in-memory state stays the source of truth for
// the session. Derived views (filtering, sorting, fit classification) live in
// views.go and are recomputed from scratch on every read.
//
// Analysis runs on its own goroutine so it never blocks other operations.
// Its outcome is committed by looking the order up by id in the then-current
// state, never by writing back a snapshot captured before the analyzer ran,
// so edits made while an analysis is in flight are preserved.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobmate/recruit-service/internal/analysis"
	"jobmate/recruit-service/internal/events"
	"jobmate/recruit-service/internal/model"
	"jobmate/recruit-service/internal/store"
)

// Engine is the stateful core of the dashboard. All methods are safe for
// concurrent use.
type Engine struct {
	mu sync.Mutex

	orders     []model.JobPostingOrder
	candidates model.CandidateMap

	selectedOrderID   string
	selectedCandidate *model.Candidate

	store    store.Store
	analyzer analysis.Analyzer
	events   events.Publisher

	now      func() time.Time
	analyses sync.WaitGroup
}

// NewEngine loads the persisted dataset (seeding defaults on first run) and
// returns a ready engine. pub may be nil when event publishing is not wired.
func NewEngine(ctx context.Context, st store.Store, az analysis.Analyzer, pub events.Publisher) *Engine {
	return &Engine{
		orders:     st.LoadOrders(ctx),
		candidates: st.LoadCandidates(ctx),
		store:      st,
		analyzer:   az,
		events:     pub,
		now:        time.Now,
	}
}

// Close waits for in-flight analysis work to finish. Analyses are never
// cancelled; they always run to completion and commit their outcome.
func (e *Engine) Close() {
	e.analyses.Wait()
}

// ─── Reads ───────────────────────────────────────────────────────────────────

// Orders returns a copy of the current order collection.
func (e *Engine) Orders() []model.JobPostingOrder {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.JobPostingOrder(nil), e.orders...)
}

// View returns the filtered and sorted order list for the given view options.
func (e *Engine) View(filterBy, sortBy, sortOrder string) []model.JobPostingOrder {
	e.mu.Lock()
	defer e.mu.Unlock()
	return FilterAndSort(e.orders, e.candidates, filterBy, sortBy, sortOrder)
}

// CandidatesFor returns a copy of the candidate list for an order. A missing
// entry yields an empty list.
func (e *Engine) CandidatesFor(orderID string) []model.Candidate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Candidate(nil), e.candidates[orderID]...)
}

// FindCandidate returns the first candidate with the given id across all
// orders' lists.
func (e *Engine) FindCandidate(id int) (model.Candidate, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, list := range e.candidates {
		for _, c := range list {
			if c.ID == id {
				return c, true
			}
		}
	}
	return model.Candidate{}, false
}

// SelectedOrder returns the currently selected order, if any.
func (e *Engine) SelectedOrder() (model.JobPostingOrder, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := e.orderIndex(e.selectedOrderID); idx >= 0 {
		return e.orders[idx], true
	}
	return model.JobPostingOrder{}, false
}

// SelectedCandidate returns the currently selected candidate, if any.
func (e *Engine) SelectedCandidate() (model.Candidate, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selectedCandidate == nil {
		return model.Candidate{}, false
	}
	return *e.selectedCandidate, true
}

// ─── Order CRUD ──────────────────────────────────────────────────────────────

// OrderFields carries the editable fields of an order for create and update.
type OrderFields struct {
	CompanyName           string `json:"companyName"`
	PositionTitle         string `json:"positionTitle"`
	CareerLevel           string `json:"careerLevel"`
	Responsibilities      string `json:"responsibilities"`
	Qualifications        string `json:"qualifications"`
	PreferentialTreatment string `json:"preferentialTreatment"`
	OtherInfo             string `json:"otherInfo"`
	Memo                  string `json:"memo"`
	Deadline              string `json:"deadline"`
	IsUrgent              bool   `json:"isUrgent"`
}

func (f OrderFields) validate() error {
	if f.CompanyName == "" || f.PositionTitle == "" {
		return &ValidationError{Msg: "companyName and positionTitle are required"}
	}
	return nil
}

// CreateOrder appends a new active order and persists the collection.
func (e *Engine) CreateOrder(ctx context.Context, fields OrderFields) (model.JobPostingOrder, error) {
	if err := fields.validate(); err != nil {
		return model.JobPostingOrder{}, err
	}

	order := model.JobPostingOrder{
		ID:                    newOrderID(),
		CompanyName:           fields.CompanyName,
		PositionTitle:         fields.PositionTitle,
		CareerLevel:           fields.CareerLevel,
		Responsibilities:      fields.Responsibilities,
		Qualifications:        fields.Qualifications,
		PreferentialTreatment: fields.PreferentialTreatment,
		OtherInfo:             fields.OtherInfo,
		Memo:                  fields.Memo,
		Status:                model.StatusActive,
		CreatedAt:             e.today(),
		Deadline:              fields.Deadline,
		IsUrgent:              fields.IsUrgent,
		AnalysisStatus:        model.AnalysisNone,
	}

	e.mu.Lock()
	e.orders = append(e.orders, order)
	e.persistOrders(ctx)
	e.mu.Unlock()

	e.publish(ctx, events.OrderCreated, map[string]string{"orderId": order.ID})
	return order, nil
}

// UpdateOrder replaces an order's editable fields in place, preserving id,
// creation date, status, and analysis state.
func (e *Engine) UpdateOrder(ctx context.Context, orderID string, fields OrderFields) (model.JobPostingOrder, error) {
	if err := fields.validate(); err != nil {
		return model.JobPostingOrder{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.orderIndex(orderID)
	if idx < 0 {
		return model.JobPostingOrder{}, ErrNotFound
	}

	o := &e.orders[idx]
	o.CompanyName = fields.CompanyName
	o.PositionTitle = fields.PositionTitle
	o.CareerLevel = fields.CareerLevel
	o.Responsibilities = fields.Responsibilities
	o.Qualifications = fields.Qualifications
	o.PreferentialTreatment = fields.PreferentialTreatment
	o.OtherInfo = fields.OtherInfo
	o.Memo = fields.Memo
	o.Deadline = fields.Deadline
	o.IsUrgent = fields.IsUrgent

	e.persistOrders(ctx)
	return *o, nil
}

// DeleteOrder removes an order and its candidate-map entry. If the order was
// selected, both selections are cleared. The caller is responsible for any
// user-facing confirmation.
func (e *Engine) DeleteOrder(ctx context.Context, orderID string) error {
	e.mu.Lock()

	idx := e.orderIndex(orderID)
	if idx < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}

	e.orders = append(e.orders[:idx], e.orders[idx+1:]...)
	delete(e.candidates, orderID)

	if e.selectedOrderID == orderID {
		e.selectedOrderID = ""
		e.selectedCandidate = nil
	}

	e.persistOrders(ctx)
	e.persistCandidates(ctx)
	e.mu.Unlock()

	e.publish(ctx, events.OrderDeleted, map[string]string{"orderId": orderID})
	return nil
}

// CloseOrder sets an order's status to closed, regardless of its current
// status or deadline.
func (e *Engine) CloseOrder(ctx context.Context, orderID string) error {
	e.mu.Lock()

	idx := e.orderIndex(orderID)
	if idx < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}

	e.orders[idx].Status = model.StatusClosed
	e.persistOrders(ctx)
	e.mu.Unlock()

	e.publish(ctx, events.OrderClosed, map[string]string{"orderId": orderID, "reason": "manual"})
	return nil
}

// ─── Selection ───────────────────────────────────────────────────────────────

// SelectOrder makes orderID the current selection. Selecting collapses the
// analysis panel on every order and clears the candidate selection; the
// collapse is persisted.
func (e *Engine) SelectOrder(ctx context.Context, orderID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		e.orders[i].IsExpanded = false
	}
	e.selectedOrderID = orderID
	e.selectedCandidate = nil

	e.persistOrders(ctx)
}

// SelectCandidate makes c the current candidate selection. The selection is
// transient and never persisted.
func (e *Engine) SelectCandidate(c model.Candidate) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectedCandidate = &c
}

// DeleteCandidate removes the candidate with this id from every order's list
// in which it appears and clears the candidate selection when it was the one
// deleted. Deleting an absent id is a no-op. The caller is responsible for
// any user-facing confirmation.
func (e *Engine) DeleteCandidate(ctx context.Context, candidateID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := false
	for orderID, list := range e.candidates {
		kept := list[:0]
		for _, c := range list {
			if c.ID == candidateID {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		e.candidates[orderID] = kept
	}

	if !removed {
		return
	}

	if e.selectedCandidate != nil && e.selectedCandidate.ID == candidateID {
		e.selectedCandidate = nil
	}

	e.persistCandidates(ctx)
}

// ─── Analysis workflow ───────────────────────────────────────────────────────

// Analyze kicks off the analysis workflow for an order. The order is marked
// analyzing and persisted immediately; the analyzer itself runs on its own
// goroutine so other operations never block on it. Re-triggering while an
// analysis is running, or after one completed, is a no-op.
func (e *Engine) Analyze(ctx context.Context, orderID string) error {
	e.mu.Lock()

	idx := e.orderIndex(orderID)
	if idx < 0 {
		e.mu.Unlock()
		return ErrNotFound
	}

	if !model.IsAnalysisTransitionAllowed(e.orders[idx].AnalysisStatus, model.AnalysisRunning) {
		current := e.orders[idx].AnalysisStatus
		e.mu.Unlock()
		slog.Warn("analysis already triggered, ignoring", "orderId", orderID, "analysisStatus", current)
		return nil
	}

	e.orders[idx].AnalysisStatus = model.AnalysisRunning
	order := e.orders[idx]
	e.persistOrders(ctx)
	e.mu.Unlock()

	// Detach from the caller's context: an analysis is never cancelled once
	// started, even when the triggering request goes away.
	e.analyses.Add(1)
	go e.runAnalysis(context.WithoutCancel(ctx), order)

	return nil
}

// runAnalysis invokes the analyzer and commits the outcome against the live
// order looked up by id. The order may have been edited or deleted while the
// analyzer ran; committing against current state keeps those mutations
// intact.
func (e *Engine) runAnalysis(ctx context.Context, order model.JobPostingOrder) {
	defer e.analyses.Done()

	data, err := e.analyzer.Analyze(ctx, order)

	e.mu.Lock()
	idx := e.orderIndex(order.ID)
	if idx < 0 {
		// Deleted mid-analysis, nothing to commit.
		e.mu.Unlock()
		return
	}

	if err != nil {
		slog.Warn("analysis failed", "orderId", order.ID, "err", err)
		e.orders[idx].AnalysisStatus = model.AnalysisNone
		e.orders[idx].AnalysisData = nil
	} else {
		e.orders[idx].AnalysisStatus = model.AnalysisCompleted
		e.orders[idx].AnalysisData = &data
	}
	e.persistOrders(ctx)
	e.mu.Unlock()

	if err == nil {
		e.publish(ctx, events.OrderAnalyzed, map[string]string{"orderId": order.ID})
	}
}

// ToggleExpand flips whether an order's analysis result is shown expanded.
// Meaningful once an analysis completed, but not gated on it.
func (e *Engine) ToggleExpand(ctx context.Context, orderID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.orderIndex(orderID)
	if idx < 0 {
		return ErrNotFound
	}

	e.orders[idx].IsExpanded = !e.orders[idx].IsExpanded
	e.persistOrders(ctx)
	return nil
}

// ─── Deadline sweep ──────────────────────────────────────────────────────────

// SweepDeadlines closes every active order whose deadline is strictly before
// today and returns how many changed. The collection is persisted only when
// at least one order actually changed status.
func (e *Engine) SweepDeadlines(ctx context.Context) int {
	today := e.today()

	e.mu.Lock()
	var closed []string
	for i := range e.orders {
		o := &e.orders[i]
		if o.Status == model.StatusActive && o.Deadline != "" && o.Deadline < today {
			o.Status = model.StatusClosed
			closed = append(closed, o.ID)
		}
	}
	if len(closed) > 0 {
		e.persistOrders(ctx)
	}
	e.mu.Unlock()

	for _, id := range closed {
		e.publish(ctx, events.OrderClosed, map[string]string{"orderId": id, "reason": "deadline"})
	}
	return len(closed)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// orderIndex returns the position of orderID in e.orders, or -1. Callers must
// hold e.mu.
func (e *Engine) orderIndex(orderID string) int {
	if orderID == "" {
		return -1
	}
	for i := range e.orders {
		if e.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

// persistOrders flushes the order collection best-effort. Callers must hold
// e.mu.
func (e *Engine) persistOrders(ctx context.Context) {
	if err := e.store.SaveOrders(ctx, e.orders); err != nil {
		slog.Warn("persist orders failed", "err", err)
	}
}

// persistCandidates flushes the candidate map best-effort. Callers must hold
// e.mu.
func (e *Engine) persistCandidates(ctx context.Context) {
	if err := e.store.SaveCandidates(ctx, e.candidates); err != nil {
		slog.Warn("persist candidates failed", "err", err)
	}
}

func (e *Engine) publish(ctx context.Context, event string, payload map[string]string) {
	if e.events == nil {
		return
	}
	e.events.Publish(ctx, event, payload)
}

func (e *Engine) today() string {
	return e.now().Format(dateLayout)
}

// newOrderID returns an opaque unique order id. The JP- prefix matches the
// seeded dataset.
func newOrderID() string {
	return "JP-" + uuid.NewString()
}
