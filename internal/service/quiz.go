// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/remaimber-it/quiz-backend/internal/domain/catalog"
	quizsession "github.com/remaimber-it/quiz-backend/internal/domain/quiz_session"
	"github.com/remaimber-it/quiz-backend/internal/domain/questionbank"
	"github.com/remaimber-it/quiz-backend/internal/domain/selection"
	"github.com/remaimber-it/quiz-backend/internal/metrics"
	"github.com/remaimber-it/quiz-backend/internal/quizapi"
	"github.com/remaimber-it/quiz-backend/internal/store"
	"github.com/remaimber-it/quiz-backend/internal/worker"
)

const DefaultBatchSize = 10

var (
	ErrNotFinished = errors.New("quiz is not finished")
	ErrCannotRetry = errors.New("quiz can only be retried once finished or failed")
	ErrClosed      = errors.New("quiz service is shutting down")
)

// fetchOutcome is what a fetch job hands back to the dispatcher.
type fetchOutcome struct {
	SessionID  string
	Generation uint64
	Path       string
	Questions  []questionbank.Question
	Err        error
}

type pendingFetch struct {
	generation uint64
	cancel     context.CancelFunc
}

// waiter counts unresolved fetches of one session; done closes at zero.
type waiter struct {
	n    int
	done chan struct{}
}

// QuizService drives selections and quiz sessions. Question fetches run on
// a worker pool; a single dispatcher goroutine applies their outcomes.
type QuizService struct {
	store     store.Store
	fetcher   quizapi.Fetcher
	batchSize int
	logger    *slog.Logger
	pool      *worker.Pool[fetchOutcome]

	// mu serializes every load-modify-save of selections and sessions.
	mu sync.Mutex

	fetchMu  sync.Mutex
	inflight map[string]pendingFetch // sessionID → latest fetch
	waiters  map[string]*waiter      // sessionID → unresolved fetches

	// closeMu guards closed; launchFetch holds it for reading while it
	// submits so Close never closes the pool under a sender.
	closeMu sync.RWMutex
	closed  bool

	ctx        context.Context
	cancel     context.CancelFunc
	dispatched chan struct{}
}

// NewQuizService creates the service and starts its dispatcher. Call Close
// to stop it.
func NewQuizService(s store.Store, f quizapi.Fetcher, batchSize, workers int, logger *slog.Logger) *QuizService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	qs := &QuizService{
		store:      s,
		fetcher:    f,
		batchSize:  batchSize,
		logger:     logger,
		pool:       worker.NewPool[fetchOutcome](workers, 16),
		inflight:   make(map[string]pendingFetch),
		waiters:    make(map[string]*waiter),
		ctx:        ctx,
		cancel:     cancel,
		dispatched: make(chan struct{}),
	}

	go qs.dispatch()
	return qs
}

// Close cancels in-flight fetches and waits for the dispatcher to drain.
// Sessions started afterwards fail with ErrClosed instead of fetching.
func (qs *QuizService) Close() {
	qs.closeMu.Lock()
	if qs.closed {
		qs.closeMu.Unlock()
		return
	}
	qs.closed = true
	qs.closeMu.Unlock()

	qs.cancel()
	qs.pool.Close()
	<-qs.dispatched
}

// ============================================================================
// Selections
// ============================================================================

func (qs *QuizService) CreateSelection(ctx context.Context) (*selection.Selection, error) {
	sel := selection.New()
	if err := qs.store.SaveSelection(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (qs *QuizService) GetSelection(ctx context.Context, id string) (*selection.Selection, error) {
	return qs.store.GetSelection(ctx, id)
}

// ChooseCategory applies the category choice. For the random category the
// selection is complete at once and a session is started.
func (qs *QuizService) ChooseCategory(ctx context.Context, selectionID, category string) (*selection.Selection, error) {
	return qs.updateSelection(ctx, selectionID, func(sel *selection.Selection) error {
		return sel.ChooseCategory(category)
	})
}

func (qs *QuizService) ChooseDifficulty(ctx context.Context, selectionID, difficulty string) (*selection.Selection, error) {
	return qs.updateSelection(ctx, selectionID, func(sel *selection.Selection) error {
		return sel.ChooseDifficulty(difficulty)
	})
}

// RestartSelection clears the selection and discards any session it started.
func (qs *QuizService) RestartSelection(ctx context.Context, selectionID string) (*selection.Selection, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	sel, err := qs.store.GetSelection(ctx, selectionID)
	if err != nil {
		return nil, err
	}

	if sel.SessionID != "" {
		if err := qs.discardSession(ctx, sel.SessionID); err != nil {
			return nil, err
		}
	}

	sel.Restart()
	if err := qs.store.SaveSelection(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (qs *QuizService) updateSelection(ctx context.Context, selectionID string, apply func(*selection.Selection) error) (*selection.Selection, error) {
	var launch *quizsession.QuizSession

	sel, err := func() (*selection.Selection, error) {
		qs.mu.Lock()
		defer qs.mu.Unlock()

		sel, err := qs.store.GetSelection(ctx, selectionID)
		if err != nil {
			return nil, err
		}
		if err := apply(sel); err != nil {
			return nil, err
		}

		if sel.Ready() {
			session := quizsession.New(sel.ID, sel.Category, sel.Difficulty)
			session.Start()
			if err := qs.store.SaveSession(ctx, session); err != nil {
				return nil, err
			}
			sel.SessionID = session.ID
			launch = session
		}

		if err := qs.store.SaveSelection(ctx, sel); err != nil {
			return nil, err
		}
		return sel, nil
	}()
	if err != nil {
		return nil, err
	}

	// Submitting outside the lock: the dispatcher needs mu to drain results.
	if launch != nil {
		qs.launchFetch(launch)
		qs.logger.Info("quiz started",
			"session_id", launch.ID,
			"selection_id", sel.ID,
			"category", launch.Category,
			"difficulty", launch.Difficulty,
		)
	}
	return sel, nil
}

// ============================================================================
// Sessions
// ============================================================================

func (qs *QuizService) GetSession(ctx context.Context, id string) (*quizsession.QuizSession, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.store.GetSession(ctx, id)
}

// SubmitAnswer records an answer for the current question. The returned
// flag is false when the session was not accepting answers.
func (qs *QuizService) SubmitAnswer(ctx context.Context, sessionID string, choice int) (*quizsession.QuizSession, bool, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	session, err := qs.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	if !session.SubmitAnswer(choice) {
		return session, false, nil
	}

	if err := qs.store.SaveSession(ctx, session); err != nil {
		return nil, false, err
	}

	if session.State == quizsession.StateFinished {
		metrics.ObserveScore(session.Score(), len(session.Questions))
		qs.logger.Info("quiz finished",
			"session_id", session.ID,
			"score", session.Score(),
			"total", len(session.Questions),
		)
	}
	return session, true, nil
}

// TryAgain fetches a new batch with the same category and difficulty.
func (qs *QuizService) TryAgain(ctx context.Context, sessionID string) (*quizsession.QuizSession, error) {
	session, err := func() (*quizsession.QuizSession, error) {
		qs.mu.Lock()
		defer qs.mu.Unlock()

		session, err := qs.store.GetSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if _, ok := session.TryAgain(); !ok {
			return nil, ErrCannotRetry
		}
		if err := qs.store.SaveSession(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}()
	if err != nil {
		return nil, err
	}

	qs.launchFetch(session)
	return session, nil
}

// RestartSession destroys the session and resets the selection it came from.
func (qs *QuizService) RestartSession(ctx context.Context, sessionID string) (*selection.Selection, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	session, err := qs.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := qs.discardSession(ctx, session.ID); err != nil {
		return nil, err
	}

	sel, err := qs.store.GetSelection(ctx, session.SelectionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sel.Restart()
	if err := qs.store.SaveSelection(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// Report returns the results of a finished session.
func (qs *QuizService) Report(ctx context.Context, sessionID string) (quizsession.Report, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	session, err := qs.store.GetSession(ctx, sessionID)
	if err != nil {
		return quizsession.Report{}, err
	}

	report, ok := session.Report()
	if !ok {
		return quizsession.Report{}, ErrNotFinished
	}
	return report, nil
}

// WaitForSession blocks until every fetch issued for the session has been
// applied or dropped, or ctx ends.
func (qs *QuizService) WaitForSession(ctx context.Context, sessionID string) error {
	qs.fetchMu.Lock()
	w, ok := qs.waiters[sessionID]
	qs.fetchMu.Unlock()

	if !ok {
		return nil
	}

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// discardSession deletes the session and cancels its fetch. Caller holds mu.
func (qs *QuizService) discardSession(ctx context.Context, sessionID string) error {
	qs.fetchMu.Lock()
	if p, ok := qs.inflight[sessionID]; ok {
		p.cancel()
		delete(qs.inflight, sessionID)
	}
	qs.fetchMu.Unlock()

	err := qs.store.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	qs.logger.Info("quiz discarded", "session_id", sessionID)
	return nil
}

// ============================================================================
// Fetching
// ============================================================================

// launchFetch queues the fetch for the session's current generation and
// cancels the one it supersedes. Once the service is closed the session is
// failed right away. Caller must not hold mu.
func (qs *QuizService) launchFetch(session *quizsession.QuizSession) {
	path := "filtered"
	if catalog.IsRandom(session.Category) {
		path = "random"
	}

	qs.closeMu.RLock()
	defer qs.closeMu.RUnlock()

	if qs.closed {
		qs.apply(fetchOutcome{
			SessionID:  session.ID,
			Generation: session.Generation,
			Path:       path,
			Err:        ErrClosed,
		})
		return
	}

	fetchCtx, cancel := context.WithCancel(qs.ctx)

	qs.fetchMu.Lock()
	if prev, ok := qs.inflight[session.ID]; ok {
		prev.cancel()
	}
	qs.inflight[session.ID] = pendingFetch{generation: session.Generation, cancel: cancel}

	w, ok := qs.waiters[session.ID]
	if !ok {
		w = &waiter{done: make(chan struct{})}
		qs.waiters[session.ID] = w
	}
	w.n++
	qs.fetchMu.Unlock()

	sessionID := session.ID
	generation := session.Generation
	category := session.Category
	difficulty := session.Difficulty
	limit := qs.batchSize

	qs.pool.Submit(sessionID, func() fetchOutcome {
		defer cancel()

		out := fetchOutcome{SessionID: sessionID, Generation: generation, Path: path}
		if path == "random" {
			out.Questions, out.Err = qs.fetcher.FetchRandomQuestions(fetchCtx, limit)
		} else {
			out.Questions, out.Err = qs.fetcher.FetchQuestions(fetchCtx, quizapi.Filter{
				Category:   category,
				Difficulty: difficulty,
				Limit:      limit,
			})
		}
		return out
	})
}

func (qs *QuizService) dispatch() {
	defer close(qs.dispatched)

	for result := range qs.pool.Results() {
		qs.apply(result.Output)
	}
}

// apply stores a fetch outcome if it still belongs to the session's latest
// Start. It uses a background context: the request that triggered the fetch
// is long gone.
func (qs *QuizService) apply(out fetchOutcome) {
	defer qs.resolve(out.SessionID, out.Generation)

	qs.mu.Lock()
	defer qs.mu.Unlock()

	ctx := context.Background()

	session, err := qs.store.GetSession(ctx, out.SessionID)
	if errors.Is(err, store.ErrNotFound) {
		metrics.FetchCounter.WithLabelValues(out.Path, "stale").Inc()
		qs.logger.Debug("dropping fetch for discarded session", "session_id", out.SessionID)
		return
	}
	if err != nil {
		qs.logger.Error("failed to load session", "session_id", out.SessionID, "error", err)
		return
	}

	var applied bool
	if out.Err != nil {
		applied = session.Fail(out.Generation, out.Err)
	} else {
		applied = session.Load(out.Generation, out.Questions)
	}

	if !applied {
		metrics.FetchCounter.WithLabelValues(out.Path, "stale").Inc()
		qs.logger.Debug("dropping stale fetch",
			"session_id", out.SessionID,
			"generation", out.Generation,
			"current", session.Generation,
		)
		return
	}

	if err := qs.store.SaveSession(ctx, session); err != nil {
		qs.logger.Error("failed to save session", "session_id", out.SessionID, "error", err)
		return
	}

	if out.Err != nil {
		metrics.FetchCounter.WithLabelValues(out.Path, "failure").Inc()
		qs.logger.Warn("question fetch failed", "session_id", out.SessionID, "error", out.Err)
		return
	}

	metrics.FetchCounter.WithLabelValues(out.Path, "success").Inc()
	qs.logger.Info("questions loaded", "session_id", out.SessionID, "count", len(out.Questions))

	if session.State == quizsession.StateFinished {
		metrics.ObserveScore(0, 0)
	}
}

// resolve marks one fetch of the session as done.
func (qs *QuizService) resolve(sessionID string, generation uint64) {
	qs.fetchMu.Lock()
	defer qs.fetchMu.Unlock()

	if p, ok := qs.inflight[sessionID]; ok && p.generation == generation {
		delete(qs.inflight, sessionID)
	}
	if w, ok := qs.waiters[sessionID]; ok {
		w.n--
		if w.n == 0 {
			close(w.done)
			delete(qs.waiters, sessionID)
		}
	}
}
