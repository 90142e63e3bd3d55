package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"oddcalc/combat"
	"oddcalc/dice"
	"oddcalc/game"
	"oddcalc/meta"
	"oddcalc/simulator"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const (
	MaxTrials = 10_000_000
	// A logged trace holds every roll of every trial, so logged runs stay small.
	MaxLoggedTrials = 100

	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

type Option func(s *Server)

// Server exposes the simulator over HTTP.
type Server struct {
	goroutines int
	trials     int
	src        dice.Source
	router     *mux.Router
}

// WithTrials sets the trial count used when a request does not name one.
func WithTrials(trials int) Option {
	return func(s *Server) {
		if trials > 0 {
			s.trials = trials
		}
	}
}

func WithSource(src dice.Source) Option {
	return func(s *Server) {
		s.src = src
	}
}

func New(goroutines int, options ...Option) *Server {
	s := &Server{ // Default values
		goroutines: goroutines,
		trials:     meta.SIMULATIONS,
	}
	for _, option := range options {
		option(s)
	}

	s.router = mux.NewRouter()
	s.router.HandleFunc("/simulate", s.handleSimulate).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting server on %s ...", addr)
	return s.httpServer(addr).ListenAndServe()
}

func (s *Server) httpServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		IdleTimeout:       idleTimeout,
	}
}

type simulateRequest struct {
	Attacker string `json:"attacker"`
	Defender string `json:"defender"`
	Fort     bool   `json:"fort"`
	Ark      bool   `json:"ark"`
	Trials   *int   `json:"trials"`
	Log      bool   `json:"log"`
}

type simulateResponse struct {
	simulator.Result
	Percent float64 `json:"percent"`
	Log     string  `json:"log,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request: %w", err))
		return
	}

	result, trace, err := s.simulate(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, game.ErrInvalidArgument) || errors.Is(err, game.ErrInvalidCombat) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, simulateResponse{
		Result:  result,
		Percent: result.Percent(),
		Log:     trace,
	})
}

func (s *Server) simulate(req simulateRequest) (simulator.Result, string, error) {
	attacker, err := game.ParseCombatant(req.Attacker)
	if err != nil {
		return simulator.Result{}, "", fmt.Errorf("attacker: %w", err)
	}
	defender, err := game.ParseCombatant(req.Defender)
	if err != nil {
		return simulator.Result{}, "", fmt.Errorf("defender: %w", err)
	}

	trials := s.trials
	if req.Trials != nil {
		trials = *req.Trials
	}
	if trials > MaxTrials {
		return simulator.Result{}, "", fmt.Errorf("%w: at most %d trials per request, got %d", game.ErrInvalidArgument, MaxTrials, trials)
	}
	if req.Log && trials > MaxLoggedTrials {
		return simulator.Result{}, "", fmt.Errorf("%w: at most %d trials per logged request, got %d", game.ErrInvalidArgument, MaxLoggedTrials, trials)
	}

	// A logged run stays on one goroutine so the trace reads battle by battle
	goroutines := s.goroutines
	if req.Log {
		goroutines = 1
	}

	calc := combat.NewCalculator(
		combat.WithFortification(req.Fort),
		combat.WithCounterFortification(req.Ark),
		combat.WithLogging(req.Log),
		combat.WithSource(s.src),
	)
	result, _, err := simulator.NewSimulator(goroutines, simulator.WithTrials(trials)).Simulate(calc, attacker, defender)
	if err != nil {
		return simulator.Result{}, "", err
	}

	trace := ""
	if calc.Log() != nil {
		trace = calc.Log().String()
	}
	return result, trace, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("simulation failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
