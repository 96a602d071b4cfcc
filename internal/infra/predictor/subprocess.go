// Package predictor invokes the external forecast-prediction engine as a
// subprocess with a hard deadline and kill-on-timeout semantics.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/surfapp/recommender/internal/domain/recommend"
	apperrors "github.com/surfapp/recommender/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second
	// Grace period for the process to die after cancellation before the
	// run is abandoned with SIGKILL.
	killDelay = 3 * time.Second
)

// Config describes how to launch the prediction engine.
type Config struct {
	Command string
	Args    []string
	WorkDir string
	Timeout time.Duration
}

// Client runs the engine and parses its stdout JSON document.
type Client struct {
	cfg    Config
	logger *slog.Logger
}

// NewClient builds the subprocess adapter.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{cfg: cfg, logger: logger.With("component", "predictor.subprocess")}
}

type enginePayload struct {
	Spots []recommend.SpotForecast `json:"spots"`
}

// FetchPredictions launches the engine and returns its prediction set. The
// process is forcibly terminated when the deadline elapses; stderr is
// captured for diagnostics but never drives control flow.
func (c *Client) FetchPredictions(ctx context.Context) ([]recommend.SpotForecast, error) {
	runCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.cfg.Command, c.cfg.Args...)
	cmd.Dir = c.cfg.WorkDir
	cmd.WaitDelay = killDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)
	diagnostics := strings.TrimSpace(stderr.String())

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		c.logger.Error("prediction engine timed out", "timeout", c.cfg.Timeout, "elapsed", elapsed)
		return nil, apperrors.Wrap(apperrors.CodePredictionTimeout, "prediction engine timed out", runCtx.Err())
	}
	if runErr != nil {
		c.logger.Error("prediction engine exited with error", "error", runErr, "stderr", diagnostics)
		return nil, failure(runErr, diagnostics)
	}

	var payload enginePayload
	if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
		c.logger.Error("prediction engine produced unparseable output", "error", err, "stderr", diagnostics)
		return nil, failure(err, diagnostics)
	}
	if len(payload.Spots) == 0 {
		c.logger.Error("prediction engine returned no spots", "stderr", diagnostics)
		return nil, failure(errors.New("empty prediction set"), diagnostics)
	}

	c.logger.Info("prediction engine run complete", "spots", len(payload.Spots), "elapsed", elapsed)
	return payload.Spots, nil
}

// failure wraps an engine error together with its diagnostic text so callers
// can decide whether the diagnostics are safe to expose.
func failure(err error, diagnostics string) error {
	if diagnostics != "" {
		err = fmt.Errorf("%w; stderr: %s", err, diagnostics)
	}
	return apperrors.Wrap(apperrors.CodePredictionFailure, "prediction engine failed", err)
}
