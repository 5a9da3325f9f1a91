// Package monitor serves the live state of a benchmark run over
// HTTP, replacing the interactive plot windows of older harnesses
// with a poll-able endpoint.
package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/becca-rl/beccatest/logging"
	"github.com/becca-rl/beccatest/worlds"
)

// Status is the live state of the run in progress
type Status struct {
	World      string  `json:"world"`
	Timestep   int     `json:"timestep"`
	Lifespan   int     `json:"lifespan"`
	MeanReward float64 `json:"mean_reward"`
	ElapsedSec float64 `json:"elapsed_seconds"`
}

// Monitor holds the latest status and serves it over HTTP
type Monitor struct {
	Addr   string
	server *http.Server

	lock    sync.Mutex
	status  Status
	started time.Time
}

func New(addr string) *Monitor {
	m := &Monitor{
		Addr:    addr,
		started: time.Now(),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.GET("/status", m.handleStatus)
	router.GET("/worlds", m.handleWorlds)

	m.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}
	return m
}

// Start runs the HTTP server until the context is done
func (m *Monitor) Start(ctx context.Context) {
	logger := logging.With("monitor")
	go func() {
		logger.Info().Str("addr", m.Addr).Msg("serving run status")
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("monitor server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		m.server.Shutdown(shutdownCtx)
	}()
}

// Update records the live state of the run. It has the signature of
// a types.ProgressFunc.
func (m *Monitor) Update(world string, timestep, lifespan int, meanReward float64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	// Elapsed time is per world, not per server.
	if world != m.status.World {
		m.started = time.Now()
	}
	m.status = Status{
		World:      world,
		Timestep:   timestep,
		Lifespan:   lifespan,
		MeanReward: meanReward,
		ElapsedSec: time.Since(m.started).Seconds(),
	}
}

func (m *Monitor) handleStatus(c *gin.Context) {
	m.lock.Lock()
	status := m.status
	status.ElapsedSec = time.Since(m.started).Seconds()
	m.lock.Unlock()
	c.JSON(http.StatusOK, status)
}

func (m *Monitor) handleWorlds(c *gin.Context) {
	type worldInfo struct {
		Index     int     `json:"index"`
		Name      string  `json:"name"`
		Weight    float64 `json:"weight"`
		Decathlon bool    `json:"decathlon"`
	}
	out := make([]worldInfo, 0)
	for _, e := range worlds.Registry() {
		out = append(out, worldInfo{
			Index:     e.Index,
			Name:      e.Name,
			Weight:    e.Weight,
			Decathlon: e.Decathlon,
		})
	}
	c.JSON(http.StatusOK, out)
}
