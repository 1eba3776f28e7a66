// Package server exposes a running optimisation over HTTP: liveness, prometheus metrics,
// the statistic of the last iteration and the stored runs.
package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dariuszzbyrad/jgenetics/genetic"
	"github.com/dariuszzbyrad/jgenetics/storage/runs"
)

// Status keeps the last reported iteration, it is safe for concurrent use
type Status struct {
	mu        sync.RWMutex
	run       string
	iteration int
	statistic genetic.Statistic
	updates   int
}

// NewStatus tracks the iterations of run
func NewStatus(run string) *Status {
	return &Status{run: run, statistic: genetic.EmptyStatistic}
}

// Update records the iteration statistic
func (s *Status) Update(iteration int, st genetic.Statistic) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iteration = iteration
	s.statistic = st
	s.updates++

	return nil
}

func (s *Status) snapshot() gin.H {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := gin.H{
		"run":       s.run,
		"iteration": s.iteration,
		"started":   s.updates > 0,
	}
	if s.statistic.Defined() {
		h["min"] = s.statistic.Min
		h["avg"] = s.statistic.Avg
		h["max"] = s.statistic.Max
	}

	return h
}

// New returns the router. A nil storage disables /runs/:id
func New(status *Status, gatherer prometheus.Gatherer, storage runs.Storage) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "jgenetics"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, status.snapshot())
	})
	r.GET("/runs/:id", func(c *gin.Context) {
		if storage == nil {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "run storage is disabled"})
			return
		}
		run, err := storage.GetRun(c.Param("id"))
		switch err {
		case nil:
			c.JSON(http.StatusOK, run)
		case runs.ErrorInvalidRun:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	})

	return r
}
