package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"k8s.io/klog/v2"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/errors"
	"github.com/jaewan01/hypersweep/lib/results"
)

var jsonApi = jsoniter.ConfigCompatibleWithStandardLibrary

func newServer(c *config.WebConfig) Server {
	return &server{
		config: *c,
	}
}

type Server interface {
	Start() (RunningServer, error)
}

type RunningServer interface {
	Stop()
}

type serverState int

const (
	stopped serverState = iota
	started
)

type server struct {
	state      serverState
	config     config.WebConfig
	httpServer http.Server
}

func (s *server) Start() (RunningServer, error) {
	if s.state != stopped {
		return nil, errors.New("cannot start server because it is already running")
	}
	s.state = started
	s.httpServer = http.Server{
		Addr:    s.config.ListenAddress.String(),
		Handler: s.createRouter(),
	}
	go func() {
		klog.V(0).Infof("Started server on %s", s.config.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			klog.Errorf("Failed to start server: %s", err)
		}
	}()
	return s, nil
}

func (s *server) Stop() {
	if s.state == started {
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer func() {
			cancel()
			s.state = stopped
		}()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Panicf("Server shutdown failed:%s", err)
		}
		log.Println("Server shutdown")
	}
}

func (s *server) createRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	api.GET("/datasets", s.listDatasets)
	api.GET("/datasets/:dataset/measures", s.listMeasures)
	api.GET("/values/:dataset/:measure", s.getValues)
	api.GET("/runtimes", s.getRuntimes)
	return router
}

func (s *server) listDatasets(ctx *gin.Context) {
	datasets, err := results.ListDatasets(s.config.OutputDirectory)
	if err != nil {
		writeError(ctx, http.StatusInternalServerError, err)
		return
	}
	writeJSON(ctx, http.StatusOK, gin.H{"datasets": datasets})
}

func (s *server) listMeasures(ctx *gin.Context) {
	measures, err := results.ListMeasures(s.config.OutputDirectory, ctx.Param("dataset"))
	if err != nil {
		writeError(ctx, http.StatusInternalServerError, err)
		return
	}
	if measures == nil {
		writeError(ctx, http.StatusNotFound, errors.New("unknown dataset %q", ctx.Param("dataset")))
		return
	}
	writeJSON(ctx, http.StatusOK, gin.H{"measures": measures})
}

func (s *server) getValues(ctx *gin.Context) {
	values, err := results.ReadValues(s.config.OutputDirectory, ctx.Param("dataset"), ctx.Param("measure"))
	if err != nil {
		writeError(ctx, http.StatusNotFound, err)
		return
	}
	writeJSON(ctx, http.StatusOK, values)
}

func (s *server) getRuntimes(ctx *gin.Context) {
	entries, err := results.ReadRuntimes(s.config.OutputDirectory)
	if err != nil {
		writeError(ctx, http.StatusInternalServerError, err)
		return
	}
	type runtimeEntry struct {
		Timestamp time.Time `json:"timestamp"`
		Dataset   string    `json:"dataset"`
		Measure   string    `json:"measure"`
		Seconds   float64   `json:"seconds"`
	}
	payload := make([]runtimeEntry, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, runtimeEntry{
			Timestamp: entry.Timestamp,
			Dataset:   entry.Dataset,
			Measure:   entry.Measure,
			Seconds:   entry.Elapsed.Seconds(),
		})
	}
	writeJSON(ctx, http.StatusOK, gin.H{"runtimes": payload})
}

func writeJSON(ctx *gin.Context, code int, obj interface{}) {
	body, err := jsonApi.Marshal(obj)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "failed to encode response: %s", err)
		return
	}
	ctx.Data(code, "application/json", body)
}

func writeError(ctx *gin.Context, code int, err error) {
	writeJSON(ctx, code, gin.H{"error": errors.ToString(err)})
}
