package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mindreel/mindreel/internal/config"
	"github.com/mindreel/mindreel/internal/frames"
	"github.com/mindreel/mindreel/internal/generate"
	"github.com/mindreel/mindreel/internal/ports/adapters/captions"
	"github.com/mindreel/mindreel/internal/ports/adapters/ffmpeg"
	"github.com/mindreel/mindreel/internal/ports/adapters/together"
	"github.com/mindreel/mindreel/internal/ports/adapters/ytdlp"
	"github.com/mindreel/mindreel/internal/storage"
)

type Server struct {
	engine *gin.Engine
	cfg    config.Config
}

func New(cfg config.Config, log *zap.SugaredLogger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	store, err := storage.NewMedia(cfg.MediaDir)
	if err != nil {
		return nil, fmt.Errorf("init media store: %w", err)
	}

	gen := generate.New(generate.Deps{
		Completer: together.New(cfg.TogetherAPIKey, cfg.TogetherModel, cfg.TogetherBaseURL),
		Log:       log,
	})
	sampler := frames.NewSampler(ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath), store, log)

	api := NewAPI(cfg, log, store, captions.New(cfg.CaptionLangs), ytdlp.New(cfg.YTDLPPath), gen, sampler)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(log))
	engine.Use(CORS())

	registerRoutes(engine, api)
	engine.Static("/downloads", store.Root())

	return &Server{engine: engine, cfg: cfg}, nil
}

func (s *Server) Run() error {
	return s.engine.Run(":" + s.cfg.Port)
}
