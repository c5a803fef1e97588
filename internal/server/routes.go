package server

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindreel/mindreel/internal/config"
	"github.com/mindreel/mindreel/internal/domain/notes"
	"github.com/mindreel/mindreel/internal/frames"
	"github.com/mindreel/mindreel/internal/generate"
	"github.com/mindreel/mindreel/internal/ports"
	"github.com/mindreel/mindreel/internal/storage"
	"github.com/mindreel/mindreel/internal/types"
)

type API struct {
	cfg         config.Config
	log         *zap.SugaredLogger
	store       *storage.Media
	transcripts ports.TranscriptSource
	downloader  ports.VideoDownloader
	gen         generate.Service
	sampler     *frames.Sampler
}

func NewAPI(
	cfg config.Config,
	log *zap.SugaredLogger,
	store *storage.Media,
	transcripts ports.TranscriptSource,
	downloader ports.VideoDownloader,
	gen generate.Service,
	sampler *frames.Sampler,
) *API {
	return &API{
		cfg:         cfg,
		log:         log,
		store:       store,
		transcripts: transcripts,
		downloader:  downloader,
		gen:         gen,
		sampler:     sampler,
	}
}

func registerRoutes(r *gin.Engine, api *API) {
	r.GET("/health", api.handleHealth)

	r.POST("/generate-summary", api.handleGenerateSummary)
	r.POST("/generate-quiz", api.handleGenerateQuiz)
	r.POST("/generate-flashcards", api.handleGenerateFlashcards)
	r.POST("/ask-question", api.handleAskQuestion)

	r.POST("/key-frames", api.handleKeyFrames)
	r.GET("/key-frames/:video_id", api.handleListFrames)
	r.POST("/cleanup/:video_id", api.handleCleanup)
}

type videoRequest struct {
	URL string `json:"url" binding:"required"`
}

type flashcardsRequest struct {
	URL string `json:"youtube_url" binding:"required"`
}

type questionRequest struct {
	URL      string `json:"youtube_url" binding:"required"`
	Question string `json:"question" binding:"required"`
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (a *API) handleGenerateSummary(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	tr, ok := a.fetchTranscript(c, req.URL)
	if !ok {
		return
	}

	notesHTML := a.gen.GenerateNotes(c.Request.Context(), tr)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Structured notes generated",
		"notes":    notesHTML,
		"video_id": uuid.NewString(),
	})
}

func (a *API) handleGenerateQuiz(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	tr, ok := a.fetchTranscript(c, req.URL)
	if !ok {
		return
	}

	// The quiz is built from the structured notes rather than the raw
	// transcript, so the questions follow what the notes actually cover.
	notesHTML := a.gen.GenerateNotes(c.Request.Context(), tr)
	questions := a.gen.GenerateQuiz(c.Request.Context(), notes.Text(notesHTML))
	if questions == nil {
		questions = []types.QuizQuestion{}
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (a *API) handleGenerateFlashcards(c *gin.Context) {
	var req flashcardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "youtube_url is required"})
		return
	}

	tr, ok := a.fetchTranscript(c, req.URL)
	if !ok {
		return
	}

	cards := a.gen.GenerateFlashcards(c.Request.Context(), tr)
	if cards == nil {
		cards = []types.Flashcard{}
	}
	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}

func (a *API) handleAskQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and youtube_url are required"})
		return
	}

	tr, ok := a.fetchTranscript(c, req.URL)
	if !ok {
		return
	}

	answer := a.gen.AnswerQuestion(c.Request.Context(), tr, req.Question)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (a *API) handleKeyFrames(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	videoID := uuid.NewString()
	videoPath := a.store.VideoPath(videoID)
	if err := a.downloader.Download(c.Request.Context(), req.URL, videoPath); err != nil {
		a.log.Errorw("video download failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "video could not be downloaded"})
		return
	}

	paths, err := a.sampler.Sample(c.Request.Context(), videoPath, videoID, a.cfg.MaxFrames)
	if err != nil {
		a.log.Errorw("key frame generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "key frame generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Key frames generated successfully",
		"video_id": videoID,
		"frames":   a.frameURLs(paths),
	})
}

func (a *API) handleListFrames(c *gin.Context) {
	videoID, ok := a.bindVideoID(c)
	if !ok {
		return
	}

	paths, err := a.store.ListFrames(videoID)
	if err != nil {
		a.log.Errorw("list frames failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list frames"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"frames": a.frameURLs(paths)})
}

func (a *API) handleCleanup(c *gin.Context) {
	videoID, ok := a.bindVideoID(c)
	if !ok {
		return
	}

	removed, err := a.store.Cleanup(videoID)
	if err != nil {
		a.log.Errorw("cleanup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cleanup complete", "removed": removed})
}

// bindVideoID accepts only ids this service generated (UUIDs), which also
// keeps path fragments out of file name prefixes.
func (a *API) bindVideoID(c *gin.Context) (string, bool) {
	videoID := c.Param("video_id")
	if _, err := uuid.Parse(videoID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return "", false
	}
	return videoID, true
}

func (a *API) fetchTranscript(c *gin.Context, videoURL string) (string, bool) {
	tr, err := a.transcripts.Fetch(c.Request.Context(), videoURL)
	if err != nil {
		a.log.Warnw("transcript fetch failed", "url", videoURL, "error", err)
		switch {
		case errors.Is(err, ports.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid YouTube URL"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "transcript could not be retrieved"})
		}
		return "", false
	}
	return tr, true
}

func (a *API) frameURLs(paths []string) []string {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		urls = append(urls, "/downloads/"+filepath.Base(p))
	}
	return urls
}
