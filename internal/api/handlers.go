package api

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intervu/internal/interview"
	"intervu/internal/store"
	"intervu/internal/utils"
)

// maxAudioSize caps answer recordings at 25MB.
const maxAudioSize = 25 * 1024 * 1024

var allowedAudioExts = []string{".wav", ".m4a", ".mp3", ".aac", ".ogg", ".webm", ".caf", ".aiff", ".aif"}

// audioFormFields are the multipart field names clients send recordings under.
var audioFormFields = []string{"audio", "audio_file", "file"}

// Handler wires HTTP commands to interview sessions. Each endpoint maps to
// exactly one session transition.
type Handler struct {
	sessions    *store.Sessions
	generator   interview.Generator
	evaluator   interview.Evaluator
	transcriber interview.Transcriber
}

func NewHandler(sessions *store.Sessions, generator interview.Generator, evaluator interview.Evaluator, transcriber interview.Transcriber) *Handler {
	return &Handler{
		sessions:    sessions,
		generator:   generator,
		evaluator:   evaluator,
		transcriber: transcriber,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Health check
	r.GET("/health", h.healthCheck)

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", h.createSession)
		v1.GET("/sessions/:session_id", h.getSession)
		v1.DELETE("/sessions/:session_id", h.deleteSession)
		v1.POST("/sessions/:session_id/start", h.startInterview)
		v1.POST("/sessions/:session_id/answer", h.submitAnswer)
		v1.POST("/sessions/:session_id/audio", h.submitAudio)
		v1.POST("/sessions/:session_id/advance", h.advance)
		v1.POST("/sessions/:session_id/reset", h.reset)
	}
}

// healthCheck returns server health status
func (h *Handler) healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":   "ok",
		"service":  "intervu-backend",
		"sessions": h.sessions.Count(),
	})
}

// createSession handles POST /api/v1/sessions
func (h *Handler) createSession(c *gin.Context) {
	sess := interview.New(h.generator, h.evaluator, h.transcriber)
	id := h.sessions.Create(sess)

	log.Printf("[API] Session created: %s", id)
	utils.Success(c, gin.H{
		"session_id": id.String(),
		"state":      sess.State(),
	})
}

// getSession handles GET /api/v1/sessions/:session_id
func (h *Handler) getSession(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}
	utils.Success(c, gin.H{"state": sess.State()})
}

// deleteSession handles DELETE /api/v1/sessions/:session_id
func (h *Handler) deleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid session_id format")
		return
	}
	if !h.sessions.Delete(id) {
		utils.Error(c, http.StatusNotFound, "session not found")
		return
	}
	log.Printf("[API] Session deleted: %s", id)
	utils.Success(c, gin.H{"session_id": id.String(), "status": "deleted"})
}

// StartRequest is the setup form payload.
type StartRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Role       interview.Role         `json:"role" binding:"required"`
	Field      interview.Field        `json:"field" binding:"required"`
	Difficulty interview.Difficulty   `json:"difficulty" binding:"required"`
	Mode       interview.ResponseMode `json:"response_mode" binding:"required"`
}

// startInterview handles POST /api/v1/sessions/:session_id/start
func (h *Handler) startInterview(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "name, role, field, difficulty and response_mode are required")
		return
	}

	state, err := sess.Start(c.Request.Context(), interview.Candidate{
		Name:       req.Name,
		Role:       req.Role,
		Field:      req.Field,
		Difficulty: req.Difficulty,
		Mode:       req.Mode,
	})
	if err != nil {
		respondCommandError(c, err)
		return
	}

	utils.Success(c, gin.H{"state": state})
}

// AnswerRequest is a typed answer payload.
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// submitAnswer handles POST /api/v1/sessions/:session_id/answer
func (h *Handler) submitAnswer(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Rejected(c, http.StatusBadRequest, "answer is required")
		return
	}

	state, err := sess.SubmitAnswer(c.Request.Context(), req.Answer)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	utils.Success(c, gin.H{"state": state})
}

// submitAudio handles POST /api/v1/sessions/:session_id/audio
func (h *Handler) submitAudio(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	// Accept the field names mobile clients commonly send.
	var file *multipart.FileHeader
	var err error
	for _, field := range audioFormFields {
		if file, err = c.FormFile(field); err == nil {
			break
		}
	}
	if err != nil {
		utils.Error(c, http.StatusBadRequest,
			"audio file is required under one of the form fields "+strings.Join(audioFormFields, ", ")+": "+err.Error())
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	valid := false
	for _, allowed := range allowedAudioExts {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		utils.Error(c, http.StatusBadRequest, "unsupported audio format. Supported: wav, m4a, mp3, aac, ogg, webm, caf, aiff")
		return
	}

	if file.Size > maxAudioSize {
		utils.Error(c, http.StatusBadRequest, "file size exceeds 25MB limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "failed to open uploaded audio: "+err.Error())
		return
	}
	defer src.Close()

	audioBytes, err := io.ReadAll(src)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "failed to read uploaded audio: "+err.Error())
		return
	}

	log.Printf("[API] Audio received: %s (%d bytes)", file.Filename, len(audioBytes))

	result, err := sess.AudioReady(c.Request.Context(), audioBytes, ext)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	if result.Unrecognized {
		utils.Success(c, gin.H{
			"retry":   true,
			"message": "could not understand audio, please try again",
			"state":   result.State,
		})
		return
	}

	utils.Success(c, gin.H{
		"transcript": result.Transcript,
		"state":      result.State,
	})
}

// advance handles POST /api/v1/sessions/:session_id/advance
func (h *Handler) advance(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	state, err := sess.Advance()
	if err != nil {
		respondCommandError(c, err)
		return
	}

	utils.Success(c, gin.H{"state": state})
}

// reset handles POST /api/v1/sessions/:session_id/reset
func (h *Handler) reset(c *gin.Context) {
	sess, ok := h.lookupSession(c)
	if !ok {
		return
	}

	utils.Success(c, gin.H{"state": sess.Reset()})
}

// lookupSession resolves the :session_id parameter, responding on failure.
func (h *Handler) lookupSession(c *gin.Context) (*interview.Session, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid session_id format")
		return nil, false
	}

	sess, ok := h.sessions.Get(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

// respondCommandError maps session command failures onto HTTP statuses:
// phase conflicts to 409, input rejections to 400, collaborator failures
// to 500. State is unchanged in every case.
func respondCommandError(c *gin.Context, err error) {
	var rej *interview.Rejection
	if errors.As(err, &rej) {
		code := http.StatusBadRequest
		if rej.Conflict {
			code = http.StatusConflict
		}
		utils.Rejected(c, code, rej.Reason)
		return
	}

	log.Printf("[API] Command failed: %v", err)
	utils.Error(c, http.StatusInternalServerError, err.Error())
}
