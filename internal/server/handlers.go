package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"

	"teachmate/internal/assist"
	"teachmate/internal/extract"
	"teachmate/internal/llm"
	"teachmate/internal/payload"
)

// visualCacheSize bounds the replay cache for generated images. The
// UI posts a generation request and then fetches the image bytes by
// id; entries are evicted LRU once the bound is hit.
const visualCacheSize = 128

type Handler struct {
	svc     *assist.Service
	visuals *lru.Cache[string, *extract.Image]
}

func NewHandler(svc *assist.Service) (*Handler, error) {
	cache, err := lru.New[string, *extract.Image](visualCacheSize)
	if err != nil {
		return nil, err
	}
	return &Handler{svc: svc, visuals: cache}, nil
}

func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	r.HandleFunc("/v1/lessonplan/stream", h.handleLessonPlanStream).Methods(http.MethodGet)
	r.HandleFunc("/v1/quiz", h.handleQuiz).Methods(http.MethodPost)
	r.HandleFunc("/v1/visual", h.handleVisual).Methods(http.MethodPost)
	r.HandleFunc("/v1/visual/{id}", h.handleVisualGet).Methods(http.MethodGet)
	r.HandleFunc("/v1/homework/check", h.handleHomeworkCheck).Methods(http.MethodPost)
	r.HandleFunc("/v1/homework/sheet", h.handleAnswerSheet).Methods(http.MethodPost)
	r.HandleFunc("/v1/plagiarism/scan", h.handlePlagiarismScan).Methods(http.MethodPost)
	r.HandleFunc("/v1/plagiarism/compare", h.handleCompare).Methods(http.MethodPost)

	return withCORS(r)
}

func (h *Handler) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Topic         string `json:"topic"`
		Grade         string `json:"grade"`
		QuestionCount int    `json:"questionCount"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Topic) == "" || strings.TrimSpace(in.Grade) == "" || in.QuestionCount <= 0 {
		http.Error(w, "topic, grade and questionCount are required", http.StatusBadRequest)
		return
	}
	quiz, err := h.svc.GenerateQuiz(r.Context(), in.Topic, in.Grade, in.QuestionCount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handler) handleVisual(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Prompt string `json:"prompt"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Prompt) == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}
	img, err := h.svc.GenerateVisualAid(r.Context(), in.Prompt)
	if err != nil {
		writeError(w, err)
		return
	}
	id := newID()
	h.visuals.Add(id, img)
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        id,
		"mediaType": img.MediaType,
		"url":       "/v1/visual/" + id,
	})
}

func (h *Handler) handleVisualGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	img, ok := h.visuals.Get(id)
	if !ok {
		http.Error(w, "unknown or expired visual id", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", img.MediaType)
	if _, err := w.Write(img.Data); err != nil {
		log.Printf("write visual %s: %v", id, err)
	}
}

func (h *Handler) handleHomeworkCheck(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Assignment  string `json:"assignment"`
		StudentWork string `json:"studentWork"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Assignment) == "" || strings.TrimSpace(in.StudentWork) == "" {
		http.Error(w, "assignment and studentWork are required", http.StatusBadRequest)
		return
	}
	feedback, err := h.svc.CheckHomework(r.Context(), in.Assignment, in.StudentWork)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"feedback": feedback})
}

type attachmentBody struct {
	DataURI string `json:"dataUri"`
}

func (h *Handler) handleAnswerSheet(w http.ResponseWriter, r *http.Request) {
	var in struct {
		AssignmentContext string          `json:"assignmentContext"`
		Submission        attachmentBody  `json:"submission"`
		AnswerKey         *attachmentBody `json:"answerKey"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	submission, ok := decodeAttachment(w, in.Submission.DataURI)
	if !ok {
		return
	}
	var answerKey *payload.Attachment
	if in.AnswerKey != nil {
		key, ok := decodeAttachment(w, in.AnswerKey.DataURI)
		if !ok {
			return
		}
		answerKey = &key
	}
	feedback, err := h.svc.GradeAnswerSheet(r.Context(), submission, answerKey, in.AssignmentContext)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"feedback": feedback})
}

func (h *Handler) handlePlagiarismScan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	report, err := h.svc.CheckPlagiarism(r.Context(), in.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TextA string `json:"textA"`
		TextB string `json:"textB"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.TextA) == "" || strings.TrimSpace(in.TextB) == "" {
		http.Error(w, "textA and textB are required", http.StatusBadRequest)
		return
	}
	analysis, err := h.svc.CompareSubmissions(r.Context(), in.TextA, in.TextB)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func decodeAttachment(w http.ResponseWriter, dataURI string) (payload.Attachment, bool) {
	mediaType, data, err := payload.DecodeDataURI(dataURI)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return payload.Attachment{}, false
	}
	return payload.Attachment{MediaType: mediaType, Data: data}, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

// statusFor maps the orchestration error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	var tooLarge *payload.TooLargeError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, llm.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, llm.ErrSafetyBlocked):
		return http.StatusUnprocessableEntity
	case errors.Is(err, llm.ErrNetwork),
		errors.Is(err, assist.ErrMalformedResponse),
		errors.Is(err, extract.ErrEmptyResponse),
		errors.Is(err, extract.ErrNoImageData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Simple CORS middleware, permissive for the local UI.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}
