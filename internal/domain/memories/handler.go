package memories

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/respond"
	"mamas-embrace/internal/ports/blob"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 16 << 20

func RegisterRoutes(r chi.Router, svc *Service, uploader blob.Uploader) {
	r.Route("/api/memories", func(mr chi.Router) {
		mr.Get("/", listMemoriesHandler(svc))
		mr.Post("/", createMemoryHandler(svc, uploader))
		mr.Delete("/{memoryID}", deleteMemoryHandler(svc))
	})
}

type memoryResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Text         string    `json:"text,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	VoiceNoteURL string    `json:"voiceNoteUrl,omitempty"`
	IsAIResponse bool      `json:"isAiResponse,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func listMemoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		out := make([]memoryResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMemoryResponse(m))
		}

		respond.Success(w, http.StatusOK, map[string]any{"memories": out})
	}
}

// createMemoryHandler acepta multipart/form-data: title, text, isAiResponse
// y archivos opcionales image / voiceNote.
func createMemoryHandler(svc *Service, uploader blob.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid multipart form", nil)
			return
		}

		if strings.TrimSpace(r.FormValue("title")) == "" {
			respond.Error(w, http.StatusBadRequest, "title is required", nil)
			return
		}

		imageURL, err := uploadFormFile(r, uploader, "image", "memories", claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusBadGateway, "image upload failed", nil)
			return
		}
		voiceURL, err := uploadFormFile(r, uploader, "voiceNote", "memories", claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusBadGateway, "voice note upload failed", nil)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Title:        r.FormValue("title"),
			Text:         r.FormValue("text"),
			ImageURL:     imageURL,
			VoiceNoteURL: voiceURL,
			IsAIResponse: strings.EqualFold(r.FormValue("isAiResponse"), "true"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, "memory needs text, image or voice note", nil)
				return
			}
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		respond.Success(w, http.StatusCreated, map[string]any{"memory": toMemoryResponse(m)})
	}
}

func deleteMemoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		err := svc.Delete(r.Context(), chi.URLParam(r, "memoryID"), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				respond.Error(w, http.StatusForbidden, "forbidden", nil)
			case errors.Is(err, ErrNotFound):
				respond.Error(w, http.StatusNotFound, "memory not found", nil)
			default:
				respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			}
			return
		}

		respond.OK(w)
	}
}

// Duplicado intencionalmente con journal (ver nota allá).
func uploadFormFile(r *http.Request, uploader blob.Uploader, field, folder, subjectID string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if uploader == nil {
		return "", errors.New("uploads not configured")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", err
	}

	return uploader.Upload(r.Context(), blob.UploadInput{
		Folder:      folder,
		SubjectID:   subjectID,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
}

func toMemoryResponse(m Memory) memoryResponse {
	return memoryResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Text:         m.Text,
		ImageURL:     m.ImageURL,
		VoiceNoteURL: m.VoiceNoteURL,
		IsAIResponse: m.IsAIResponse,
		CreatedAt:    m.CreatedAt,
	}
}
