package journal

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/respond"
	"mamas-embrace/internal/ports/blob"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 16 << 20 // 16MB por request multipart

func RegisterRoutes(r chi.Router, svc *Service, uploader blob.Uploader) {
	r.Route("/api/journal", func(jr chi.Router) {
		jr.Get("/", listEntriesHandler(svc))
		jr.Post("/", createEntryHandler(svc, uploader))
		jr.Put("/{entryID}", updateEntryHandler(svc))
		jr.Delete("/{entryID}", deleteEntryHandler(svc))
	})
}

type entryResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	VoiceNoteURL string    `json:"voiceNoteUrl,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type updateEntryRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// listEntriesHandler godoc
// @Summary Listar entradas de diario
// @Description Lista las entradas de la usuaria autenticada (scoping por dueña, siempre).
// @Tags journal
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /api/journal [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
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

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}

		respond.Success(w, http.StatusOK, map[string]any{"entries": out})
	}
}

// createEntryHandler acepta multipart/form-data: title, content, tags
// (separados por coma) y archivos opcionales image / voiceNote.
func createEntryHandler(svc *Service, uploader blob.Uploader) http.HandlerFunc {
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

		title := r.FormValue("title")
		content := r.FormValue("content")
		if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
			respond.Error(w, http.StatusBadRequest, "title and content are required", nil)
			return
		}

		imageURL, err := uploadFormFile(r, uploader, "image", "journal", claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusBadGateway, "image upload failed", nil)
			return
		}
		voiceURL, err := uploadFormFile(r, uploader, "voiceNote", "journal", claims.UserID)
		if err != nil {
			respond.Error(w, http.StatusBadGateway, "voice note upload failed", nil)
			return
		}

		e, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Title:        title,
			Content:      content,
			ImageURL:     imageURL,
			VoiceNoteURL: voiceURL,
			Tags:         splitTags(r.FormValue("tags")),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				respond.Error(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			respond.Error(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		respond.Success(w, http.StatusCreated, map[string]any{"entry": toEntryResponse(e)})
	}
}

func updateEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		var req updateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		e, err := svc.Update(r.Context(), chi.URLParam(r, "entryID"), claims.UserID, UpdateInput{
			Title:   req.Title,
			Content: req.Content,
			Tags:    req.Tags,
		})
		if err != nil {
			writeEntryError(w, err)
			return
		}

		respond.Success(w, http.StatusOK, map[string]any{"entry": toEntryResponse(e)})
	}
}

func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "entryID"), claims.UserID); err != nil {
			writeEntryError(w, err)
			return
		}

		respond.OK(w)
	}
}

func writeEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		respond.Error(w, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(w, http.StatusNotFound, "entry not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		respond.Error(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// uploadFormFile sube un archivo del form si está presente. Ausente => "".
// Duplicado intencionalmente en memories; si aparece un tercer módulo con
// multipart, conviene extraerlo a un helper común.
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

	data, err := readAll(file)
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

func readAll(f multipart.File) ([]byte, error) {
	return io.ReadAll(io.LimitReader(f, maxUploadBytes))
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Content:      e.Content,
		ImageURL:     e.ImageURL,
		VoiceNoteURL: e.VoiceNoteURL,
		Tags:         e.Tags,
		CreatedAt:    e.CreatedAt,
	}
}
