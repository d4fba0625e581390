// Package podcast exposes podcast generation over HTTP.
package podcast

import (
	"errors"
	"net/http"

	"chutti-news/internal/handler/http/respond"
	podcastUC "chutti-news/internal/usecase/podcast"
)

// GenerateResponse reports the produced artifacts.
type GenerateResponse struct {
	Script      string `json:"script"`
	ScriptFile  string `json:"script_file"`
	AudioFile   string `json:"audio_file"`
	Provider    string `json:"provider"`
	Placeholder bool   `json:"placeholder"`
	Articles    int    `json:"articles"`
}

// GenerateHandler composes the script from approved articles and
// synthesizes the audio.
type GenerateHandler struct {
	service *podcastUC.Service
}

func NewGenerateHandler(service *podcastUC.Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Generate(r.Context())
	if err != nil {
		if errors.Is(err, podcastUC.ErrNoApprovedArticles) {
			respond.Error(w, http.StatusConflict, "no approved articles found")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, GenerateResponse{
		Script:      result.Script,
		ScriptFile:  result.ScriptFile,
		AudioFile:   result.AudioFile,
		Provider:    result.Provider,
		Placeholder: result.Placeholder,
		Articles:    result.Articles,
	})
}

// Register mounts the podcast routes on mux.
func Register(mux *http.ServeMux, service *podcastUC.Service) {
	mux.Handle("POST /podcast", NewGenerateHandler(service))
}
