package FirebaseHandlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Smokey053/cinephile-central/main/Handlers"
)

type ProfileHandler struct {
	AuthHandler Handlers.AuthVerifier
	Profiles    ProfileStore
}

type profileRequest struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photoURL"`
}

type profileResponse struct {
	Uid         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photoURL"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func (h *ProfileHandler) GetWrapper(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		_, _ = w.Write([]byte("OK"))
		return
	} else if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uid := strings.Trim(strings.TrimPrefix(r.URL.Path, "/profile/"), "/")
	if uid == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}
	profile, err := h.Profiles.Get(r.Context(), uid)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "User profile not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	Handlers.RespondJson(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateWrapper(w http.ResponseWriter, r *http.Request) {
	authorized, token := Handlers.AuthorizationWrapper(w, r, h.AuthHandler, http.MethodPut)
	if !authorized {
		return
	}

	var body profileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	displayName := strings.TrimSpace(body.DisplayName)
	if displayName != "" {
		// Check-then-write, not transactional: two concurrent claims of the
		// same name can both pass this check and the later write wins.
		uids, err := h.Profiles.FindUidsByDisplayName(r.Context(), displayName)
		if err != nil {
			log.Printf("Failed to check display name: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		for _, uid := range uids {
			if uid != token.UID {
				Handlers.RespondJson(w, http.StatusConflict, map[string]string{
					"error":   "displayNameTaken",
					"message": "This display name is already taken. Please choose another one.",
				})
				return
			}
		}
	}

	profile := Profile{
		DisplayName: displayName,
		Bio:         body.Bio,
		PhotoURL:    body.PhotoURL,
		UpdatedAt:   time.Now().UnixMilli(),
	}
	if err := h.Profiles.Set(r.Context(), token.UID, profile); err != nil {
		log.Printf("Failed to update profile: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	Handlers.RespondJson(w, http.StatusOK, profileResponse{
		Uid:         token.UID,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		PhotoURL:    profile.PhotoURL,
		UpdatedAt:   profile.UpdatedAt,
	})
}
