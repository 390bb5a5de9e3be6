package FirebaseHandlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/Smokey053/cinephile-central/main/Handlers"
)

// UserFetcher is satisfied by *auth.Client.
type UserFetcher interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

type ReviewHandler struct {
	AuthHandler Handlers.AuthVerifier
	Users       UserFetcher
	Reviews     ReviewStore
	Profiles    ProfileStore
}

type reviewRequest struct {
	MovieId string `json:"movieId"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// ServeHTTP dispatches /reviews/{movieId}, /reviews/{movieId}/rating and
// /reviews/{id} by method. Creation lives on /reviews (CreateWrapper).
func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/reviews/"), "/")
	switch r.Method {
	case http.MethodOptions:
		_, _ = w.Write([]byte("OK"))
	case http.MethodGet:
		if movieId, found := strings.CutSuffix(rest, "/rating"); found {
			h.communityRating(w, r, movieId)
		} else {
			h.listReviews(w, r, rest)
		}
	case http.MethodPut:
		h.updateReview(w, r, rest)
	case http.MethodDelete:
		h.deleteReview(w, r, rest)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request, movieId string) {
	if movieId == "" {
		http.Error(w, "Movie ID is required", http.StatusBadRequest)
		return
	}
	reviews, err := h.Reviews.List(r.Context(), movieId)
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []Review{}
	}
	Handlers.RespondJson(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) communityRating(w http.ResponseWriter, r *http.Request, movieId string) {
	if movieId == "" {
		http.Error(w, "Movie ID is required", http.StatusBadRequest)
		return
	}
	reviews, err := h.Reviews.List(r.Context(), movieId)
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	summary, ok := CommunityRating(reviews)
	if !ok {
		http.Error(w, "No reviews", http.StatusNotFound)
		return
	}
	Handlers.RespondJson(w, http.StatusOK, summary)
}

func (h *ReviewHandler) CreateWrapper(w http.ResponseWriter, r *http.Request) {
	authorized, token := Handlers.AuthorizationWrapper(w, r, h.AuthHandler, http.MethodPost)
	if !authorized {
		return
	}

	var body reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.MovieId == "" || body.Rating < 1 || body.Rating > 5 {
		http.Error(w, "Missing required fields: movieId and rating", http.StatusBadRequest)
		return
	}

	now := time.Now().UnixMilli()
	review := Review{
		MovieId:    body.MovieId,
		AuthorId:   token.UID,
		AuthorName: h.resolveAuthorName(r.Context(), token),
		Rating:     body.Rating,
		Text:       body.Text,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	id, err := h.Reviews.Create(r.Context(), review)
	if err != nil {
		log.Printf("Failed to create review: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	review.Id = id
	Handlers.RespondJson(w, http.StatusCreated, review)
}

// resolveAuthorName snapshots the author's display name at creation time:
// auth user record, then the token's name claim, then the stored profile,
// then the local part of the email.
func (h *ReviewHandler) resolveAuthorName(ctx context.Context, token *auth.Token) string {
	if record, err := h.Users.GetUser(ctx, token.UID); err == nil && record.DisplayName != "" {
		return record.DisplayName
	} else if err != nil {
		log.Printf("Failed to fetch user record: %v", err)
	}
	if name, ok := token.Claims["name"].(string); ok && name != "" {
		return name
	}
	if profile, err := h.Profiles.Get(ctx, token.UID); err == nil && profile.DisplayName != "" {
		return profile.DisplayName
	}
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		return strings.SplitN(email, "@", 2)[0]
	}
	return "Anonymous"
}

func (h *ReviewHandler) updateReview(w http.ResponseWriter, r *http.Request, id string) {
	authorized, token := Handlers.AuthorizationWrapper(w, r, h.AuthHandler, http.MethodPut)
	if !authorized {
		return
	}

	var body reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.MovieId == "" {
		http.Error(w, "Missing movieId", http.StatusBadRequest)
		return
	}

	review, err := h.Reviews.Get(r.Context(), body.MovieId, id)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if review.AuthorId != token.UID {
		http.Error(w, "User not authorized to edit this review", http.StatusForbidden)
		return
	}

	review.Rating = body.Rating
	review.Text = body.Text
	review.UpdatedAt = time.Now().UnixMilli()
	if err := h.Reviews.Update(r.Context(), id, review.Rating, review.Text, review.UpdatedAt); err != nil {
		log.Printf("Failed to update review: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	Handlers.RespondJson(w, http.StatusOK, review)
}

func (h *ReviewHandler) deleteReview(w http.ResponseWriter, r *http.Request, id string) {
	authorized, token := Handlers.AuthorizationWrapper(w, r, h.AuthHandler, http.MethodDelete)
	if !authorized {
		return
	}

	movieId := r.URL.Query().Get("movieId")
	if movieId == "" {
		http.Error(w, "Missing movieId query parameter", http.StatusBadRequest)
		return
	}

	review, err := h.Reviews.Get(r.Context(), movieId, id)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if review.AuthorId != token.UID {
		http.Error(w, "User not authorized to delete this review", http.StatusForbidden)
		return
	}

	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		log.Printf("Failed to delete review: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Review deleted"))
}
