package FirebaseHandlers

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
)

type fakeAuth struct {
	tokens map[string]*auth.Token
	users  map[string]*auth.UserRecord
}

func (f *fakeAuth) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	token, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return token, nil
}

func (f *fakeAuth) GetUser(_ context.Context, uid string) (*auth.UserRecord, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, errors.New("no such user")
	}
	return user, nil
}

type memoryReviewStore struct {
	reviews map[string]Review
}

func newMemoryReviewStore() *memoryReviewStore {
	return &memoryReviewStore{reviews: map[string]Review{}}
}

func (s *memoryReviewStore) List(_ context.Context, movieId string) ([]Review, error) {
	var reviews []Review
	for id, review := range s.reviews {
		if review.MovieId == movieId {
			review.Id = id
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	return reviews, nil
}

func (s *memoryReviewStore) Get(_ context.Context, movieId, id string) (Review, error) {
	review, ok := s.reviews[id]
	if !ok || review.MovieId != movieId {
		return Review{}, ErrNotFound
	}
	review.Id = id
	return review, nil
}

func (s *memoryReviewStore) Create(_ context.Context, review Review) (string, error) {
	id := uuid.NewString()
	s.reviews[id] = review
	return id, nil
}

func (s *memoryReviewStore) Update(_ context.Context, id string, rating int, text string, updatedAt int64) error {
	review, ok := s.reviews[id]
	if !ok {
		return ErrNotFound
	}
	review.Rating = rating
	review.Text = text
	review.UpdatedAt = updatedAt
	s.reviews[id] = review
	return nil
}

func (s *memoryReviewStore) Delete(_ context.Context, id string) error {
	delete(s.reviews, id)
	return nil
}

type memoryProfileStore struct {
	profiles map[string]Profile
}

func newMemoryProfileStore() *memoryProfileStore {
	return &memoryProfileStore{profiles: map[string]Profile{}}
}

func (s *memoryProfileStore) Get(_ context.Context, uid string) (Profile, error) {
	profile, ok := s.profiles[uid]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

func (s *memoryProfileStore) FindUidsByDisplayName(_ context.Context, displayName string) ([]string, error) {
	var uids []string
	for uid, profile := range s.profiles {
		if profile.DisplayName == displayName {
			uids = append(uids, uid)
		}
	}
	return uids, nil
}

func (s *memoryProfileStore) Set(_ context.Context, uid string, profile Profile) error {
	s.profiles[uid] = profile
	return nil
}

type reviewEnv struct {
	mux      *http.ServeMux
	reviews  *memoryReviewStore
	profiles *memoryProfileStore
	auth     *fakeAuth
}

func newReviewEnv() reviewEnv {
	reviews := newMemoryReviewStore()
	profiles := newMemoryProfileStore()
	authStub := &fakeAuth{
		tokens: map[string]*auth.Token{},
		users:  map[string]*auth.UserRecord{},
	}
	handler := &ReviewHandler{
		AuthHandler: authStub,
		Users:       authStub,
		Reviews:     reviews,
		Profiles:    profiles,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/reviews", handler.CreateWrapper)
	mux.Handle("/reviews/", handler)
	return reviewEnv{mux: mux, reviews: reviews, profiles: profiles, auth: authStub}
}

func newProfileEnv() (*http.ServeMux, *memoryProfileStore, *fakeAuth) {
	profiles := newMemoryProfileStore()
	authStub := &fakeAuth{
		tokens: map[string]*auth.Token{},
		users:  map[string]*auth.UserRecord{},
	}
	handler := &ProfileHandler{
		AuthHandler: authStub,
		Profiles:    profiles,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/profile", handler.UpdateWrapper)
	mux.HandleFunc("/profile/", handler.GetWrapper)
	return mux, profiles, authStub
}
