package FirebaseHandlers

import (
	"context"
	"log"
	"sort"

	"cloud.google.com/go/firestore"
)

type FirestoreReviewStore struct {
	Client *firestore.Client
}

func (s *FirestoreReviewStore) List(ctx context.Context, movieId string) ([]Review, error) {
	docs, err := s.Client.Collection("Reviews").Where("movieId", "==", movieId).Documents(ctx).GetAll()
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		return nil, err
	}
	reviews := make([]Review, 0, len(docs))
	for _, doc := range docs {
		var review Review
		if err := doc.DataTo(&review); err != nil {
			log.Printf("Failed to convert data: %v", err)
			return nil, err
		}
		review.Id = doc.Ref.ID
		reviews = append(reviews, review)
	}
	// Sort by newest first
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	return reviews, nil
}

func (s *FirestoreReviewStore) Get(ctx context.Context, movieId, id string) (Review, error) {
	doc, err := s.Client.Collection("Reviews").Doc(id).Get(ctx)
	if err != nil {
		log.Printf("Failed to get review: %v", err)
		return Review{}, ErrNotFound
	}
	var review Review
	if err := doc.DataTo(&review); err != nil {
		log.Printf("Failed to convert data: %v", err)
		return Review{}, err
	}
	review.Id = doc.Ref.ID
	if review.MovieId != movieId {
		return Review{}, ErrNotFound
	}
	return review, nil
}

func (s *FirestoreReviewStore) Create(ctx context.Context, review Review) (string, error) {
	ref := s.Client.Collection("Reviews").NewDoc()
	if _, err := ref.Create(ctx, review); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreReviewStore) Update(ctx context.Context, id string, rating int, text string, updatedAt int64) error {
	_, err := s.Client.Collection("Reviews").Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "text", Value: text},
		{Path: "updatedAt", Value: updatedAt},
	})
	return err
}

func (s *FirestoreReviewStore) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Collection("Reviews").Doc(id).Delete(ctx)
	return err
}

type FirestoreProfileStore struct {
	Client *firestore.Client
}

func (s *FirestoreProfileStore) Get(ctx context.Context, uid string) (Profile, error) {
	doc, err := s.Client.Collection("Users").Doc(uid).Get(ctx)
	if err != nil {
		log.Printf("Failed to get user: %v", err)
		return Profile{}, ErrNotFound
	}
	var profile Profile
	if err := doc.DataTo(&profile); err != nil {
		log.Printf("Failed to convert data: %v", err)
		return Profile{}, err
	}
	return profile, nil
}

func (s *FirestoreProfileStore) FindUidsByDisplayName(ctx context.Context, displayName string) ([]string, error) {
	docs, err := s.Client.Collection("Users").Where("displayName", "==", displayName).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	uids := make([]string, 0, len(docs))
	for _, doc := range docs {
		uids = append(uids, doc.Ref.ID)
	}
	return uids, nil
}

func (s *FirestoreProfileStore) Set(ctx context.Context, uid string, profile Profile) error {
	_, err := s.Client.Collection("Users").Doc(uid).Set(ctx, profile)
	return err
}
