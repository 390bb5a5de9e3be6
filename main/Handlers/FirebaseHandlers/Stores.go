package FirebaseHandlers

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// ReviewStore holds one record per review. A review only exists under the
// movie it was written for; Get reports ErrNotFound when the id exists but
// belongs to a different movie.
type ReviewStore interface {
	List(ctx context.Context, movieId string) ([]Review, error)
	Get(ctx context.Context, movieId, id string) (Review, error)
	Create(ctx context.Context, review Review) (string, error)
	Update(ctx context.Context, id string, rating int, text string, updatedAt int64) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore keys profiles by the Firebase Auth uid.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (Profile, error)
	FindUidsByDisplayName(ctx context.Context, displayName string) ([]string, error)
	Set(ctx context.Context, uid string, profile Profile) error
}
