package FirebaseHandlers

// Timestamps are epoch milliseconds, matching what the web client stores
// and compares.

type Review struct {
	Id         string `firestore:"-" json:"id"`
	MovieId    string `firestore:"movieId" json:"movieId"`
	AuthorId   string `firestore:"authorId" json:"authorId"`
	AuthorName string `firestore:"authorName" json:"authorName"`
	Rating     int    `firestore:"rating" json:"rating"`
	Text       string `firestore:"text" json:"text"`
	CreatedAt  int64  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  int64  `firestore:"updatedAt" json:"updatedAt"`
}

type Profile struct {
	DisplayName string `firestore:"displayName" json:"displayName"`
	Bio         string `firestore:"bio" json:"bio"`
	PhotoURL    string `firestore:"photoURL" json:"photoURL"`
	UpdatedAt   int64  `firestore:"updatedAt" json:"updatedAt"`
}
