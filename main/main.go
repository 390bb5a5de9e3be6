package main

import (
	"context"
	"log"
	"net/http"

	firebase "firebase.google.com/go/v4"
	"github.com/Smokey053/cinephile-central/main/Handlers"
	"github.com/Smokey053/cinephile-central/main/Handlers/FirebaseHandlers"
	"github.com/Smokey053/cinephile-central/main/Handlers/MovieHandlers"
	"github.com/rs/cors"
)

func main() {
	config, err := Handlers.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: config.FirebaseProjectId})
	if err != nil {
		log.Fatal("Failed to initialize firebase app:", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatal("Failed to create auth client:", err)
	}
	fireStore, err := app.Firestore(ctx)
	if err != nil {
		log.Fatal("Failed to create firestore client:", err)
	}

	mongoHandler, err := MovieHandlers.NewMongoHandler(config.MongoHost)
	if err != nil {
		log.Fatal("Failed to create MongoHandler:", err)
	}

	profileStore := &FirebaseHandlers.FirestoreProfileStore{Client: fireStore}
	reviewHandler := &FirebaseHandlers.ReviewHandler{
		AuthHandler: authClient,
		Users:       authClient,
		Reviews:     &FirebaseHandlers.FirestoreReviewStore{Client: fireStore},
		Profiles:    profileStore,
	}
	profileHandler := &FirebaseHandlers.ProfileHandler{
		AuthHandler: authClient,
		Profiles:    profileStore,
	}
	tmdbHandler := &MovieHandlers.TmdbHandler{
		ApiKey:  config.TmdbApiKey,
		BaseUrl: MovieHandlers.TmdbBaseUrl,
		Cache:   mongoHandler,
	}

	// Create a new router
	mux := http.NewServeMux()

	// Register request handlers
	mux.HandleFunc("/reviews", reviewHandler.CreateWrapper)
	mux.Handle("/reviews/", reviewHandler)
	mux.HandleFunc("/profile", profileHandler.UpdateWrapper)
	mux.HandleFunc("/profile/", profileHandler.GetWrapper)
	mux.HandleFunc("/tmdb/popular", tmdbHandler.PopularWrapper)
	mux.HandleFunc("/tmdb/search", tmdbHandler.SearchWrapper)
	mux.HandleFunc("/tmdb/search/tv", tmdbHandler.SearchTvWrapper)
	mux.HandleFunc("/tmdb/movie/", tmdbHandler.MovieDetailsWrapper)
	mux.HandleFunc("/tmdb/tv/popular", tmdbHandler.PopularTvWrapper)
	mux.HandleFunc("/tmdb/tv/", tmdbHandler.TvDetailsWrapper)

	handler := cors.AllowAll().Handler(mux)

	// Start the server with CORS enabled
	log.Printf("Server listening on http://localhost%s/", config.ListenAddr)
	log.Fatal(http.ListenAndServe(config.ListenAddr, handler))
}
