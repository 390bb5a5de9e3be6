package Handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

// AuthVerifier is satisfied by *auth.Client.
type AuthVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthorizationWrapper gates a request on the given method and a valid
// Firebase ID token. The web client sends "Bearer <token>", older clients
// send the bare token; both are accepted.
func AuthorizationWrapper(w http.ResponseWriter, r *http.Request, authHandler AuthVerifier, method string) (bool, *auth.Token) {
	if r.Method == http.MethodOptions {
		_, _ = w.Write([]byte("OK"))
		return false, nil
	} else if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false, nil
	}
	idToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if idToken == "" {
		log.Println("No token found")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false, nil
	}
	token, err := authHandler.VerifyIDToken(r.Context(), idToken)
	if err != nil {
		log.Printf("error verifying ID token: %v\n", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false, nil
	}

	return true, token
}

func RespondJson(w http.ResponseWriter, code int, payload interface{}) {
	jsonResponse, err := json.Marshal(payload)
	if err != nil {
		log.Println("Failed to marshal JSON response:", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Set response headers and write JSON response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(jsonResponse)
	if err != nil {
		return
	}
}
