package MovieHandlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Smokey053/cinephile-central/main/Handlers"
)

const TmdbBaseUrl = "https://api.themoviedb.org/3"

// MovieCache is satisfied by *MongoHandler. A cache miss is a zero
// MovieDetails with a nil error.
type MovieCache interface {
	FetchFromCache(tmdbId int, mediaType string) (MovieDetails, error)
	SaveInCache(details MovieDetails)
}

type TmdbHandler struct {
	ApiKey  string
	BaseUrl string
	Cache   MovieCache
}

func (t *TmdbHandler) get(path string, params url.Values) ([]byte, int, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", t.ApiKey)

	res, err := http.Get(t.BaseUrl + path + "?" + params.Encode())
	if err != nil {
		return nil, 0, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			return
		}
	}(res.Body)
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, res.StatusCode, nil
}

func (t *TmdbHandler) proxyList(w http.ResponseWriter, path string, params url.Values) {
	body, status, err := t.get(path, params)
	if err != nil || status != http.StatusOK {
		log.Printf("Failed to fetch from TMDB (status %d): %v", status, err)
		http.Error(w, "Error fetching from TMDB", http.StatusBadGateway)
		return
	}

	var listResponse ListResponse
	if err := json.Unmarshal(body, &listResponse); err != nil {
		log.Println("Failed to unmarshal TMDB response:", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	Handlers.RespondJson(w, http.StatusOK, listResponse)
}

func (t *TmdbHandler) PopularWrapper(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		page = "1"
	}
	t.proxyList(w, "/movie/popular", url.Values{"language": {"en-US"}, "page": {page}})
}

func (t *TmdbHandler) PopularTvWrapper(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		page = "1"
	}
	t.proxyList(w, "/tv/popular", url.Values{"language": {"en-US"}, "page": {page}})
}

func (t *TmdbHandler) SearchWrapper(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	if search == "" {
		http.Error(w, "Search term is required", http.StatusBadRequest)
		return
	}

	params := url.Values{"query": {search}}
	if language := r.URL.Query().Get("language"); language != "" {
		params.Set("language", language)
	} else {
		params.Set("language", "en-US")
	}
	if year := r.URL.Query().Get("year"); year != "" {
		params.Set("primary_release_year", year)
	}
	t.proxyList(w, "/search/movie", params)
}

func (t *TmdbHandler) SearchTvWrapper(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	if search == "" {
		http.Error(w, "Search term is required", http.StatusBadRequest)
		return
	}

	params := url.Values{"query": {search}}
	if language := r.URL.Query().Get("language"); language != "" {
		params.Set("language", language)
	} else {
		params.Set("language", "en-US")
	}
	if year := r.URL.Query().Get("year"); year != "" {
		params.Set("first_air_date_year", year)
	}
	t.proxyList(w, "/search/tv", params)
}

func (t *TmdbHandler) MovieDetailsWrapper(w http.ResponseWriter, r *http.Request) {
	t.details(w, strings.Trim(strings.TrimPrefix(r.URL.Path, "/tmdb/movie/"), "/"), "movie")
}

func (t *TmdbHandler) TvDetailsWrapper(w http.ResponseWriter, r *http.Request) {
	t.details(w, strings.Trim(strings.TrimPrefix(r.URL.Path, "/tmdb/tv/"), "/"), "tv")
}

func (t *TmdbHandler) details(w http.ResponseWriter, rawId, mediaType string) {
	tmdbId, err := strconv.Atoi(rawId)
	if err != nil {
		http.Error(w, "Title ID is required", http.StatusBadRequest)
		return
	}

	details, err := t.Cache.FetchFromCache(tmdbId, mediaType)
	if details.Id == 0 {
		if err != nil {
			log.Println("Failed to fetch title from cache:", err)
		}
		body, status, err := t.get("/"+mediaType+"/"+rawId, url.Values{"append_to_response": {"videos"}})
		if err != nil || status != http.StatusOK {
			log.Printf("Failed to fetch title from TMDB (status %d): %v", status, err)
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if err := json.Unmarshal(body, &details); err != nil {
			log.Println("Failed to unmarshal TMDB response:", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		details.MediaType = mediaType
		go t.Cache.SaveInCache(details)
	} else {
		log.Println("Found title in cache")
	}

	Handlers.RespondJson(w, http.StatusOK, details)
}
