package Handlers

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	ListenAddr        string `env:"LISTEN_ADDR" envDefault:":8080"`
	MongoHost         string `env:"MONGO_HOST" envDefault:"localhost"`
	TmdbApiKey        string `env:"TMDB_API_KEY,notEmpty"`
	FirebaseProjectId string `env:"FIREBASE_PROJECT_ID"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
