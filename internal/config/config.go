package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Questions struct {
		Path string `yaml:"path"`
	} `yaml:"questions"`
	Leaderboard struct {
		Path string `yaml:"path"`
	} `yaml:"leaderboard"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Game struct {
		QuestionsPerRound int `yaml:"questionsPerRound"`
		TimePerQuestion   int `yaml:"timePerQuestion"`
		StreakThreshold   int `yaml:"streakThreshold"`
		StreakBonusPoints int `yaml:"streakBonusPoints"`
	} `yaml:"game"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
