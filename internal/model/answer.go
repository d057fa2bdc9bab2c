package model

// Answer is a single computed puzzle answer.
type Answer struct {
	Label string `yaml:"label"`
	Value uint64 `yaml:"value"`
}

// DayResult groups the answers of one day's puzzle.
type DayResult struct {
	Day     int      `yaml:"day"`
	Answers []Answer `yaml:"answers"`
}
