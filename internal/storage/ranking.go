package storage

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-survivor/internal/config"
)

// RankKey is the key holding the high-score table.
const RankKey = "rank"

// MaxRecords is the size of the high-score table.
const MaxRecords = 5

// Record is one finished round in the high-score table.
type Record struct {
	PlayerName  string            `yaml:"player_name"`
	PlayerScore int               `yaml:"player_score"`
	Difficulty  config.Difficulty `yaml:"difficulty"` // Stored as EASY, NORMAL or HARD
}

// EncodeRecords serializes a record list for storage.
func EncodeRecords(recs []Record) ([]byte, error) {
	if recs == nil {
		recs = []Record{}
	}
	data, err := yaml.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode records: %w", err)
	}
	return data, nil
}

// DecodeRecords parses a record list produced by EncodeRecords.
func DecodeRecords(data []byte) ([]Record, error) {
	var recs []Record
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("storage: cannot decode records: %w", err)
	}
	return recs, nil
}

// Record adds a result to the high-score table, keeping only the best
// MaxRecords sorted by score descending. Ties keep insertion order.
func (s *Store) Record(name string, score int, difficulty config.Difficulty) error {
	return s.update(RankKey, func(old []byte, ok bool) ([]byte, error) {
		var recs []Record
		if ok {
			var err error
			if recs, err = DecodeRecords(old); err != nil {
				return nil, err
			}
		}

		recs = append(recs, Record{PlayerName: name, PlayerScore: score, Difficulty: difficulty})
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].PlayerScore > recs[j].PlayerScore
		})
		if len(recs) > MaxRecords {
			recs = recs[:MaxRecords]
		}
		return EncodeRecords(recs)
	})
}

// Query returns the high-score table, best first.
// An empty table is not an error.
func (s *Store) Query() ([]Record, error) {
	data, ok, err := s.Get(RankKey)
	if err != nil || !ok {
		return nil, err
	}
	return DecodeRecords(data)
}

// ClearRanking deletes the high-score table.
func (s *Store) ClearRanking() error {
	return s.Delete(RankKey)
}
