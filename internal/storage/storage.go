package storage

import (
	"encoding/json"
	"fmt"

	"github.com/keshon/datastore"
)

// Storage wraps the JSON-file datastore with one record per guild.
type Storage struct {
	ds *datastore.DataStore
}

// Record is everything persisted for a guild.
type Record struct {
	// GoldStars counts stars per user ID.
	GoldStars map[string]int `json:"gold_stars"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord round-trips the stored value through JSON because
// the datastore hands back map[string]any after a reload from disk.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{GoldStars: map[string]int{}}
		s.ds.Add(guildID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.GoldStars == nil {
		record.GoldStars = map[string]int{}
	}
	return &record, nil
}
