package storage

// AwardGoldStar adds one star to a user's tally and returns the new count.
func (s *Storage) AwardGoldStar(guildID, userID string) (int, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return 0, err
	}

	record.GoldStars[userID]++
	s.ds.Add(guildID, record)
	return record.GoldStars[userID], nil
}

// GoldStars returns a user's star count. Unknown users have zero stars.
func (s *Storage) GoldStars(guildID, userID string) (int, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return 0, err
	}
	return record.GoldStars[userID], nil
}

// AllGoldStars returns the whole ledger for a guild, keyed by user ID.
func (s *Storage) AllGoldStars(guildID string) (map[string]int, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int, len(record.GoldStars))
	for userID, count := range record.GoldStars {
		out[userID] = count
	}
	return out, nil
}
