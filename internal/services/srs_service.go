package services

import (
	"encoding/json"
	"errors"

	"sentsei/internal/models"

	apperrors "sentsei/internal/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const srsDeckKey = "srs_deck"

// Decks are stored as one JSON blob per user; cap its serialized size.
const maxDeckBytes = 1 << 20

// SRSService persists per-user spaced-repetition decks as a single JSON
// document in the user_data table.
type SRSService struct {
	db *gorm.DB
}

// NewSRSService creates an SRSService.
func NewSRSService(db *gorm.DB) *SRSService {
	return &SRSService{db: db}
}

// DeckMutation reports the outcome of a deck-changing operation.
type DeckMutation struct {
	OK      bool `json:"ok"`
	Added   bool `json:"added,omitempty"`
	Removed bool `json:"removed,omitempty"`
	Count   int  `json:"count"`
}

// GetDeck returns the user's full deck, empty when none was ever saved.
func (s *SRSService) GetDeck(userID string) ([]models.SRSItem, *apperrors.APIError) {
	deck, err := s.loadDeck(userID)
	if err != nil {
		return nil, apperrors.ParseDBError(err)
	}
	return deck, nil
}

// PutDeck replaces the user's deck wholesale.
func (s *SRSService) PutDeck(userID string, deck []models.SRSItem) (*DeckMutation, *apperrors.APIError) {
	if deck == nil {
		deck = []models.SRSItem{}
	}
	if apiErr := s.saveDeck(userID, deck); apiErr != nil {
		return nil, apiErr
	}
	return &DeckMutation{OK: true, Count: len(deck)}, nil
}

// AddItem inserts a card, or merges the new fields into an existing card with
// the same sentence and language.
func (s *SRSService) AddItem(userID string, item *models.SRSItem) (*DeckMutation, *apperrors.APIError) {
	deck, err := s.loadDeck(userID)
	if err != nil {
		return nil, apperrors.ParseDBError(err)
	}

	updated := false
	for i := range deck {
		if deck[i].Sentence == item.Sentence && deck[i].Lang == item.Lang {
			mergeSRSItem(&deck[i], item)
			updated = true
			break
		}
	}
	if !updated {
		deck = append(deck, *item)
	}

	if apiErr := s.saveDeck(userID, deck); apiErr != nil {
		return nil, apiErr
	}
	return &DeckMutation{OK: true, Added: !updated, Count: len(deck)}, nil
}

// RemoveItem deletes the card matching sentence and language, if present.
func (s *SRSService) RemoveItem(userID, sentence, lang string) (*DeckMutation, *apperrors.APIError) {
	deck, err := s.loadDeck(userID)
	if err != nil {
		return nil, apperrors.ParseDBError(err)
	}

	filtered := deck[:0]
	for _, item := range deck {
		if item.Sentence == sentence && item.Lang == lang {
			continue
		}
		filtered = append(filtered, item)
	}
	removed := len(filtered) != len(deck)

	if apiErr := s.saveDeck(userID, filtered); apiErr != nil {
		return nil, apiErr
	}
	return &DeckMutation{OK: true, Removed: removed, Count: len(filtered)}, nil
}

// ReviewItem writes the updated scheduling fields back to one card.
func (s *SRSService) ReviewItem(userID string, req *models.SRSReviewRequest) (*DeckMutation, *apperrors.APIError) {
	deck, err := s.loadDeck(userID)
	if err != nil {
		return nil, apperrors.ParseDBError(err)
	}

	found := false
	for i := range deck {
		if deck[i].Sentence == req.Sentence && deck[i].Lang == req.Lang {
			deck[i].Interval = req.Interval
			deck[i].EaseFactor = req.EaseFactor
			deck[i].NextReview = req.NextReview
			deck[i].ReviewCount = req.ReviewCount
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NewNotFoundError("SRS item not found")
	}

	if apiErr := s.saveDeck(userID, deck); apiErr != nil {
		return nil, apiErr
	}
	return &DeckMutation{OK: true, Count: len(deck)}, nil
}

func (s *SRSService) loadDeck(userID string) ([]models.SRSItem, error) {
	var record models.UserData
	err := s.db.Where("user_id = ? AND data_key = ?", userID, srsDeckKey).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.SRSItem{}, nil
		}
		return nil, err
	}

	var deck []models.SRSItem
	if json.Unmarshal(record.DataJSON, &deck) != nil || deck == nil {
		return []models.SRSItem{}, nil
	}
	return deck, nil
}

func (s *SRSService) saveDeck(userID string, deck []models.SRSItem) *apperrors.APIError {
	raw, err := json.Marshal(deck)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if len(raw) > maxDeckBytes {
		return apperrors.NewValidationError("Data too large (max 1MB)")
	}

	record := models.UserData{
		UserID:   userID,
		DataKey:  srsDeckKey,
		DataJSON: datatypes.JSON(raw),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "data_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data_json", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return apperrors.ParseDBError(err)
	}
	return nil
}

// mergeSRSItem overlays the non-zero fields of src onto dst, keeping existing
// scheduling state that the new payload omits.
func mergeSRSItem(dst, src *models.SRSItem) {
	if src.Translation != "" {
		dst.Translation = src.Translation
	}
	if src.Pronunciation != "" {
		dst.Pronunciation = src.Pronunciation
	}
	if src.AddedAt != 0 {
		dst.AddedAt = src.AddedAt
	}
	if src.NextReview != 0 {
		dst.NextReview = src.NextReview
	}
	if src.Interval != 0 {
		dst.Interval = src.Interval
	}
	if src.EaseFactor != 0 {
		dst.EaseFactor = src.EaseFactor
	}
	if src.ReviewCount != 0 {
		dst.ReviewCount = src.ReviewCount
	}
}
