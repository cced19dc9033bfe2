package models

import (
	"strings"
	"time"
)

// FilmGenre is the catalogue genre of a film
type FilmGenre string

const (
	GenreAction      FilmGenre = "ACTION"
	GenreAdventure   FilmGenre = "ADVENTURE"
	GenreAnimation   FilmGenre = "ANIMATION"
	GenreComedy      FilmGenre = "COMEDY"
	GenreDocumentary FilmGenre = "DOCUMENTARY"
	GenreDrama       FilmGenre = "DRAMA"
	GenreFantasy     FilmGenre = "FANTASY"
	GenreHorror      FilmGenre = "HORROR"
	GenreRomance     FilmGenre = "ROMANCE"
	GenreSciFi       FilmGenre = "SCIENCE_FICTION"
	GenreThriller    FilmGenre = "THRILLER"
)

var filmGenres = map[FilmGenre]struct{}{
	GenreAction: {}, GenreAdventure: {}, GenreAnimation: {}, GenreComedy: {},
	GenreDocumentary: {}, GenreDrama: {}, GenreFantasy: {}, GenreHorror: {},
	GenreRomance: {}, GenreSciFi: {}, GenreThriller: {},
}

// IsValid reports whether g is a known genre
func (g FilmGenre) IsValid() bool {
	_, ok := filmGenres[g]
	return ok
}

// FilmClassification is the audience rating of a film
type FilmClassification string

const (
	ClassificationAllAudiences  FilmClassification = "ALL_AUDIENCES"
	ClassificationSevenYears    FilmClassification = "SEVEN_YEARS"
	ClassificationTwelveYears   FilmClassification = "TWELVE_YEARS"
	ClassificationFifteenYears  FilmClassification = "FIFTEEN_YEARS"
	ClassificationEighteenYears FilmClassification = "EIGHTEEN_YEARS"
)

// IsValid reports whether c is a known classification
func (c FilmClassification) IsValid() bool {
	switch c {
	case ClassificationAllAudiences, ClassificationSevenYears, ClassificationTwelveYears,
		ClassificationFifteenYears, ClassificationEighteenYears:
		return true
	}
	return false
}

// Film is a catalogue entry tickets can be bought for
type Film struct {
	ID             int64              `json:"id" db:"id"`
	Title          string             `json:"title" db:"title"`
	Description    string             `json:"description" db:"description"`
	ImageURL       string             `json:"imageUrl" db:"image_url"`
	Genre          FilmGenre          `json:"genre" db:"genre"`
	Classification FilmClassification `json:"classification" db:"classification"`
	Duration       int                `json:"duration" db:"duration"` // minutes
	TicketPrice    float64            `json:"ticketPrice" db:"ticket_price"`
	Enabled        bool               `json:"enabled" db:"enabled"`
	CreatedAt      time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" db:"updated_at"`
}

// TableName returns the table name for the Film model
func (Film) TableName() string {
	return "films"
}

// NewFilm creates an enabled film
func NewFilm(title, description, imageURL string, genre FilmGenre, classification FilmClassification, duration int, ticketPrice float64) *Film {
	now := time.Now().UTC()
	return &Film{
		Title:          strings.TrimSpace(title),
		Description:    strings.TrimSpace(description),
		ImageURL:       strings.TrimSpace(imageURL),
		Genre:          genre,
		Classification: classification,
		Duration:       duration,
		TicketPrice:    ticketPrice,
		Enabled:        true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
