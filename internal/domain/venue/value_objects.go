package venue

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MinPhoneLength = 10

var (
	ErrEmptyName         = errors.New("venue name is required")
	ErrEmptyLocation     = errors.New("venue location is required")
	ErrEmptyDescription  = errors.New("venue description is required")
	ErrEmptyHours        = errors.New("venue opening hours are required")
	ErrEmptySize         = errors.New("venue size is required")
	ErrEmptySurface      = errors.New("venue surface is required")
	ErrInvalidLatitude   = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude  = errors.New("longitude must be between -180 and 180")
	ErrPhoneTooShort     = errors.New("phone must be at least 10 characters")
	ErrInvalidPrice      = errors.New("price per hour must be positive")
	ErrInvalidMaxPlayers = errors.New("max players must be a positive integer")
	ErrInvalidOwner      = errors.New("venue owner is required")
	ErrEmptyImageURL     = errors.New("image url must not be empty")
)

type Coordinates struct {
	latitude  float64
	longitude float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidLongitude
	}
	return Coordinates{latitude: lat, longitude: lng}, nil
}

func (c Coordinates) Latitude() float64  { return c.latitude }
func (c Coordinates) Longitude() float64 { return c.longitude }

type Amenities struct {
	Parking       bool
	Showers       bool
	ShoeRental    bool
	Cafeteria     bool
	NightLighting bool
}

func requireText(s string, err error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", err
	}
	return s, nil
}

func validatePhone(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinPhoneLength {
		return "", ErrPhoneTooShort
	}
	return s, nil
}

func validateImages(urls []string) ([]string, error) {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			return nil, ErrEmptyImageURL
		}
		out = append(out, u)
	}
	return out, nil
}
