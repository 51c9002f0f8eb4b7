package user

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/geo"
)

const (
	MinPasswordLength = 3
	MinCoordinate     = 0.0
	MaxCoordinate     = 100.0
)

// ValidateName checks the shape of a name. Uniqueness is checked against storage separately.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("Name must not be empty.")
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperr.Validationf("Password must be at least %d characters long.", MinPasswordLength)
	}
	return nil
}

// ParseLocation parses and range-checks a latitude/longitude pair entered as text.
func ParseLocation(lat, lon string) (geo.Point, error) {
	la, errLat := parseCoordinate(lat)
	lo, errLon := parseCoordinate(lon)
	if errLat != nil || errLon != nil {
		return geo.Point{}, apperr.Validationf("The coordinates (%s, %s) are out of scope.", lat, lon)
	}
	return geo.Point{Lat: la, Lon: lo}, nil
}

// ValidateLocation range-checks an already parsed point.
func ValidateLocation(p geo.Point) error {
	if !inRange(p.Lat) || !inRange(p.Lon) {
		return apperr.Validationf("The coordinates (%g, %g) are out of scope.", p.Lat, p.Lon)
	}
	return nil
}

func parseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if !inRange(v) {
		return 0, fmt.Errorf("coordinate %v outside [%v, %v]", v, MinCoordinate, MaxCoordinate)
	}
	return v, nil
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= MinCoordinate && v <= MaxCoordinate
}
