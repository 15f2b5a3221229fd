package pipeline

import (
	"errors"
	"strings"

	"cablestats/internal/model"
	"cablestats/pkg/utils"
)

// LengthUnitKM is the only unit the loader expects in length fields.
const LengthUnitKM = "km"

var (
	errNoUnit     = errors.New("no unit separator")
	errExtraToken = errors.New("more than two space-separated tokens")
)

// ParseLength splits raw on its first space into a number and a unit token;
// a second space makes raw malformed.
// The number may contain comma thousands separators. The unit is returned
// as written and is not used to convert the value.
func ParseLength(raw string) (int, string, error) {
	number, unit, ok := strings.Cut(raw, " ")
	if !ok {
		return 0, "", errNoUnit
	}
	if strings.Contains(unit, " ") {
		return 0, "", errExtraToken
	}

	km, err := utils.ParseGroupedInt(number)
	if err != nil {
		return 0, "", err
	}
	return km, unit, nil
}

// NormalizeLength derives rec.LengthKM from rec.LengthRaw and returns the
// unit token. A nil LengthRaw leaves LengthKM unset.
func NormalizeLength(rec *model.CableRecord) (string, error) {
	if rec.LengthRaw == nil {
		rec.LengthKM = nil
		return "", nil
	}

	km, unit, err := ParseLength(*rec.LengthRaw)
	if err != nil {
		return "", &MalformedLengthError{CableID: rec.ID, Raw: *rec.LengthRaw, Err: err}
	}
	rec.LengthKM = &km
	return unit, nil
}
