package numberutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64.
// Surrounding spaces are ignored; NaN and infinities are rejected.
func ToFloat64WithError(str string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", str)
	}
	return f, nil
}

// ToFloat64WithDefault converts the given string to a float64.
// If the string cannot be converted, it returns the provided default value.
func ToFloat64WithDefault(str string, defaultVal float64) float64 {
	if f, err := ToFloat64WithError(str); err == nil {
		return f
	}
	return defaultVal
}

// IsFloatInRange checks if the given number is within the specified range (inclusive).
func IsFloatInRange(num, min, max float64) bool {
	return num >= min && num <= max
}
