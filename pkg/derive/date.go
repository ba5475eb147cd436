package derive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidDate is returned for certificate dates without a trailing year.
var ErrInvalidDate = errors.New("derive: invalid certificate date")

// YearFromDate reads the issuing year from the last four characters of a
// DD.MM.YYYY style date.
func YearFromDate(date string) (int, error) {
	date = strings.TrimSpace(date)
	if utf8.RuneCountInString(date) < 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	runes := []rune(date)
	year, err := strconv.Atoi(string(runes[len(runes)-4:]))
	if err != nil || year <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return year, nil
}
