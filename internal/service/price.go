package service

import (
	"strconv"
	"strings"

	"github.com/sefazor/eventix-backend/internal/models"
)

// ToMinorUnits turns a decimal price string into pence: "12" is 1200,
// "12.5" and "12.50" are 1250. "Free" is 0.
func ToMinorUnits(price string) (int64, error) {
	if price == models.PriceFree {
		return 0, nil
	}

	whole, frac, hasFrac := strings.Cut(price, ".")
	if whole == "" || len(frac) > 2 || (hasFrac && frac == "") {
		return 0, ErrInvalidPrice
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, ErrInvalidPrice
	}

	frac += strings.Repeat("0", 2-len(frac))
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || cents < 0 {
		return 0, ErrInvalidPrice
	}

	return units*100 + cents, nil
}
