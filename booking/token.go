package booking

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/skip2/go-qrcode"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

const DefaultQRSize = 256

// NewAccessToken builds the code printed on a booking: BK-<unix ms>-<6 chars>.
func NewAccessToken(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return "BK-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}

// ParsePeople reads a party size such as "2" or "4+". Anything without a
// positive leading number counts as one person.
func ParsePeople(text string) int {
	text = strings.TrimSpace(text)

	end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(text)
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil || n < 1 {
		return 1
	}

	return n
}

// QRCode renders token as a PNG of size x size pixels.
func QRCode(token string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	return qrcode.Encode(token, qrcode.Medium, size)
}
