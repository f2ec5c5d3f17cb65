package fsutils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decimal byte units.
const (
	KB uint64 = 1000
	MB        = KB * 1000
	GB        = MB * 1000
	TB        = GB * 1000
	PB        = TB * 1000
	EB        = PB * 1000
)

// ErrUnrepresentableSize is returned for sizes of one exabyte and above.
var ErrUnrepresentableSize = errors.New("size is out of the supported range")

var sizeUnits = []struct {
	size   uint64
	suffix string
}{
	{EB, "E"},
	{PB, "P"},
	{TB, "T"},
	{GB, "G"},
	{MB, "M"},
	{KB, "K"},
	{1, "B"},
}

// FormatSize returns size broken down into decimal units,
// e.g. 1500000 is "1M 500K 0B".
// Units start from the largest non-zero one and go down to bytes.
func FormatSize(size uint64) (string, error) {
	if size >= EB {
		return "", fmt.Errorf("%w: %d bytes", ErrUnrepresentableSize, size)
	}
	var sb strings.Builder
	rest := size
	for _, unit := range sizeUnits {
		count := rest / unit.size
		rest %= unit.size
		if sb.Len() == 0 && count == 0 && unit.size > 1 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(count, 10))
		sb.WriteString(unit.suffix)
	}
	return sb.String(), nil
}
