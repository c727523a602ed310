package handler

import (
	"fmt"
	"strconv"
	"time"
)

func parsePathID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// parseDate accepts the YYYY-MM-DD wire format used for check-in/check-out
// and payment dates.
func parseDate(raw string) (time.Time, error) {
	return time.Parse(time.DateOnly, raw)
}
