package writer

import (
	"math"
	"strconv"
	"time"
)

// Excel serial day 0 is 1899-12-30T00:00:00Z, one day before the canonical
// 1900 epoch, which absorbs the historic Lotus leap-year bug.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

const millisPerDay = 24 * 60 * 60 * 1000

// dateToSerial converts a timestamp into the serial day count used by the
// spreadsheet format. The fraction carries the time of day; the result is
// rounded to 5 decimal places to keep sub-day precision without dragging in
// floating point noise.
func dateToSerial(t time.Time) float64 {
	ms := t.UnixMilli() - serialEpoch.UnixMilli()
	days := float64(ms) / millisPerDay
	return math.Round(days*1e5) / 1e5
}

func formatSerial(serial float64) string {
	return strconv.FormatFloat(serial, 'f', -1, 64)
}
