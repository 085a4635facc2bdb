package utils

import (
	"fmt"
	"time"
)

const TimeLayout = "2006-01-02 15:04:05"

// ParseStartEndTime reads a time range in Beijing time, the timezone
// the exchange reports in.
func ParseStartEndTime(start, end string) (startTime, endTime time.Time, err error) {
	secondsEastOfUTC := int((8 * time.Hour).Seconds())
	beijing := time.FixedZone("Beijing Time", secondsEastOfUTC)

	startTime, err = time.ParseInLocation(TimeLayout, start, beijing)
	if err != nil {
		return
	}
	endTime, err = time.ParseInLocation(TimeLayout, end, beijing)
	if err != nil {
		return
	}
	if !startTime.Before(endTime) {
		err = fmt.Errorf("start time(%s) must before end time(%s)", startTime.String(), endTime.String())
		return
	}
	return
}
