package provider

import "fmt"

const minutesPerDay = 24 * 60

type clock struct {
	hour   int
	minute int
}

func (c clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// add advances the clock, wrapping past midnight.
func (c clock) add(minutes int) clock {
	total := ((c.hour*60+c.minute+minutes)%minutesPerDay + minutesPerDay) % minutesPerDay
	return clock{hour: total / 60, minute: total % 60}
}

func formatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
