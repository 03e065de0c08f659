package schedule

// DefaultSlotDuration is used whenever no stride is configured.
const DefaultSlotDuration = 30

// GenerateSlots quantizes an open day into slot start times every stride minutes.
//
// Positions inside the break jump to the break end without emitting. Only the
// slot start is checked against the close time, so the last slot may run past
// it. Advancing onto or past 24:00 ends the sequence.
func GenerateSlots(entry WeeklyEntry, strideMinutes int) []Clock {
	if entry.Closed {
		return []Clock{}
	}
	if strideMinutes <= 0 {
		strideMinutes = DefaultSlotDuration
	}

	iv := entry.Interval
	slots := []Clock{}
	cur := iv.Open

	for cur < iv.Close {
		if iv.InBreak(cur) {
			cur = *iv.BreakEnd
			continue
		}

		slots = append(slots, cur)

		total := cur.Hour()*minutesPerHour + cur.Minute() + strideMinutes
		if total/minutesPerHour >= hoursPerDay {
			break
		}
		cur = NewClock(total/minutesPerHour, total%minutesPerHour)
	}

	return slots
}

// FormatSlots renders slots as "HH:MM" strings for transport.
func FormatSlots(slots []Clock) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
