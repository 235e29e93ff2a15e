package music

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"groovebox/internal/music/track"
)

const queuePageSize = 10

// formatQueuePage renders one page of the queue as embed text. Pages are
// 1-based; the current track gets an arrow marker.
func formatQueuePage(tracks []track.Track, currentIndex, page int) (string, int) {
	if len(tracks) == 0 {
		return "The queue is empty.", 1
	}

	pages := (len(tracks) + queuePageSize - 1) / queuePageSize
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * queuePageSize
	end := min(start+queuePageSize, len(tracks))

	var sb strings.Builder
	for i := start; i < end; i++ {
		t := tracks[i]
		marker := "  "
		if i == currentIndex {
			marker = "▶ "
		}
		fmt.Fprintf(&sb, "%s`%2d.` %s `[%s]`", marker, i+1, t.DisplayTitle(), t.DurationString())
		if t.RequesterName != "" {
			fmt.Fprintf(&sb, " · %s", t.RequesterName)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), pages
}

// progressBar renders a fixed-width playback position bar.
func progressBar(pos, total time.Duration, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return "🔴 LIVE"
	}
	if pos < 0 {
		pos = 0
	}
	if pos > total {
		pos = total
	}

	filled := int(int64(width) * int64(pos) / int64(total))
	if filled >= width {
		filled = width - 1
	}
	return strings.Repeat("▬", filled) + "🔘" + strings.Repeat("▬", width-filled-1)
}

// parsePosition accepts "SS", "M:SS" or "H:MM:SS".
func parsePosition(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid position %q", s)
	}

	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid position %q", s)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	return total, nil
}

// fmtClock renders an elapsed time, unlike track.DurationString it treats
// zero as 0:00 rather than a live stream.
func fmtClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// totalDurationString sums queue durations for the footer.
func totalDurationString(tracks []track.Track) string {
	var total time.Duration
	for _, t := range tracks {
		total += t.Duration
	}
	return (&track.Track{Duration: total}).DurationString()
}
