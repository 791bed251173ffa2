package smoke

import "time"

// Config holds configuration for the smoke run.
type Config struct {
	BaseURL string        // Base URL of the service
	MatchID int           // Match used for summary, timeline and profile checks
	Player  string        // Player profiled in the match
	Style   string        // Narration style requested for the summary
	From    int           // Timeline window start
	To      int           // Timeline window end
	Timeout time.Duration // HTTP request timeout
	LogFile string        // Log file for test output
	Verbose bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	ChecksRun       int
	ChecksPassed    int
	Competitions    int
	ImportantEvents int
	TimelineEntries int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
