package dto

// LeaderboardEntry is one row of the leaderboard, ordered by
// totalCreditsReceived descending with studentId ascending as tie-break.
type LeaderboardEntry struct {
	Rank                 int    `json:"rank" example:"1"`
	StudentID            string `json:"studentId" example:"STU002"`
	Name                 string `json:"name" example:"Rohan Iyer"`
	TotalCreditsReceived int    `json:"totalCreditsReceived" example:"120"`
	RecognitionCount     int    `json:"recognitionCount" example:"7"`
	EndorsementCount     int    `json:"endorsementCount" example:"15"`
}

// Leaderboard is the full top-N listing.
type Leaderboard struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Limit       int                `json:"limit" example:"10"`
	Total       int                `json:"total" example:"10"`
}
