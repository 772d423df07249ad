package domain

import "time"

type JobPosting struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	JobType     string    `json:"jobType"`
	PostedAt    time.Time `json:"postedAt"`
}

type Company struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Logo          string `json:"logo"`
	OpenPositions int    `json:"openPositions"`
}

// Drive 是某一家企业的一场校园宣讲会（招聘会）
type Drive struct {
	ID        int64     `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
