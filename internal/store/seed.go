package store

import (
	"time"

	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

// seed 在每次进程启动时灌入固定的示例数据，
// 各集合的计数器从示例数据之后继续递增
func (s *Store) seed() {
	now := time.Now()

	s.jobs = []*domain.JobPosting{
		{
			ID:          1,
			Title:       "Senior React Developer",
			Company:     "Google",
			Location:    "Mountain View, CA",
			Salary:      "$150k - $200k",
			Skills:      []string{"React", "JavaScript", "TypeScript"},
			Description: "Build scalable web applications",
			JobType:     "Full-time",
			PostedAt:    now,
		},
		{
			ID:          2,
			Title:       "Full Stack Developer",
			Company:     "Microsoft",
			Location:    "Seattle, WA",
			Salary:      "$120k - $180k",
			Skills:      []string{"Node.js", "React", "MongoDB"},
			Description: "Create innovative solutions",
			JobType:     "Full-time",
			PostedAt:    now,
		},
		{
			ID:          3,
			Title:       "Python Backend Developer",
			Company:     "Amazon",
			Location:    "Austin, TX",
			Salary:      "$130k - $190k",
			Skills:      []string{"Python", "AWS", "Django"},
			Description: "Build distributed systems",
			JobType:     "Full-time",
			PostedAt:    now,
		},
		{
			ID:          4,
			Title:       "UI/UX Designer",
			Company:     "Apple",
			Location:    "Cupertino, CA",
			Salary:      "$100k - $150k",
			Skills:      []string{"Figma", "UI Design", "CSS"},
			Description: "Design beautiful interfaces",
			JobType:     "Full-time",
			PostedAt:    now,
		},
		{
			ID:          5,
			Title:       "Data Science Engineer",
			Company:     "Meta",
			Location:    "Menlo Park, CA",
			Salary:      "$140k - $200k",
			Skills:      []string{"Python", "Machine Learning", "SQL"},
			Description: "Work with big data and AI",
			JobType:     "Full-time",
			PostedAt:    now,
		},
	}
	s.jobSeq = int64(len(s.jobs))

	s.notifications = []*domain.Notification{
		{
			ID:        1,
			Title:     "Application Submitted",
			Message:   "Your application to Google has been submitted",
			Type:      domain.NotificationSuccess,
			CreatedAt: now,
		},
		{
			ID:          2,
			Title:       "You are selected at JP Morgan",
			Message:     "Congratulations! JP Morgan has selected you",
			Type:        domain.NotificationCelebration,
			CompanyName: "JP Morgan",
			CreatedAt:   now,
		},
	}
	s.notifSeq = int64(len(s.notifications))

	s.companies = []*domain.Company{
		{ID: 1, Name: "Google", Logo: "🔵", OpenPositions: 5},
		{ID: 2, Name: "Microsoft", Logo: "🟦", OpenPositions: 3},
		{ID: 3, Name: "Amazon", Logo: "🟧", OpenPositions: 4},
		{ID: 4, Name: "Apple", Logo: "🍎", OpenPositions: 2},
	}

	s.drives = []*domain.Drive{
		{
			ID:        1,
			Company:   "Google",
			Position:  "Software Engineer",
			Location:  "主校区大礼堂",
			Date:      time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local),
			CreatedAt: now,
		},
		{
			ID:        2,
			Company:   "Microsoft",
			Position:  "Full Stack Developer",
			Location:  "信息学院报告厅",
			Date:      time.Date(2026, time.March, 22, 14, 0, 0, 0, time.Local),
			CreatedAt: now,
		},
		{
			ID:        3,
			Company:   "Amazon",
			Position:  "Backend Developer",
			Location:  "就业指导中心",
			Date:      time.Date(2026, time.April, 1, 11, 0, 0, 0, time.Local),
			CreatedAt: now,
		},
	}
	s.driveSeq = int64(len(s.drives))
}
