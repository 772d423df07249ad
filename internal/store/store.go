package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

var ErrNotFound = errors.New("记录不存在")

// 投递记录和通知在插入后还会被原地改写（状态、已读标记），
// 所以相关方法只进出副本，store 内部持有的记录不会泄露到锁外
func cloneApplication(app *domain.Application) *domain.Application {
	clone := *app
	return &clone
}

func cloneNotification(n *domain.Notification) *domain.Notification {
	clone := *n
	return &clone
}

// Store 持有各个角色面板共享的全部业务数据：职位、企业、宣讲会、
// 投递记录和通知，以及庆祝页所需的临时 UI 状态。
// 这些集合只存在于内存中，每次进程启动都会重新灌入示例数据，
// 不做持久化（与会话目录的持久化策略不同，这是沿用下来的既定行为）
type Store struct {
	mu                   sync.RWMutex
	jobs                 []*domain.JobPosting
	companies            []*domain.Company
	drives               []*domain.Drive
	applications         []*domain.Application
	notifications        []*domain.Notification
	selectedNotification *domain.Notification
	showCelebration      bool

	// 单调递增的 ID 计数器，即使将来引入删除也不会重用 ID
	jobSeq   int64
	driveSeq int64
	appSeq   int64
	notifSeq int64
}

func NewStore() *Store {
	s := &Store{}
	s.seed()
	return s
}

// AddJob 无条件覆盖 ID 和发布时间后追加，调用方传入的这两个字段会被忽略
func (s *Store) AddJob(job *domain.JobPosting) *domain.JobPosting {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobSeq++
	job.ID = s.jobSeq
	job.PostedAt = time.Now()
	s.jobs = append(s.jobs, job)

	return job
}

type JobFilter struct {
	Location string
	Salary   string
	Skill    string
}

func (s *Store) Jobs(filter JobFilter) []*domain.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*domain.JobPosting, 0, len(s.jobs))
	for _, job := range s.jobs {
		if filter.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Salary != "" && !strings.Contains(job.Salary, filter.Salary) {
			continue
		}
		if filter.Skill != "" && !containsSkill(job.Skills, filter.Skill) {
			continue
		}
		jobs = append(jobs, job)
	}

	return jobs
}

func containsSkill(skills []string, want string) bool {
	for _, skill := range skills {
		if strings.EqualFold(skill, want) {
			return true
		}
	}
	return false
}

func (s *Store) JobByID(id int64) (*domain.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return job, nil
		}
	}

	return nil, ErrNotFound
}

func (s *Store) JobsByCompany(company string) []*domain.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*domain.JobPosting, 0)
	for _, job := range s.jobs {
		if strings.EqualFold(job.Company, company) {
			jobs = append(jobs, job)
		}
	}

	return jobs
}

func (s *Store) Companies() []*domain.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*domain.Company(nil), s.companies...)
}

func (s *Store) AddDrive(drive *domain.Drive) *domain.Drive {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.driveSeq++
	drive.ID = s.driveSeq
	drive.CreatedAt = time.Now()
	s.drives = append(s.drives, drive)

	return drive
}

func (s *Store) Drives() []*domain.Drive {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*domain.Drive(nil), s.drives...)
}

// ApplyToJob 根据职位和申请人生成一条状态为 Applied 的投递记录，
// 职位不存在时返回 ErrNotFound
func (s *Store) ApplyToJob(jobID int64, applicant *domain.User) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var job *domain.JobPosting
	for _, j := range s.jobs {
		if j.ID == jobID {
			job = j
			break
		}
	}
	if job == nil {
		return nil, ErrNotFound
	}

	s.appSeq++
	app := &domain.Application{
		ID:          s.appSeq,
		JobID:       job.ID,
		AppliedFor:  job.Title,
		Company:     job.Company,
		ApplicantID: applicant.ID,
		FullName:    applicant.Name,
		Email:       applicant.Email,
		Status:      domain.StatusApplied,
		AppliedAt:   time.Now(),
	}
	s.applications = append(s.applications, app)

	return cloneApplication(app), nil
}

// AddApplication 追加一条投递记录。
// ID、状态和投递时间由这里统一赋值，调用方无法覆盖：
// 新记录的状态永远从 Applied 开始
func (s *Store) AddApplication(app *domain.Application) *domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appSeq++
	app.ID = s.appSeq
	app.Status = domain.StatusApplied
	app.AppliedAt = time.Now()
	s.applications = append(s.applications, cloneApplication(app))

	return app
}

func (s *Store) Applications() []*domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]*domain.Application, 0, len(s.applications))
	for _, app := range s.applications {
		apps = append(apps, cloneApplication(app))
	}

	return apps
}

func (s *Store) ApplicationsByApplicant(applicantID string) []*domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]*domain.Application, 0)
	for _, app := range s.applications {
		if app.ApplicantID == applicantID {
			apps = append(apps, cloneApplication(app))
		}
	}

	return apps
}

func (s *Store) ApplicationByID(id int64) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, app := range s.applications {
		if app.ID == id {
			return cloneApplication(app), nil
		}
	}

	return nil, ErrNotFound
}

// UpdateApplicationStatus 只替换状态字段，其余字段和其余记录保持不变，
// 记录不存在时返回 ErrNotFound 而不是静默忽略
func (s *Store) UpdateApplicationStatus(id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.applications {
		if app.ID == id {
			app.Status = status
			return cloneApplication(app), nil
		}
	}

	return nil, ErrNotFound
}

// AddNotification 与 AddApplication 对称：ID、未读标记和创建时间由这里赋值
func (s *Store) AddNotification(n *domain.Notification) *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifSeq++
	n.ID = s.notifSeq
	n.Read = false
	n.CreatedAt = time.Now()
	s.notifications = append(s.notifications, cloneNotification(n))

	return n
}

func (s *Store) Notifications() []*domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]*domain.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		notifications = append(notifications, cloneNotification(n))
	}

	return notifications
}

func (s *Store) NotificationByID(id int64) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			return cloneNotification(n), nil
		}
	}

	return nil, ErrNotFound
}

func (s *Store) MarkNotificationAsRead(id int64) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID == id {
			n.Read = true
			return cloneNotification(n), nil
		}
	}

	return nil, ErrNotFound
}

// 以下是庆祝页所需的临时 UI 状态，不属于业务数据

func (s *Store) SetShowCelebration(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showCelebration = show
}

func (s *Store) ShowCelebration() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.showCelebration
}

func (s *Store) SetSelectedNotification(n *domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n == nil {
		s.selectedNotification = nil
		return
	}
	s.selectedNotification = cloneNotification(n)
}

func (s *Store) SelectedNotification() *domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedNotification == nil {
		return nil
	}
	return cloneNotification(s.selectedNotification)
}
