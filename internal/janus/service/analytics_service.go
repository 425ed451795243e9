package service

import (
	"context"
	"fmt"
	"time"

	"github.com/campusgate/janus/internal/janus/store"
	"github.com/campusgate/janus/internal/janus/types"
)

// AnalyticsService reconstructs the set of students currently inside from
// today's presence events.
type AnalyticsService struct {
	events   store.PresenceEventStore
	students store.StudentStore

	// Now supplies the clock used to compute the day window. Defaults to
	// time.Now.
	Now func() time.Time
}

func NewAnalyticsService(events store.PresenceEventStore, students store.StudentStore) *AnalyticsService {
	return &AnalyticsService{events: events, students: students, Now: time.Now}
}

// CurrentlyInside returns the roster of students whose latest event today
// is an entry. Students removed from the directory since their last scan
// are dropped; the directory is authoritative for existence.
func (s *AnalyticsService) CurrentlyInside(ctx context.Context) (types.RosterResponse, error) {
	from, to := CurrentDayWindow(s.Now())

	latest, err := s.events.LatestByStudent(ctx, from, to)
	if err != nil {
		return types.RosterResponse{}, fmt.Errorf("roster %s: %w", from.Format("2006-01-02"), err)
	}

	inside := make([]types.RosterStudent, 0, len(latest))
	for _, ev := range latest {
		if !ev.Status {
			continue
		}
		student, err := s.students.Lookup(ctx, ev.StudentID)
		if err != nil {
			return types.RosterResponse{}, fmt.Errorf("roster resolve %s: %w", ev.StudentID, err)
		}
		if student == nil {
			continue
		}
		inside = append(inside, types.RosterStudent{
			Name:     student.Name,
			Dept:     student.Department,
			Batch:    student.Batch,
			Semester: student.Semester,
		})
	}

	return types.RosterResponse{
		TotalInside:    len(inside),
		StudentsInside: inside,
	}, nil
}
