// Package memory holds in-process implementations of the repository interfaces. They back
// the test suites and STORAGE_DRIVER=memory for local runs. All repositories created from
// one Store share a single lock, so multi-entity writes such as a linked rendition create
// are atomic just like their DynamoDB transactions.
package memory

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/identifier"
	"fieldops/internal/usecase/interfaces"
)

type Store struct {
	mu            sync.RWMutex
	projects      map[string]entities.Project
	requests      map[string]entities.ServiceRequest
	renditions    map[string]entities.Rendition
	notifications map[string]entities.Notification
	users         map[string]entities.User
	categories    map[string]entities.ExpenseCategory
	counters      map[string]int64
}

func NewStore() *Store {
	return &Store{
		projects:      map[string]entities.Project{},
		requests:      map[string]entities.ServiceRequest{},
		renditions:    map[string]entities.Rendition{},
		notifications: map[string]entities.Notification{},
		users:         map[string]entities.User{},
		categories:    map[string]entities.ExpenseCategory{},
		counters:      map[string]int64{},
	}
}

func (s *Store) Projects() *ProjectRepository {
	return &ProjectRepository{s: s}
}

func (s *Store) ServiceRequests() *ServiceRequestRepository {
	return &ServiceRequestRepository{s: s}
}

func (s *Store) Renditions() *RenditionRepository {
	return &RenditionRepository{s: s}
}

func (s *Store) Notifications() *NotificationRepository {
	return &NotificationRepository{s: s}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) ExpenseCategories() *ExpenseCategoryRepository {
	return &ExpenseCategoryRepository{s: s}
}

func (s *Store) Counters() *CounterRepository {
	return &CounterRepository{s: s}
}

// newestFirst orders by creation time descending, breaking ties by id for stable pages.
func newestFirst[T any](items []T, created func(T) time.Time, id func(T) string) {
	slices.SortFunc(items, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
}

// supersedes reports whether (at, id) is a later identifier than (latestAt, latestID). Entities
// created in the same instant are ordered by their trailing sequence number.
func supersedes(at time.Time, id string, latestAt time.Time, latestID string) bool {
	if latestID == "" {
		return true
	}
	if c := at.Compare(latestAt); c != 0 {
		return c > 0
	}
	seq, _ := identifier.ParseSequence(id)
	latestSeq, _ := identifier.ParseSequence(latestID)
	return seq > latestSeq
}

func page[T any](items []T, q interfaces.PageQuery) ([]T, int) {
	start, end := q.Window(len(items))
	return items[start:end], len(items)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
