package test

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/workouttracker/internal/domain/errors"
	"github.com/polkiloo/workouttracker/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users   map[string]*model.User
	Next    int
	Err     error
	Created int
}

// NewUserRepositoryStub constructs stub repository with initialized storage.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User), Next: 1}
}

// Create registers user unless the username or email is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	for _, u := range s.Users {
		if u.Username == username || u.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           "user-" + strconv.Itoa(s.Next),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.Created++
	s.Users[user.ID] = user
	return user, nil
}

// FindByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Username == username })
}

// FindByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.find(func(u *model.User) bool { return u.Email == email })
}

// FindByUsernameOrEmail prefers a username match and falls back to email.
func (s *UserRepositoryStub) FindByUsernameOrEmail(ctx context.Context, value string) (*model.User, error) {
	usr, err := s.FindByUsername(ctx, value)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return s.FindByEmail(ctx, value)
	}
	return usr, err
}

func (s *UserRepositoryStub) find(match func(*model.User) bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.Users {
		if match(u) {
			return u, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// WorkoutRepositoryStub keeps workouts in memory and mirrors the ordering
// rules of the SQL repository.
type WorkoutRepositoryStub struct {
	mu        sync.Mutex
	Items     []model.Workout
	Next      int
	Err       error
	Deleted   []string
	Between   [][2]time.Time
	LastLimit int
}

// NewWorkoutRepositoryStub constructs an empty stub.
func NewWorkoutRepositoryStub() *WorkoutRepositoryStub {
	return &WorkoutRepositoryStub{Next: 1}
}

// Create stores the workout assigning identifier and creation time.
func (s *WorkoutRepositoryStub) Create(ctx context.Context, w model.Workout) (*model.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	w.ID = "workout-" + strconv.Itoa(s.Next)
	w.CreatedAt = time.Now()
	s.Next++
	s.Items = append(s.Items, w)
	return &w, nil
}

// ListByUser returns user workouts ordered by date, newest first.
func (s *WorkoutRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := s.filter(func(w model.Workout) bool { return w.UserID == userID })
	sortWorkouts(out, true)
	return out, nil
}

// ListRecent returns at most limit newest workouts.
func (s *WorkoutRepositoryStub) ListRecent(ctx context.Context, userID string, limit int) ([]model.Workout, error) {
	s.mu.Lock()
	s.LastLimit = limit
	s.mu.Unlock()
	out, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListBetween returns workouts dated within [from, to], oldest first.
func (s *WorkoutRepositoryStub) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Between = append(s.Between, [2]time.Time{from, to})
	if s.Err != nil {
		return nil, s.Err
	}
	out := s.filter(func(w model.Workout) bool {
		return w.UserID == userID && !w.Date.Before(from) && !w.Date.After(to)
	})
	sortWorkouts(out, false)
	return out, nil
}

// Delete removes the workout when it belongs to the user; unknown ids are ignored.
func (s *WorkoutRepositoryStub) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, id)
	if s.Err != nil {
		return s.Err
	}
	kept := s.Items[:0]
	for _, w := range s.Items {
		if w.ID == id && w.UserID == userID {
			continue
		}
		kept = append(kept, w)
	}
	s.Items = kept
	return nil
}

func (s *WorkoutRepositoryStub) filter(keep func(model.Workout) bool) []model.Workout {
	out := []model.Workout{}
	for _, w := range s.Items {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func sortWorkouts(list []model.Workout, desc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date.Equal(list[j].Date) {
			return false
		}
		if desc {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].Date.Before(list[j].Date)
	})
}
