package todo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
)

// Todo frequencies.
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// Todo is one entry on a user's personal task list. Todos are completely
// independent of leads and never visible across users.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"` // creation day, canonical YYYY-MM-DD
	Frequency string `json:"frequency"`
}

// Changes carries a partial update. Nil fields are left alone.
type Changes struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
}

// Summary counts todos per frequency. Recomputed on every read.
type Summary struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

// Store is the per-user task list. All operations are last-writer-wins on
// the user's whole list, which is fine for a single-session dashboard.
type Store struct {
	kv KV

	// Now is the clock used to stamp new todos. Swappable in tests.
	Now func() time.Time
}

// NewStore builds a Store on top of kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, Now: time.Now}
}

// Add appends a new todo. Blank (or whitespace-only) text is silently
// rejected; the list is left untouched.
func (s *Store) Add(ctx context.Context, userID, text, frequency string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	todos, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	todos = append(todos, Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		Date:      dashboard.Today(s.Now()),
		Frequency: frequency,
	})
	return s.kv.Put(ctx, userID, todos)
}

// Update merges changes into the matching todo. Unknown ids are a no-op,
// not an error.
func (s *Store) Update(ctx context.Context, userID, id string, ch Changes) error {
	todos, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range todos {
		if todos[i].ID != id {
			continue
		}
		if ch.Text != nil {
			todos[i].Text = *ch.Text
		}
		if ch.Completed != nil {
			todos[i].Completed = *ch.Completed
		}
		if ch.Frequency != nil {
			todos[i].Frequency = *ch.Frequency
		}
		found = true
		break
	}
	if !found {
		return nil
	}
	return s.kv.Put(ctx, userID, todos)
}

// Delete removes the matching todo. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, userID, id string) error {
	todos, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	out := todos[:0]
	for _, td := range todos {
		if td.ID != id {
			out = append(out, td)
		}
	}
	if len(out) == len(todos) {
		return nil
	}
	return s.kv.Put(ctx, userID, out)
}

// List returns the user's todos in insertion order, optionally restricted
// to one frequency. Pass "" for everything.
func (s *Store) List(ctx context.Context, userID, frequency string) ([]Todo, error) {
	todos, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if frequency == "" {
		return todos, nil
	}

	out := []Todo{}
	for _, td := range todos {
		if td.Frequency == frequency {
			out = append(out, td)
		}
	}
	return out, nil
}

// Summarize counts the user's todos per frequency.
func (s *Store) Summarize(ctx context.Context, userID string) (Summary, error) {
	todos, err := s.load(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, td := range todos {
		switch td.Frequency {
		case FrequencyDaily:
			sum.Daily++
		case FrequencyWeekly:
			sum.Weekly++
		case FrequencyMonthly:
			sum.Monthly++
		}
	}
	return sum, nil
}

func (s *Store) load(ctx context.Context, userID string) ([]Todo, error) {
	todos, err := s.kv.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []Todo{}
	}
	return todos, nil
}
