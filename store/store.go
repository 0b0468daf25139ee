package store

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"

	"github.com/osr-alliance/backend-svc-dashboard/dashboard"
)

// MeetingUpdate carries the writable meeting fields in one piece so a
// meeting can be scheduled, delegated, and resolved in a single write.
type MeetingUpdate struct {
	MeetingAssignedUserID string `json:"meeting_assigned_user_id"`
	MeetingDate           string `json:"meeting_date"`
	MeetingTime           string `json:"meeting_time"`
	MeetingLocation       string `json:"meeting_location"`
	MeetingDescription    string `json:"meeting_description"`
	MeetingStatus         string `json:"meeting_status"`
}

// Store is the lead store API. Reads go through the cache; writes go to
// Postgres and keep the cache honest.
type Store interface {
	CreateLead(ctx context.Context, lead *dashboard.Lead) error
	GetLeadByID(ctx context.Context, id string) (*dashboard.Lead, error)
	// ListLeadsForUser returns every lead the user can see through either
	// assignment relation, in creation order.
	ListLeadsForUser(ctx context.Context, userID string) ([]*dashboard.Lead, error)

	UpdateStatus(ctx context.Context, id, status string) (*dashboard.Lead, error)
	UpdateNotes(ctx context.Context, id, notes string) (*dashboard.Lead, error)
	UpdateRequirement(ctx context.Context, id, requirement string) (*dashboard.Lead, error)
	UpdateFollowUp(ctx context.Context, id, date, timeOfDay string) (*dashboard.Lead, error)
	UpdateMeeting(ctx context.Context, id string, m MeetingUpdate) (*dashboard.Lead, error)
}

// store is the private implementation of the API
type store struct {
	readConn  *sqlx.DB
	writeConn *sqlx.DB
	cache     *cache
}

type Config struct {
	ReadOnlyDbConn  *sqlx.DB
	WriteOnlyDbConn *sqlx.DB
	Redis           *redis.Client
	Debugger        bool
}

// New returns a Store which implements the interface
func New(conf *Config) Store {
	// use the json tag instead of the DB tag so the dashboard structs map
	// straight onto columns
	conf.ReadOnlyDbConn.Mapper = reflectx.NewMapperFunc("json", strings.ToLower)
	conf.WriteOnlyDbConn.Mapper = reflectx.NewMapperFunc("json", strings.ToLower)

	debug.init("dashboard", conf.Debugger)

	return &store{
		readConn:  conf.ReadOnlyDbConn,
		writeConn: conf.WriteOnlyDbConn,
		cache:     newCache(conf.Redis),
	}
}

// queryOne runs a named query expected to produce exactly one lead row.
func (s *store) queryOne(ctx context.Context, conn *sqlx.DB, query string, arg interface{}) (*dashboard.Lead, error) {
	rows, err := conn.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	// Let's make sure we don't have a memory leak!! :)
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrLeadNotFound
	}

	lead := &dashboard.Lead{}
	if err := rows.StructScan(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *store) queryAll(ctx context.Context, conn *sqlx.DB, query string, arg interface{}) ([]*dashboard.Lead, error) {
	rows, err := conn.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*dashboard.Lead{}
	for rows.Next() {
		lead := &dashboard.Lead{}
		if err := rows.StructScan(lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
