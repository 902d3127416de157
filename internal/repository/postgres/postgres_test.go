package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"youthministry/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNil      bool
		wantNotFound bool
		wantStorage  bool
		wantMsg      string
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, wantNotFound: true},
		{name: "connection", err: sql.ErrConnDone, wantStorage: true, wantMsg: "get event: sql: connection is already closed"},
		{
			name:        "foreign key violation",
			err:         &pq.Error{Code: "23503", Constraint: "events_event_type_id_fkey"},
			wantStorage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError("get event", tt.err)
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrNotFound))
			assert.Equal(t, tt.wantStorage, errors.Is(err, domain.ErrStorage))
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestMapError_ConstraintMessage(t *testing.T) {
	err := mapError("create event", &pq.Error{Code: "23503", Constraint: "events_event_type_id_fkey"})
	assert.Contains(t, err.Error(), "foreign_key_violation")
	assert.Contains(t, err.Error(), "events_event_type_id_fkey")

	var perr *pq.Error
	assert.True(t, errors.As(err, &perr))
}
