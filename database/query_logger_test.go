package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryLoggerNewestFirst(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 3", time.Millisecond, 1, nil)

	queries := ql.GetQueries()
	assert.Len(t, queries, 3)
	assert.Equal(t, "SELECT 3", queries[0].SQL)
	assert.Equal(t, "SELECT 1", queries[2].SQL)
}

func TestQueryLoggerCapsAtMaxLogs(t *testing.T) {
	ql := NewQueryLogger(2)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 3", time.Millisecond, 1, nil)

	queries := ql.GetQueries()
	assert.Len(t, queries, 2)
	assert.Equal(t, "SELECT 3", queries[0].SQL)
	assert.Equal(t, "SELECT 2", queries[1].SQL)
}

func TestQueryLoggerRecordsErrors(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT broken", time.Millisecond, 0, errors.New("syntax error"))

	queries := ql.GetQueries()
	assert.Len(t, queries, 1)
	assert.Equal(t, "syntax error", queries[0].Error)
}

func TestQueryLoggerGetRecent(t *testing.T) {
	ql := NewQueryLogger(10)

	for i := 0; i < 5; i++ {
		ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	}

	assert.Len(t, ql.GetRecentQueries(3), 3)
	assert.Len(t, ql.GetRecentQueries(100), 5)
}

func TestQueryLoggerClear(t *testing.T) {
	ql := NewQueryLogger(10)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.Clear()

	assert.Empty(t, ql.GetQueries())
}
