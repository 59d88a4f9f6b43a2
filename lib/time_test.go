package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLocal(t *testing.T) {
	ts := time.Date(2019, 5, 16, 11, 30, 5, 999999999, time.UTC)

	assert.Equal(t, ts.Local().Format("2006-01-02 15:04:05"), FormatLocal(ts))
}

func TestFormatLocalConvertsZone(t *testing.T) {
	utc := time.Date(2019, 5, 16, 11, 30, 5, 0, time.UTC)
	local := utc.Local()

	assert.Equal(t, FormatLocal(local), FormatLocal(utc))
}
