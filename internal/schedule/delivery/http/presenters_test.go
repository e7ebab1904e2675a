package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestListReqValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     listReq
		wantErr error
	}{
		{name: "no filter", req: listReq{}},
		{name: "year and month", req: listReq{Year: 2025, Month: intPtr(0)}},
		{name: "month without year", req: listReq{Month: intPtr(0)}, wantErr: errYearRequired},
		{name: "month out of range", req: listReq{Year: 2025, Month: intPtr(12)}, wantErr: errInvalidMonth},
		{name: "negative month", req: listReq{Year: 2025, Month: intPtr(-1)}, wantErr: errInvalidMonth},
		{name: "year alone", req: listReq{Year: 2025}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListReqToInputMonthConversion(t *testing.T) {
	// The UI sends 0-based months; everything behind the presenters is 1-based.
	input := listReq{Year: 2025, Month: intPtr(0)}.toInput()
	require.Equal(t, 2025, input.Year)
	assert.Equal(t, time.January, input.Month)

	input = listReq{Year: 2025}.toInput()
	assert.Equal(t, time.Month(0), input.Month)
}

func TestImportReqToInputMonthConversion(t *testing.T) {
	input := importReq{Text: "x", Year: 2025, Month: 11}.toInput()
	assert.Equal(t, time.December, input.Month)
}
