package process

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Process
	}{
		{
			name:  "csv with priority",
			input: "1,5,0,2\n2,9,3,1\n",
			want: []Process{
				{ProcessID: 1, BurstDuration: 5, ArrivalTime: 0, Priority: 2},
				{ProcessID: 2, BurstDuration: 9, ArrivalTime: 3, Priority: 1},
			},
		},
		{
			name:  "csv without priority",
			input: "1, 5, 0\n2, 3, 1\n",
			want: []Process{
				{ProcessID: 1, BurstDuration: 5, ArrivalTime: 0},
				{ProcessID: 2, BurstDuration: 3, ArrivalTime: 1},
			},
		},
		{
			name:  "whitespace separated with comments and blank lines",
			input: "# pid burst arrival priority\n1 10 0 3\n\n2\t1 0 1\n",
			want: []Process{
				{ProcessID: 1, BurstDuration: 10, ArrivalTime: 0, Priority: 3},
				{ProcessID: 2, BurstDuration: 1, ArrivalTime: 0, Priority: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadRejectsBatch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		msg     string
	}{
		{"zero burst", "1,5,0\n2,0,0\n", ErrMalformedRecord, "line 2"},
		{"negative burst", "1,-3,0\n", ErrMalformedRecord, "burst must be positive"},
		{"negative arrival", "1,3,-1\n", ErrMalformedRecord, "arrival must not be negative"},
		{"not an integer", "1,abc,0\n", ErrMalformedRecord, `"abc" is not an integer`},
		{"too few fields", "1,5\n", ErrMalformedRecord, "want 3 or 4 fields, got 2"},
		{"too many fields", "1,5,0,1,9\n", ErrMalformedRecord, "got 5"},
		{"duplicate pid", "1,5,0\n1,2,0\n", ErrMalformedRecord, "duplicate process id 1"},
		{"empty", "", ErrNoProcesses, ""},
		{"only comments", "# nothing\n", ErrNoProcesses, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestClone(t *testing.T) {
	orig := []Process{{ProcessID: 1, BurstDuration: 2}, {ProcessID: 2, BurstDuration: 3}}
	c := Clone(orig)
	require.Equal(t, orig, c)

	c[0].BurstDuration = 99
	assert.Equal(t, int64(2), orig[0].BurstDuration)
	assert.Nil(t, Clone(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]Process{{ProcessID: 1, BurstDuration: 1}, {ProcessID: 2, BurstDuration: 4, ArrivalTime: 2}}))

	assert.ErrorIs(t, Validate(nil), ErrNoProcesses)

	err := Validate([]Process{{ProcessID: 1, BurstDuration: 1}, {ProcessID: 2}})
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "record 2")

	err = Validate([]Process{{ProcessID: 3, BurstDuration: 1}, {ProcessID: 3, BurstDuration: 2}})
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "duplicate process id 3")
}
