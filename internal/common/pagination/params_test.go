package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"empleo-search/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{
		DefaultLimit: 20,
		MaxLimit:     100,
	}

	tests := []struct {
		name      string
		query     string
		want      pagination.Params
		wantError bool
	}{
		{
			name:  "valid parameters",
			query: "limit=30&offset=60",
			want: pagination.Params{
				Limit:  30,
				Offset: 60,
			},
			wantError: false,
		},
		{
			name:  "no parameters (use defaults)",
			query: "",
			want: pagination.Params{
				Limit:  20,
				Offset: 0,
			},
			wantError: false,
		},
		{
			name:  "only limit parameter",
			query: "limit=50",
			want: pagination.Params{
				Limit:  50,
				Offset: 0,
			},
			wantError: false,
		},
		{
			name:  "only offset parameter",
			query: "offset=40",
			want: pagination.Params{
				Limit:  20,
				Offset: 40,
			},
			wantError: false,
		},
		{
			name:  "offset zero is valid",
			query: "offset=0",
			want: pagination.Params{
				Limit:  20,
				Offset: 0,
			},
			wantError: false,
		},
		{
			name:      "invalid limit (negative)",
			query:     "limit=-10",
			wantError: true,
		},
		{
			name:      "invalid limit (zero)",
			query:     "limit=0",
			wantError: true,
		},
		{
			name:      "invalid limit (exceeds max)",
			query:     "limit=101",
			wantError: true,
		},
		{
			name:      "invalid limit (non-integer)",
			query:     "limit=xyz",
			wantError: true,
		},
		{
			name:      "invalid offset (negative)",
			query:     "offset=-1",
			wantError: true,
		},
		{
			name:      "invalid offset (non-integer)",
			query:     "offset=abc",
			wantError: true,
		},
		{
			name:  "limit=1 (minimum valid)",
			query: "limit=1",
			want: pagination.Params{
				Limit:  1,
				Offset: 0,
			},
			wantError: false,
		},
		{
			name:  "limit=100 (maximum valid)",
			query: "limit=100",
			want: pagination.Params{
				Limit:  100,
				Offset: 0,
			},
			wantError: false,
		},
		{
			name:  "large offset",
			query: "offset=9999",
			want: pagination.Params{
				Limit:  20,
				Offset: 9999,
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := pagination.ParseQueryParams(req, config)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseQueryParams() error = nil, wantError = true")
				}
				return
			}

			if err != nil {
				t.Errorf("ParseQueryParams() error = %v, wantError = false", err)
				return
			}

			if got.Limit != tt.want.Limit {
				t.Errorf("ParseQueryParams() Limit = %d, want %d", got.Limit, tt.want.Limit)
			}
			if got.Offset != tt.want.Offset {
				t.Errorf("ParseQueryParams() Offset = %d, want %d", got.Offset, tt.want.Offset)
			}
		})
	}
}

func TestParseQueryParams_ErrorMessages(t *testing.T) {
	t.Parallel()

	config := pagination.Config{
		DefaultLimit: 20,
		MaxLimit:     100,
	}

	tests := []struct {
		name              string
		query             string
		wantErrorContains string
	}{
		{
			name:              "limit error message",
			query:             "limit=200",
			wantErrorContains: "limit must be between 1 and 100",
		},
		{
			name:              "offset error message",
			query:             "offset=invalid",
			wantErrorContains: "offset must be a non-negative integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			_, err := pagination.ParseQueryParams(req, config)

			if err == nil {
				t.Errorf("ParseQueryParams() error = nil, want error containing %q", tt.wantErrorContains)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErrorContains) {
				t.Errorf("ParseQueryParams() error = %q, want it to contain %q", err, tt.wantErrorContains)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "10")
	t.Setenv("PAGINATION_MAX_LIMIT", "50")

	config := pagination.LoadFromEnv()
	if config.DefaultLimit != 10 {
		t.Errorf("LoadFromEnv() DefaultLimit = %d, want 10", config.DefaultLimit)
	}
	if config.MaxLimit != 50 {
		t.Errorf("LoadFromEnv() MaxLimit = %d, want 50", config.MaxLimit)
	}
}
