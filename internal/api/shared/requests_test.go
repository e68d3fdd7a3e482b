package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    decodeTarget
		checkFn func(t *testing.T, err error)
	}{
		{
			name: "valid json",
			body: `{"name": "test", "age": 30}`,
			want: decodeTarget{Name: "test", Age: 30},
		},
		{
			name: "unknown fields are ignored",
			body: `{"name": "test", "extra": true}`,
			want: decodeTarget{Name: "test"},
		},
		{
			name: "empty body",
			body: "",
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyBody)
			},
		},
		{
			name: "malformed json",
			body: `{"name": `,
			checkFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "wrong type",
			body: `{"age": "thirty"}`,
			checkFn: func(t *testing.T, err error) {
				var typeErr *json.UnmarshalTypeError
				require.True(t, errors.As(err, &typeErr))
				assert.Equal(t, "age", typeErr.Field)
			},
		},
		{
			name: "trailing value",
			body: `{"name": "a"} {"name": "b"}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrTrailingData)
			},
		},
		{
			name: "oversized body",
			body: `{"name": "` + strings.Repeat("x", MaxBodyBytes) + `"}`,
			checkFn: func(t *testing.T, err error) {
				var maxErr *http.MaxBytesError
				assert.True(t, errors.As(err, &maxErr), "got %v", err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var got decodeTarget
			err := DecodeJSON(w, req, &got)

			if tt.checkFn != nil {
				tt.checkFn(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
