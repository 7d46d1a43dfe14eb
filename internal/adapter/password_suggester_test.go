package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smdv/password-vault/internal/logger"
)

func newSuggesterAgainst(t *testing.T, srv *httptest.Server, length int) Suggester {
	t.Helper()
	s, err := NewPasswordSuggester(SuggesterConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
		Length:  length,
	}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestSuggest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, suggestEndpoint, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "16", r.URL.Query().Get("length"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`"Xk9$mQ2@pL5#wR8z"`))
	}))
	defer srv.Close()

	s := newSuggesterAgainst(t, srv, 16)

	got, err := s.Suggest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Xk9$mQ2@pL5#wR8z", got)
}

func TestSuggest_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := newSuggesterAgainst(t, srv, 12)

	_, err := s.Suggest(context.Background())
	assert.ErrorIs(t, err, ErrSuggestionUnavailable)
}

func TestSuggest_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`""`))
	}))
	defer srv.Close()

	s := newSuggesterAgainst(t, srv, 12)

	_, err := s.Suggest(context.Background())
	assert.ErrorIs(t, err, ErrSuggestionUnavailable)
}

func TestSuggestAsync_DeliversOneResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`"async-pass"`))
	}))
	defer srv.Close()

	s := newSuggesterAgainst(t, srv, 12)

	results := s.SuggestAsync(context.Background())

	select {
	case res, ok := <-results:
		require.True(t, ok)
		require.NoError(t, res.Err)
		assert.Equal(t, "async-pass", res.Password)
	case <-time.After(3 * time.Second):
		t.Fatal("no result delivered")
	}

	// channel closes after the single result
	_, open := <-results
	assert.False(t, open)
}

func TestNewPasswordSuggester_Defaults(t *testing.T) {
	s, err := NewPasswordSuggester(SuggesterConfig{}, logger.Nop())
	require.NoError(t, err)

	impl, ok := s.(*passwordSuggester)
	require.True(t, ok)
	assert.Equal(t, defaultSuggestBaseURL, impl.client.BaseURL)
	assert.Equal(t, defaultSuggestLength, impl.length)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://randommer.io/", want: "https://randommer.io"},
		{name: "bare host gains scheme", raw: "randommer.io", want: "https://randommer.io"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "scheme only", raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
