package gameapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWikiaPageName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ion Cannon Lv3", "Ion_Cannon"},
		{"shield battery lv10", "Shield_Battery_Lv10"},
		{"Bridge", "Bridge"},
		{"ANTI CRAFT", "Anti_Craft"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, WikiaPageName(tt.in))
		})
	}
}

func TestWikiaLink(t *testing.T) {
	assert.Equal(t, "https://wiki.example/wiki/Ion_Cannon", WikiaLink("https://wiki.example/wiki", "Ion Cannon Lv1"))
	assert.Equal(t, "https://wiki.example/wiki/Lift", WikiaLink("https://wiki.example/wiki/", "Lift Lv2"))
	assert.Empty(t, WikiaLink("https://wiki.example/wiki/", ""))
}

func TestHTTPLinkChecker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/wiki/Missing" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	checker := NewHTTPLinkChecker(time.Second)
	assert.True(t, checker.Check(context.Background(), srv.URL+"/wiki/Lift"))
	assert.False(t, checker.Check(context.Background(), srv.URL+"/wiki/Missing"))
	assert.False(t, checker.Check(context.Background(), "://bad"))
}

func TestNewLinkChecker(t *testing.T) {
	assert.True(t, NewLinkChecker(Config{CheckLinks: false}).Check(context.Background(), "http://unreachable.invalid"))
	assert.IsType(t, &HTTPLinkChecker{}, NewLinkChecker(Config{CheckLinks: true, TimeoutSeconds: 1}))
}
