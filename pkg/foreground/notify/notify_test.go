package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

func TestMatch(t *testing.T) {
	require.Equal(t, language.English, Match("en-US"))
	require.Equal(t, language.German, Match("de-AT"))
	require.Equal(t, language.Chinese, Match("zh-Hans-CN"))
	require.Equal(t, language.English, Match("not a tag!"))
	require.Equal(t, language.English, Match(""))
}

func TestMessages(t *testing.T) {
	tests := []struct {
		lang       string
		foreground string
		background string
	}{
		{"en", "Demo is in the foreground", "Demo moved to the background"},
		{"de", "Demo ist im Vordergrund", "Demo ist in den Hintergrund gewechselt"},
		{"zh", "Demo 已切换到前台", "Demo 已切换到后台"},
		{"fr", "Demo is in the foreground", "Demo moved to the background"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			n, err := New("Demo", tt.lang, nil)
			require.NoError(t, err)
			require.Equal(t, tt.foreground, n.Message(true))
			require.Equal(t, tt.background, n.Message(false))
		})
	}
}

func TestNotifierAsListener(t *testing.T) {
	var toasts []string
	n, err := New("Demo", "en", func(message string) {
		toasts = append(toasts, message)
	})
	require.NoError(t, err)

	type screen struct{ name string }
	m := monitor.New[screen](monitor.Options{Ordering: monitor.Relaxed})
	require.True(t, m.Subscribe(n))
	require.False(t, m.Subscribe(n))

	s := &screen{name: "home"}
	m.ReportEvent(s, monitor.StateResumed)
	m.ReportEvent(s, monitor.StatePaused)
	m.ReportEvent(s, monitor.StateStopped)

	require.Equal(t, []string{
		"Demo is in the foreground",
		"Demo moved to the background",
	}, toasts)
}

func TestBundleLoadsEveryLocale(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)
	require.Len(t, bundle.LanguageTags(), len(Supported))
}
