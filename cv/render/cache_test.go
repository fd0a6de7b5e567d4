package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-backend/cv/model"
)

func TestOutputCacheEvictsOldestFirst(t *testing.T) {
	c := NewOutputCache(2, time.Minute)

	c.Put("a", []byte("A"))
	c.Put("b", []byte("B"))
	c.Put("c", []byte("C"))

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestOutputCacheTTLExpiry(t *testing.T) {
	c := NewOutputCache(10, time.Minute)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put("key", []byte("data"))

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("data"), got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("key")
	assert.False(t, ok, "expired entry should not be served")
}

func TestOutputCacheOverwriteKeepsSingleEntry(t *testing.T) {
	c := NewOutputCache(10, time.Minute)
	c.Put("key", []byte("v1"))
	c.Put("key", []byte("v2"))

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
	assert.Equal(t, 1, c.Len())
}

func TestOutputCacheReinsertAfterExpiry(t *testing.T) {
	c := NewOutputCache(2, time.Minute)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put("a", []byte("A1"))
	c.Put("b", []byte("B"))

	now = now.Add(2 * time.Minute)
	_, ok := c.Get("a")
	require.False(t, ok, "entry must be expired")

	c.Put("a", []byte("A2"))
	c.Put("c", []byte("C"))

	got, ok := c.Get("a")
	require.True(t, ok, "freshly re-inserted entry must survive eviction")
	assert.Equal(t, []byte("A2"), got)
	_, ok = c.Get("c")
	assert.True(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok, "stale entry must be evicted before fresh ones")
	assert.Equal(t, 2, c.Len())
}

func TestOutputCacheOverwriteRefreshesEvictionOrder(t *testing.T) {
	c := NewOutputCache(2, time.Minute)

	c.Put("a", []byte("A1"))
	c.Put("b", []byte("B"))
	c.Put("a", []byte("A2"))
	c.Put("c", []byte("C"))

	got, ok := c.Get("a")
	require.True(t, ok, "overwritten entry must count as freshly inserted")
	assert.Equal(t, []byte("A2"), got)
	_, ok = c.Get("b")
	assert.False(t, ok, "untouched oldest entry should be evicted")
}

func TestFingerprintSensitivity(t *testing.T) {
	base := model.Profile{
		PersonalInfo: model.PersonalInfo{FirstName: "Jean", LastName: "Dupont", Email: "j@d.fr"},
	}

	k1 := Fingerprint(base, "montemplate-v2", FormatPDF)
	assert.Equal(t, k1, Fingerprint(base, "montemplate-v2", FormatPDF), "fingerprint must be stable")

	assert.NotEqual(t, k1, Fingerprint(base, "montemplate-v2", FormatHTML), "format must change the key")
	assert.NotEqual(t, k1, Fingerprint(base, "classic", FormatPDF), "template must change the key")

	withExp := base
	withExp.Experience = []model.Experience{{Company: "Acme", Position: "Dev", StartDate: "2020"}}
	assert.NotEqual(t, k1, Fingerprint(withExp, "montemplate-v2", FormatPDF), "section counts must change the key")

	renamed := base
	renamed.PersonalInfo.FirstName = "Paul"
	assert.NotEqual(t, k1, Fingerprint(renamed, "montemplate-v2", FormatPDF), "identity must change the key")
}
