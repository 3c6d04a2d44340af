package phishcheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedupeFilter(t *testing.T) {
	d := NewDedupe(1024)
	var got []string
	for v := range d.Filter(context.Background(), feed("a", "b", "a", "c", "b", "a", "d")) {
		got = append(got, v)
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestDedupeExecute(t *testing.T) {
	a, err := New(nil)
	require.Nil(t, err)
	urls := NewDedupe(0).Filter(context.Background(), feed(wikiURL, wikiURL, phishingURL, wikiURL))
	count := 0
	for range a.Execute(context.Background(), urls) {
		count++
	}
	require.Equal(t, 2, count)
}

func TestDedupeDiskBackend(t *testing.T) {
	d := NewDedupe(MaxInMemoryDedupeSize + 1)
	var got []string
	for v := range d.Filter(context.Background(), feed("a", "b", "a", "c", "b")) {
		got = append(got, v)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)
}
