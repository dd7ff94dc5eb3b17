package feeds_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futuremodern/feeds"
	"futuremodern/models"
)

var atomSource = models.Source{Name: "Example Blog", URL: "https://blog.example.com/atom", Category: "blogs"}

const atomSample = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example Blog</title>
  <id>urn:uuid:1</id>
  <updated>2025-06-10T00:00:00Z</updated>
  <entry>
    <title>Published entry</title>
    <id>urn:uuid:2</id>
    <link rel="enclosure" href="https://blog.example.com/audio.mp3"/>
    <link rel="alternate" href="https://blog.example.com/published"/>
    <summary>A short &amp; sweet summary</summary>
    <published>2025-06-09T10:00:00Z</published>
    <updated>2025-06-10T08:00:00Z</updated>
    <author><name>Grace Hopper</name></author>
  </entry>
  <entry>
    <title>Updated only</title>
    <id>urn:uuid:3</id>
    <link href="https://blog.example.com/updated-only"/>
    <content type="html">&lt;p&gt;Content used as &lt;b&gt;summary&lt;/b&gt;&lt;/p&gt;</content>
    <updated>2025-06-07T09:30:00Z</updated>
  </entry>
  <entry>
    <title>No link, dropped</title>
    <id>urn:uuid:4</id>
    <summary>orphan</summary>
  </entry>
</feed>`

func TestParseAtom(t *testing.T) {
	entries, err := feeds.ParseAtom(atomSample, atomSource)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	published := entries[0]
	assert.Equal(t, "Published entry", published.Title)
	assert.Equal(t, "https://blog.example.com/published", published.Link,
		"rel=alternate wins over other link relations")
	assert.Equal(t, "A short & sweet summary", published.Description)
	assert.Equal(t, "Grace Hopper", published.Author)
	assert.Equal(t, "Example Blog", published.Source)
	assert.Equal(t, "blogs", published.Category)
	assert.Empty(t, published.Image, "no image extraction for Atom")
	require.NotNil(t, published.Published)
	assert.True(t, published.Published.Equal(time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)),
		"published wins over updated")

	updated := entries[1]
	assert.Equal(t, "https://blog.example.com/updated-only", updated.Link,
		"falls back to the first link without rel=alternate")
	assert.Equal(t, "Content used as summary", updated.Description,
		"content text is used when summary is absent")
	assert.Empty(t, updated.Author)
	require.NotNil(t, updated.Published)
	assert.True(t, updated.Published.Equal(time.Date(2025, 6, 7, 9, 30, 0, 0, time.UTC)))
}

func TestParseAtomUnparseableDate(t *testing.T) {
	xml := `<feed xmlns="http://www.w3.org/2005/Atom"><entry>
		<title>t</title>
		<link href="https://blog.example.com/x"/>
		<published>sometime last week</published>
	</entry></feed>`

	entries, err := feeds.ParseAtom(xml, atomSource)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Published)
}

func TestParseAtomMalformed(t *testing.T) {
	_, err := feeds.ParseAtom("<feed><entry>", atomSource)
	assert.Error(t, err)
}

func TestParseAtomRejectsRSS(t *testing.T) {
	rssDoc := `<rss version="2.0"><channel><item><title>t</title><link>https://x</link></item></channel></rss>`
	_, err := feeds.ParseAtom(rssDoc, atomSource)
	assert.Error(t, err)
}
