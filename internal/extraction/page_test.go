package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbePage(t *testing.T) {
	html := `<html><head>
		<title> Resultaatmakers – Online marketing </title>
		<meta property="og:site_name" content="Resultaatmakers">
		<meta name="description" content="Wij maken resultaat.">
		<link rel="stylesheet" href="/wp-content/themes/rm/style.css">
		<link rel="preload" as="style" href="/css/main.css">
		<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Outfit:wght@400;700">
		<link rel="icon" href="/favicon.ico">
		<style>.btn{background:#F77F00}</style>
	</head><body></body></html>`

	info, err := ProbePage(html)
	require.NoError(t, err)
	assert.Equal(t, "Resultaatmakers – Online marketing", info.Title)
	assert.Equal(t, "Resultaatmakers", info.SiteName)
	assert.Equal(t, "Resultaatmakers", info.BestTitle())
	assert.Equal(t, "Wij maken resultaat.", info.Description)
	assert.Equal(t, []string{"/wp-content/themes/rm/style.css", "/css/main.css"}, info.StylesheetURLs)
	assert.Len(t, info.FontURLs, 1)
	assert.Equal(t, []string{".btn{background:#F77F00}"}, info.InlineStyles)
}

func TestPageInfo_BestTitleFallsBackToTitle(t *testing.T) {
	info := &PageInfo{Title: "Acme"}
	assert.Equal(t, "Acme", info.BestTitle())
	var nilInfo *PageInfo
	assert.Equal(t, "", nilInfo.BestTitle())
}
